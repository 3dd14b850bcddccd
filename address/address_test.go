package address

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"bitcoin-math/secp256k1"
)

func TestFromCompressedPubKeyGenerator(t *testing.T) {
	pub := secp256k1.G.Compress()
	addr, err := FromCompressedPubKey(pub, MainnetVersion)
	require.NoError(t, err)
	require.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", addr)
}

func TestHash160KnownValue(t *testing.T) {
	pub, _ := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	got := Hash160(pub)
	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(got[:]))
}

func TestFromCompressedPubKeyRejectsBadLength(t *testing.T) {
	_, err := FromCompressedPubKey([]byte{0x02, 0x01}, MainnetVersion)
	require.ErrorIs(t, err, ErrInvalidPubKeyLength)
}

func TestBase58RoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xFF, 0xAB, 0xCD}
	encoded := Base58Encode(data)
	decoded, err := Base58Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestBase58LeadingZerosBecomeOnes(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01}
	encoded := Base58Encode(data)
	require.Equal(t, byte('1'), encoded[0])
	require.Equal(t, byte('1'), encoded[1])

	decoded, err := Base58Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestBase58AllZeros(t *testing.T) {
	data := make([]byte, 5)
	encoded := Base58Encode(data)
	require.Equal(t, "11111", encoded)

	decoded, err := Base58Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}
