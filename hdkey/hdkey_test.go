package hdkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"bitcoin-math/bigint"
	"bitcoin-math/secp256k1"
)

// BIP-32 test vector 1, seed 000102030405060708090a0b0c0d0e0f.
func TestMasterKeyKnownVector(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	k := NewMasterKey(seed)
	require.Equal(t,
		"e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35",
		k.Private.Text(-16))
	require.Equal(t,
		"873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508",
		hex.EncodeToString(k.ChainCode[:]))
}

func TestDeriveHardenedChildRequiresPrivateKey(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	k := NewMasterKey(seed)
	neutered := &Key{Public: k.Public, ChainCode: k.ChainCode}

	_, err := neutered.DeriveChild(HardenedOffset)
	require.ErrorIs(t, err, ErrPrivateKeyRequired)
}

func TestDeriveChildPublicRejectsHardenedIndex(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	k := NewMasterKey(seed)

	_, err := k.DeriveChildPublic(HardenedOffset)
	require.ErrorIs(t, err, ErrHardenedPublicDerivation)
}

func TestNormalChildMatchesPublicOnlyDerivation(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	k := NewMasterKey(seed)

	viaPrivate, err := k.DeriveChild(0)
	require.NoError(t, err)

	neutered := &Key{Public: k.Public, ChainCode: k.ChainCode}
	viaPublic, err := neutered.DeriveChildPublic(0)
	require.NoError(t, err)

	require.Equal(t, 0, bigint.Cmp(viaPrivate.Public.X, viaPublic.Public.X))
	require.Equal(t, 0, bigint.Cmp(viaPrivate.Public.Y, viaPublic.Public.Y))
	require.Equal(t, viaPrivate.ChainCode, viaPublic.ChainCode)
	require.Nil(t, viaPublic.Private)
}

func TestHardenedAndNormalChildrenDiffer(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	k := NewMasterKey(seed)

	normal, err := k.DeriveChild(0)
	require.NoError(t, err)
	hardened, err := k.DeriveChild(HardenedOffset)
	require.NoError(t, err)

	require.NotEqual(t, 0, bigint.Cmp(normal.Private, hardened.Private))
}

func TestDerivedChildPublicKeyIsOnCurve(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	k := NewMasterKey(seed)

	child, err := k.DeriveChild(0)
	require.NoError(t, err)
	require.True(t, secp256k1.IsOnCurve(child.Public))
}

func TestGenerateRandomMasterProducesValidKey(t *testing.T) {
	k, seed, err := GenerateRandomMaster()
	require.NoError(t, err)
	require.Len(t, seed, 64)
	require.True(t, secp256k1.IsOnCurve(k.Public))
}
