package address

import (
	"errors"

	"bitcoin-math/internal/digest"
)

// MainnetVersion is the version byte prefixed to mainnet P2PKH payloads.
const MainnetVersion = 0x00

var ErrInvalidPubKeyLength = errors.New("address: compressed public key must be 33 bytes")

// Hash160 computes RIPEMD-160(SHA-256(data)), the 20-byte digest used
// both for P2PKH pubkey hashes and (elsewhere) script hashes.
func Hash160(data []byte) [20]byte {
	sha := digest.Sum256(data)
	return digest.Sum160(sha[:])
}

func checksum(payload []byte) [4]byte {
	first := digest.Sum256(payload)
	second := digest.Sum256(first[:])
	var out [4]byte
	copy(out[:], second[:4])
	return out
}

// FromCompressedPubKey builds the Base58Check P2PKH address for a
// 33-byte compressed public key: version ‖ Hash160(pubkey) ‖
// checksum(version ‖ Hash160(pubkey))[:4].
func FromCompressedPubKey(pubKeyCompressed []byte, version byte) (string, error) {
	if len(pubKeyCompressed) != 33 {
		return "", ErrInvalidPubKeyLength
	}

	h160 := Hash160(pubKeyCompressed)

	payload := make([]byte, 0, 21)
	payload = append(payload, version)
	payload = append(payload, h160[:]...)

	cs := checksum(payload)
	full := append(payload, cs[:]...)

	return Base58Encode(full), nil
}
