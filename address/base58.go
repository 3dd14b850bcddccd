// Package address builds P2PKH Bitcoin addresses from compressed
// secp256k1 public keys: SHA-256, then RIPEMD-160, then a version byte
// and a double-SHA-256 checksum, all rendered through Base58Check.
package address

import (
	"strings"

	"bitcoin-math/bigint"
)

// Base58Encode renders data (typically a version byte + payload +
// checksum) as Base58Check text, using the Bitcoin alphabet. Each
// leading zero byte becomes a literal '1', since the Bitcoin alphabet's
// zero digit is '1' and a big integer can't otherwise represent leading
// zero bytes.
func Base58Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}
	if zeros == len(data) {
		return strings.Repeat("1", zeros)
	}

	n := bigint.New().SetBytes(data)
	return strings.Repeat("1", zeros) + n.Text(58)
}

// Base58Decode reverses Base58Encode: each leading '1' becomes a zero
// byte, and the remainder is parsed as a base-58 integer and rendered
// back to its minimal big-endian byte form.
func Base58Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	var magBytes []byte
	if zeros < len(s) {
		n := bigint.New()
		if err := n.SetString(s[zeros:], 58); err != nil {
			return nil, err
		}
		magBytes = n.Bytes(n.Size())
	}

	out := make([]byte, zeros+len(magBytes))
	copy(out[zeros:], magBytes)
	return out, nil
}
