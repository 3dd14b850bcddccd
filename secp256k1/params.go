// Package secp256k1 implements affine-coordinate point algebra over the
// curve Bitcoin uses: y² = x³ + 7 mod p. Every coordinate is a
// bigint.Int; there is no constant-time discipline here (see the
// module's non-goals) — this is a from-scratch, textbook implementation
// of the group law, not a hardened one.
package secp256k1

import "bitcoin-math/bigint"

// Curve parameters, built once at package init and never mutated
// afterward. P is the field prime 2²⁵⁶ − 2³² − 977; N is the order of
// the generator; H is the cofactor (1, since secp256k1 has prime
// order).
var (
	P *bigint.Int
	A *bigint.Int
	B *bigint.Int
	Gx *bigint.Int
	Gy *bigint.Int
	N *bigint.Int
	H *bigint.Int

	G Point
)

func mustHex(s string) *bigint.Int {
	z := bigint.New()
	if err := z.SetString(s, 16); err != nil {
		panic("secp256k1: invalid curve constant " + s)
	}
	return z
}

func init() {
	P = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	A = bigint.New().SetInt32(0)
	B = bigint.New().SetInt32(7)
	Gx = mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	Gy = mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	N = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	H = bigint.New().SetInt32(1)

	G = Point{X: Gx.Clone(), Y: Gy.Clone()}
}
