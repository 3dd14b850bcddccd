package secp256k1

import (
	"errors"

	"bitcoin-math/bigint"
)

var (
	ErrInvalidCompressedLength = errors.New("secp256k1: compressed point must be 33 bytes")
	ErrInvalidPrefix           = errors.New("secp256k1: compressed point prefix must be 0x02 or 0x03")
	ErrNotOnCurve              = errors.New("secp256k1: point does not satisfy y^2 = x^3 + 7 mod p")
)

// Point is an affine point on the curve. The point at infinity is the
// sentinel (0, 0) — the real curve has no point with x = 0, so this is
// unambiguous.
type Point struct {
	X, Y *bigint.Int
}

// Infinity returns the point-at-infinity sentinel.
func Infinity() Point {
	return Point{X: bigint.New().SetInt32(0), Y: bigint.New().SetInt32(0)}
}

// IsInfinity reports whether p is the sentinel (0, 0).
func (p Point) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	return Point{X: p.X.Clone(), Y: p.Y.Clone()}
}

func reduceP(a *bigint.Int) *bigint.Int {
	z := bigint.New()
	_ = bigint.Mod(z, a, P)
	return z
}

func fieldAdd(a, b *bigint.Int) *bigint.Int {
	s := bigint.New()
	bigint.Add(s, a, b)
	return reduceP(s)
}

func fieldSub(a, b *bigint.Int) *bigint.Int {
	d := bigint.New()
	bigint.Subtract(d, a, b)
	return reduceP(d)
}

func fieldMul(a, b *bigint.Int) *bigint.Int {
	m := bigint.New()
	bigint.Multiply(m, a, b)
	return reduceP(m)
}

func fieldInv(a *bigint.Int) *bigint.Int {
	inv := bigint.New()
	_ = bigint.ModInverse(inv, a, P)
	return inv
}

// IsOnCurve reports whether p satisfies y² = x³ + 7 mod p. The point at
// infinity is considered on-curve by convention.
func IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	lhs := fieldMul(p.Y, p.Y)
	x2 := fieldMul(p.X, p.X)
	x3 := fieldMul(x2, p.X)
	rhs := fieldAdd(x3, B)
	return bigint.Cmp(lhs, rhs) == 0
}

// Double computes R = 2P.
func Double(p Point) Point {
	if p.IsInfinity() || p.Y.IsZero() {
		return Infinity()
	}

	x2 := fieldMul(p.X, p.X)
	three := bigint.New().SetInt32(3)
	num := fieldAdd(fieldMul(three, x2), A)

	two := bigint.New().SetInt32(2)
	denom := fieldMul(two, p.Y)
	lambda := fieldMul(num, fieldInv(denom))

	rx := fieldSub(fieldMul(lambda, lambda), fieldAdd(p.X, p.X))
	ry := fieldSub(fieldMul(lambda, fieldSub(p.X, rx)), p.Y)

	return Point{X: rx, Y: ry}
}

// Add computes R = P + Q.
func Add(p, q Point) Point {
	if p.IsInfinity() {
		return q.Clone()
	}
	if q.IsInfinity() {
		return p.Clone()
	}

	px, py := reduceP(p.X), reduceP(p.Y)
	qx, qy := reduceP(q.X), reduceP(q.Y)

	if bigint.Cmp(px, qx) == 0 {
		sumY := fieldAdd(py, qy)
		if sumY.IsZero() {
			return Infinity()
		}
		if bigint.Cmp(py, qy) == 0 {
			return Double(Point{X: px, Y: py})
		}
	}

	lambda := fieldMul(fieldSub(py, qy), fieldInv(fieldSub(px, qx)))
	rx := fieldSub(fieldSub(fieldMul(lambda, lambda), px), qx)
	ry := fieldSub(fieldMul(lambda, fieldSub(px, rx)), py)

	return Point{X: rx, Y: ry}
}

// ScalarMultiply computes R = m·P via right-to-left double-and-add,
// walking every bit of m's stored magnitude (not just its significant
// bits), matching the bit-by-bit accumulator construction the rest of
// this toolkit uses for modular exponentiation.
func ScalarMultiply(m *bigint.Int, p Point) Point {
	var r Point
	q := p.Clone()

	nbits := 8 * m.Size()
	for i := 0; i < nbits; i++ {
		if i == 0 {
			if m.BitSet(0) {
				r = p.Clone()
			} else {
				r = Infinity()
			}
			continue
		}
		q = Double(q)
		if m.BitSet(uint(i)) {
			r = Add(r, q)
		}
	}
	return r
}

// Compress returns the 33-byte SEC1 compressed encoding of p: a
// 0x02/0x03 parity prefix followed by the 32-byte big-endian X
// coordinate.
func (p Point) Compress() []byte {
	prefix := byte(0x02)
	if p.Y.BitSet(0) {
		prefix = 0x03
	}
	out := make([]byte, 33)
	out[0] = prefix
	copy(out[1:], p.X.Bytes(32))
	return out
}

// Decompress recovers the full point from its 33-byte compressed form
// by solving y² = x³ + 7 mod p via y = (x³+7)^((p+1)/4) mod p, valid
// because p ≡ 3 mod 4, then correcting the parity if needed.
func Decompress(data []byte) (Point, error) {
	if len(data) != 33 {
		return Point{}, ErrInvalidCompressedLength
	}
	parity := data[0]
	if parity != 0x02 && parity != 0x03 {
		return Point{}, ErrInvalidPrefix
	}

	x := bigint.New().SetBytes(data[1:])
	x2 := fieldMul(x, x)
	x3 := fieldMul(x2, x)
	rhs := fieldAdd(x3, B)

	pPlus1 := bigint.New()
	bigint.Add(pPlus1, P, bigint.New().SetInt32(1))
	four := bigint.New().SetInt32(4)
	exp, rem := bigint.New(), bigint.New()
	_ = bigint.DivMod(exp, rem, pPlus1, four)

	y := bigint.New()
	if err := bigint.ModPow(y, rhs, exp, P); err != nil {
		return Point{}, err
	}

	wantOdd := parity == 0x03
	if y.BitSet(0) != wantOdd {
		y = fieldSub(bigint.New().SetInt32(0), y)
	}

	p := Point{X: x, Y: y}
	if !IsOnCurve(p) {
		return Point{}, ErrNotOnCurve
	}
	return p, nil
}
