package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return n
}

func fromBig(n *big.Int) *Int {
	z := New()
	z.SetBytes(new(big.Int).Abs(n).Bytes())
	if n.Sign() < 0 {
		z.sign = Negative
	}
	return z
}

func toBig(z *Int) *big.Int {
	n := new(big.Int).SetBytes(z.Clone().Trim().Bytes(z.Size()))
	if z.sign == Negative && !z.IsZero() {
		n.Neg(n)
	}
	return n
}

func TestAddCommutative(t *testing.T) {
	a := fromBig(mustBig(t, "123456789012345678901234567890"))
	b := fromBig(mustBig(t, "-98765432109876543210"))

	z1, z2 := New(), New()
	Add(z1, a, b)
	Add(z2, b, a)
	require.Equal(t, 0, Cmp(z1, z2))
	require.Equal(t, toBig(a).Add(toBig(a), toBig(b)), toBig(z1))
}

func TestMultiplyDistributesOverAdd(t *testing.T) {
	a := fromBig(mustBig(t, "340282366920938463463374607431768211456"))
	b := fromBig(mustBig(t, "1000003"))
	c := fromBig(mustBig(t, "-7777777"))

	lhs := New()
	bc := New()
	Add(bc, b, c)
	Multiply(lhs, a, bc)

	ab, ac, rhs := New(), New(), New()
	Multiply(ab, a, b)
	Multiply(ac, a, c)
	Add(rhs, ab, ac)

	require.Equal(t, 0, Cmp(lhs, rhs))
}

func TestDivModRoundTrip(t *testing.T) {
	cases := []struct{ a, b string }{
		{"1000000007", "997"},
		{"-1000000007", "997"},
		{"1000000007", "-997"},
		{"-1000000007", "-997"},
		{"115792089237316195423570985008687907853269984665640564039457584007908834671663", "3"},
		{"7", "115792089237316195423570985008687907853269984665640564039457584007908834671663"},
	}

	for _, c := range cases {
		a := fromBig(mustBig(t, c.a))
		b := fromBig(mustBig(t, c.b))

		q, r := New(), New()
		err := DivMod(q, r, a, b)
		require.NoError(t, err)

		// q*b + r == a
		prod, sum := New(), New()
		Multiply(prod, q, b)
		Add(sum, prod, r)
		require.Equal(t, 0, Cmp(sum, a), "case %+v", c)

		// sign(r) == sign(a), |r| < |b|
		if !r.IsZero() {
			require.Equal(t, a.sign, r.sign)
		}
		bAbs, rAbs := b.Clone(), r.Clone()
		bAbs.sign, rAbs.sign = Positive, Positive
		require.Equal(t, -1, Cmp(rAbs, bAbs))
	}
}

func TestDivisionByZero(t *testing.T) {
	a := New().SetInt32(42)
	zero := New()
	q, r := New(), New()
	err := DivMod(q, r, a, zero)
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.True(t, q.IsZero())
	require.True(t, r.IsZero())
}

func TestModNonNegative(t *testing.T) {
	a := New().SetInt32(-7)
	b := New().SetInt32(3)
	c := New()
	require.NoError(t, Mod(c, a, b))
	require.Equal(t, Positive, c.sign)
	require.Equal(t, 0, c.CmpInt32(2))
}

func TestModInverse(t *testing.T) {
	a := fromBig(mustBig(t, "123456789"))
	m := fromBig(mustBig(t, "115792089237316195423570985008687907853269984665640564039457584007908834671663"))

	inv := New()
	require.NoError(t, ModInverse(inv, a, m))

	prod, check := New(), New()
	Multiply(prod, inv, a)
	require.NoError(t, Mod(check, prod, m))
	require.Equal(t, 0, check.CmpInt32(1))
}

func TestModPow(t *testing.T) {
	base := New().SetInt32(4)
	exp := New().SetInt32(13)
	m := New().SetInt32(497)

	d := New()
	require.NoError(t, ModPow(d, base, exp, m))
	require.Equal(t, 0, d.CmpInt32(445))
}

func TestBaseRoundTrip(t *testing.T) {
	x := fromBig(mustBig(t, "987654321098765432109876543210"))
	for _, base := range []int{2, 8, 10, 16, 36, 58, 62, 64} {
		s := x.Text(base)
		y := New()
		bs := base
		if bs == -16 || bs == -58 {
			bs = -bs
		}
		require.NoError(t, y.SetString(s, bs))
		require.Equal(t, 0, Cmp(x, y), "base %d: %s", base, s)
	}
}

func TestTrimKeepsAtLeastOneByte(t *testing.T) {
	z := New().SetUint32(0)
	z.Resize(8, false)
	z.Trim()
	require.Equal(t, 1, z.Size())
	require.True(t, z.IsZero())
}

func TestBytesRoundTrip(t *testing.T) {
	src := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	z := New().SetBytes(src)
	require.Equal(t, src, z.Bytes(4))
}

func TestShiftRight(t *testing.T) {
	z := New().SetUint32(0x0102)
	z.ShiftRight(4)
	require.Equal(t, 0, z.CmpInt32(0x0010))
}

func TestBitSet(t *testing.T) {
	z := New().SetUint32(0b1010)
	require.False(t, z.BitSet(0))
	require.True(t, z.BitSet(1))
	require.False(t, z.BitSet(2))
	require.True(t, z.BitSet(3))
}

func TestConcatenate(t *testing.T) {
	a := New().SetUint32(0x01)
	b := New().SetUint32(0x02)
	c := New()
	Concatenate(c, a, b, ConcatLow)
	require.Equal(t, []byte{0x01, 0x02}, c.mag)

	Concatenate(c, a, b, ConcatHigh)
	require.Equal(t, []byte{0x02, 0x01}, c.mag)
}
