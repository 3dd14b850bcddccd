// Package bigint implements arbitrary-precision signed integers using a
// sign-magnitude representation, the arithmetic core of the rest of this
// module. Every Int stores its magnitude as little-endian bytes
// internally; all external I/O (hashes, HMAC, curve coordinates, BIP-32
// fields) is big-endian, so callers cross that boundary with Bytes/
// SetBytes rather than poking at the internal layout.
package bigint

import "errors"

// Sign values.
const (
	Positive = 0
	Negative = 1
)

var (
	// ErrDivisionByZero is returned by DivMod and Mod when the divisor is
	// zero. The quotient and remainder are still set to zero, matching
	// the observable behavior of the original C implementation's
	// print-and-continue diagnostic.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrInvalidBase is returned by SetString when base is outside the
	// supported range (2..64).
	ErrInvalidBase = errors.New("bigint: invalid base")
)

// Int is an arbitrary-precision signed integer. The zero value is a
// valid representation of 0. No Int's magnitude slice is ever aliased
// by another Int; every mutating method that needs new storage
// allocates it fresh.
type Int struct {
	sign byte   // Positive or Negative
	mag  []byte // magnitude, little-endian, at least one byte after Trim
}

// New returns a new Int set to zero.
func New() *Int {
	return &Int{mag: []byte{0}}
}

// Size returns the number of magnitude bytes currently allocated.
func (z *Int) Size() int {
	return len(z.mag)
}

// Sign returns 0 for non-negative values and 1 for negative values.
func (z *Int) Sign() byte {
	return z.sign
}

// Resize grows or shrinks z's magnitude to exactly newSize bytes. When
// preserve is false the result is all zero bytes with sign reset to
// Positive. When preserve is true, existing bytes are kept (truncated
// from the high end if shrinking) and any newly added high bytes are
// zero-filled.
func (z *Int) Resize(newSize int, preserve bool) *Int {
	if newSize < 1 {
		newSize = 1
	}
	if !preserve {
		z.mag = make([]byte, newSize)
		z.sign = Positive
		return z
	}

	next := make([]byte, newSize)
	copy(next, z.mag)
	z.mag = next
	return z
}

// Align trims a and b, then grows whichever has fewer magnitude bytes so
// both share the same size, zero-padding the high end.
func Align(a, b *Int) {
	a.Trim()
	b.Trim()
	if len(a.mag) < len(b.mag) {
		a.Resize(len(b.mag), true)
	} else if len(b.mag) < len(a.mag) {
		b.Resize(len(a.mag), true)
	}
}

// Trim strips trailing zero bytes (the big-endian-view leading zeros of
// the magnitude) down to a minimum size of one byte. It never changes
// sign, even when the result is a zero magnitude — callers that care
// about canonical zero sign should use IsZero, which is sign-agnostic.
func (z *Int) Trim() *Int {
	n := len(z.mag)
	for n > 1 && z.mag[n-1] == 0 {
		n--
	}
	z.mag = z.mag[:n]
	return z
}

// IsZero reports whether z's magnitude is zero, regardless of sign.
func (z *Int) IsZero() bool {
	for _, b := range z.mag {
		if b != 0 {
			return false
		}
	}
	return true
}

// SetInt32 sets z = n.
func (z *Int) SetInt32(n int32) *Int {
	u := uint32(n)
	if n < 0 {
		z.sign = Negative
		u = uint32(-n)
	} else {
		z.sign = Positive
	}
	return z.SetUint32(u)
}

// SetUint32 sets z = n (sign is left untouched; callers that want an
// unsigned value should set z.sign = Positive first, which SetInt32
// does for them).
func (z *Int) SetUint32(n uint32) *Int {
	z.mag = []byte{
		byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24),
	}
	z.Trim()
	return z
}

// SetInt sets z = a, copying a's magnitude so the two never alias.
func (z *Int) SetInt(a *Int) *Int {
	z.sign = a.sign
	z.mag = append([]byte(nil), a.mag...)
	return z
}

// Clone returns a fresh Int with the same value as z.
func (z *Int) Clone() *Int {
	return New().SetInt(z)
}

// ReverseDigits reverses the byte order of z's magnitude in place. This
// is the sole operation used to cross the internal little-endian /
// external big-endian boundary; see Bytes and SetBytes for the
// encapsulated version of that boundary crossing.
func (z *Int) ReverseDigits() *Int {
	for i, j := 0, len(z.mag)-1; i < j; i, j = i+1, j-1 {
		z.mag[i], z.mag[j] = z.mag[j], z.mag[i]
	}
	return z
}

// ShiftRight shifts the magnitude right by n bits, shifting in zero bits
// at the high end. n may be any non-negative value (the original C
// source only supports 1..7 directly and relies on Resize for
// byte-aligned shifts; this does both in one call).
func (z *Int) ShiftRight(n uint) *Int {
	if n == 0 {
		return z
	}
	byteShift := n / 8
	bitShift := n % 8

	size := len(z.mag)
	if int(byteShift) >= size {
		z.mag = []byte{0}
		return z
	}

	shifted := make([]byte, size)
	copy(shifted, z.mag[byteShift:])

	if bitShift > 0 {
		var carry byte
		for i := len(shifted) - 1; i >= 0; i-- {
			cur := shifted[i]
			shifted[i] = (cur >> bitShift) | carry
			carry = cur << (8 - bitShift)
		}
	}
	z.mag = shifted
	return z
}

// BitSet reports whether bit i (indexed from the LSB, bit 0) is set.
func (z *Int) BitSet(i uint) bool {
	byteIdx := i / 8
	if int(byteIdx) >= len(z.mag) {
		return false
	}
	return z.mag[byteIdx]&(1<<(i%8)) != 0
}

// Cmp compares a and b, respecting sign: a negative value is always
// less than a non-negative one; among equal signs, magnitudes are
// compared lexicographically from the most-significant byte down.
// Returns -1, 0, or +1.
func Cmp(a, b *Int) int {
	aZero, bZero := a.IsZero(), b.IsZero()
	if aZero && bZero {
		return 0
	}
	if !aZero && !bZero && a.sign != b.sign {
		if a.sign == Negative {
			return -1
		}
		return 1
	}

	c := cmpMagnitude(a.mag, b.mag)
	sign := a.sign
	if aZero {
		sign = b.sign
	}
	if sign == Negative {
		return -c
	}
	return c
}

// cmpMagnitude compares two little-endian magnitudes, ignoring sign.
func cmpMagnitude(a, b []byte) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpInt32 compares z against a plain int32.
func (z *Int) CmpInt32(n int32) int {
	return Cmp(z, New().SetInt32(n))
}

const (
	// ConcatLow places a before b (storage order).
	ConcatLow = 0
	// ConcatHigh places b before a (storage order).
	ConcatHigh = 1
)

// Concatenate sets c to the little-endian-storage-order concatenation
// of a and b. With order == ConcatLow, c = bytes(a) ++ bytes(b); with
// order == ConcatHigh, c = bytes(b) ++ bytes(a). Both a and b are
// trimmed copies first, so the result has no internal padding beyond
// what each operand already carries.
func Concatenate(c, a, b *Int, order int) *Int {
	aCopy, bCopy := a.Clone().Trim(), b.Clone().Trim()

	out := make([]byte, 0, len(aCopy.mag)+len(bCopy.mag))
	if order == ConcatHigh {
		out = append(out, bCopy.mag...)
		out = append(out, aCopy.mag...)
	} else {
		out = append(out, aCopy.mag...)
		out = append(out, bCopy.mag...)
	}
	c.mag = out
	c.sign = Positive
	return c
}

// ConcatenateByte is Concatenate with b expressed as a single byte
// (the common case of prefixing or suffixing one byte, e.g. a
// compression-parity byte or a checksum byte).
func ConcatenateByte(c, a *Int, b byte, order int) *Int {
	bi := New().SetUint32(uint32(b))
	return Concatenate(c, a, bi, order)
}
