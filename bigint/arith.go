package bigint

// Add sets z = a + b, handling signs per the standard four-case table:
// same-sign operands add magnitudes and keep the sign; opposite-sign
// operands subtract the smaller magnitude from the larger and take the
// sign of whichever has the larger magnitude.
func Add(z, a, b *Int) *Int {
	if a.sign == b.sign {
		addMagnitude(z, a, b)
		z.sign = a.sign
		z.canonicalizeZeroSign()
		return z
	}

	// Opposite signs: z = larger magnitude's sign, |larger| - |smaller|.
	switch cmpMagnitude(a.mag, b.mag) {
	case 0:
		z.mag = []byte{0}
		z.sign = Positive
	case 1:
		subMagnitude(z, a, b)
		z.sign = a.sign
	default:
		subMagnitude(z, b, a)
		z.sign = b.sign
	}
	z.canonicalizeZeroSign()
	return z
}

// AddInt32 sets z = a + n.
func AddInt32(z, a *Int, n int32) *Int {
	return Add(z, a, New().SetInt32(n))
}

// Subtract sets z = a - b.
func Subtract(z, a, b *Int) *Int {
	negB := New().SetInt(b)
	if !negB.IsZero() {
		negB.sign ^= 1
	}
	return Add(z, a, negB)
}

// SubtractInt32 sets z = a - n.
func SubtractInt32(z, a *Int, n int32) *Int {
	return Subtract(z, a, New().SetInt32(n))
}

// canonicalizeZeroSign forces sign to Positive whenever the magnitude is
// zero. The original C bnz_trim can leave a zero value with sign set to
// Negative; this module canonicalizes in the one place signs are
// produced (spec.md design note in §9) instead of scattering the check
// across every consumer.
func (z *Int) canonicalizeZeroSign() {
	if z.IsZero() {
		z.sign = Positive
	}
}

// addMagnitude sets z = |a| + |b|, ignoring sign.
func addMagnitude(z, a, b *Int) {
	n := len(a.mag)
	if len(b.mag) > n {
		n = len(b.mag)
	}
	out := make([]byte, n+1)
	var carry uint16
	for i := 0; i < n; i++ {
		var av, bv uint16
		if i < len(a.mag) {
			av = uint16(a.mag[i])
		}
		if i < len(b.mag) {
			bv = uint16(b.mag[i])
		}
		sum := av + bv + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	out[n] = byte(carry)
	z.mag = out
	z.Trim()
}

// subMagnitude sets z = |a| - |b|, requiring |a| >= |b|.
func subMagnitude(z, a, b *Int) {
	n := len(a.mag)
	out := make([]byte, n)
	var borrow int16
	for i := 0; i < n; i++ {
		var av, bv int16
		av = int16(a.mag[i])
		if i < len(b.mag) {
			bv = int16(b.mag[i])
		}
		d := av - bv - borrow
		if d < 0 {
			d += 256
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d)
	}
	z.mag = out
	z.Trim()
}

// Multiply sets z = a * b using schoolbook long multiplication. Sign is
// the XOR of the operand signs.
func Multiply(z, a, b *Int) *Int {
	out := make([]byte, len(a.mag)+len(b.mag))
	for i, av := range a.mag {
		if av == 0 {
			continue
		}
		var carry uint16
		for j, bv := range b.mag {
			prod := uint16(av)*uint16(bv) + uint16(out[i+j]) + carry
			out[i+j] = byte(prod)
			carry = prod >> 8
		}
		k := i + len(b.mag)
		for carry != 0 {
			sum := uint16(out[k]) + carry
			out[k] = byte(sum)
			carry = sum >> 8
			k++
		}
	}
	z.mag = out
	z.sign = a.sign ^ b.sign
	z.Trim()
	z.canonicalizeZeroSign()
	return z
}

// MultiplyInt32 sets z = a * n.
func MultiplyInt32(z, a *Int, n int32) *Int {
	return Multiply(z, a, New().SetInt32(n))
}
