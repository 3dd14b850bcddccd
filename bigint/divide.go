package bigint

// DivMod sets q = a/b (truncated toward zero) and r = a - q*b, such
// that q*b + r == a, sign(r) == sign(a), and 0 <= |r| < |b|. When b is
// zero, q and r are both set to zero and ErrDivisionByZero is returned
// (the observable quotient/remainder match the original C source's
// print-and-continue diagnostic; the error lets callers that care
// detect it).
func DivMod(q, r, a, b *Int) error {
	if b.IsZero() {
		q.SetInt32(0)
		r.SetInt32(0)
		return ErrDivisionByZero
	}

	if cmpMagnitude(a.mag, b.mag) < 0 {
		q.SetInt32(0)
		r.SetInt(a)
		return nil
	}

	qMag, rMag := divideMagnitude(trimmedCopy(a.mag), trimmedCopy(b.mag))

	q.mag = qMag
	q.sign = a.sign ^ b.sign
	q.Trim()
	q.canonicalizeZeroSign()

	r.mag = rMag
	r.sign = a.sign
	r.Trim()
	r.canonicalizeZeroSign()

	return nil
}

// Mod sets c to the mathematical (non-negative) remainder of a / b:
// c = a mod b, where 0 <= c < |b| for any nonzero b. This differs from
// DivMod's remainder, which carries the sign of a.
func Mod(c, a, b *Int) error {
	q, r := New(), New()
	if err := DivMod(q, r, a, b); err != nil {
		c.SetInt32(0)
		return err
	}
	if r.sign == Negative {
		absB := b.Clone()
		absB.sign = Positive
		Add(r, r, absB)
	}
	c.SetInt(r)
	return nil
}

func trimmedCopy(mag []byte) []byte {
	n := len(mag)
	for n > 1 && mag[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	copy(out, mag[:n])
	return out
}

// divideMagnitude computes |a| / |b| using Knuth's Algorithm D (TAOCP
// vol. 2, 4.3.1), operating on base-256 "digits" (bytes). Both aMag and
// bMag must already be trimmed, with len(aMag) >= len(bMag) and bMag
// nonzero.
func divideMagnitude(aMag, bMag []byte) (qMag, rMag []byte) {
	n := len(bMag)

	if n == 1 {
		divisor := uint32(bMag[0])
		q := make([]byte, len(aMag))
		var rem uint32
		for i := len(aMag) - 1; i >= 0; i-- {
			cur := rem<<8 | uint32(aMag[i])
			q[i] = byte(cur / divisor)
			rem = cur % divisor
		}
		return q, []byte{byte(rem)}
	}

	// Normalize: left-shift both operands so bMag's top digit has its
	// high bit set, which bounds the quotient-digit estimate's error to
	// at most 2 corrections.
	var sh uint
	top := bMag[n-1]
	for top < 128 {
		top <<= 1
		sh++
	}

	aLen := len(aMag)
	un := shiftLeftBytes(aMag, sh, aLen+1)
	vn := shiftLeftBytes(bMag, sh, n)

	m := aLen - n
	q := make([]byte, m+1)

	for j := m; j >= 0; j-- {
		hi := int64(un[j+n])<<8 | int64(un[j+n-1])
		qhat := hi / int64(vn[n-1])
		rhat := hi % int64(vn[n-1])

		for qhat >= 256 || qhat*int64(vn[n-2]) > (rhat<<8)+int64(un[j+n-2]) {
			qhat--
			rhat += int64(vn[n-1])
			if rhat >= 256 {
				break
			}
		}

		var k int64
		for i := 0; i < n; i++ {
			p := qhat * int64(vn[i])
			t := int64(un[i+j]) - k - (p & 0xFF)
			un[i+j] = byte(t)
			k = (p >> 8) - (t >> 8)
		}
		t := int64(un[j+n]) - k
		un[j+n] = byte(t)
		q[j] = byte(qhat)

		if t < 0 {
			// qhat was one too large; add b back once.
			q[j]--
			var carry int64
			for i := 0; i < n; i++ {
				t2 := int64(un[i+j]) + int64(vn[i]) + carry
				un[i+j] = byte(t2)
				carry = t2 >> 8
			}
			un[j+n] = byte(int64(un[j+n]) + carry)
		}
	}

	rMag = make([]byte, n)
	if sh == 0 {
		copy(rMag, un[:n])
	} else {
		for i := 0; i < n; i++ {
			rMag[i] = (un[i] >> sh) | (un[i+1] << (8 - sh))
		}
	}

	return q, rMag
}

// shiftLeftBytes returns a new outLen-byte slice holding mag shifted
// left by sh bits (0 <= sh < 8), little-endian.
func shiftLeftBytes(mag []byte, sh uint, outLen int) []byte {
	out := make([]byte, outLen)
	if sh == 0 {
		copy(out, mag)
		return out
	}
	var carry byte
	for i := 0; i < len(mag); i++ {
		if i < outLen {
			out[i] = (mag[i] << sh) | carry
		}
		carry = mag[i] >> (8 - sh)
	}
	if len(mag) < outLen {
		out[len(mag)] = carry
	}
	return out
}
