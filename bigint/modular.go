package bigint

// ModPow sets d = base^exp mod m, using right-to-left square-and-multiply.
// exp is treated as non-negative regardless of sign.
func ModPow(d, base, exp, m *Int) error {
	if m.IsZero() {
		d.SetInt32(0)
		return ErrDivisionByZero
	}

	result := New().SetInt32(1)
	b := New()
	if err := Mod(b, base, m); err != nil {
		return err
	}

	bits := 8 * exp.Size()
	tmp := New()
	for i := 0; i < bits; i++ {
		if exp.BitSet(uint(i)) {
			Multiply(tmp, result, b)
			if err := Mod(result, tmp, m); err != nil {
				return err
			}
		}
		Multiply(tmp, b, b)
		if err := Mod(b, tmp, m); err != nil {
			return err
		}
	}

	d.SetInt(result)
	return nil
}

// ModInverse sets c to t such that (t*a) mod b == 1, using the extended
// Euclidean algorithm. If gcd(a, b) != 1, no inverse exists and c is set
// to zero (matching the original source's observable behavior — the
// caller is responsible for checking, since a true "no inverse" case and
// "b divides a evenly" both present as c == 0).
func ModInverse(c, a, b *Int) error {
	if b.IsZero() {
		c.SetInt32(0)
		return ErrDivisionByZero
	}

	oldR, r := New().SetInt(a), New().SetInt(b)
	oldT, t := New().SetInt32(1), New().SetInt32(0)

	q, tmp, tmp2 := New(), New(), New()
	for !r.IsZero() {
		if err := DivMod(q, tmp, oldR, r); err != nil {
			c.SetInt32(0)
			return err
		}
		oldR, r = r, tmp.Clone()

		Multiply(tmp2, q, t)
		Subtract(tmp2, oldT, tmp2)
		oldT, t = t, tmp2.Clone()
	}

	// gcd is in oldR; must be 1 for an inverse to exist.
	if Cmp(oldR, New().SetInt32(1)) != 0 {
		c.SetInt32(0)
		return nil
	}

	result := oldT
	if result.sign == Negative {
		Add(result, result, b)
	}
	if err := Mod(result, result, b); err != nil {
		c.SetInt32(0)
		return err
	}
	c.SetInt(result)
	return nil
}
