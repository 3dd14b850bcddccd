package bigint

// Bytes returns the non-negative magnitude of z as big-endian bytes,
// left-padded with zeros to exactly size bytes. This is the single
// encapsulated crossing point from the internal little-endian
// representation to the big-endian wire format used by hashes, HMAC,
// curve coordinates, and BIP-32 fields (spec design note: avoid
// sprinkling ReverseDigits calls through the rest of the module).
func (z *Int) Bytes(size int) []byte {
	out := make([]byte, size)
	n := len(z.mag)
	for i := 0; i < size && i < n; i++ {
		out[size-1-i] = z.mag[i]
	}
	return out
}

// SetBytes sets z's non-negative magnitude from big-endian bytes src.
func (z *Int) SetBytes(src []byte) *Int {
	n := len(src)
	if n == 0 {
		z.mag = []byte{0}
		z.sign = Positive
		return z
	}
	mag := make([]byte, n)
	for i := 0; i < n; i++ {
		mag[n-1-i] = src[i]
	}
	z.mag = mag
	z.sign = Positive
	z.Trim()
	return z
}
