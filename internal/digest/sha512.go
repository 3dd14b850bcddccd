package digest

import "math/bits"

const (
	sha512BlockSize  = 128
	sha512DigestSize = 64
)

var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

var sha512Init = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// SHA512 is a streaming SHA-512 state.
type SHA512 struct {
	h      [8]uint64
	buf    [sha512BlockSize]byte
	nbuf   int
	length uint64 // bytes written; only the low 64 bits of the bit count are encoded
}

// New512 returns a freshly initialized SHA-512 state.
func New512() *SHA512 {
	s := &SHA512{}
	s.Reset()
	return s
}

// Reset restores the state to its initial, empty-message value.
func (s *SHA512) Reset() {
	s.h = sha512Init
	s.nbuf = 0
	s.length = 0
}

// Size returns the digest size in bytes.
func (s *SHA512) Size() int { return sha512DigestSize }

// BlockSize returns the block size in bytes.
func (s *SHA512) BlockSize() int { return sha512BlockSize }

// Write absorbs p into the running hash state.
func (s *SHA512) Write(p []byte) (int, error) {
	total := len(p)
	s.length += uint64(total)

	if s.nbuf > 0 {
		n := copy(s.buf[s.nbuf:], p)
		s.nbuf += n
		p = p[n:]
		if s.nbuf == sha512BlockSize {
			sha512Block(&s.h, s.buf[:])
			s.nbuf = 0
		}
	}

	for len(p) >= sha512BlockSize {
		sha512Block(&s.h, p[:sha512BlockSize])
		p = p[sha512BlockSize:]
	}

	if len(p) > 0 {
		s.nbuf = copy(s.buf[:], p)
	}
	return total, nil
}

// Sum appends the current digest to b without mutating the receiver.
func (s *SHA512) Sum(b []byte) []byte {
	clone := *s
	digest := clone.finalize()
	return append(b, digest[:]...)
}

// finalize pads with the 128-byte-block, 16-byte-length-field shape of
// FIPS 180-4, but — matching this toolkit's source behavior — only the
// low 64 bits of the length are written; the high 64 bits are implicitly
// zero, which is exact for any message under 2^64 bytes.
func (s *SHA512) finalize() [sha512DigestSize]byte {
	bitLen := s.length * 8

	var pad [sha512BlockSize]byte
	pad[0] = 0x80
	_, _ = s.Write(pad[:padLen(s.length, sha512BlockSize, 16)])

	var lenBytes [16]byte
	putUint64BE(lenBytes[8:], bitLen)
	_, _ = s.Write(lenBytes[:])

	var out [sha512DigestSize]byte
	for i, v := range s.h {
		putUint64BE(out[i*8:], v)
	}
	return out
}

func getUint64BE(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func sha512Block(h *[8]uint64, p []byte) {
	var w [16]uint64

	for len(p) >= sha512BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = getUint64BE(p[i*8:])
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for i := 0; i < 80; i++ {
			if i >= 16 {
				j := i % 16
				w15 := w[(i-15)%16]
				w2 := w[(i-2)%16]
				s0 := bits.RotateLeft64(w15, -1) ^ bits.RotateLeft64(w15, -8) ^ (w15 >> 7)
				s1 := bits.RotateLeft64(w2, -19) ^ bits.RotateLeft64(w2, -61) ^ (w2 >> 6)
				w[j] = w[j] + s0 + w[(i-7)%16] + s1
			}

			s1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
			ch := (e & f) ^ (^e & g)
			t1 := hh + s1 + ch + sha512K[i] + w[i%16]
			s0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := s0 + maj

			hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh

		p = p[sha512BlockSize:]
	}
}

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) [sha512DigestSize]byte {
	s := New512()
	_, _ = s.Write(data)
	return s.finalize()
}
