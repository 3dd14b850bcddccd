package digest

import "math/bits"

const (
	ripemd160BlockSize  = 64
	ripemd160DigestSize = 20
)

var ripemd160Init = [5]uint32{
	0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
}

// rIdxLeft/rIdxRight select which of the 16 message words feeds each of
// the 80 steps in the left and right parallel lines.
var rIdxLeft = [80]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var rIdxRight = [80]byte{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var rotLeft = [80]byte{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var rotRight = [80]byte{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

var kLeft = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var kRight = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

func ripemdF(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y &^ z)
	default:
		return x ^ (y | ^z)
	}
}

func ripemdFRight(round int, x, y, z uint32) uint32 {
	return ripemdF(4-round, x, y, z)
}

// RIPEMD160 is a streaming RIPEMD-160 state, the dual-line
// Merkle-Damgard construction used (after SHA-256) to produce the
// 20-byte hash behind P2PKH addresses.
type RIPEMD160 struct {
	h      [5]uint32
	buf    [ripemd160BlockSize]byte
	nbuf   int
	length uint64
}

// New160 returns a freshly initialized RIPEMD-160 state.
func New160() *RIPEMD160 {
	s := &RIPEMD160{}
	s.Reset()
	return s
}

// Reset restores the state to its initial, empty-message value.
func (s *RIPEMD160) Reset() {
	s.h = ripemd160Init
	s.nbuf = 0
	s.length = 0
}

// Size returns the digest size in bytes.
func (s *RIPEMD160) Size() int { return ripemd160DigestSize }

// BlockSize returns the block size in bytes.
func (s *RIPEMD160) BlockSize() int { return ripemd160BlockSize }

// Write absorbs p into the running hash state.
func (s *RIPEMD160) Write(p []byte) (int, error) {
	total := len(p)
	s.length += uint64(total)

	if s.nbuf > 0 {
		n := copy(s.buf[s.nbuf:], p)
		s.nbuf += n
		p = p[n:]
		if s.nbuf == ripemd160BlockSize {
			ripemd160Block(&s.h, s.buf[:])
			s.nbuf = 0
		}
	}

	for len(p) >= ripemd160BlockSize {
		ripemd160Block(&s.h, p[:ripemd160BlockSize])
		p = p[ripemd160BlockSize:]
	}

	if len(p) > 0 {
		s.nbuf = copy(s.buf[:], p)
	}
	return total, nil
}

// Sum appends the current digest to b without mutating the receiver.
func (s *RIPEMD160) Sum(b []byte) []byte {
	clone := *s
	digest := clone.finalize()
	return append(b, digest[:]...)
}

// finalize pads with RIPEMD-160's little-endian length field, unlike
// the SHA family's big-endian convention.
func (s *RIPEMD160) finalize() [ripemd160DigestSize]byte {
	bitLen := s.length * 8

	var pad [ripemd160BlockSize]byte
	pad[0] = 0x80
	_, _ = s.Write(pad[:padLen(s.length, ripemd160BlockSize, 8)])

	var lenBytes [8]byte
	putUint64LE(lenBytes[:], bitLen)
	_, _ = s.Write(lenBytes[:])

	var out [ripemd160DigestSize]byte
	for i, v := range s.h {
		putUint32LE(out[i*4:], v)
	}
	return out
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}

func getUint32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func ripemd160Block(h *[5]uint32, p []byte) {
	var x [16]uint32

	for len(p) >= ripemd160BlockSize {
		for i := 0; i < 16; i++ {
			x[i] = getUint32LE(p[i*4:])
		}

		al, bl, cl, dl, el := h[0], h[1], h[2], h[3], h[4]
		ar, br, cr, dr, er := h[0], h[1], h[2], h[3], h[4]

		for j := 0; j < 80; j++ {
			round := j / 16

			t := bits.RotateLeft32(al+ripemdF(round, bl, cl, dl)+x[rIdxLeft[j]]+kLeft[round], int(rotLeft[j])) + el
			al, el, dl, cl, bl = el, dl, bits.RotateLeft32(cl, 10), bl, t

			t = bits.RotateLeft32(ar+ripemdFRight(round, br, cr, dr)+x[rIdxRight[j]]+kRight[round], int(rotRight[j])) + er
			ar, er, dr, cr, br = er, dr, bits.RotateLeft32(cr, 10), br, t
		}

		t := h[1] + cl + dr
		h[1] = h[2] + dl + er
		h[2] = h[3] + el + ar
		h[3] = h[4] + al + br
		h[4] = h[0] + bl + cr
		h[0] = t

		p = p[ripemd160BlockSize:]
	}
}

// Sum160 returns the RIPEMD-160 digest of data.
func Sum160(data []byte) [ripemd160DigestSize]byte {
	s := New160()
	_, _ = s.Write(data)
	return s.finalize()
}
