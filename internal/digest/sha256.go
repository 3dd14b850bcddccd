// Package digest implements the hash primitives this module is built
// on — SHA-256, SHA-512, and RIPEMD-160 — entirely from FIPS 180-4 / the
// original Merkle-Damgard specifications, with no external hashing
// library in the import graph. Each type satisfies the standard
// hash.Hash interface so it composes with the rest of the Go ecosystem
// the same way golang.org/x/crypto's hash packages do, even though the
// compression functions underneath are hand-rolled.
package digest

import "math/bits"

const (
	sha256BlockSize  = 64
	sha256DigestSize = 32
)

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var sha256Init = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// SHA256 is a streaming SHA-256 state. The zero value is not ready to
// use; call Reset or New256 first.
type SHA256 struct {
	h      [8]uint32
	buf    [sha256BlockSize]byte
	nbuf   int
	length uint64
}

// New256 returns a freshly initialized SHA-256 state.
func New256() *SHA256 {
	s := &SHA256{}
	s.Reset()
	return s
}

// Reset restores the state to its initial, empty-message value.
func (s *SHA256) Reset() {
	s.h = sha256Init
	s.nbuf = 0
	s.length = 0
}

// Size returns the digest size in bytes.
func (s *SHA256) Size() int { return sha256DigestSize }

// BlockSize returns the block size in bytes.
func (s *SHA256) BlockSize() int { return sha256BlockSize }

// Write absorbs p into the running hash state.
func (s *SHA256) Write(p []byte) (int, error) {
	total := len(p)
	s.length += uint64(total)

	if s.nbuf > 0 {
		n := copy(s.buf[s.nbuf:], p)
		s.nbuf += n
		p = p[n:]
		if s.nbuf == sha256BlockSize {
			sha256Block(&s.h, s.buf[:])
			s.nbuf = 0
		}
	}

	for len(p) >= sha256BlockSize {
		sha256Block(&s.h, p[:sha256BlockSize])
		p = p[sha256BlockSize:]
	}

	if len(p) > 0 {
		s.nbuf = copy(s.buf[:], p)
	}
	return total, nil
}

// Sum appends the current digest to b and returns the resulting slice,
// without mutating the receiver's state.
func (s *SHA256) Sum(b []byte) []byte {
	clone := *s
	digest := clone.finalize()
	return append(b, digest[:]...)
}

func (s *SHA256) finalize() [sha256DigestSize]byte {
	bitLen := s.length * 8

	var pad [sha256BlockSize]byte
	pad[0] = 0x80
	_, _ = s.Write(pad[:padLen(s.length, sha256BlockSize, 8)])

	var lenBytes [8]byte
	putUint64BE(lenBytes[:], bitLen)
	_, _ = s.Write(lenBytes[:])

	var out [sha256DigestSize]byte
	for i, v := range s.h {
		putUint32BE(out[i*4:], v)
	}
	return out
}

// padLen returns how many 0x80-then-zero pad bytes (including the 0x80)
// are needed so that, after appending an lenFieldSize-byte length, the
// total message length becomes a multiple of blockSize.
func padLen(curLen uint64, blockSize int, lenFieldSize int) int {
	mod := int(curLen % uint64(blockSize))
	target := blockSize - lenFieldSize
	if mod < target {
		return target - mod
	}
	return blockSize - mod + target
}

func putUint32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func putUint64BE(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

func getUint32BE(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// sha256Block runs the FIPS 180-4 compression function over one or more
// 64-byte blocks, updating h in place. The message schedule is computed
//16 words at a time on a rolling window, rather than fully expanded to
// 64 words up front.
func sha256Block(h *[8]uint32, p []byte) {
	var w [16]uint32

	for len(p) >= sha256BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = getUint32BE(p[i*4:])
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for i := 0; i < 64; i++ {
			if i >= 16 {
				j := i % 16
				w15 := w[(i-15)%16]
				w2 := w[(i-2)%16]
				s0 := bits.RotateLeft32(w15, -7) ^ bits.RotateLeft32(w15, -18) ^ (w15 >> 3)
				s1 := bits.RotateLeft32(w2, -17) ^ bits.RotateLeft32(w2, -19) ^ (w2 >> 10)
				w[j] = w[j] + s0 + w[(i-7)%16] + s1
			}

			s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + s1 + ch + sha256K[i] + w[i%16]
			s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
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

		p = p[sha256BlockSize:]
	}
}

// Sum256 returns the SHA-256 digest of data as a fixed-size array.
func Sum256(data []byte) [sha256DigestSize]byte {
	s := New256()
	_, _ = s.Write(data)
	return s.finalize()
}
