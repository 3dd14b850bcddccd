// Package hmac512 implements the keyed-hash message authentication code
// from FIPS 198-1, specialized to SHA-512 as the inner hash. It is the
// single composition point between the hash primitives in internal/digest
// and everything above it: BIP-32 key derivation and the BIP-39 seed
// both run entirely on top of this package.
package hmac512

import "bitcoin-math/internal/digest"

const (
	padSize  = 128
	ipadByte = 0x36
	opadByte = 0x5c
)

// HMAC512 holds two live SHA-512 states (inner, outer) plus a snapshot of
// each taken immediately after the key pad is absorbed. Reinit restores
// from those snapshots, which lets repeated-key operations (PBKDF2-style
// iteration) skip re-processing the key on every round.
type HMAC512 struct {
	inner, outer         digest.SHA512
	innerSnap, outerSnap digest.SHA512
}

// New returns an HMAC-SHA-512 instance keyed with key, ready to absorb a
// message via Write.
func New(key []byte) *HMAC512 {
	h := &HMAC512{}
	h.Init(key)
	return h
}

// Init (re)keys h. Keys longer than the 128-byte block size are first
// reduced to a 64-byte digest, per the standard HMAC key-preprocessing
// rule.
func (h *HMAC512) Init(key []byte) {
	if len(key) > padSize {
		sum := digest.Sum512(key)
		key = sum[:]
	}

	var ipad, opad [padSize]byte
	copy(ipad[:], key)
	copy(opad[:], key)
	for i := 0; i < padSize; i++ {
		ipad[i] ^= ipadByte
		opad[i] ^= opadByte
	}

	h.inner.Reset()
	_, _ = h.inner.Write(ipad[:])
	h.innerSnap = h.inner

	h.outer.Reset()
	_, _ = h.outer.Write(opad[:])
	h.outerSnap = h.outer
}

// Reinit restarts both inner and outer contexts from their post-key-pad
// snapshots, without touching the key itself. Used to repeat an HMAC
// over many messages under the same key (e.g. PBKDF2 rounds) without
// re-deriving ipad/opad each time.
func (h *HMAC512) Reinit() {
	h.inner = h.innerSnap
	h.outer = h.outerSnap
}

// Write absorbs p into the inner context.
func (h *HMAC512) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// Sum finalizes the inner context, feeds its digest into a copy of the
// outer context, finalizes that, and returns the first macSize bytes
// (macSize <= 0 or > 64 yields the full 64-byte MAC). Sum does not
// mutate h, so Write/Sum can be interleaved with further writes.
func (h *HMAC512) Sum(macSize int) []byte {
	inner := h.inner
	innerDigest := inner.Sum(nil)

	outer := h.outer
	_, _ = outer.Write(innerDigest)
	full := outer.Sum(nil)

	if macSize <= 0 || macSize > len(full) {
		macSize = len(full)
	}
	return full[:macSize]
}

// Sum512 computes the one-shot 64-byte HMAC-SHA-512 of msg under key.
func Sum512(key, msg []byte) [64]byte {
	h := New(key)
	_, _ = h.Write(msg)
	var out [64]byte
	copy(out[:], h.Sum(64))
	return out
}
