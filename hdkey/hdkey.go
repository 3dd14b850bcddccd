// Package hdkey implements BIP-32 hierarchical deterministic key
// derivation on top of secp256k1 and internal/hmac512: master key
// generation from a seed, and normal, hardened, and public-only child
// derivation.
package hdkey

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"bitcoin-math/bigint"
	"bitcoin-math/internal/hmac512"
	"bitcoin-math/secp256k1"
)

// HardenedOffset is the first index in the hardened range; indices at
// or above it derive using the parent's private key instead of its
// public key.
const HardenedOffset = 0x80000000

var (
	ErrPrivateKeyRequired       = errors.New("hdkey: private key required for this derivation")
	ErrHardenedPublicDerivation = errors.New("hdkey: cannot derive a hardened child from a public key")
)

// Key is one node of an HD tree. Private is nil for public-only
// (neutered) keys; Public and ChainCode are always populated.
type Key struct {
	Private   *bigint.Int
	Public    secp256k1.Point
	ChainCode [32]byte
}

// NewMasterKey derives the master private key and chain code from a
// BIP-32 seed: mac = HMAC-SHA-512(key="Bitcoin seed", msg=seed); the
// first 32 bytes are the private key, the last 32 are the chain code.
func NewMasterKey(seed []byte) *Key {
	mac := hmac512.Sum512([]byte("Bitcoin seed"), seed)

	priv := bigint.New().SetBytes(mac[:32])
	var chainCode [32]byte
	copy(chainCode[:], mac[32:])

	pub := secp256k1.ScalarMultiply(priv, secp256k1.G)
	return &Key{Private: priv, Public: pub, ChainCode: chainCode}
}

// GenerateRandomMaster draws a fresh 64-byte seed from crypto/rand and
// derives the master key from it, returning both. The seed is returned
// so it can be preserved independently of the mnemonic flow (the
// source offers this as a separate menu path from the BIP-39 flow).
func GenerateRandomMaster() (*Key, []byte, error) {
	seed := make([]byte, 64)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, err
	}
	return NewMasterKey(seed), seed, nil
}

func indexBytes(index uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], index)
	return b[:]
}

// deriveMac runs the shared HMAC-SHA-512(key=chainCode, msg=data) step
// common to every child derivation flavor, returning (I_L as a scalar,
// I_R as the child chain code).
func deriveMac(chainCode [32]byte, data []byte) (il *bigint.Int, childChain [32]byte) {
	mac := hmac512.Sum512(chainCode[:], data)
	il = bigint.New().SetBytes(mac[:32])
	copy(childChain[:], mac[32:])
	return il, childChain
}

// DeriveChild derives child index from k. Indices below HardenedOffset
// use the parent public key (and work from a public-only parent);
// indices at or above it are hardened and require the parent private
// key.
func (k *Key) DeriveChild(index uint32) (*Key, error) {
	if index >= HardenedOffset {
		return k.deriveHardenedChild(index)
	}
	return k.deriveNormalChild(index)
}

func (k *Key) deriveNormalChild(index uint32) (*Key, error) {
	data := append(k.Public.Compress(), indexBytes(index)...)
	il, childChain := deriveMac(k.ChainCode, data)

	if k.Private == nil {
		ilG := secp256k1.ScalarMultiply(il, secp256k1.G)
		childPub := secp256k1.Add(k.Public, ilG)
		return &Key{Public: childPub, ChainCode: childChain}, nil
	}

	childPriv := combinePrivate(k.Private, il)
	childPub := secp256k1.ScalarMultiply(childPriv, secp256k1.G)
	return &Key{Private: childPriv, Public: childPub, ChainCode: childChain}, nil
}

func (k *Key) deriveHardenedChild(index uint32) (*Key, error) {
	if k.Private == nil {
		return nil, ErrPrivateKeyRequired
	}

	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, k.Private.Bytes(32)...)
	data = append(data, indexBytes(index)...)

	il, childChain := deriveMac(k.ChainCode, data)
	childPriv := combinePrivate(k.Private, il)
	childPub := secp256k1.ScalarMultiply(childPriv, secp256k1.G)
	return &Key{Private: childPriv, Public: childPub, ChainCode: childChain}, nil
}

// DeriveChildPublic derives a non-hardened child using only k's public
// key and chain code, never touching (or requiring) a private key —
// the "neutered" derivation path used by watch-only wallets.
func (k *Key) DeriveChildPublic(index uint32) (*Key, error) {
	if index >= HardenedOffset {
		return nil, ErrHardenedPublicDerivation
	}
	neutered := &Key{Public: k.Public, ChainCode: k.ChainCode}
	return neutered.deriveNormalChild(index)
}

func combinePrivate(parent, il *bigint.Int) *bigint.Int {
	sum := bigint.New()
	bigint.Add(sum, parent, il)
	child := bigint.New()
	_ = bigint.Mod(child, sum, secp256k1.N)
	return child
}
