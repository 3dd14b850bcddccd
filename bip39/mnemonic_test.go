package bip39

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMnemonicAllZeroEntropy(t *testing.T) {
	entropy := make([]byte, 32)
	m, err := NewMnemonic(entropy)
	require.NoError(t, err)

	words := strings.Fields(m)
	require.Len(t, words, 24)
	for _, w := range words[:23] {
		require.Equal(t, "abandon", w)
	}
	require.Equal(t, "art", words[23])
}

func TestNewMnemonicAll0x80Entropy(t *testing.T) {
	entropy := make([]byte, 32)
	for i := range entropy {
		entropy[i] = 0x80
	}
	m, err := NewMnemonic(entropy)
	require.NoError(t, err)
	require.Equal(t,
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd "+
			"amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic bless",
		m)
}

func TestNewMnemonicRejectsWrongLength(t *testing.T) {
	_, err := NewMnemonic(make([]byte, 16))
	require.ErrorIs(t, err, ErrInvalidEntropyLength)
}

func TestValidateMnemonicRoundTrip(t *testing.T) {
	entropy := make([]byte, 32)
	for i := range entropy {
		entropy[i] = byte(i)
	}
	m, err := NewMnemonic(entropy)
	require.NoError(t, err)
	require.NoError(t, ValidateMnemonic(m))
}

func TestValidateMnemonicRejectsBadChecksum(t *testing.T) {
	words := make([]string, 24)
	for i := range words {
		words[i] = "abandon"
	}
	words[23] = "about" // wrong checksum word
	err := ValidateMnemonic(strings.Join(words, " "))
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestValidateMnemonicRejectsUnknownWord(t *testing.T) {
	words := make([]string, 24)
	for i := range words {
		words[i] = "abandon"
	}
	words[5] = "notarealbip39word"
	err := ValidateMnemonic(strings.Join(words, " "))
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestValidateMnemonicRejectsWrongWordCount(t *testing.T) {
	err := ValidateMnemonic("abandon abandon abandon")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

// Official BIP-39 test vector: all-zero entropy, passphrase "TREZOR".
func TestSeedFromMnemonicKnownVector(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon art"

	seed := SeedFromMnemonic(mnemonic, "TREZOR")
	want := "bda85446c68413707090a52022edd26a1c9462295029f2e60cd7c4f2bbd3097" +
		"170af7a4d73245cafa9c3cca8d561a7c3de6f5d4a10be8ed2a5e608d68f92fcc8"
	require.Equal(t, want, hex.EncodeToString(seed))
}

func TestNewEntropyLength(t *testing.T) {
	e, err := NewEntropy()
	require.NoError(t, err)
	require.Len(t, e, 32)
}
