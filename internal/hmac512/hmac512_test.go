package hmac512

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"bitcoin-math/internal/digest"
)

// RFC 4231 test case 1.
func TestSum512RFC4231Case1(t *testing.T) {
	key, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	msg := []byte("Hi There")

	want := "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
		"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854"

	got := Sum512(key, msg)
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestLongKeyIsHashed(t *testing.T) {
	longKey := make([]byte, 200)
	for i := range longKey {
		longKey[i] = byte(i)
	}
	msg := []byte("message")

	a := Sum512(longKey, msg)
	hashedKey := digest.Sum512(longKey)
	b := Sum512(hashedKey[:], msg)
	require.Equal(t, a, b)
}

func TestReinitSkipsKeyReprocessing(t *testing.T) {
	key := []byte("chain code")

	h := New(key)
	_, _ = h.Write([]byte("round one"))
	first := h.Sum(64)

	h.Reinit()
	_, _ = h.Write([]byte("round one"))
	second := h.Sum(64)

	require.Equal(t, first, second)
}

func TestTruncatedMAC(t *testing.T) {
	h := New([]byte("k"))
	_, _ = h.Write([]byte("v"))
	full := h.Sum(64)
	half := h.Sum(32)
	require.Equal(t, full[:32], half)
}

func TestWriteAndSumCanInterleave(t *testing.T) {
	key := []byte("k")

	h1 := New(key)
	_, _ = h1.Write([]byte("ab"))
	_, _ = h1.Write([]byte("cd"))
	out1 := h1.Sum(64)

	out2 := Sum512(key, []byte("abcd"))
	require.Equal(t, out2[:], out1)
}
