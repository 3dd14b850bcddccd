package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256Vectors(t *testing.T) {
	cases := []struct{ msg, want string }{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		got := Sum256([]byte(c.msg))
		require.Equal(t, c.want, hex.EncodeToString(got[:]))
	}
}

func TestSHA256Streaming(t *testing.T) {
	s := New256()
	_, _ = s.Write([]byte("ab"))
	_, _ = s.Write([]byte("c"))
	got := s.Sum(nil)

	want := Sum256([]byte("abc"))
	require.Equal(t, want[:], got)
}

func TestSHA512Vectors(t *testing.T) {
	got := Sum512([]byte("abc"))
	want := "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39" +
		"a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestSHA512Empty(t *testing.T) {
	got := Sum512(nil)
	want := "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
		"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestRIPEMD160Vectors(t *testing.T) {
	cases := []struct{ msg, want string }{
		{"", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{"abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	}
	for _, c := range cases {
		got := Sum160([]byte(c.msg))
		require.Equal(t, c.want, hex.EncodeToString(got[:]))
	}
}

func TestRIPEMD160Streaming(t *testing.T) {
	s := New160()
	_, _ = s.Write([]byte("a"))
	_, _ = s.Write([]byte("bc"))
	got := s.Sum(nil)

	want := Sum160([]byte("abc"))
	require.Equal(t, want[:], got)
}

func TestDigestSizesAndBlockSizes(t *testing.T) {
	require.Equal(t, 32, New256().Size())
	require.Equal(t, 64, New256().BlockSize())
	require.Equal(t, 64, New512().Size())
	require.Equal(t, 128, New512().BlockSize())
	require.Equal(t, 20, New160().Size())
	require.Equal(t, 64, New160().BlockSize())
}
