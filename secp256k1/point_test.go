package secp256k1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"bitcoin-math/bigint"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	require.True(t, IsOnCurve(G))
}

func TestDoubleGIsOnCurve(t *testing.T) {
	r := Double(G)
	require.True(t, IsOnCurve(r))
	require.False(t, r.IsInfinity())
}

func TestAddGPlusGEqualsDoubleG(t *testing.T) {
	viaAdd := Add(G, G)
	viaDouble := Double(G)
	require.Equal(t, 0, bigint.Cmp(viaAdd.X, viaDouble.X))
	require.Equal(t, 0, bigint.Cmp(viaAdd.Y, viaDouble.Y))
}

func TestAddIdentity(t *testing.T) {
	inf := Infinity()
	r := Add(G, inf)
	require.Equal(t, 0, bigint.Cmp(r.X, G.X))
	require.Equal(t, 0, bigint.Cmp(r.Y, G.Y))
}

func TestAddInverseIsInfinity(t *testing.T) {
	negG := Point{X: G.X.Clone(), Y: fieldSub(bigint.New().SetInt32(0), G.Y)}
	r := Add(G, negG)
	require.True(t, r.IsInfinity())
}

func TestScalarMultiplyByOneIsIdentity(t *testing.T) {
	one := bigint.New().SetInt32(1)
	r := ScalarMultiply(one, G)
	require.Equal(t, 0, bigint.Cmp(r.X, G.X))
	require.Equal(t, 0, bigint.Cmp(r.Y, G.Y))
}

func TestScalarMultiplyByTwoMatchesDouble(t *testing.T) {
	two := bigint.New().SetInt32(2)
	r := ScalarMultiply(two, G)
	d := Double(G)
	require.Equal(t, 0, bigint.Cmp(r.X, d.X))
	require.Equal(t, 0, bigint.Cmp(r.Y, d.Y))
}

func TestScalarMultiplyByOrderIsInfinity(t *testing.T) {
	r := ScalarMultiply(N, G)
	require.True(t, r.IsInfinity())
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	r := Double(G)
	compressed := r.Compress()
	require.Len(t, compressed, 33)

	got, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, 0, bigint.Cmp(got.X, r.X))
	require.Equal(t, 0, bigint.Cmp(got.Y, r.Y))
}

func TestDecompressGeneratorKnownBytes(t *testing.T) {
	compressed, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)

	got, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, 0, bigint.Cmp(got.X, G.X))
	require.Equal(t, 0, bigint.Cmp(got.Y, G.Y))
}

func TestDecompressRejectsBadPrefix(t *testing.T) {
	compressed, _ := hex.DecodeString("0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	_, err := Decompress(compressed)
	require.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestDecompressRejectsWrongLength(t *testing.T) {
	_, err := Decompress([]byte{0x02, 0x01})
	require.ErrorIs(t, err, ErrInvalidCompressedLength)
}
