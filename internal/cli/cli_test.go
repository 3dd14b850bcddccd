package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	New(strings.NewReader(script), &out).Run()
	return out.String()
}

func TestMasterKeysFromFixedEntropy(t *testing.T) {
	entropy := strings.Repeat("00", 32)
	script := "1\n" + entropy + "\n0\n"
	out := runCLI(t, script)

	require.Contains(t, out, "mnemonic:")
	require.Contains(t, out, "abandon abandon abandon")
	require.Contains(t, out, "address:")
}

func TestMasterKeysRejectsBadEntropy(t *testing.T) {
	out := runCLI(t, "1\nnothex\n0\n")
	require.Contains(t, out, "invalid entropy")
}

func TestBaseConverterRoundTrip(t *testing.T) {
	out := runCLI(t, "3\nff\n16\n0\n")
	require.Contains(t, out, "decimal:")
	require.Contains(t, out, "255")
}

func TestPointDoublingOfGenerator(t *testing.T) {
	gCompressed := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	out := runCLI(t, "4\n3\n"+gCompressed+"\n0\n")
	require.Contains(t, out, "compressed:")
}

func TestUnrecognizedTopLevelOption(t *testing.T) {
	out := runCLI(t, "9\n0\n")
	require.Contains(t, out, "unrecognized option")
}

func TestChildKeyDerivationFlow(t *testing.T) {
	priv := strings.Repeat("11", 32)
	chain := strings.Repeat("22", 32)
	out := runCLI(t, "2\n1\n"+priv+"\n"+chain+"\n0\n0\n")
	require.Contains(t, out, "private key:")
	require.Contains(t, out, "address:")
}
