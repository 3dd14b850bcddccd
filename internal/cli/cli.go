// Package cli implements the interactive terminal menu: master keys,
// child key derivation, a base converter, and the standalone curve/
// address functions. It is a thin shell over the bigint, secp256k1,
// bip39, hdkey, and address packages — no cryptographic logic lives
// here, only prompting and formatting.
package cli

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bitcoin-math/address"
	"bitcoin-math/bigint"
	"bitcoin-math/bip39"
	"bitcoin-math/hdkey"
	"bitcoin-math/secp256k1"
)

// CLI drives the menu loop over in/out.
type CLI struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a CLI reading commands from in and writing prompts and
// results to out.
func New(in io.Reader, out io.Writer) *CLI {
	return &CLI{in: bufio.NewScanner(in), out: out}
}

func (c *CLI) readLine() string {
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// Run drives the top-level menu until the user exits or input ends.
func (c *CLI) Run() {
	for {
		fmt.Fprintln(c.out, "1) Master keys")
		fmt.Fprintln(c.out, "2) Child keys")
		fmt.Fprintln(c.out, "3) Base converter")
		fmt.Fprintln(c.out, "4) Functions")
		fmt.Fprintln(c.out, "0) Exit")
		fmt.Fprint(c.out, "> ")

		switch c.readLine() {
		case "1":
			c.menuMasterKeys()
		case "2":
			c.menuChildKeys()
		case "3":
			c.menuBaseConverter()
		case "4":
			c.menuFunctions()
		case "0", "":
			return
		default:
			fmt.Fprintln(c.out, "unrecognized option")
		}
	}
}

func (c *CLI) menuMasterKeys() {
	fmt.Fprintln(c.out, "Enter 64 hex characters of entropy, or press Enter for random:")
	line := c.readLine()

	var entropy []byte
	if line == "" {
		e, err := bip39.NewEntropy()
		if err != nil {
			fmt.Fprintln(c.out, "error:", err)
			return
		}
		entropy = e
	} else {
		e, err := hex.DecodeString(line)
		if err != nil || len(e) != 32 {
			fmt.Fprintln(c.out, "invalid entropy, expected 32 bytes of hex")
			return
		}
		entropy = e
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	fmt.Fprintln(c.out, "mnemonic:", mnemonic)

	seed := bip39.SeedFromMnemonic(mnemonic, "")
	c.printKey(hdkey.NewMasterKey(seed))
}

func (c *CLI) printKey(k *hdkey.Key) {
	fmt.Fprintln(c.out, "chain code:", hex.EncodeToString(k.ChainCode[:]))
	if k.Private != nil {
		fmt.Fprintln(c.out, "private key:", hex.EncodeToString(k.Private.Bytes(32)))
	}

	compressed := k.Public.Compress()
	fmt.Fprintln(c.out, "public key:", hex.EncodeToString(compressed))

	addr, err := address.FromCompressedPubKey(compressed, address.MainnetVersion)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	fmt.Fprintln(c.out, "address:", addr)
}

func (c *CLI) menuChildKeys() {
	fmt.Fprintln(c.out, "1) Normal child  2) Hardened child  3) Public-only child")
	fmt.Fprint(c.out, "> ")

	switch c.readLine() {
	case "1":
		c.menuNormalChild()
	case "2":
		c.menuHardenedChild()
	case "3":
		c.menuPublicChild()
	default:
		fmt.Fprintln(c.out, "unrecognized option")
	}
}

func (c *CLI) readParentPrivateKey() (*hdkey.Key, bool) {
	fmt.Fprintln(c.out, "Enter parent private key (64 hex chars):")
	privHex := c.readLine()
	fmt.Fprintln(c.out, "Enter parent chain code (64 hex chars):")
	chainHex := c.readLine()

	privBytes, err := hex.DecodeString(privHex)
	if err != nil || len(privBytes) != 32 {
		fmt.Fprintln(c.out, "invalid private key")
		return nil, false
	}
	chainBytes, err := hex.DecodeString(chainHex)
	if err != nil || len(chainBytes) != 32 {
		fmt.Fprintln(c.out, "invalid chain code")
		return nil, false
	}

	priv := bigint.New().SetBytes(privBytes)
	pub := secp256k1.ScalarMultiply(priv, secp256k1.G)
	var chainCode [32]byte
	copy(chainCode[:], chainBytes)
	return &hdkey.Key{Private: priv, Public: pub, ChainCode: chainCode}, true
}

func (c *CLI) readIndex() (uint32, bool) {
	fmt.Fprintln(c.out, "Enter child index:")
	n, err := strconv.ParseUint(c.readLine(), 10, 32)
	if err != nil {
		fmt.Fprintln(c.out, "invalid index")
		return 0, false
	}
	return uint32(n), true
}

func (c *CLI) menuNormalChild() {
	parent, ok := c.readParentPrivateKey()
	if !ok {
		return
	}
	index, ok := c.readIndex()
	if !ok {
		return
	}
	if index >= hdkey.HardenedOffset {
		fmt.Fprintln(c.out, "index must be below the hardened offset for a normal child")
		return
	}

	child, err := parent.DeriveChild(index)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	c.printKey(child)
}

func (c *CLI) menuHardenedChild() {
	parent, ok := c.readParentPrivateKey()
	if !ok {
		return
	}
	index, ok := c.readIndex()
	if !ok {
		return
	}

	child, err := parent.DeriveChild(index + hdkey.HardenedOffset)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	c.printKey(child)
}

func (c *CLI) menuPublicChild() {
	fmt.Fprintln(c.out, "Enter parent public key (compressed, 66 hex chars):")
	pubHex := c.readLine()
	fmt.Fprintln(c.out, "Enter parent chain code (64 hex chars):")
	chainHex := c.readLine()

	pubBytes, err := hex.DecodeString(pubHex)
	if err != nil {
		fmt.Fprintln(c.out, "invalid public key")
		return
	}
	pub, err := secp256k1.Decompress(pubBytes)
	if err != nil {
		fmt.Fprintln(c.out, "invalid public key:", err)
		return
	}
	chainBytes, err := hex.DecodeString(chainHex)
	if err != nil || len(chainBytes) != 32 {
		fmt.Fprintln(c.out, "invalid chain code")
		return
	}
	var chainCode [32]byte
	copy(chainCode[:], chainBytes)
	parent := &hdkey.Key{Public: pub, ChainCode: chainCode}

	index, ok := c.readIndex()
	if !ok {
		return
	}

	child, err := parent.DeriveChildPublic(index)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	c.printKey(child)
}

func (c *CLI) menuBaseConverter() {
	fmt.Fprintln(c.out, "Enter a number:")
	value := c.readLine()
	fmt.Fprintln(c.out, "Enter its base (2-64):")
	base, err := strconv.Atoi(c.readLine())
	if err != nil {
		fmt.Fprintln(c.out, "invalid base")
		return
	}

	n := bigint.New()
	if err := n.SetString(value, base); err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}

	fmt.Fprintln(c.out, "binary: ", n.Text(2))
	fmt.Fprintln(c.out, "decimal:", n.Text(10))
	fmt.Fprintln(c.out, "hex:    ", n.Text(16))
	fmt.Fprintln(c.out, "base58: ", n.Text(58))
	fmt.Fprintln(c.out, "base64: ", n.Text(64))
}

func (c *CLI) menuFunctions() {
	fmt.Fprintln(c.out, "1) P2PKH from compressed public key")
	fmt.Fprintln(c.out, "2) Point addition")
	fmt.Fprintln(c.out, "3) Point doubling")
	fmt.Fprintln(c.out, "4) Scalar multiplication")
	fmt.Fprint(c.out, "> ")

	switch c.readLine() {
	case "1":
		c.menuP2PKH()
	case "2":
		c.menuPointAddition()
	case "3":
		c.menuPointDoubling()
	case "4":
		c.menuScalarMultiplication()
	default:
		fmt.Fprintln(c.out, "unrecognized option")
	}
}

func (c *CLI) menuP2PKH() {
	fmt.Fprintln(c.out, "Enter compressed public key (66 hex chars):")
	pubBytes, err := hex.DecodeString(c.readLine())
	if err != nil {
		fmt.Fprintln(c.out, "invalid public key")
		return
	}
	addr, err := address.FromCompressedPubKey(pubBytes, address.MainnetVersion)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	fmt.Fprintln(c.out, "address:", addr)
}

func (c *CLI) readPoint(label string) (secp256k1.Point, bool) {
	fmt.Fprintf(c.out, "Enter %s (compressed, 66 hex chars):\n", label)
	b, err := hex.DecodeString(c.readLine())
	if err != nil {
		fmt.Fprintln(c.out, "invalid point")
		return secp256k1.Point{}, false
	}
	p, err := secp256k1.Decompress(b)
	if err != nil {
		fmt.Fprintln(c.out, "invalid point:", err)
		return secp256k1.Point{}, false
	}
	return p, true
}

func (c *CLI) menuPointAddition() {
	p, ok := c.readPoint("point P")
	if !ok {
		return
	}
	q, ok := c.readPoint("point Q")
	if !ok {
		return
	}
	c.printPoint(secp256k1.Add(p, q))
}

func (c *CLI) menuPointDoubling() {
	p, ok := c.readPoint("point P")
	if !ok {
		return
	}
	c.printPoint(secp256k1.Double(p))
}

func (c *CLI) menuScalarMultiplication() {
	p, ok := c.readPoint("point P")
	if !ok {
		return
	}
	fmt.Fprintln(c.out, "Enter scalar (hex):")

	m := bigint.New()
	if err := m.SetString(c.readLine(), 16); err != nil {
		fmt.Fprintln(c.out, "invalid scalar")
		return
	}
	c.printPoint(secp256k1.ScalarMultiply(m, p))
}

func (c *CLI) printPoint(p secp256k1.Point) {
	if p.IsInfinity() {
		fmt.Fprintln(c.out, "point at infinity")
		return
	}
	fmt.Fprintln(c.out, "x:         ", p.X.Text(-16))
	fmt.Fprintln(c.out, "y:         ", p.Y.Text(-16))
	fmt.Fprintln(c.out, "compressed:", hex.EncodeToString(p.Compress()))
}
