// Command bitcoinmath is the interactive entry point: a terminal menu
// over the bigint/secp256k1/bip39/hdkey/address stack. All logic lives
// in internal/cli; this file only wires stdin/stdout to it.
package main

import (
	"os"

	"bitcoin-math/internal/cli"
)

func main() {
	cli.New(os.Stdin, os.Stdout).Run()
}
