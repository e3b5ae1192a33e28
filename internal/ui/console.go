// Package ui provides the ANSI console output for the btcaddr CLI.
package ui

import (
	"fmt"

	"github.com/raasakh/BitcoinAddressGenerator/pkg/keygen"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// PrintBanner shows the program header
func PrintBanner(version string) {
	fmt.Println()
	fmt.Printf("    %s%s₿ Bitcoin Address Generator%s %s• v%s%s\n", ColorCyan, ColorBold, ColorReset, ColorDim, version, ColorReset)
	fmt.Println()
}

// PrintKeySet renders the key material and every address format
func PrintKeySet(ks keygen.KeySet, known bool) {
	source := "randomly generated"
	if known {
		source = "derived from supplied seed"
	}
	fmt.Printf("    %s🔑 KEY MATERIAL%s %s(%s)%s\n\n", ColorPurple+ColorBold, ColorReset, ColorDim, source, ColorReset)

	printField("Private key", ks.PrivateKey, ColorYellow)
	printField("Public key", ks.PublicKey, ColorCyan)
	printField("Compressed public key", ks.CompressedPublicKey, ColorCyan)
	fmt.Println()

	fmt.Printf("    %s📍 ADDRESSES%s\n\n", ColorGreen+ColorBold, ColorReset)
	printDerived("WIF", ks.WIF)
	printDerived("WIF (compressed)", ks.CompressedWIF)
	printDerived("P2PKH", ks.P2PKH)
	printDerived("P2PKH (compressed)", ks.CompressedP2PKH)
	printDerived("P2SH-P2WPKH", ks.P2SH)
	printDerived("P2WPKH", ks.P2WPKH)
	printDerived("P2WSH", ks.P2WSH)
	fmt.Println()

	fmt.Printf("    %s%s⚠  KEEP YOUR PRIVATE KEY SECRET!%s\n", ColorRed, ColorBold, ColorReset)
}

// PrintError reports a failure on its own line
func PrintError(err error) {
	fmt.Printf("    %s✗ Error: %v%s\n", ColorRed, err, ColorReset)
}

func printField(label, value, color string) {
	fmt.Printf("       %s%-22s%s %s%s%s\n", ColorDim, label, ColorReset, color, value, ColorReset)
}

func printDerived(label string, derive func(...string) (string, error)) {
	value, err := derive()
	if err != nil {
		fmt.Printf("       %s%-22s%s %s%v%s\n", ColorDim, label, ColorReset, ColorRed, err, ColorReset)
		return
	}
	fmt.Printf("       %s%-22s%s %s%s%s%s\n", ColorDim, label, ColorReset, ColorGreen, ColorBold, value, ColorReset)
}
