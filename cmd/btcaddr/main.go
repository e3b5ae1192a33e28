package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raasakh/BitcoinAddressGenerator/internal/ui"
	"github.com/raasakh/BitcoinAddressGenerator/pkg/keygen"
)

const version = "1.0"

var seed string

var rootCmd = &cobra.Command{
	Use:   "btcaddr",
	Short: "Derive Bitcoin keys and addresses",
	Long: `Derives a secp256k1 key pair and its Bitcoin address formats
(WIF, P2PKH, P2SH-P2WPKH, P2WPKH, P2WSH).

Without --seed a fresh random key is generated. A 64-character hex seed is
used verbatim as the private key; any other seed is hashed with SHA-256
(brain-wallet mode).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, known, err := keygen.Generate(seed)
		if err != nil {
			return err
		}
		ui.PrintBanner(version)
		ui.PrintKeySet(ks, known)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&seed, "seed", "s", "", "private key hex or brain-wallet passphrase")

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(err)
		os.Exit(1)
	}
}
