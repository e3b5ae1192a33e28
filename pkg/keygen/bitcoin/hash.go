// Package bitcoin implements the Bitcoin address encodings: Hash160,
// Base58Check, BIP-173 bech32, and the assembly of WIF keys and the
// P2PKH, P2SH-P2WPKH, P2WPKH and P2WSH address formats.
package bitcoin

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash160 computes RIPEMD160(SHA256(data)), the 20-byte hash used for
// address payloads.
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// DoubleSHA256 computes SHA256(SHA256(data)).
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}
