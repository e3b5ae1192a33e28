// Package keygen derives Bitcoin key material: a private scalar, its
// uncompressed and compressed public keys, and the WIF and address
// representations built from them.
package keygen

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/raasakh/BitcoinAddressGenerator/pkg/keygen/bitcoin"
	"github.com/raasakh/BitcoinAddressGenerator/pkg/keygen/secp256k1"
)

// ErrScalarOutOfRange is returned when the private scalar is zero or not
// below the curve order. A scalar from SHA-256 or a CSPRNG lands outside
// [1, n-1] with probability around 2^-128, so in practice this only fires
// on a deliberately crafted seed.
var ErrScalarOutOfRange = errors.New("keygen: private scalar outside [1, n-1]")

// KeySet is an immutable private/public key triple. All fields are
// lowercase hex except that a caller-supplied 64-hex seed is kept
// verbatim. Address derivations are pure functions of the KeySet, so a
// value can be shared freely across goroutines.
type KeySet struct {
	// PrivateKey is the 32-byte private scalar, 64 hex characters.
	PrivateKey string
	// PublicKey is the uncompressed public key: 0x04 prefix, x, y.
	// 130 hex characters.
	PublicKey string
	// CompressedPublicKey is the compressed public key: 0x02 or 0x03
	// parity prefix and x. 66 hex characters.
	CompressedPublicKey string
}

// Generate produces a KeySet from seed. An empty seed draws 32 bytes from
// the system CSPRNG. A valid 64-hex-character seed is used verbatim as the
// private key. Any other string is hashed with SHA-256 to obtain the
// scalar (brain-wallet mode); malformed input is never an error. The bool
// result reports whether the key was known to the caller (true) rather
// than freshly randomized (false).
func Generate(seed string) (KeySet, bool, error) {
	privHex := seed
	known := true
	switch {
	case seed == "":
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return KeySet{}, false, fmt.Errorf("keygen: reading random seed: %w", err)
		}
		privHex = hex.EncodeToString(buf[:])
		known = false
	case !isHexKey(seed):
		sum := sha256.Sum256([]byte(seed))
		privHex = hex.EncodeToString(sum[:])
	}

	ks, err := fromPrivateKey(privHex)
	if err != nil {
		return KeySet{}, false, err
	}
	return ks, known, nil
}

// fromPrivateKey derives both public-key serializations for a 64-hex
// private key.
func fromPrivateKey(privHex string) (KeySet, error) {
	k, ok := new(big.Int).SetString(privHex, 16)
	if !ok {
		return KeySet{}, fmt.Errorf("keygen: invalid private key hex %q", privHex)
	}
	if k.Sign() == 0 || k.Cmp(secp256k1.N) >= 0 {
		return KeySet{}, ErrScalarOutOfRange
	}

	pub, err := secp256k1.Derive(k)
	if err != nil {
		return KeySet{}, fmt.Errorf("keygen: deriving public key: %w", err)
	}

	x := fmt.Sprintf("%064x", pub.X)
	y := fmt.Sprintf("%064x", pub.Y)
	parity := "02"
	if pub.Y.Bit(0) == 1 {
		parity = "03"
	}

	return KeySet{
		PrivateKey:          privHex,
		PublicKey:           "04" + x + y,
		CompressedPublicKey: parity + x,
	}, nil
}

// isHexKey reports whether s is exactly 32 bytes of hex.
func isHexKey(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// keyOrDefault picks the override key when one is supplied.
func keyOrDefault(def string, override []string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return def
}

// WIF returns the wallet-import-format encoding of the private key.
func (ks KeySet) WIF(override ...string) (string, error) {
	return bitcoin.WIF(keyOrDefault(ks.PrivateKey, override))
}

// CompressedWIF returns the WIF encoding with the compressed-key flag.
func (ks KeySet) CompressedWIF(override ...string) (string, error) {
	return bitcoin.CompressedWIF(keyOrDefault(ks.PrivateKey, override))
}

// P2PKH returns the legacy address of the uncompressed public key.
func (ks KeySet) P2PKH(override ...string) (string, error) {
	return bitcoin.P2PKH(keyOrDefault(ks.PublicKey, override))
}

// CompressedP2PKH returns the legacy address of the compressed public key.
func (ks KeySet) CompressedP2PKH(override ...string) (string, error) {
	return bitcoin.P2PKH(keyOrDefault(ks.CompressedPublicKey, override))
}

// P2SH returns the P2SH address wrapping the compressed key's P2WPKH
// witness program.
func (ks KeySet) P2SH(override ...string) (string, error) {
	return bitcoin.P2SH(keyOrDefault(ks.CompressedPublicKey, override))
}

// P2WPKH returns the native SegWit address of the compressed public key.
func (ks KeySet) P2WPKH(override ...string) (string, error) {
	return bitcoin.P2WPKH(keyOrDefault(ks.CompressedPublicKey, override))
}

// P2WSH returns the script-hash style SegWit address of the compressed
// public key, using the non-standard construction documented on
// bitcoin.SegWitAddress.
func (ks KeySet) P2WSH(override ...string) (string, error) {
	return bitcoin.P2WSH(keyOrDefault(ks.CompressedPublicKey, override))
}
