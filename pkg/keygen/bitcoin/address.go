package bitcoin

import (
	"encoding/hex"
	"fmt"
)

// Version prefixes for mainnet Base58Check payloads.
const (
	VersionP2PKH = 0x00 // legacy pay-to-public-key-hash, addresses start with 1
	VersionP2SH  = 0x05 // pay-to-script-hash, addresses start with 3
	VersionWIF   = 0x80 // wallet import format private keys
)

// HRP is the human-readable part of mainnet SegWit addresses.
const HRP = "bc"

// AddressFromKey builds a Base58Check string from a hex key: the key is
// optionally reduced with Hash160 first, prefixed with the version byte,
// checksummed and encoded.
func AddressFromKey(keyHex string, version byte, hashFirst bool) (string, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return "", fmt.Errorf("base58check: invalid key hex: %w", err)
	}
	if hashFirst {
		key = Hash160(key)
	}
	payload := make([]byte, 0, len(key)+1)
	payload = append(payload, version)
	payload = append(payload, key...)
	return Base58CheckEncode(payload), nil
}

// WIF encodes a private key hex string in wallet import format.
func WIF(privKeyHex string) (string, error) {
	return AddressFromKey(privKeyHex, VersionWIF, false)
}

// CompressedWIF encodes a private key in wallet import format with the
// trailing 0x01 flag marking a compressed public key.
func CompressedWIF(privKeyHex string) (string, error) {
	return AddressFromKey(privKeyHex+"01", VersionWIF, false)
}

// P2PKH derives the legacy address for a public key hex string. Pass the
// uncompressed key for the classic form or the compressed key for its
// compressed sibling.
func P2PKH(pubKeyHex string) (string, error) {
	return AddressFromKey(pubKeyHex, VersionP2PKH, true)
}

// P2SH derives the P2SH address wrapping the P2WPKH witness program of the
// compressed public key: Base58Check(0x05, Hash160(0x0014 || Hash160(pubkey))).
func P2SH(compressedPubKeyHex string) (string, error) {
	pubKey, err := hex.DecodeString(compressedPubKeyHex)
	if err != nil {
		return "", fmt.Errorf("base58check: invalid key hex: %w", err)
	}

	// OP_0 + 20-byte push of the key hash, the P2WPKH witness program.
	program := make([]byte, 0, 22)
	program = append(program, 0x00, 0x14)
	program = append(program, Hash160(pubKey)...)

	return AddressFromKey(hex.EncodeToString(program), VersionP2SH, true)
}

// P2WPKH derives the native SegWit v0 address of a compressed public key.
func P2WPKH(compressedPubKeyHex string) (string, error) {
	return SegWitAddress(compressedPubKeyHex, HRP, 0, false)
}

// P2WSH derives the SegWit v0 script-hash style address of a key using the
// reference generator's non-standard construction; see SegWitAddress.
func P2WSH(keyHex string) (string, error) {
	return SegWitAddress(keyHex, HRP, 0, true)
}
