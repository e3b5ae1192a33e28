package bitcoin

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// bech32Charset maps each 5-bit group to its BIP-173 symbol.
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// bech32Generator holds the five BCH generator constants of the bech32
// checksum polynomial.
var bech32Generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// ErrInvalidGroup reports a 5-bit value outside [0, 31] reaching the
// charset lookup. The regrouping step cannot produce one, so this is an
// internal invariant breach and the encode is aborted rather than risking
// a silently wrong address.
var ErrInvalidGroup = errors.New("bech32: 5-bit group out of range")

// hrpExpand expands the human-readable part for checksum computation: the
// high bits of each character, a zero separator, then the low bits.
func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

// polymod evaluates the bech32 BCH checksum polynomial over values.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= bech32Generator[i]
			}
		}
	}
	return chk
}

// createChecksum computes the six 5-bit checksum groups for data under hrp.
func createChecksum(data []byte, hrp string) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ 1

	check := make([]byte, 6)
	for i := 0; i < 6; i++ {
		check[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return check
}

// toGroups regroups bytes into 5-bit values, padding the final group with
// zero bits.
func toGroups(data []byte) []byte {
	groups := make([]byte, 0, (len(data)*8+4)/5)
	acc := uint32(0)
	bits := uint(0)
	for _, b := range data {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			groups = append(groups, byte((acc>>bits)&31))
		}
	}
	if bits > 0 {
		groups = append(groups, byte((acc<<(5-bits))&31))
	}
	return groups
}

// SegWitAddress encodes a witness-v0 address for the given hex key.
//
// With isScriptHash false the witness program is Hash160 of the key
// (P2WPKH, per BIP-173). With isScriptHash true the reference generator's
// non-standard P2WSH construction is reproduced exactly: the program is
// SHA256 of the raw key with a trailing zero byte — not the hash of a
// witness script — the checksum is computed over the version-prefixed
// groups, but the version symbol is omitted from the emitted string. Such
// addresses do not verify as BIP-173 bech32; they are kept bit-for-bit for
// compatibility with existing outputs.
func SegWitAddress(keyHex, hrp string, witnessVersion byte, isScriptHash bool) (string, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return "", fmt.Errorf("bech32: invalid key hex: %w", err)
	}

	var groups, encoded []byte
	if isScriptHash {
		sha := sha256.Sum256(key)
		groups = toGroups(append(sha[:], 0x00))
		encoded = groups
	} else {
		groups = toGroups(Hash160(key))
		encoded = append([]byte{witnessVersion}, groups...)
	}

	data := append([]byte{witnessVersion}, groups...)
	encoded = append(encoded, createChecksum(data, hrp)...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, g := range encoded {
		if g > 31 {
			return "", fmt.Errorf("%w: %d", ErrInvalidGroup, g)
		}
		sb.WriteByte(bech32Charset[g])
	}
	return sb.String(), nil
}
