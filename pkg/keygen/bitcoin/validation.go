package bitcoin

import "strings"

// IsValidBase58String reports whether every character of s belongs to the
// Base58 alphabet. Useful for sanity-checking legacy addresses and WIF
// strings.
func IsValidBase58String(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			return false
		}
	}
	return len(s) > 0
}

// IsValidBech32String reports whether s looks like a bech32 address: a
// lowercase HRP, the '1' separator, and data characters drawn from the
// bech32 charset.
func IsValidBech32String(s string) bool {
	sep := strings.LastIndexByte(s, '1')
	if sep < 1 || sep+7 > len(s) {
		return false
	}
	for _, c := range s[sep+1:] {
		if !strings.ContainsRune(bech32Charset, c) {
			return false
		}
	}
	return true
}
