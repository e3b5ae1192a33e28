package bitcoin

import (
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58CheckRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"p2pkh payload", "00b472a266d0bd89c13706a4132ccfb16f7c3b9fcb"},
		{"p2sh payload", "05b472a266d0bd89c13706a4132ccfb16f7c3b9fcb"},
		{"wif payload", "80b428729db6df4dd1b14e20887d3f9cd71486f1c39ed994c065b17b5eb2f7e4a7"},
		{"single byte", "2a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := hex.DecodeString(tt.payload)
			require.NoError(t, err)

			encoded := Base58CheckEncode(payload)
			require.True(t, IsValidBase58String(encoded))

			decoded, err := Base58CheckDecode(encoded)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded)

			// Independent decoder agrees on the raw bytes.
			raw, err := base58.Decode(encoded)
			require.NoError(t, err)
			check := Checksum4(payload)
			assert.Equal(t, append(payload, check[:]...), raw)
		})
	}
}

func TestBase58CheckDecodeRejectsCorruption(t *testing.T) {
	encoded := Base58CheckEncode([]byte{0x00, 0x01, 0x02, 0x03})

	// Substitute the final character within the alphabet; only the
	// checksum region of the integer changes, so the check must fail.
	last := byte('2')
	if encoded[len(encoded)-1] == last {
		last = '3'
	}
	corrupted := encoded[:len(encoded)-1] + string(last)

	_, err := Base58CheckDecode(corrupted)
	require.Error(t, err)
}

func TestBase58CheckDecodeRejectsBadInput(t *testing.T) {
	_, err := Base58CheckDecode("0OIl")
	assert.Error(t, err, "characters outside the alphabet")

	_, err = Base58CheckDecode("11")
	assert.Error(t, err, "shorter than a checksum")
}

// TestWIFKnownVectors uses the canonical encodings of private key 1.
func TestWIFKnownVectors(t *testing.T) {
	priv := "0000000000000000000000000000000000000000000000000000000000000001"

	wif, err := WIF(priv)
	require.NoError(t, err)
	assert.Equal(t, "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf", wif)

	cwif, err := CompressedWIF(priv)
	require.NoError(t, err)
	assert.Equal(t, "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn", cwif)
}

func TestLeadingZeroCompensation(t *testing.T) {
	// A version-0x00 payload must pick up exactly one leading '1'.
	payload, _ := hex.DecodeString("00b472a266d0bd89c13706a4132ccfb16f7c3b9fcb")
	encoded := Base58CheckEncode(payload)
	require.Greater(t, len(encoded), 1)
	assert.Equal(t, byte('1'), encoded[0])
	assert.NotEqual(t, byte('1'), encoded[1])
}
