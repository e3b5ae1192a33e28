package secp256k1

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		x    *big.Int
	}{
		{"two", big.NewInt(2)},
		{"small", big.NewInt(31337)},
		{"base point x", Gx},
		{"base point y", Gy},
		{"p minus one", new(big.Int).Sub(P, big.NewInt(1))},
	}

	one := big.NewInt(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Inverse(tt.x, P)
			require.NoError(t, err)
			require.True(t, inv.Sign() >= 0 && inv.Cmp(P) < 0, "inverse not reduced to [0, p)")

			prod := new(big.Int).Mul(tt.x, inv)
			prod.Mod(prod, P)
			require.Zero(t, prod.Cmp(one), "x * inverse(x) != 1 mod p")
		})
	}
}

func TestInverseNotInvertible(t *testing.T) {
	_, err := Inverse(big.NewInt(6), big.NewInt(9))
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestScalarMultIdentities(t *testing.T) {
	// 0*G is the point at infinity.
	p, err := ScalarMult(big.NewInt(0), G())
	require.NoError(t, err)
	require.True(t, p.IsInfinity())

	// 1*G is G itself.
	p, err = ScalarMult(big.NewInt(1), G())
	require.NoError(t, err)
	require.True(t, p.Equal(G()))
}

func TestScalarMultInfinity(t *testing.T) {
	p, err := ScalarMult(big.NewInt(42), Infinity())
	require.NoError(t, err)
	require.True(t, p.IsInfinity())
}

// TestAddInfinityAbsorbs pins the reference generator's divergence from
// the group law: addition with an infinite operand yields infinity rather
// than the other operand.
func TestAddInfinityAbsorbs(t *testing.T) {
	sum, err := Add(G(), Infinity())
	require.NoError(t, err)
	require.True(t, sum.IsInfinity())

	sum, err = Add(Infinity(), G())
	require.NoError(t, err)
	require.True(t, sum.IsInfinity())
}

func TestDoubleZeroY(t *testing.T) {
	p, err := Double(NewPoint(big.NewInt(5), big.NewInt(0)))
	require.NoError(t, err)
	require.True(t, p.IsInfinity())

	p, err = Double(Infinity())
	require.NoError(t, err)
	require.True(t, p.IsInfinity())
}

func TestDoublePlusAddMatchesScalarMult(t *testing.T) {
	// 3*G computed as double-and-add against Double(G) + G.
	doubled, err := Double(G())
	require.NoError(t, err)
	viaAdd, err := Add(doubled, G())
	require.NoError(t, err)

	viaMult, err := ScalarMult(big.NewInt(3), G())
	require.NoError(t, err)
	require.True(t, viaAdd.Equal(viaMult))
}

// TestDeriveMatchesBtcec cross-checks the first-principles engine against
// the btcec implementation for a spread of scalars.
func TestDeriveMatchesBtcec(t *testing.T) {
	scalars := []string{
		"0000000000000000000000000000000000000000000000000000000000000001",
		"0000000000000000000000000000000000000000000000000000000000000002",
		"0000000000000000000000000000000000000000000000000000000000000003",
		"000000000000000000000000000000000000000000000000000000000000ffff",
		"b428729db6df4dd1b14e20887d3f9cd71486f1c39ed994c065b17b5eb2f7e4a7",
		"e9873d79c6d87dc0fb6a5778633389f4453213303da61f20bd67fc233aa33262",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140", // n-1
	}

	for _, s := range scalars {
		t.Run(s[:8], func(t *testing.T) {
			raw, err := hex.DecodeString(s)
			require.NoError(t, err)

			k := new(big.Int).SetBytes(raw)
			got, err := Derive(k)
			require.NoError(t, err)
			require.False(t, got.IsInfinity())

			_, pub := btcec.PrivKeyFromBytes(raw)
			want := pub.SerializeUncompressed()
			require.Equal(t, want[1:33], got.X.FillBytes(make([]byte, 32)), "x coordinate")
			require.Equal(t, want[33:], got.Y.FillBytes(make([]byte, 32)), "y coordinate")
		})
	}
}
