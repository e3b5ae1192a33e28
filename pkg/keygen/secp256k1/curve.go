// Package secp256k1 implements the secp256k1 elliptic curve from first
// principles: affine point arithmetic over the prime field, an extended
// Euclidean modular inverse, and double-and-add scalar multiplication.
// Only the operations needed to derive a public key from a private scalar
// are provided; this is not a general-purpose curve library.
package secp256k1

import (
	"errors"
	"math/big"
)

// Curve parameters, see SEC 2 section 2.4.1 (https://www.secg.org/sec2-v2.pdf).
var (
	// P is the prime field modulus.
	P = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	// N is the order of the base point.
	N = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	// Gx, Gy are the coordinates of the base point G.
	Gx = mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	Gy = mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
)

// ErrNotInvertible is returned by Inverse when gcd(x, m) != 1. With a prime
// modulus and a nonzero operand this cannot happen; hitting it indicates a
// bug in the caller, not bad user input.
var ErrNotInvertible = errors.New("secp256k1: element is not invertible")

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid curve constant " + s)
	}
	return v
}

// Point is an affine point on the curve, or the point at infinity. The
// infinity case is carried as an explicit variant rather than nil
// coordinates so that every operation handles it deliberately.
type Point struct {
	X, Y *big.Int
	inf  bool
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity, the additive identity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether two points are the same curve element.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// G returns the base point.
func G() Point {
	return NewPoint(Gx, Gy)
}

// Inverse computes x^-1 mod m using the iterative extended Euclidean
// algorithm. The result is always reduced to [0, m).
func Inverse(x, m *big.Int) (*big.Int, error) {
	r := new(big.Int).Mod(x, m)
	newR := new(big.Int).Set(m)
	a := big.NewInt(1)
	b := big.NewInt(0)

	for newR.Sign() != 0 {
		q := new(big.Int).Quo(r, newR)

		a, b = b, new(big.Int).Sub(a, new(big.Int).Mul(q, b))
		r, newR = newR, new(big.Int).Sub(r, new(big.Int).Mul(q, newR))
	}

	// r now holds gcd(x, m); invertible only when it is 1.
	if r.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotInvertible
	}
	return a.Mod(a, m), nil
}

// Double returns 2*p. Doubling the point at infinity, or a point whose
// y-coordinate is zero (its own inverse), yields the point at infinity.
func Double(p Point) (Point, error) {
	if p.inf || p.Y.Sign() == 0 {
		return Infinity(), nil
	}

	// s = 3x^2 / 2y
	twoY := new(big.Int).Lsh(p.Y, 1)
	inv, err := Inverse(twoY, P)
	if err != nil {
		return Point{}, err
	}
	s := new(big.Int).Mul(p.X, p.X)
	s.Mul(s, big.NewInt(3))
	s.Mul(s, inv)
	s.Mod(s, P)

	// x' = s^2 - 2x
	nx := new(big.Int).Mul(s, s)
	nx.Sub(nx, new(big.Int).Lsh(p.X, 1))
	nx.Mod(nx, P)

	// y' = s(x - x') - y
	ny := new(big.Int).Sub(p.X, nx)
	ny.Mul(ny, s)
	ny.Sub(ny, p.Y)
	ny.Mod(ny, P)

	return Point{X: nx, Y: ny}, nil
}

// Add returns p1 + p2.
//
// Divergence from the textbook group law, kept for output compatibility
// with the reference generator: if either operand is the point at
// infinity the result is the point at infinity, instead of the other
// operand. ScalarMult never feeds an infinite operand into Add, so key
// derivation is unaffected.
func Add(p1, p2 Point) (Point, error) {
	if p1.inf || p2.inf {
		return Infinity(), nil
	}
	if p1.X.Cmp(p2.X) == 0 {
		return Double(p1)
	}

	// s = (y1 - y2) / (x1 - x2)
	dx := new(big.Int).Sub(p1.X, p2.X)
	inv, err := Inverse(dx, P)
	if err != nil {
		return Point{}, err
	}
	s := new(big.Int).Sub(p1.Y, p2.Y)
	s.Mul(s, inv)
	s.Mod(s, P)

	// x' = s^2 - x1 - x2
	nx := new(big.Int).Mul(s, s)
	nx.Sub(nx, p1.X)
	nx.Sub(nx, p2.X)
	nx.Mod(nx, P)

	// y' = s(x1 - x') - y1
	ny := new(big.Int).Sub(p1.X, nx)
	ny.Mul(ny, s)
	ny.Sub(ny, p1.Y)
	ny.Mod(ny, P)

	return Point{X: nx, Y: ny}, nil
}

// ScalarMult returns k*p via left-to-right double-and-add over the bits of
// k, least significant first. The accumulator stays unset until the first
// set bit so that Add never sees the infinity sentinel; k = 0 yields the
// point at infinity. The loop runs at most bitlen(k) iterations.
func ScalarMult(k *big.Int, p Point) (Point, error) {
	acc := Infinity()
	accSet := false
	base := p
	rem := new(big.Int).Set(k)

	var err error
	for rem.Sign() != 0 {
		if rem.Bit(0) == 1 {
			if !accSet {
				acc = base
				accSet = true
			} else {
				acc, err = Add(acc, base)
				if err != nil {
					return Point{}, err
				}
			}
		}
		base, err = Double(base)
		if err != nil {
			return Point{}, err
		}
		rem.Rsh(rem, 1)
	}
	return acc, nil
}

// Derive computes the public-key point k*G for a private scalar k.
func Derive(k *big.Int) (Point, error) {
	return ScalarMult(k, G())
}
