// Package curve provides the single point of contact between the
// aggregation protocol and the pairing-friendly curve it runs over.
//
// Every group, field and pairing operation above this package (transcript,
// srs, commitment, ipp, kzgopen, proof) goes through the names declared
// here, not through gnark-crypto directly; the one other gnark-crypto
// import in the tree is transcript's use of its fiat-shamir hash. Adding a second curve means adding a second file
// in this package; no protocol code changes.
package curve

import (
	"crypto/rand"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

type (
	// Scalar is an element of the scalar field F.
	Scalar = fr.Element
	// G1 is an element of the first source group.
	G1 = bls12381.G1Affine
	// G2 is an element of the second source group.
	G2 = bls12381.G2Affine
	// GT is an element of the pairing target group.
	GT = bls12381.GT
)

// Zero is the additive identity of F.
func Zero() Scalar {
	var z Scalar
	return z
}

// One is the multiplicative identity of F.
func One() Scalar {
	return fr.One()
}

// RandomScalar samples a uniform element of F from rd.
func RandomScalar(rd io.Reader) (Scalar, error) {
	var s Scalar
	if rd == nil {
		rd = rand.Reader
	}
	// fr.Element.SetRandom always draws from crypto/rand internally; when the
	// caller supplies a deterministic rd (e.g. a seeded test RNG) we instead
	// derive the scalar from bytes read off rd, reduced modulo |F| the same
	// way fr.Element.SetBytes does (wide reduction via Montgomery setup).
	if rd == rand.Reader {
		if _, err := s.SetRandom(); err != nil {
			return Scalar{}, err
		}
		return s, nil
	}
	buf := make([]byte, fr.Bytes)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return Scalar{}, err
	}
	s.SetBytes(buf)
	return s, nil
}

// ScalarFromUint64 embeds a small integer into F.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.SetUint64(v)
	return s
}

// Inverse returns the multiplicative inverse of s. s must be non-zero.
func Inverse(s Scalar) Scalar {
	var inv Scalar
	inv.Inverse(&s)
	return inv
}

// Neg returns -s.
func Neg(s Scalar) Scalar {
	var n Scalar
	n.Neg(&s)
	return n
}

// Add returns a+b.
func Add(a, b Scalar) Scalar {
	var r Scalar
	r.Add(&a, &b)
	return r
}

// Mul returns a*b.
func Mul(a, b Scalar) Scalar {
	var r Scalar
	r.Mul(&a, &b)
	return r
}

// Square returns s*s.
func Square(s Scalar) Scalar {
	var r Scalar
	r.Square(&s)
	return r
}

// IsZero reports whether s is the additive identity.
func IsZero(s Scalar) bool {
	return s.IsZero()
}

// BatchInvert inverts every element of s in one pass.
func BatchInvert(s []Scalar) []Scalar {
	return fr.BatchInvert(s)
}

// BigInt writes the regular (non-Montgomery) representation of s into out.
func BigInt(s Scalar, out *big.Int) *big.Int {
	return s.BigInt(out)
}

// Generators returns the canonical G1 and G2 generators g, h.
func Generators() (g G1, h G2) {
	_, _, g, h = bls12381.Generators()
	return g, h
}

// ScalarMulG1 returns [s]p.
func ScalarMulG1(p G1, s *big.Int) G1 {
	var r G1
	r.ScalarMultiplication(&p, s)
	return r
}

// ScalarMulG2 returns [s]p.
func ScalarMulG2(p G2, s *big.Int) G2 {
	var r G2
	r.ScalarMultiplication(&p, s)
	return r
}

// AddG1 returns a+b.
func AddG1(a, b G1) G1 {
	var r G1
	r.Add(&a, &b)
	return r
}

// AddG2 returns a+b.
func AddG2(a, b G2) G2 {
	var r G2
	r.Add(&a, &b)
	return r
}

// NegG1 returns -p.
func NegG1(p G1) G1 {
	var r G1
	r.Neg(&p)
	return r
}

// NegG2 returns -p.
func NegG2(p G2) G2 {
	var r G2
	r.Neg(&p)
	return r
}

// G1Equal reports whether a == b.
func G1Equal(a, b G1) bool {
	return a.Equal(&b)
}

// G2Equal reports whether a == b.
func G2Equal(a, b G2) bool {
	return a.Equal(&b)
}
