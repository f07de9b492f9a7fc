// Package commitment implements the pair commitment scheme the TIPP and
// MIPP arguments are built on: committing vectors of source-group elements
// under the structured commitment keys V and W.
package commitment

import (
	"errors"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
)

// ErrLengthMismatch is fatal: every vector passed to a commitment must line
// up exactly with the commitment keys it is committed under.
var ErrLengthMismatch = errors.New("commitment: vector length does not match commitment key length")

// Pair is the (T,U) in GT x GT output of a TIPP commitment.
type Pair struct {
	T curve.GT
	U curve.GT
}

// TIPP commits to (A,B) in G1^m x G2^m under commitment keys vkey (two
// aligned G2 sequences) and wkey (two aligned G1 sequences):
//
//	T = prod_i e(A_i, vkey.A_i) * prod_i e(wkey.A_i, B_i)
//	U = prod_i e(A_i, vkey.B_i) * prod_i e(wkey.B_i, B_i)
func TIPP(vkey srs.VKey, wkey srs.WKey, a []curve.G1, b []curve.G2) (Pair, error) {
	m := len(a)
	if len(b) != m || vkey.Len() != m || wkey.Len() != m {
		return Pair{}, ErrLengthMismatch
	}

	tG1 := append(append([]curve.G1{}, a...), wkey.A...)
	tG2 := append(append([]curve.G2{}, vkey.A...), b...)
	t, err := curve.PairingProduct(tG1, tG2)
	if err != nil {
		return Pair{}, err
	}

	uG1 := append(append([]curve.G1{}, a...), wkey.B...)
	uG2 := append(append([]curve.G2{}, vkey.B...), b...)
	u, err := curve.PairingProduct(uG1, uG2)
	if err != nil {
		return Pair{}, err
	}

	return Pair{T: t, U: u}, nil
}

// MixedPair is the (T,U) in GT x F output of a MIPP commitment.
type MixedPair struct {
	T curve.GT
	U curve.Scalar
}

// MIPP commits to (c, r) in G1^m x F^m under commitment key vkey:
//
//	T = prod_i e(c_i, vkey.A_i)
//	U = sum_i r_i
//
// T deliberately does not fold r into the pairing exponent the way a naive
// reading of "V.a_i . r_i" might suggest: doing so would make vkey.A_i
// depend on the witness r, which breaks the round-by-round key-only fold
// every other commitment in this package relies on. r's contribution to
// the protocol is carried entirely by the separate agg_c = sum r_i*C_i
// claim the GIPA claim-fold proves; U here is an unused placeholder
// aggregate, never consulted by verification.
func MIPP(vkey srs.VKey, c []curve.G1, r []curve.Scalar) (MixedPair, error) {
	m := len(c)
	if len(r) != m || vkey.Len() != m {
		return MixedPair{}, ErrLengthMismatch
	}

	t, err := curve.PairingProduct(c, vkey.A[:m])
	if err != nil {
		return MixedPair{}, err
	}

	u := curve.Zero()
	for _, ri := range r {
		u = curve.Add(u, ri)
	}

	return MixedPair{T: t, U: u}, nil
}
