// Package ipp implements GIPA, the halving recursion TIPP and MIPP are
// both instances of: split the witness and its commitment key in half,
// compute the cross terms between the two halves, squeeze a challenge,
// fold both the witness and the key by it, and recurse on the half-size
// problem until a single element remains.
package ipp

import (
	"errors"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

// ErrLengthMismatch is returned whenever the witness vectors fed to Prove
// don't agree in length with each other or with the commitment keys.
var ErrLengthMismatch = errors.New("ipp: vector length mismatch")

// ErrNotPowerOfTwo is returned when Prove is asked to fold a vector whose
// length isn't a power of two.
var ErrNotPowerOfTwo = errors.New("ipp: vector length must be a power of two")

// ErrTranscriptOrder is returned by Verify when the proof's round count
// doesn't match what the claimed length implies.
var ErrTranscriptOrder = errors.New("ipp: gipa proof round count does not match claimed length")

// TIPPCrossComm is one round's pair of GT cross-commitments of the (V,W)
// key commitment, a (T,U) pair for the left half-cross and again for the
// right half-cross.
type TIPPCrossComm struct {
	LeftT, LeftU   curve.GT
	RightT, RightU curve.GT
}

// MIPPCrossComm is one round's pair of GT cross-commitments of the MIPP
// commitment key (V alone).
type MIPPCrossComm struct {
	Left, Right curve.GT
}

// ClaimCrossTIPP is one round's pair of GT cross inner-pairing-products used
// to fold the ip_ab claim.
type ClaimCrossTIPP struct {
	Left, Right curve.GT
}

// ClaimCrossMIPP is one round's pair of G1 cross multi-scalar-products used
// to fold the agg_c claim.
type ClaimCrossMIPP struct {
	Left, Right curve.G1
}

// GipaProof is the full transcript of a combined TIPP+MIPP halving run:
// the two commitment recursions run round for round and share a single
// challenge ladder.
type GipaProof struct {
	CommsAB []TIPPCrossComm
	CommsC  []MIPPCrossComm
	ZAB     []ClaimCrossTIPP
	ZC      []ClaimCrossMIPP

	FinalA curve.G1
	FinalB curve.G2
	FinalC curve.G1
	FinalR curve.Scalar

	FinalVKeyA, FinalVKeyB curve.G2
	FinalWKeyA, FinalWKeyB curve.G1
}

// Rounds reports how many halving rounds this proof records.
func (p *GipaProof) Rounds() int {
	return len(p.CommsAB)
}
