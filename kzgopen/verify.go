package kzgopen

import (
	"errors"
	"math/big"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

// ErrVerifyOpening is returned when a KZG opening's pairing check fails.
var ErrVerifyOpening = errors.New("kzgopen: opening verification failed")

// VerifyParams bundles the fixed-size verifier SRS generators the opening
// checks pair against.
type VerifyParams struct {
	G      curve.G1
	H      curve.G2
	GAlpha curve.G1
	GBeta  curve.G1
	HAlpha curve.G2
	HBeta  curve.G2
	// GAlphaN/GBetaN are g^{alpha^n}/g^{beta^n}, the same n-power shift
	// WKey's basis carries; VerifyWKey needs these in place of G/H since
	// the value it checks is scaled by that shift.
	GAlphaN curve.G1
	GBetaN  curve.G1
}

func scalarBig(s curve.Scalar) *big.Int {
	var b big.Int
	curve.BigInt(s, &b)
	return &b
}

// VerifyVKey checks the V-key opening: that finalVKeyA/B equal h^{f(alpha)}
// and h^{f(beta)} for the polynomial f implied by challenges, at the point
// z, with claimed value fz = f(z) (computed by the caller via EvalF).
//
//	e(g, finalVKeyA - [fz]h) == e(g^alpha - [z]g, opening.Alpha)
//	e(g, finalVKeyB - [fz]h) == e(g^beta  - [z]g, opening.Beta)
func VerifyVKey(p VerifyParams, finalVKeyA, finalVKeyB curve.G2, z, fz curve.Scalar, opening VKeyOpening) error {
	lhsA := curve.AddG2(finalVKeyA, curve.NegG2(curve.ScalarMulG2(p.H, scalarBig(fz))))
	rhsA := curve.AddG1(p.GAlpha, curve.NegG1(curve.ScalarMulG1(p.G, scalarBig(z))))
	okA, err := curve.PairingEqual(p.G, lhsA, rhsA, opening.Alpha)
	if err != nil {
		return err
	}
	if !okA {
		return ErrVerifyOpening
	}

	lhsB := curve.AddG2(finalVKeyB, curve.NegG2(curve.ScalarMulG2(p.H, scalarBig(fz))))
	rhsB := curve.AddG1(p.GBeta, curve.NegG1(curve.ScalarMulG1(p.G, scalarBig(z))))
	okB, err := curve.PairingEqual(p.G, lhsB, rhsB, opening.Beta)
	if err != nil {
		return err
	}
	if !okB {
		return ErrVerifyOpening
	}
	return nil
}

// VerifyWKey checks the W-key opening against finalWKeyA/B, with claimed
// value wz = f(z) for the same product-form polynomial OpenWKey committed
// (over whatever ladder the caller used). finalWKeyA/B are scaled by an
// extra alpha^n/beta^n relative to the V-key case, so the subtraction term
// uses GAlphaN/GBetaN rather than G/H — see OpenWKey's doc comment for why
// this still opens against WKey's own basis directly.
//
//	e(finalWKeyA - [wz]g^{alpha^n}, h) == e(opening.Alpha, h^alpha - [z]h)
//	e(finalWKeyB - [wz]g^{beta^n},  h) == e(opening.Beta,  h^beta  - [z]h)
func VerifyWKey(p VerifyParams, finalWKeyA, finalWKeyB curve.G1, z, wz curve.Scalar, opening WKeyOpening) error {
	lhsA := curve.AddG1(finalWKeyA, curve.NegG1(curve.ScalarMulG1(p.GAlphaN, scalarBig(wz))))
	rhsA := curve.AddG2(p.HAlpha, curve.NegG2(curve.ScalarMulG2(p.H, scalarBig(z))))
	okA, err := curve.PairingEqual(lhsA, p.H, opening.Alpha, rhsA)
	if err != nil {
		return err
	}
	if !okA {
		return ErrVerifyOpening
	}

	lhsB := curve.AddG1(finalWKeyB, curve.NegG1(curve.ScalarMulG1(p.GBetaN, scalarBig(wz))))
	rhsB := curve.AddG2(p.HBeta, curve.NegG2(curve.ScalarMulG2(p.H, scalarBig(z))))
	okB, err := curve.PairingEqual(lhsB, p.H, opening.Beta, rhsB)
	if err != nil {
		return err
	}
	if !okB {
		return ErrVerifyOpening
	}
	return nil
}
