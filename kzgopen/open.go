package kzgopen

import (
	"errors"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

// ErrBasisTooShort is returned when the supplied commitment-key basis
// cannot cover the degree of the quotient polynomial being committed.
var ErrBasisTooShort = errors.New("kzgopen: srs basis shorter than required quotient degree")

// VKeyOpening is the KZG opening of the V-key polynomial f at a point z,
// one group element per twin (alpha, beta).
type VKeyOpening struct {
	Alpha curve.G2
	Beta  curve.G2
}

// WKeyOpening is the KZG opening of the same product-form polynomial f,
// committed against the shifted W-key basis, at the same point z.
type WKeyOpening struct {
	Alpha curve.G1
	Beta  curve.G1
}

// OpenVKey produces the V-key opening at z. vkeyA/vkeyB must be the
// PRISTINE (un-folded) prover commitment key sequences of length n —
// ProverSRS.VKey.A/.B before any GIPA halving — since they double as the
// KZG commitment basis h^{alpha^i}/h^{beta^i}. challenges must be the GIPA
// round ladder with every entry INVERTED (the same xInv values foldVKey
// uses to fold the key), since VKey folds with the inverse of whatever
// challenge the witness it is paired with folds with.
func OpenVKey(vkeyA, vkeyB []curve.G2, challenges []curve.Scalar, z curve.Scalar) (VKeyOpening, error) {
	f := BuildF(challenges)
	q := DivideByLinear(f, z)
	if len(vkeyA) < len(q) || len(vkeyB) < len(q) {
		return VKeyOpening{}, ErrBasisTooShort
	}

	alpha, err := curve.MSMG2(vkeyA[:len(q)], q)
	if err != nil {
		return VKeyOpening{}, err
	}
	beta, err := curve.MSMG2(vkeyB[:len(q)], q)
	if err != nil {
		return VKeyOpening{}, err
	}
	return VKeyOpening{Alpha: alpha, Beta: beta}, nil
}

// OpenWKey produces the W-key opening at z. wkeyA/wkeyB must be the
// PRISTINE (un-folded) ProverSRS.WKey.A/.B — the SHIFTED alpha/beta power
// sequences of length n (g^{alpha^{n+i}}/g^{beta^{n+i}}) — since they
// double as the commitment basis directly: the n-power shift is already
// baked into the basis, so committing the same product-form polynomial
// f used for the V key reproduces alpha^n*f(alpha)/beta^n*f(beta), the
// real value WKey's fold produces, with no separate reciprocal
// polynomial needed. challenges must be whatever ladder makes f match
// WKey's actual fold; the caller is responsible for rescaling the raw
// GIPA ladder to account for any per-proof weighting folded into WKey
// ahead of GIPA (see the aggregator's wOpenChallenges).
func OpenWKey(wkeyA, wkeyB []curve.G1, challenges []curve.Scalar, z curve.Scalar) (WKeyOpening, error) {
	f := BuildF(challenges)
	q := DivideByLinear(f, z)
	if len(wkeyA) < len(q) || len(wkeyB) < len(q) {
		return WKeyOpening{}, ErrBasisTooShort
	}

	alpha, err := curve.MSMG1(wkeyA[:len(q)], q)
	if err != nil {
		return WKeyOpening{}, err
	}
	beta, err := curve.MSMG1(wkeyB[:len(q)], q)
	if err != nil {
		return WKeyOpening{}, err
	}
	return WKeyOpening{Alpha: alpha, Beta: beta}, nil
}
