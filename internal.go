package snarkpack

import (
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/ipp"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

// powers returns (x^0, x^1, ..., x^{n-1}).
func powers(x curve.Scalar, n int) []curve.Scalar {
	out := make([]curve.Scalar, n)
	out[0] = curve.One()
	for i := 1; i < n; i++ {
		out[i] = curve.Mul(out[i-1], x)
	}
	return out
}

func sumScalars(s []curve.Scalar) curve.Scalar {
	sum := curve.Zero()
	for _, v := range s {
		sum = curve.Add(sum, v)
	}
	return sum
}

// invertLadder inverts every entry of the GIPA challenge ladder, turning
// it into the xInv ladder foldVKey actually folds VKey with — the
// V-key's KZG opening polynomial must be built from this, not the raw
// ladder ipp.Prove/Verify return.
func invertLadder(challenges []curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, len(challenges))
	for i, x := range challenges {
		out[i] = curve.Inverse(x)
	}
	return out
}

// wOpenChallenges rescales the raw GIPA ladder into the one WKey's KZG
// opening polynomial must be built from. WKey is folded after being
// pre-scaled pointwise by rInvPowers (the per-proof random weights'
// inverses), so its final folded value is alpha^n*f(alpha*rInv) rather
// than alpha^n*f(alpha). f is a product of (1 + x_i X^{2^j}) factors, so
// substituting alpha*rInv for X is equivalent to multiplying round i's
// challenge (associated with shift 2^(k-1-i)) by rInv^(2^(k-1-i)) — a
// value already in rInvPowers since that shift never exceeds n/2.
func wOpenChallenges(challenges, rInvPowers []curve.Scalar) []curve.Scalar {
	k := len(challenges)
	out := make([]curve.Scalar, k)
	for i, x := range challenges {
		shiftPower := rInvPowers[1<<uint(k-1-i)]
		out[i] = curve.Mul(x, shiftPower)
	}
	return out
}

// appendFinalGipa absorbs the final folded GIPA elements into the
// transcript in the fixed order the prover and verifier must agree on,
// immediately before the KZG evaluation point z is squeezed.
func appendFinalGipa(tr *transcript.Transcript, p *ipp.GipaProof) error {
	if err := tr.AppendG1("final-a", p.FinalA); err != nil {
		return err
	}
	if err := tr.AppendG2("final-b", p.FinalB); err != nil {
		return err
	}
	if err := tr.AppendG1("final-c", p.FinalC); err != nil {
		return err
	}
	if err := tr.AppendScalar("final-r", p.FinalR); err != nil {
		return err
	}
	if err := tr.AppendG2("final-vkey-a", p.FinalVKeyA); err != nil {
		return err
	}
	if err := tr.AppendG2("final-vkey-b", p.FinalVKeyB); err != nil {
		return err
	}
	if err := tr.AppendG1("final-wkey-a", p.FinalWKeyA); err != nil {
		return err
	}
	if err := tr.AppendG1("final-wkey-b", p.FinalWKeyB); err != nil {
		return err
	}
	return nil
}
