package ipp

import (
	"github.com/MartinTeoZhang/snarkpack-slim/commitment"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

// FoldedClaims is the constant-size state the verifier carries through the
// GIPA replay: the folded TIPP commitment, the folded MIPP commitment (its
// T component only — U is the unused placeholder aggregate, see
// commitment.MIPP), the folded ip_ab claim and the folded agg_c claim.
type FoldedClaims struct {
	ComAB commitment.Pair
	ComC  curve.GT
	IPAB  curve.GT
	AggC  curve.G1
}

// Verify replays the GIPA transcript described by proof, folding only the
// O(1)-sized commitment/claim state every round (never the length-m
// commitment keys — reconstructing those is the KZG opening's job, done by
// the caller). It returns the full challenge ladder (round 1 first, the
// order Prove produced it in) and the fully-folded claims so the caller can
// check the final pairing equation against the KZG-opened key values.
func Verify(tr *transcript.Transcript, logN int, claims FoldedClaims, proof *GipaProof) ([]curve.Scalar, FoldedClaims, error) {
	if proof.Rounds() != logN || len(proof.CommsC) != logN || len(proof.ZAB) != logN || len(proof.ZC) != logN {
		return nil, FoldedClaims{}, ErrTranscriptOrder
	}

	challenges := make([]curve.Scalar, logN)

	for i := 0; i < logN; i++ {
		tc := proof.CommsAB[i]
		cc := proof.ZAB[i]
		mc := proof.CommsC[i]
		mcc := proof.ZC[i]

		if err := appendRound(tr, tc, cc, mc, mcc); err != nil {
			return nil, FoldedClaims{}, err
		}
		x, xInv, err := squeezeRoundChallenge(tr)
		if err != nil {
			return nil, FoldedClaims{}, err
		}
		challenges[i] = x

		claims.ComAB.T = curve.GTMul(claims.ComAB.T, curve.GTMul(curve.GTExp(tc.LeftT, xInv), curve.GTExp(tc.RightT, x)))
		claims.ComAB.U = curve.GTMul(claims.ComAB.U, curve.GTMul(curve.GTExp(tc.LeftU, xInv), curve.GTExp(tc.RightU, x)))
		claims.ComC = curve.GTMul(claims.ComC, curve.GTMul(curve.GTExp(mc.Left, xInv), curve.GTExp(mc.Right, x)))
		claims.IPAB = curve.GTMul(claims.IPAB, curve.GTMul(curve.GTExp(cc.Left, xInv), curve.GTExp(cc.Right, x)))
		claims.AggC = foldG1(claims.AggC, mcc.Left, xInv)
		claims.AggC = foldG1(claims.AggC, mcc.Right, x)
	}

	return challenges, claims, nil
}
