package snarkpack

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/MartinTeoZhang/snarkpack-slim/commitment"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/groth16io"
	"github.com/MartinTeoZhang/snarkpack-slim/ipp"
	"github.com/MartinTeoZhang/snarkpack-slim/kzgopen"
	"github.com/MartinTeoZhang/snarkpack-slim/proof"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

// VerifyAggregateProof replays the transcript the aggregator produced,
// recomputing r, the GIPA challenge ladder and z, verifies both KZG
// openings, reconstructs the final GIPA verification equation from the
// opened key values, and ties the result back to the batched Groth16
// statement. The caller is expected to have appended the same context
// ahead of this call that it appended ahead of AggregateProofs (e.g. the
// public inputs), so tr replays byte-for-byte.
//
// Every rejection path returns a *VerificationError carrying only a coarse
// ErrorKind, never which specific check failed.
func VerifyAggregateProof(verifierSRS *srs.VerifierSRS, pvk groth16io.PreparedVerifyingKey, publicInputs [][]curve.Scalar, aggProof *proof.AggregateProof, tr *transcript.Transcript) error {
	n := len(publicInputs)
	if n == 0 || uint64(n) != verifierSRS.N {
		return reject(ErrorKindBatchSizeMismatch)
	}
	logN := bits.TrailingZeros(uint(n))
	if 1<<uint(logN) != n {
		return reject(ErrorKindInvalidSRS)
	}

	if err := tr.AppendGT("com-ab-t", aggProof.ComAB.T); err != nil {
		return reject(ErrorKindVerificationFailed)
	}
	if err := tr.AppendGT("com-ab-u", aggProof.ComAB.U); err != nil {
		return reject(ErrorKindVerificationFailed)
	}
	if err := tr.AppendGT("com-c-t", aggProof.ComC); err != nil {
		return reject(ErrorKindVerificationFailed)
	}
	r, err := tr.Challenge()
	if err != nil {
		return reject(ErrorKindVerificationFailed)
	}
	rPowers := powers(r, n)
	rInvPowers := curve.BatchInvert(append([]curve.Scalar(nil), rPowers...))

	if err := tr.AppendGT("ip-ab", aggProof.IPAB); err != nil {
		return reject(ErrorKindVerificationFailed)
	}
	if err := tr.AppendG1("agg-c", aggProof.AggC); err != nil {
		return reject(ErrorKindVerificationFailed)
	}

	claims := ipp.FoldedClaims{
		ComAB: aggProof.ComAB,
		ComC:  aggProof.ComC,
		IPAB:  aggProof.IPAB,
		AggC:  aggProof.AggC,
	}
	challenges, folded, err := ipp.Verify(tr, logN, claims, aggProof.GIPA)
	if err != nil {
		return reject(ErrorKindTranscriptMismatch)
	}

	if err := appendFinalGipa(tr, aggProof.GIPA); err != nil {
		return reject(ErrorKindVerificationFailed)
	}
	z, err := tr.Challenge()
	if err != nil {
		return reject(ErrorKindVerificationFailed)
	}

	fz := kzgopen.EvalF(invertLadder(challenges), z)
	wz := kzgopen.EvalF(wOpenChallenges(challenges, rInvPowers), z)

	vp := kzgopen.VerifyParams{
		G:       verifierSRS.G,
		H:       verifierSRS.H,
		GAlpha:  verifierSRS.GAlpha,
		GBeta:   verifierSRS.GBeta,
		HAlpha:  verifierSRS.HAlpha,
		HBeta:   verifierSRS.HBeta,
		GAlphaN: verifierSRS.GAlphaN,
		GBetaN:  verifierSRS.GBetaN,
	}
	if err := kzgopen.VerifyVKey(vp, aggProof.GIPA.FinalVKeyA, aggProof.GIPA.FinalVKeyB, z, fz, aggProof.VKeyOpening); err != nil {
		return reject(ErrorKindVerificationFailed)
	}
	if err := kzgopen.VerifyWKey(vp, aggProof.GIPA.FinalWKeyA, aggProof.GIPA.FinalWKeyB, z, wz, aggProof.WKeyOpening); err != nil {
		return reject(ErrorKindVerificationFailed)
	}

	if err := checkFinalGipaEquation(folded, aggProof.GIPA); err != nil {
		return reject(ErrorKindVerificationFailed)
	}

	if err := checkGroth16Tie(pvk, publicInputs, rPowers, aggProof.IPAB, aggProof.AggC); err != nil {
		if errors.Is(err, groth16io.ErrInputLengthMismatch) {
			return reject(ErrorKindMalformedInput)
		}
		return reject(ErrorKindVerificationFailed)
	}

	return nil
}

// checkFinalGipaEquation reconstructs the length-1 TIPP/MIPP/claim checks
// from the final folded GIPA elements the proof carries and the folded
// commitment/claim state Verify produced: the final folded commitments
// must equal what the final folded witnesses and the KZG-opened final
// keys actually commit to.
func checkFinalGipaEquation(folded ipp.FoldedClaims, g *ipp.GipaProof) error {
	finalVKey := srs.VKey{A: []curve.G2{g.FinalVKeyA}, B: []curve.G2{g.FinalVKeyB}}
	finalWKey := srs.WKey{A: []curve.G1{g.FinalWKeyA}, B: []curve.G1{g.FinalWKeyB}}

	tippCheck, err := commitment.TIPP(finalVKey, finalWKey, []curve.G1{g.FinalA}, []curve.G2{g.FinalB})
	if err != nil {
		return err
	}
	if !curve.GTEqual(tippCheck.T, folded.ComAB.T) || !curve.GTEqual(tippCheck.U, folded.ComAB.U) {
		return errFinalEquation
	}

	comCCheck, err := curve.PairingProduct([]curve.G1{g.FinalC}, []curve.G2{g.FinalVKeyA})
	if err != nil {
		return err
	}
	if !curve.GTEqual(comCCheck, folded.ComC) {
		return errFinalEquation
	}

	ipABCheck, err := curve.PairingProduct([]curve.G1{g.FinalA}, []curve.G2{g.FinalB})
	if err != nil {
		return err
	}
	if !curve.GTEqual(ipABCheck, folded.IPAB) {
		return errFinalEquation
	}

	var rBig big.Int
	curve.BigInt(g.FinalR, &rBig)
	aggCCheck := curve.ScalarMulG1(g.FinalC, &rBig)
	if !curve.G1Equal(aggCCheck, folded.AggC) {
		return errFinalEquation
	}

	return nil
}

// errFinalEquation is an internal sentinel; VerifyAggregateProof always
// translates it (and every other failure here) into a coarse
// ErrorKindVerificationFailed before returning to the caller.
var errFinalEquation = errors.New("snarkpack: final gipa equation mismatch")

// checkGroth16Tie verifies the aggregated claim (ip_ab, agg_c) actually
// corresponds to a random linear combination of n valid single-proof
// Groth16 verification equations e(A_i,B_i) = e(alpha,beta)*e(IC_i,gamma)*
// e(C_i,delta), raised to the per-proof weights r_i and multiplied
// together.
func checkGroth16Tie(pvk groth16io.PreparedVerifyingKey, publicInputs [][]curve.Scalar, rPowers []curve.Scalar, ipAB curve.GT, aggC curve.G1) error {
	aggIC, err := groth16io.AggregatedInputCommitment(pvk, publicInputs, rPowers)
	if err != nil {
		return err
	}

	sumR := sumScalars(rPowers)
	alphaBetaTerm := curve.GTExp(pvk.AlphaBeta, sumR)

	gammaTerm, err := curve.PairingProduct([]curve.G1{aggIC}, []curve.G2{pvk.VK.Gamma})
	if err != nil {
		return err
	}
	deltaTerm, err := curve.PairingProduct([]curve.G1{aggC}, []curve.G2{pvk.VK.Delta})
	if err != nil {
		return err
	}

	rhs := curve.GTMul(alphaBetaTerm, curve.GTMul(gammaTerm, deltaTerm))
	if !curve.GTEqual(ipAB, rhs) {
		return errFinalEquation
	}
	return nil
}
