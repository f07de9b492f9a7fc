package snarkpack_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	snarkpack "github.com/MartinTeoZhang/snarkpack-slim"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/groth16io"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

func fixedRNG(seedByte byte) *bytes.Reader {
	seed := make([]byte, 16384)
	for i := range seed {
		seed[i] = byte(int(seedByte) + i*17 + 1)
	}
	return bytes.NewReader(seed)
}

// syntheticBatch builds n Groth16-shaped (A,B,C) triples and a matching
// verifying key that satisfy the single-proof equation
// e(A,B) = e(alpha,beta)*e(IC0+x*IC1,gamma)*e(C,delta) exactly, by picking
// every discrete log ourselves and solving for C. A real Groth16 proving
// engine is out of scope here, so this end-to-end test checks the
// aggregation/verification pipeline against curve-valid synthetic triples
// rather than circuit soundness.
func syntheticBatch(n int) (groth16io.VerifyingKey, []groth16io.Proof, [][]curve.Scalar) {
	g, h := curve.Generators()

	alpha := curve.ScalarFromUint64(17)
	beta := curve.ScalarFromUint64(23)
	gamma := curve.ScalarFromUint64(31)
	delta := curve.ScalarFromUint64(41)
	icBase := curve.ScalarFromUint64(5)
	icCoeff := curve.ScalarFromUint64(7)

	var gAlphaBig, gBetaBig, gGammaBig, gDeltaBig big.Int
	curve.BigInt(alpha, &gAlphaBig)
	curve.BigInt(beta, &gBetaBig)
	curve.BigInt(gamma, &gGammaBig)
	curve.BigInt(delta, &gDeltaBig)

	var icBaseBig, icCoeffBig big.Int
	curve.BigInt(icBase, &icBaseBig)
	curve.BigInt(icCoeff, &icCoeffBig)

	vk := groth16io.VerifyingKey{
		Alpha: curve.ScalarMulG1(g, &gAlphaBig),
		Beta:  curve.ScalarMulG2(h, &gBetaBig),
		Gamma: curve.ScalarMulG2(h, &gGammaBig),
		Delta: curve.ScalarMulG2(h, &gDeltaBig),
		IC:    []curve.G1{curve.ScalarMulG1(g, &icBaseBig), curve.ScalarMulG1(g, &icCoeffBig)},
	}

	deltaInv := curve.Inverse(delta)
	alphaBeta := curve.Mul(alpha, beta)

	proofs := make([]groth16io.Proof, n)
	publicInputs := make([][]curve.Scalar, n)
	for i := 0; i < n; i++ {
		x := curve.ScalarFromUint64(uint64(100 + i))
		a := curve.ScalarFromUint64(uint64(1000 + i*3))
		b := curve.ScalarFromUint64(uint64(2000 + i*5))

		icSum := curve.Add(icBase, curve.Mul(icCoeff, x))
		rhsNoC := curve.Add(alphaBeta, curve.Mul(icSum, gamma))
		c := curve.Mul(curve.Add(curve.Mul(a, b), curve.Neg(rhsNoC)), deltaInv)

		var aBig, bBig, cBig big.Int
		curve.BigInt(a, &aBig)
		curve.BigInt(b, &bBig)
		curve.BigInt(c, &cBig)

		proofs[i] = groth16io.Proof{
			A: curve.ScalarMulG1(g, &aBig),
			B: curve.ScalarMulG2(h, &bBig),
			C: curve.ScalarMulG1(g, &cBig),
		}
		publicInputs[i] = []curve.Scalar{x}
	}

	return vk, proofs, publicInputs
}

func setupSRS(t *testing.T, n uint64) (*srs.ProverSRS, *srs.VerifierSRS) {
	t.Helper()
	generic, err := srs.SetupFakeSRS(fixedRNG(3), n)
	require.NoError(t, err)
	prover, verifier, err := generic.Specialize(n)
	require.NoError(t, err)
	return prover, verifier
}

func TestAggregateVerifyCompleteness(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		prover, verifier := setupSRS(t, uint64(n))
		vk, proofs, publicInputs := syntheticBatch(n)
		pvk, err := groth16io.Prepare(vk)
		require.NoError(t, err)

		proverTr, err := transcript.New("snarkpack-test")
		require.NoError(t, err)
		aggProof, err := snarkpack.AggregateProofs(prover, proverTr, proofs)
		require.NoError(t, err)

		verifierTr, err := transcript.New("snarkpack-test")
		require.NoError(t, err)
		err = snarkpack.VerifyAggregateProof(verifier, pvk, publicInputs, aggProof, verifierTr)
		require.NoError(t, err, "n=%d", n)
	}
}

func TestVerifyRejectsTamperedIPAB(t *testing.T) {
	n := 8
	prover, verifier := setupSRS(t, uint64(n))
	vk, proofs, publicInputs := syntheticBatch(n)
	pvk, err := groth16io.Prepare(vk)
	require.NoError(t, err)

	proverTr, err := transcript.New("snarkpack-test")
	require.NoError(t, err)
	aggProof, err := snarkpack.AggregateProofs(prover, proverTr, proofs)
	require.NoError(t, err)

	aggProof.IPAB = curve.GTMul(aggProof.IPAB, curve.GTExp(pvk.AlphaBeta, curve.One()))

	verifierTr, err := transcript.New("snarkpack-test")
	require.NoError(t, err)
	err = snarkpack.VerifyAggregateProof(verifier, pvk, publicInputs, aggProof, verifierTr)
	require.Error(t, err)
	var verr *snarkpack.VerificationError
	require.ErrorAs(t, err, &verr)
}

func TestVerifyRejectsBatchSizeMismatch(t *testing.T) {
	n := 8
	prover, verifier := setupSRS(t, uint64(n))
	vk, proofs, publicInputs := syntheticBatch(n)
	pvk, err := groth16io.Prepare(vk)
	require.NoError(t, err)

	proverTr, err := transcript.New("snarkpack-test")
	require.NoError(t, err)
	aggProof, err := snarkpack.AggregateProofs(prover, proverTr, proofs)
	require.NoError(t, err)

	verifierTr, err := transcript.New("snarkpack-test")
	require.NoError(t, err)
	err = snarkpack.VerifyAggregateProof(verifier, pvk, publicInputs[:4], aggProof, verifierTr)
	require.Error(t, err)
	var verr *snarkpack.VerificationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, snarkpack.ErrorKindBatchSizeMismatch, verr.Kind)
}

func TestAggregateRejectsProofCountMismatch(t *testing.T) {
	prover, _ := setupSRS(t, 8)
	_, proofs, _ := syntheticBatch(4)

	tr, err := transcript.New("snarkpack-test")
	require.NoError(t, err)
	_, err = snarkpack.AggregateProofs(prover, tr, proofs)
	require.ErrorIs(t, err, snarkpack.ErrInvalidBatchSize)
}

func TestAggregateIsTranscriptDeterministic(t *testing.T) {
	n := 4
	prover, _ := setupSRS(t, uint64(n))
	_, proofs, _ := syntheticBatch(n)

	tr1, err := transcript.New("snarkpack-test")
	require.NoError(t, err)
	p1, err := snarkpack.AggregateProofs(prover, tr1, proofs)
	require.NoError(t, err)

	tr2, err := transcript.New("snarkpack-test")
	require.NoError(t, err)
	p2, err := snarkpack.AggregateProofs(prover, tr2, proofs)
	require.NoError(t, err)

	require.True(t, curve.GTEqual(p1.ComAB.T, p2.ComAB.T))
	require.True(t, curve.GTEqual(p1.IPAB, p2.IPAB))
	require.True(t, curve.G1Equal(p1.AggC, p2.AggC))
	require.True(t, curve.G2Equal(p1.GIPA.FinalVKeyA, p2.GIPA.FinalVKeyA))
}
