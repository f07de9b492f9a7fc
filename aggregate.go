package snarkpack

import (
	"errors"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/MartinTeoZhang/snarkpack-slim/commitment"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/groth16io"
	"github.com/MartinTeoZhang/snarkpack-slim/ipp"
	"github.com/MartinTeoZhang/snarkpack-slim/kzgopen"
	"github.com/MartinTeoZhang/snarkpack-slim/proof"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

// ErrInvalidBatchSize is returned when the number of proofs supplied to
// AggregateProofs does not match the prover SRS's specialized size.
var ErrInvalidBatchSize = errors.New("snarkpack: number of proofs does not match srs size")

// AggregateProofs compresses a batch of n Groth16 proofs (n = proverSRS.N)
// into a single AggregateProof. The caller owns tr and is expected to have
// already appended any context it wants bound ahead of this call (e.g. the
// public inputs, so a proof can't be replayed against a different
// statement); this function only performs the aggregator's own steps.
//
// Unlike VerifyAggregateProof this is not hardened against an adversarial
// caller — it is the honest prover's own code path — so it returns the
// underlying sentinel errors directly rather than a coarse VerificationError.
func AggregateProofs(proverSRS *srs.ProverSRS, tr *transcript.Transcript, proofs []groth16io.Proof) (*proof.AggregateProof, error) {
	n := len(proofs)
	if uint64(n) != proverSRS.N {
		return nil, ErrInvalidBatchSize
	}
	if err := proverSRS.CheckInvariant(); err != nil {
		return nil, err
	}

	a := make([]curve.G1, n)
	bRaw := make([]curve.G2, n)
	c := make([]curve.G1, n)
	for i, p := range proofs {
		a[i], bRaw[i], c[i] = p.A, p.B, p.C
	}

	// T_C doesn't depend on r (commitment.MIPP's U is the unused placeholder
	// aggregate), so the un-folded MIPP commitment can be computed with any
	// weight vector; a vector of ones keeps the call shape uniform with the
	// post-fold calls below.
	ones := make([]curve.Scalar, n)
	for i := range ones {
		ones[i] = curve.One()
	}

	var tippCom commitment.Pair
	var mippCom commitment.MixedPair
	grp := new(errgroup.Group)
	grp.Go(func() (err error) {
		tippCom, err = commitment.TIPP(proverSRS.VKey, proverSRS.WKey, a, bRaw)
		return err
	})
	grp.Go(func() (err error) {
		mippCom, err = commitment.MIPP(proverSRS.VKey, c, ones)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if err := tr.AppendGT("com-ab-t", tippCom.T); err != nil {
		return nil, err
	}
	if err := tr.AppendGT("com-ab-u", tippCom.U); err != nil {
		return nil, err
	}
	if err := tr.AppendGT("com-c-t", mippCom.T); err != nil {
		return nil, err
	}
	r, err := tr.Challenge()
	if err != nil {
		return nil, err
	}

	rPowers := powers(r, n)
	rInvPowers := curve.BatchInvert(append([]curve.Scalar(nil), rPowers...))

	b := make([]curve.G2, n)
	for i := range b {
		var e big.Int
		curve.BigInt(rPowers[i], &e)
		b[i] = curve.ScalarMulG2(bRaw[i], &e)
	}

	wkeyScaled := srs.WKey{A: make([]curve.G1, n), B: make([]curve.G1, n)}
	for i := range wkeyScaled.A {
		var e big.Int
		curve.BigInt(rInvPowers[i], &e)
		wkeyScaled.A[i] = curve.ScalarMulG1(proverSRS.WKey.A[i], &e)
		wkeyScaled.B[i] = curve.ScalarMulG1(proverSRS.WKey.B[i], &e)
	}

	ipAB, err := curve.PairingProduct(a, b)
	if err != nil {
		return nil, err
	}
	aggC, err := curve.MSMG1(c, rPowers)
	if err != nil {
		return nil, err
	}

	if err := tr.AppendGT("ip-ab", ipAB); err != nil {
		return nil, err
	}
	if err := tr.AppendG1("agg-c", aggC); err != nil {
		return nil, err
	}

	gipaProof, challenges, err := ipp.Prove(tr, proverSRS.VKey, wkeyScaled, a, b, c, rPowers)
	if err != nil {
		return nil, err
	}

	if err := appendFinalGipa(tr, gipaProof); err != nil {
		return nil, err
	}
	z, err := tr.Challenge()
	if err != nil {
		return nil, err
	}

	vkeyOpening, err := kzgopen.OpenVKey(proverSRS.VKey.A, proverSRS.VKey.B, invertLadder(challenges), z)
	if err != nil {
		return nil, err
	}
	wkeyOpening, err := kzgopen.OpenWKey(proverSRS.WKey.A, proverSRS.WKey.B, wOpenChallenges(challenges, rInvPowers), z)
	if err != nil {
		return nil, err
	}

	return &proof.AggregateProof{
		ComAB:       tippCom,
		ComC:        mippCom.T,
		IPAB:        ipAB,
		AggC:        aggC,
		GIPA:        gipaProof,
		VKeyOpening: vkeyOpening,
		WKeyOpening: wkeyOpening,
	}, nil
}
