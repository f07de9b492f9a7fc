package ipp

import (
	"golang.org/x/sync/errgroup"

	"github.com/MartinTeoZhang/snarkpack-slim/commitment"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

// Prove runs the combined TIPP+MIPP GIPA halving recursion. The caller is
// responsible for the aggregator-level preprocessing
// that precedes GIPA proper: scaling b by the per-proof random powers,
// scaling wkey by their inverses, and appending the un-folded commitments
// and the aggregated claims to the transcript before calling Prove. a, b, c,
// r, vkey and wkey must all agree in length, a power of two >= 1. It returns
// the full challenge ladder alongside the proof, round 1 first, for the
// caller's subsequent KZG opening step.
func Prove(tr *transcript.Transcript, vkey srs.VKey, wkey srs.WKey, a []curve.G1, b []curve.G2, c []curve.G1, r []curve.Scalar) (*GipaProof, []curve.Scalar, error) {
	m := len(a)
	if len(b) != m || len(c) != m || len(r) != m || vkey.Len() != m || wkey.Len() != m {
		return nil, nil, ErrLengthMismatch
	}
	if m == 0 || (m&(m-1)) != 0 {
		return nil, nil, ErrNotPowerOfTwo
	}

	proof := &GipaProof{}
	var challenges []curve.Scalar

	for m > 1 {
		half := m / 2
		aL, aR := a[:half], a[half:]
		bL, bR := b[:half], b[half:]
		cL, cR := c[:half], c[half:]
		rL, rR := r[:half], r[half:]
		vkL, vkR := vkey.Split()
		wkL, wkR := wkey.Split()

		// The round's eight cross-commitment/claim products are mutually
		// independent pairing and multi-scalar computations; run them
		// concurrently rather than back to back.
		var tippLeft, tippRight commitment.Pair
		var claimLeft, claimRight curve.GT
		var mippLeft, mippRight curve.GT
		var mippClaimLeft, mippClaimRight curve.G1

		grp := new(errgroup.Group)
		grp.Go(func() (err error) {
			tippLeft, err = commitment.TIPP(vkR, wkL, aL, bR)
			return err
		})
		grp.Go(func() (err error) {
			tippRight, err = commitment.TIPP(vkL, wkR, aR, bL)
			return err
		})
		grp.Go(func() (err error) {
			claimLeft, err = curve.PairingProduct(aL, bR)
			return err
		})
		grp.Go(func() (err error) {
			claimRight, err = curve.PairingProduct(aR, bL)
			return err
		})
		grp.Go(func() (err error) {
			mippLeft, err = curve.PairingProduct(cL, vkR.A)
			return err
		})
		grp.Go(func() (err error) {
			mippRight, err = curve.PairingProduct(cR, vkL.A)
			return err
		})
		grp.Go(func() (err error) {
			mippClaimLeft, err = curve.MSMG1(cL, rR)
			return err
		})
		grp.Go(func() (err error) {
			mippClaimRight, err = curve.MSMG1(cR, rL)
			return err
		})
		if err := grp.Wait(); err != nil {
			return nil, nil, err
		}

		tippComm := TIPPCrossComm{LeftT: tippLeft.T, LeftU: tippLeft.U, RightT: tippRight.T, RightU: tippRight.U}
		claimTipp := ClaimCrossTIPP{Left: claimLeft, Right: claimRight}
		mippComm := MIPPCrossComm{Left: mippLeft, Right: mippRight}
		claimMipp := ClaimCrossMIPP{Left: mippClaimLeft, Right: mippClaimRight}

		if err := appendRound(tr, tippComm, claimTipp, mippComm, claimMipp); err != nil {
			return nil, nil, err
		}
		x, xInv, err := squeezeRoundChallenge(tr)
		if err != nil {
			return nil, nil, err
		}
		challenges = append(challenges, x)

		a = foldG1Slice(aL, aR, x)
		b = foldG2Slice(bL, bR, xInv)
		c = foldG1Slice(cL, cR, x)
		r = foldScalarSlice(rL, rR, xInv)
		vkey = foldVKey(vkL, vkR, xInv)
		wkey = foldWKey(wkL, wkR, x)

		proof.CommsAB = append(proof.CommsAB, tippComm)
		proof.ZAB = append(proof.ZAB, claimTipp)
		proof.CommsC = append(proof.CommsC, mippComm)
		proof.ZC = append(proof.ZC, claimMipp)

		m = half
	}

	proof.FinalA = a[0]
	proof.FinalB = b[0]
	proof.FinalC = c[0]
	proof.FinalR = r[0]
	proof.FinalVKeyA = vkey.A[0]
	proof.FinalVKeyB = vkey.B[0]
	proof.FinalWKeyA = wkey.A[0]
	proof.FinalWKeyB = wkey.B[0]

	return proof, challenges, nil
}
