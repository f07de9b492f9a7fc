package ipp

import (
	"math/big"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

// foldG1 returns l + [x]r.
func foldG1(l, r curve.G1, x curve.Scalar) curve.G1 {
	var xBig big.Int
	curve.BigInt(x, &xBig)
	return curve.AddG1(l, curve.ScalarMulG1(r, &xBig))
}

// foldG2 returns l + [x]r.
func foldG2(l, r curve.G2, x curve.Scalar) curve.G2 {
	var xBig big.Int
	curve.BigInt(x, &xBig)
	return curve.AddG2(l, curve.ScalarMulG2(r, &xBig))
}

func foldG1Slice(l, r []curve.G1, x curve.Scalar) []curve.G1 {
	out := make([]curve.G1, len(l))
	for i := range l {
		out[i] = foldG1(l[i], r[i], x)
	}
	return out
}

func foldG2Slice(l, r []curve.G2, x curve.Scalar) []curve.G2 {
	out := make([]curve.G2, len(l))
	for i := range l {
		out[i] = foldG2(l[i], r[i], x)
	}
	return out
}

func foldScalarSlice(l, r []curve.Scalar, x curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, len(l))
	for i := range l {
		out[i] = curve.Add(l[i], curve.Mul(x, r[i]))
	}
	return out
}

// foldVKey folds the left/right halves of a V commitment key. The key fold
// uses the INVERSE of the challenge that folds the witness: witness folds
// with x on the right, keys fold with x^-1 on the right, and that
// asymmetry is what makes the final commitment openable via the
// product-form polynomial in kzgopen.
func foldVKey(l, r srs.VKey, xInv curve.Scalar) srs.VKey {
	return srs.VKey{
		A: foldG2Slice(l.A, r.A, xInv),
		B: foldG2Slice(l.B, r.B, xInv),
	}
}

// foldWKey folds the left/right halves of a W commitment key, using the
// challenge itself (not its inverse) on the right-hand side — the
// complementary asymmetry to foldVKey.
func foldWKey(l, r srs.WKey, x curve.Scalar) srs.WKey {
	return srs.WKey{
		A: foldG1Slice(l.A, r.A, x),
		B: foldG1Slice(l.B, r.B, x),
	}
}

// squeezeRoundChallenge squeezes the round's folding challenge plus its
// inverse. The round's cross-commitments and claims must already have been
// absorbed by appendRound.
func squeezeRoundChallenge(tr *transcript.Transcript) (x, xInv curve.Scalar, err error) {
	x, err = tr.Challenge()
	if err != nil {
		return curve.Scalar{}, curve.Scalar{}, err
	}
	xInv = curve.Inverse(x)
	return x, xInv, nil
}
