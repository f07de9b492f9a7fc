package kzgopen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/kzgopen"
)

func scalar(v uint64) curve.Scalar {
	return curve.ScalarFromUint64(v)
}

// evalNaive evaluates a low-degree-first coefficient list at z by Horner's
// method, the textbook O(n) reference this test checks the O(log n)
// closed-form evaluation against.
func evalNaive(coeffs []curve.Scalar, z curve.Scalar) curve.Scalar {
	res := curve.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		res = curve.Add(curve.Mul(res, z), coeffs[i])
	}
	return res
}

func TestEvalFMatchesNaiveExpansion(t *testing.T) {
	challenges := []curve.Scalar{scalar(2), scalar(3), scalar(5)}
	z := scalar(7)

	f := kzgopen.BuildF(challenges)
	require.Len(t, f, 8)

	want := evalNaive(f, z)
	got := kzgopen.EvalF(challenges, z)
	require.True(t, want.Equal(&got))
}

func TestDivideByLinearIsExactQuotient(t *testing.T) {
	challenges := []curve.Scalar{scalar(2), scalar(3)}
	z := scalar(9)

	f := kzgopen.BuildF(challenges)
	fz := kzgopen.EvalF(challenges, z)
	q := kzgopen.DivideByLinear(f, z)

	// (X-z)*q(X) + f(z) must reconstruct f(X) coefficient-wise.
	reconstructed := make([]curve.Scalar, len(f))
	for i := range reconstructed {
		reconstructed[i] = curve.Zero()
	}
	reconstructed[0] = fz
	for i, qi := range q {
		reconstructed[i] = curve.Add(reconstructed[i], curve.Mul(curve.Neg(z), qi))
		reconstructed[i+1] = curve.Add(reconstructed[i+1], qi)
	}

	for i := range f {
		require.Equal(t, f[i], reconstructed[i], "coefficient %d", i)
	}
}
