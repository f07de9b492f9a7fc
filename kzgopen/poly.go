// Package kzgopen implements the structured commitment-key polynomial and
// its KZG-style opening: the closed-form product polynomial f(X) whose
// evaluation at alpha/beta reproduces a commitment key's final folded
// value, and the single-point opening proof tying it to the SRS. Both the
// V key and the W key open the same polynomial shape; only the challenge
// ladder fed into it and the basis it is committed against differ (see
// OpenVKey/OpenWKey).
package kzgopen

import "github.com/MartinTeoZhang/snarkpack-slim/curve"

// BuildF returns the coefficients (low-degree first) of
//
//	f(X) = prod_{j=0}^{k-1} (1 + x_{k-j} X^{2^j})
//
// where challenges = (x_1, ..., x_k) is the GIPA challenge ladder in the
// order it was produced (round 1 first). f has degree 2^k - 1 = n - 1.
func BuildF(challenges []curve.Scalar) []curve.Scalar {
	k := len(challenges)
	coeffs := []curve.Scalar{curve.One()}
	for j := 0; j < k; j++ {
		x := challenges[k-1-j]
		shift := 1 << uint(j)
		next := make([]curve.Scalar, len(coeffs)+shift)
		copy(next, coeffs)
		for i, c := range coeffs {
			next[i+shift] = curve.Add(next[i+shift], curve.Mul(c, x))
		}
		coeffs = next
	}
	return coeffs
}

// EvalF evaluates f at z in O(log n) field operations using the closed
// product form directly, without ever materialising its n coefficients —
// the trick the verifier relies on for sublinear cost. challenges need not
// be the raw GIPA ladder: callers evaluating the V-key or W-key polynomial
// pass in whatever per-round ladder that key's opening is defined over
// (see OpenVKey/OpenWKey).
func EvalF(challenges []curve.Scalar, z curve.Scalar) curve.Scalar {
	k := len(challenges)
	res := curve.One()
	zp := z
	for j := 0; j < k; j++ {
		x := challenges[k-1-j]
		res = curve.Mul(res, curve.Add(curve.One(), curve.Mul(x, zp)))
		zp = curve.Square(zp)
	}
	return res
}

// DivideByLinear computes the coefficients of q(X) = (f(X) - f(z))/(X-z)
// via synthetic division, given f's coefficients (low-degree first) and
// the point z. The remainder (which equals f(z)) is discarded; callers
// that need f(z) use EvalF instead of recovering it here.
func DivideByLinear(coeffs []curve.Scalar, z curve.Scalar) []curve.Scalar {
	n := len(coeffs)
	if n == 0 {
		return nil
	}
	q := make([]curve.Scalar, n-1)
	if n == 1 {
		return q
	}
	q[n-2] = coeffs[n-1]
	for i := n - 2; i >= 1; i-- {
		q[i-1] = curve.Add(coeffs[i], curve.Mul(z, q[i]))
	}
	return q
}
