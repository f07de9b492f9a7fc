// Package groth16io defines the minimal black-box shapes the aggregator
// needs from the Groth16 proving system it treats as an external
// collaborator: the proof triple itself and the verifying key the
// aggregate's final pairing check ties back to.
package groth16io

import (
	"errors"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

// Proof is a single Groth16 proof: three group elements, under a proving
// key this package never sees.
type Proof struct {
	A curve.G1
	B curve.G2
	C curve.G1
}

// VerifyingKey is the public verification material for one Groth16
// circuit. IC (the "input commitment" basis) has one element per public
// input plus one constant term.
type VerifyingKey struct {
	Alpha curve.G1
	Beta  curve.G2
	Gamma curve.G2
	Delta curve.G2
	IC    []curve.G1
}

// ErrInputLengthMismatch is returned when a public-input vector doesn't
// match the verifying key's IC basis.
var ErrInputLengthMismatch = errors.New("groth16io: public input count does not match verifying key")

// PreparedVerifyingKey carries the verifying key together with the one
// pairing every single-proof verification reuses, e(alpha, beta),
// precomputed.
type PreparedVerifyingKey struct {
	VK        VerifyingKey
	AlphaBeta curve.GT
}

// Prepare precomputes e(alpha, beta), the one fixed pairing every
// single-proof Groth16 check and this package's aggregate consistency
// check both need.
func Prepare(vk VerifyingKey) (PreparedVerifyingKey, error) {
	ab, err := curve.PairingProduct([]curve.G1{vk.Alpha}, []curve.G2{vk.Beta})
	if err != nil {
		return PreparedVerifyingKey{}, err
	}
	return PreparedVerifyingKey{VK: vk, AlphaBeta: ab}, nil
}

// AggregatedInputCommitment computes the G1 point the aggregator's final
// check ties agg_c to: for each proof i with public inputs in[i], the
// standard Groth16 input commitment IC[0] + sum_j in[i][j]*IC[j+1], summed
// across the batch with the same per-proof random weights r_i the
// aggregator used to fold B and C.
func AggregatedInputCommitment(pvk PreparedVerifyingKey, publicInputs [][]curve.Scalar, r []curve.Scalar) (curve.G1, error) {
	if len(publicInputs) != len(r) {
		return curve.G1{}, ErrInputLengthMismatch
	}
	var points []curve.G1
	var scalars []curve.Scalar
	for i, in := range publicInputs {
		if len(in) != len(pvk.VK.IC)-1 {
			return curve.G1{}, ErrInputLengthMismatch
		}
		points = append(points, pvk.VK.IC[0])
		scalars = append(scalars, r[i])
		for j, x := range in {
			points = append(points, pvk.VK.IC[j+1])
			scalars = append(scalars, curve.Mul(r[i], x))
		}
	}
	return curve.MSMG1(points, scalars)
}
