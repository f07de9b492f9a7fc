package curve

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// MSMG1 computes sum_i scalars[i]*points[i] in G1.
func MSMG1(points []G1, scalars []Scalar) (G1, error) {
	var res G1
	if len(points) == 0 {
		return res, nil
	}
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G1{}, err
	}
	return res, nil
}

// MSMG2 computes sum_i scalars[i]*points[i] in G2.
func MSMG2(points []G2, scalars []Scalar) (G2, error) {
	var res G2
	if len(points) == 0 {
		return res, nil
	}
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G2{}, err
	}
	return res, nil
}

// BatchScalarMulG1 scales the same base point by each of scalars, the way
// srs construction scales a single generator by successive powers of a
// toxic-waste exponent.
func BatchScalarMulG1(base G1, scalars []Scalar) []G1 {
	return bls12381.BatchScalarMultiplicationG1(&base, scalars)
}
