package curve

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GTOne is the multiplicative identity of GT.
func GTOne() GT {
	var z GT
	z.SetOne()
	return z
}

// GTMul returns a*b (GT is written multiplicatively).
func GTMul(a, b GT) GT {
	var r GT
	r.Mul(&a, &b)
	return r
}

// GTInverse returns a^-1.
func GTInverse(a GT) GT {
	var r GT
	r.Inverse(&a)
	return r
}

// GTExp returns a^e.
func GTExp(a GT, e Scalar) GT {
	var eBig big.Int
	e.BigInt(&eBig)
	var out GT
	out.Exp(a, &eBig)
	return out
}

// GTEqual reports whether a == b.
func GTEqual(a, b GT) bool {
	return a.Equal(&b)
}

// PairingProduct computes prod_i e(p1[i], p2[i]) as a single GT element.
// len(p1) must equal len(p2).
func PairingProduct(p1 []G1, p2 []G2) (GT, error) {
	return bls12381.Pair(p1, p2)
}

// PairingCheck reports whether prod_i e(p1[i], p2[i]) == 1.
func PairingCheck(p1 []G1, p2 []G2) (bool, error) {
	return bls12381.PairingCheck(p1, p2)
}

// PairingEqual reports whether e(a1,a2) == e(b1,b2), by folding it into a
// single PairingCheck over the negation of one side.
func PairingEqual(a1 G1, a2 G2, b1 G1, b2 G2) (bool, error) {
	negB1 := NegG1(b1)
	return PairingCheck([]G1{a1, negB1}, []G2{a2, b2})
}
