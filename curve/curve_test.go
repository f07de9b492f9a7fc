package curve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

func TestPairingEqualSmoke(t *testing.T) {
	g, h := curve.Generators()

	three := big.NewInt(3)
	five := big.NewInt(5)

	p1 := curve.ScalarMulG1(g, three)
	p2 := curve.ScalarMulG2(h, five)

	// e([3]g, [5]h) == e([5]g, [3]h), both equal e(g,h)^15.
	p3 := curve.ScalarMulG1(g, five)
	p4 := curve.ScalarMulG2(h, three)

	ok, err := curve.PairingEqual(p1, p2, p3, p4)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBatchInvertRoundTrip(t *testing.T) {
	a := curve.ScalarFromUint64(7)
	b := curve.ScalarFromUint64(11)

	invs := curve.BatchInvert([]curve.Scalar{a, b})
	require.Equal(t, curve.One(), curve.Mul(a, invs[0]))
	require.Equal(t, curve.One(), curve.Mul(b, invs[1]))
}

func TestGTExpMatchesRepeatedMul(t *testing.T) {
	g, h := curve.Generators()
	base, err := curve.PairingProduct([]curve.G1{g}, []curve.G2{h})
	require.NoError(t, err)

	exp := curve.ScalarFromUint64(4)
	got := curve.GTExp(base, exp)

	want := curve.GTOne()
	for i := 0; i < 4; i++ {
		want = curve.GTMul(want, base)
	}
	require.True(t, curve.GTEqual(got, want))
}
