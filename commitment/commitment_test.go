package commitment_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MartinTeoZhang/snarkpack-slim/commitment"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
)

func fixedRNG() *bytes.Reader {
	seed := make([]byte, 4096)
	for i := range seed {
		seed[i] = byte(i*7 + 3)
	}
	return bytes.NewReader(seed)
}

func TestTIPPRejectsLengthMismatch(t *testing.T) {
	generic, err := srs.SetupFakeSRS(fixedRNG(), 4)
	require.NoError(t, err)
	prover, _, err := generic.Specialize(4)
	require.NoError(t, err)

	_, err = commitment.TIPP(prover.VKey, prover.WKey, make([]curve.G1, 3), make([]curve.G2, 4))
	require.ErrorIs(t, err, commitment.ErrLengthMismatch)
}

func TestMIPPRejectsLengthMismatch(t *testing.T) {
	generic, err := srs.SetupFakeSRS(fixedRNG(), 4)
	require.NoError(t, err)
	prover, _, err := generic.Specialize(4)
	require.NoError(t, err)

	_, err = commitment.MIPP(prover.VKey, make([]curve.G1, 4), make([]curve.Scalar, 2))
	require.ErrorIs(t, err, commitment.ErrLengthMismatch)
}

func TestTIPPDeterministic(t *testing.T) {
	generic, err := srs.SetupFakeSRS(fixedRNG(), 4)
	require.NoError(t, err)
	prover, _, err := generic.Specialize(4)
	require.NoError(t, err)

	g, h := curve.Generators()
	a := []curve.G1{g, g, g, g}
	b := []curve.G2{h, h, h, h}

	c1, err := commitment.TIPP(prover.VKey, prover.WKey, a, b)
	require.NoError(t, err)
	c2, err := commitment.TIPP(prover.VKey, prover.WKey, a, b)
	require.NoError(t, err)

	require.True(t, curve.GTEqual(c1.T, c2.T))
	require.True(t, curve.GTEqual(c1.U, c2.U))
}
