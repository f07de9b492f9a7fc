package srs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MartinTeoZhang/snarkpack-slim/srs"
)

func fixedRNG() *bytes.Reader {
	seed := make([]byte, 4096)
	for i := range seed {
		seed[i] = byte(i*2 + 1)
	}
	return bytes.NewReader(seed)
}

func TestSetupFakeSRSRejectsBadSizes(t *testing.T) {
	_, err := srs.SetupFakeSRS(fixedRNG(), 1)
	require.ErrorIs(t, err, srs.ErrTooSmall)

	_, err = srs.SetupFakeSRS(fixedRNG(), 3)
	require.ErrorIs(t, err, srs.ErrNotPowerOfTwo)

	_, err = srs.SetupFakeSRS(fixedRNG(), srs.MaxSRSSize+1)
	require.ErrorIs(t, err, srs.ErrTooLarge)
}

func TestSpecializeProducesConsistentKeyLengths(t *testing.T) {
	generic, err := srs.SetupFakeSRS(fixedRNG(), 8)
	require.NoError(t, err)

	prover, verifier, err := generic.Specialize(8)
	require.NoError(t, err)
	require.Equal(t, uint64(8), verifier.N)
	require.NoError(t, prover.CheckInvariant())
	require.Equal(t, 3, prover.LogN())
	require.Equal(t, 8, prover.WKey.Len())

	_, _, err = generic.Specialize(16)
	require.ErrorIs(t, err, srs.ErrSpecializeTooLarge)
}

func TestSpecializeToSmallerBatch(t *testing.T) {
	generic, err := srs.SetupFakeSRS(fixedRNG(), 16)
	require.NoError(t, err)

	prover, _, err := generic.Specialize(4)
	require.NoError(t, err)
	require.Equal(t, 4, prover.VKey.Len())
	require.Equal(t, 4, prover.WKey.Len())
	require.NoError(t, prover.CheckInvariant())
}

func TestVKeySplitHalves(t *testing.T) {
	generic, err := srs.SetupFakeSRS(fixedRNG(), 8)
	require.NoError(t, err)
	prover, _, err := generic.Specialize(8)
	require.NoError(t, err)

	left, right := prover.VKey.Split()
	require.Equal(t, 4, left.Len())
	require.Equal(t, 4, right.Len())
}
