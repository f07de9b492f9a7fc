package transcript_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

func TestChallengeDeterministic(t *testing.T) {
	run := func() curve.Scalar {
		tr, err := transcript.New("test aggregation")
		require.NoError(t, err)
		require.NoError(t, tr.Append("public-inputs", []byte("abc")))
		c, err := tr.Challenge()
		require.NoError(t, err)
		return c
	}

	c1 := run()
	c2 := run()
	require.Equal(t, c1, c2)
}

func TestChallengeSensitiveToOrderAndLabel(t *testing.T) {
	base, err := transcript.New("test aggregation")
	require.NoError(t, err)
	require.NoError(t, base.Append("a", []byte("x")))
	require.NoError(t, base.Append("b", []byte("y")))
	c1, err := base.Challenge()
	require.NoError(t, err)

	reordered, err := transcript.New("test aggregation")
	require.NoError(t, err)
	require.NoError(t, reordered.Append("b", []byte("y")))
	require.NoError(t, reordered.Append("a", []byte("x")))
	c2, err := reordered.Challenge()
	require.NoError(t, err)

	require.NotEqual(t, c1, c2)

	otherLabel, err := transcript.New("different label")
	require.NoError(t, err)
	require.NoError(t, otherLabel.Append("a", []byte("x")))
	require.NoError(t, otherLabel.Append("b", []byte("y")))
	c3, err := otherLabel.Challenge()
	require.NoError(t, err)

	require.NotEqual(t, c1, c3)
}

func TestSuccessiveChallengesDiffer(t *testing.T) {
	tr, err := transcript.New("test aggregation")
	require.NoError(t, err)
	require.NoError(t, tr.Append("round", []byte{0}))
	c1, err := tr.Challenge()
	require.NoError(t, err)

	require.NoError(t, tr.Append("round", []byte{1}))
	c2, err := tr.Challenge()
	require.NoError(t, err)

	require.NotEqual(t, c1, c2)
}
