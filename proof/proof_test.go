package proof_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MartinTeoZhang/snarkpack-slim/commitment"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/ipp"
	"github.com/MartinTeoZhang/snarkpack-slim/kzgopen"
	"github.com/MartinTeoZhang/snarkpack-slim/proof"
)

func sampleProof(logN int) *proof.AggregateProof {
	g, h := curve.Generators()
	gt, _ := curve.PairingProduct([]curve.G1{g}, []curve.G2{h})

	gipa := &ipp.GipaProof{
		FinalA: g, FinalB: h, FinalC: g, FinalR: curve.ScalarFromUint64(7),
		FinalVKeyA: h, FinalVKeyB: h, FinalWKeyA: g, FinalWKeyB: g,
	}
	for i := 0; i < logN; i++ {
		gipa.CommsAB = append(gipa.CommsAB, ipp.TIPPCrossComm{LeftT: gt, LeftU: gt, RightT: gt, RightU: gt})
		gipa.CommsC = append(gipa.CommsC, ipp.MIPPCrossComm{Left: gt, Right: gt})
		gipa.ZAB = append(gipa.ZAB, ipp.ClaimCrossTIPP{Left: gt, Right: gt})
		gipa.ZC = append(gipa.ZC, ipp.ClaimCrossMIPP{Left: g, Right: g})
	}

	return &proof.AggregateProof{
		ComAB:       commitment.Pair{T: gt, U: gt},
		ComC:        gt,
		IPAB:        gt,
		AggC:        g,
		GIPA:        gipa,
		VKeyOpening: kzgopen.VKeyOpening{Alpha: h, Beta: h},
		WKeyOpening: kzgopen.WKeyOpening{Alpha: g, Beta: g},
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	for _, logN := range []int{1, 2, 3} {
		p := sampleProof(logN)

		var buf bytes.Buffer
		require.NoError(t, p.Serialize(&buf))

		got, err := proof.Deserialize(&buf, logN)
		require.NoError(t, err)

		require.True(t, curve.GTEqual(p.ComAB.T, got.ComAB.T))
		require.True(t, curve.GTEqual(p.ComAB.U, got.ComAB.U))
		require.True(t, curve.GTEqual(p.ComC, got.ComC))
		require.True(t, curve.GTEqual(p.IPAB, got.IPAB))
		require.True(t, curve.G1Equal(p.AggC, got.AggC))
		require.Equal(t, p.GIPA.Rounds(), got.GIPA.Rounds())
		require.True(t, curve.G1Equal(p.GIPA.FinalA, got.GIPA.FinalA))
		require.True(t, curve.G2Equal(p.GIPA.FinalB, got.GIPA.FinalB))
		require.Equal(t, p.GIPA.FinalR, got.GIPA.FinalR)
		require.True(t, curve.G2Equal(p.VKeyOpening.Alpha, got.VKeyOpening.Alpha))
		require.True(t, curve.G1Equal(p.WKeyOpening.Alpha, got.WKeyOpening.Alpha))
	}
}

func TestDeserializeRejectsTruncatedInput(t *testing.T) {
	p := sampleProof(2)
	var buf bytes.Buffer
	require.NoError(t, p.Serialize(&buf))

	truncated := buf.Bytes()[:buf.Len()-10]
	_, err := proof.Deserialize(bytes.NewReader(truncated), 2)
	require.ErrorIs(t, err, proof.ErrTruncated)
}
