// Package proof defines the AggregateProof wire type and its canonical
// serialization: little-endian fixed-width scalars, the curve's canonical
// compressed point encoding, no length prefixes (round counts are implied
// by the batch size n negotiated out-of-band with the verifier).
package proof

import (
	"errors"
	"io"

	"github.com/MartinTeoZhang/snarkpack-slim/commitment"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/ipp"
	"github.com/MartinTeoZhang/snarkpack-slim/kzgopen"
)

// ErrTruncated is returned when a canonical-encoded proof ends before all
// of its implied fields have been read.
var ErrTruncated = errors.New("proof: truncated encoding")

// AggregateProof is the full succinct proof a batch of n Groth16 proofs
// compresses to. ComAB carries both halves (T,U) of the TIPP commitment
// since both are load-bearing for the GIPA fold and its verification.
type AggregateProof struct {
	ComAB commitment.Pair
	ComC  curve.GT

	IPAB curve.GT
	AggC curve.G1

	GIPA *ipp.GipaProof

	VKeyOpening kzgopen.VKeyOpening
	WKeyOpening kzgopen.WKeyOpening
}

// Serialize writes the canonical encoding of p to w.
func (p *AggregateProof) Serialize(w io.Writer) error {
	fields := [][]byte{
		curve.MarshalGT(p.ComAB.T),
		curve.MarshalGT(p.ComAB.U),
		curve.MarshalGT(p.ComC),
		curve.MarshalGT(p.IPAB),
		curve.MarshalG1(p.AggC),
	}
	for _, c := range p.GIPA.CommsAB {
		fields = append(fields,
			curve.MarshalGT(c.LeftT), curve.MarshalGT(c.LeftU),
			curve.MarshalGT(c.RightT), curve.MarshalGT(c.RightU))
	}
	for _, c := range p.GIPA.CommsC {
		fields = append(fields, curve.MarshalGT(c.Left), curve.MarshalGT(c.Right))
	}
	for _, z := range p.GIPA.ZAB {
		fields = append(fields, curve.MarshalGT(z.Left), curve.MarshalGT(z.Right))
	}
	for _, z := range p.GIPA.ZC {
		fields = append(fields, curve.MarshalG1(z.Left), curve.MarshalG1(z.Right))
	}
	fields = append(fields,
		curve.MarshalG1(p.GIPA.FinalA),
		curve.MarshalG2(p.GIPA.FinalB),
		curve.MarshalG1(p.GIPA.FinalC),
		curve.MarshalScalar(p.GIPA.FinalR),
		curve.MarshalG2(p.GIPA.FinalVKeyA),
		curve.MarshalG2(p.GIPA.FinalVKeyB),
		curve.MarshalG1(p.GIPA.FinalWKeyA),
		curve.MarshalG1(p.GIPA.FinalWKeyB),
		curve.MarshalG2(p.VKeyOpening.Alpha),
		curve.MarshalG2(p.VKeyOpening.Beta),
		curve.MarshalG1(p.WKeyOpening.Alpha),
		curve.MarshalG1(p.WKeyOpening.Beta),
	)

	for _, f := range fields {
		if _, err := w.Write(f); err != nil {
			return err
		}
	}
	return nil
}

// reader wraps an io.Reader with the curve's fixed-width field sizes so
// Deserialize can read one canonical element at a time without a length
// prefix.
type reader struct {
	r io.Reader
}

func (rd reader) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, ErrTruncated
	}
	return buf, nil
}

func (rd reader) g1() (curve.G1, error) {
	b, err := rd.read(len(curve.MarshalG1(curve.G1{})))
	if err != nil {
		return curve.G1{}, err
	}
	return curve.UnmarshalG1(b)
}

func (rd reader) g2() (curve.G2, error) {
	b, err := rd.read(len(curve.MarshalG2(curve.G2{})))
	if err != nil {
		return curve.G2{}, err
	}
	return curve.UnmarshalG2(b)
}

func (rd reader) gt() (curve.GT, error) {
	b, err := rd.read(len(curve.MarshalGT(curve.GT{})))
	if err != nil {
		return curve.GT{}, err
	}
	return curve.UnmarshalGT(b)
}

func (rd reader) scalar() (curve.Scalar, error) {
	b, err := rd.read(len(curve.MarshalScalar(curve.Scalar{})))
	if err != nil {
		return curve.Scalar{}, err
	}
	return curve.UnmarshalScalar(b)
}

// Deserialize reads the canonical encoding of an AggregateProof produced
// by a batch of logN halving rounds (logN = log2(n), n the negotiated
// batch size).
func Deserialize(r io.Reader, logN int) (*AggregateProof, error) {
	rd := reader{r}
	p := &AggregateProof{GIPA: &ipp.GipaProof{}}

	var err error
	if p.ComAB.T, err = rd.gt(); err != nil {
		return nil, err
	}
	if p.ComAB.U, err = rd.gt(); err != nil {
		return nil, err
	}
	if p.ComC, err = rd.gt(); err != nil {
		return nil, err
	}
	if p.IPAB, err = rd.gt(); err != nil {
		return nil, err
	}
	if p.AggC, err = rd.g1(); err != nil {
		return nil, err
	}

	p.GIPA.CommsAB = make([]ipp.TIPPCrossComm, logN)
	for i := range p.GIPA.CommsAB {
		c := &p.GIPA.CommsAB[i]
		if c.LeftT, err = rd.gt(); err != nil {
			return nil, err
		}
		if c.LeftU, err = rd.gt(); err != nil {
			return nil, err
		}
		if c.RightT, err = rd.gt(); err != nil {
			return nil, err
		}
		if c.RightU, err = rd.gt(); err != nil {
			return nil, err
		}
	}

	p.GIPA.CommsC = make([]ipp.MIPPCrossComm, logN)
	for i := range p.GIPA.CommsC {
		c := &p.GIPA.CommsC[i]
		if c.Left, err = rd.gt(); err != nil {
			return nil, err
		}
		if c.Right, err = rd.gt(); err != nil {
			return nil, err
		}
	}

	p.GIPA.ZAB = make([]ipp.ClaimCrossTIPP, logN)
	for i := range p.GIPA.ZAB {
		z := &p.GIPA.ZAB[i]
		if z.Left, err = rd.gt(); err != nil {
			return nil, err
		}
		if z.Right, err = rd.gt(); err != nil {
			return nil, err
		}
	}

	p.GIPA.ZC = make([]ipp.ClaimCrossMIPP, logN)
	for i := range p.GIPA.ZC {
		z := &p.GIPA.ZC[i]
		if z.Left, err = rd.g1(); err != nil {
			return nil, err
		}
		if z.Right, err = rd.g1(); err != nil {
			return nil, err
		}
	}

	if p.GIPA.FinalA, err = rd.g1(); err != nil {
		return nil, err
	}
	if p.GIPA.FinalB, err = rd.g2(); err != nil {
		return nil, err
	}
	if p.GIPA.FinalC, err = rd.g1(); err != nil {
		return nil, err
	}
	if p.GIPA.FinalR, err = rd.scalar(); err != nil {
		return nil, err
	}
	if p.GIPA.FinalVKeyA, err = rd.g2(); err != nil {
		return nil, err
	}
	if p.GIPA.FinalVKeyB, err = rd.g2(); err != nil {
		return nil, err
	}
	if p.GIPA.FinalWKeyA, err = rd.g1(); err != nil {
		return nil, err
	}
	if p.GIPA.FinalWKeyB, err = rd.g1(); err != nil {
		return nil, err
	}
	if p.VKeyOpening.Alpha, err = rd.g2(); err != nil {
		return nil, err
	}
	if p.VKeyOpening.Beta, err = rd.g2(); err != nil {
		return nil, err
	}
	if p.WKeyOpening.Alpha, err = rd.g1(); err != nil {
		return nil, err
	}
	if p.WKeyOpening.Beta, err = rd.g1(); err != nil {
		return nil, err
	}

	return p, nil
}
