package snarkpack

import (
	"errors"
	"io"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/proof"
)

// DeserializeAggregateProof decodes an AggregateProof produced by
// AggregateProofs for a batch of size 2^logN, wrapping decode failures
// into the same VerificationError taxonomy VerifyAggregateProof uses: a
// point failing its prime-order subgroup check reports
// ErrorKindMalformedInput, anything else (truncated input, an underlying
// read error) reports ErrorKindSerialization.
func DeserializeAggregateProof(r io.Reader, logN int) (*proof.AggregateProof, error) {
	p, err := proof.Deserialize(r, logN)
	if err != nil {
		if errors.Is(err, curve.ErrNotInSubgroup) {
			return nil, reject(ErrorKindMalformedInput)
		}
		return nil, reject(ErrorKindSerialization)
	}
	return p, nil
}
