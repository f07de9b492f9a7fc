// Package api is the public entry point into the aggregation library: a
// Context bound to one (ProverSRS, VerifierSRS) pair for a fixed batch
// size n, exposing setup, aggregation and verification as single method
// calls. It does no novel work of its own — every method is a thin call
// into srs or the root aggregation package.
package api

import (
	"io"

	"github.com/MartinTeoZhang/snarkpack-slim"
	"github.com/MartinTeoZhang/snarkpack-slim/curve"
	"github.com/MartinTeoZhang/snarkpack-slim/groth16io"
	"github.com/MartinTeoZhang/snarkpack-slim/proof"
	"github.com/MartinTeoZhang/snarkpack-slim/srs"
	"github.com/MartinTeoZhang/snarkpack-slim/transcript"
)

// Context bundles a specialized prover/verifier SRS pair for a fixed batch
// size. Safe for concurrent read-only use across multiple proving and
// verification calls, since both underlying SRS types are immutable after
// construction.
type Context struct {
	ProverSRS   *srs.ProverSRS
	VerifierSRS *srs.VerifierSRS
}

// NewContextFromCeremony loads a production SRS from a YAML ceremony
// manifest and specializes it to batch size n.
func NewContextFromCeremony(r io.Reader, n uint64) (*Context, error) {
	generic, err := srs.LoadCeremonyManifest(r)
	if err != nil {
		return nil, err
	}
	return newContext(generic, n)
}

// NewFakeContext builds a test-only Context from a freshly sampled
// toxic-waste SRS, bypassing any ceremony. Never use outside tests.
func NewFakeContext(rd io.Reader, n uint64) (*Context, error) {
	generic, err := srs.SetupFakeSRS(rd, n)
	if err != nil {
		return nil, err
	}
	return newContext(generic, n)
}

func newContext(generic *srs.GenericSRS, n uint64) (*Context, error) {
	prover, verifier, err := generic.Specialize(n)
	if err != nil {
		return nil, err
	}
	return &Context{ProverSRS: prover, VerifierSRS: verifier}, nil
}

// Aggregate compresses proofs (len(proofs) == c.ProverSRS.N) into a single
// AggregateProof under the protocol label label.
func (c *Context) Aggregate(label string, proofs []groth16io.Proof) (*proof.AggregateProof, error) {
	tr, err := transcript.New(label)
	if err != nil {
		return nil, err
	}
	return snarkpack.AggregateProofs(c.ProverSRS, tr, proofs)
}

// Verify checks an AggregateProof produced by Aggregate under the same
// protocol label and prepared verifying key.
func (c *Context) Verify(label string, pvk groth16io.PreparedVerifyingKey, publicInputs [][]curve.Scalar, aggProof *proof.AggregateProof) error {
	tr, err := transcript.New(label)
	if err != nil {
		return err
	}
	return snarkpack.VerifyAggregateProof(c.VerifierSRS, pvk, publicInputs, aggProof, tr)
}

// VerifyEncoded decodes an AggregateProof from its canonical wire encoding
// and verifies it in one call, under the same protocol label and prepared
// verifying key Verify uses. Decode failures come back wrapped in the same
// VerificationError taxonomy a failed pairing check would return.
func (c *Context) VerifyEncoded(label string, pvk groth16io.PreparedVerifyingKey, publicInputs [][]curve.Scalar, r io.Reader) error {
	aggProof, err := snarkpack.DeserializeAggregateProof(r, c.ProverSRS.LogN())
	if err != nil {
		return err
	}
	return c.Verify(label, pvk, publicInputs, aggProof)
}
