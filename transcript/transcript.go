// Package transcript implements the Fiat-Shamir challenge derivation shared
// by the prover and the verifier. It is a thin, domain-separating wrapper
// around gnark-crypto's fiat-shamir duplex (the same primitive
// ecc/bls12-377/fr/kzg uses to derive its folding challenge "gamma"),
// generalized from a single named challenge to the append-then-squeeze
// ladder the aggregation protocol needs.
package transcript

import (
	"crypto/sha256"
	"errors"
	"hash"

	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

// ErrEmptyLabel is returned when New is called with an empty protocol label.
var ErrEmptyLabel = errors.New("transcript: protocol label must not be empty")

// Transcript is an append-only Fiat-Shamir channel. It is single-writer: a
// prover call and a verifier call each own an independent instance, and
// neither shares one across goroutines.
type Transcript struct {
	label string
	hash  hash.Hash
	ft    *fiatshamir.Transcript
	round int
}

// New initialises a transcript under a protocol label. The label is bound
// into the very first challenge, so transcripts created under different
// labels never collide even given identical subsequent appends.
func New(label string) (*Transcript, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	t := &Transcript{label: label, hash: sha256.New()}
	t.reset()
	if err := t.Append("protocol-label", []byte(label)); err != nil {
		return nil, err
	}
	return t, nil
}

// reset (re)allocates the underlying duplex for the next challenge id. A
// fresh fiatshamir.Transcript is one-shot per named challenge, so each
// round we mint a new one, reusing the id "challenge" as the single
// rolling channel name; Challenge then binds the previous challenge into
// it, and that challenge already commits to every message appended before
// it. This
// keeps absorb order identical to append order while letting us squeeze an
// arbitrary number of challenges, matching the append/challenge() contract
// in the protocol description rather than fiat-shamir's one-name-per-call
// API.
func (t *Transcript) reset() {
	t.ft = fiatshamir.NewTranscript(t.hash, "challenge")
	t.round++
}

// Append absorbs domain-tagged message bytes into the transcript. The
// domainTag is bound ahead of message so that reordering domains or
// relabeling a message changes every subsequent challenge.
func (t *Transcript) Append(domainTag string, message []byte) error {
	if err := t.ft.Bind("challenge", []byte(domainTag)); err != nil {
		return err
	}
	return t.ft.Bind("challenge", message)
}

// AppendScalar absorbs a field element under domainTag.
func (t *Transcript) AppendScalar(domainTag string, s curve.Scalar) error {
	return t.Append(domainTag, curve.MarshalScalar(s))
}

// AppendG1 absorbs a G1 point under domainTag.
func (t *Transcript) AppendG1(domainTag string, p curve.G1) error {
	return t.Append(domainTag, curve.MarshalG1(p))
}

// AppendG2 absorbs a G2 point under domainTag.
func (t *Transcript) AppendG2(domainTag string, p curve.G2) error {
	return t.Append(domainTag, curve.MarshalG2(p))
}

// AppendGT absorbs a GT element under domainTag.
func (t *Transcript) AppendGT(domainTag string, a curve.GT) error {
	return t.Append(domainTag, curve.MarshalGT(a))
}

// Challenge squeezes one scalar challenge, deterministically derived from
// every byte appended since the transcript (or the last challenge) began.
// It then re-seeds the duplex with the challenge itself bound in, so the
// next append/challenge round is still a pure function of the exact
// sequence of operations performed so far.
func (t *Transcript) Challenge() (curve.Scalar, error) {
	raw, err := t.ft.ComputeChallenge("challenge")
	if err != nil {
		return curve.Scalar{}, err
	}
	var c curve.Scalar
	c.SetBytes(raw)
	if curve.IsZero(c) {
		return curve.Scalar{}, ErrZeroChallenge
	}
	t.reset()
	if err := t.Append("previous-challenge", raw); err != nil {
		return curve.Scalar{}, err
	}
	return c, nil
}

// ErrZeroChallenge is returned in the statistically negligible event a
// squeezed challenge reduces to zero. The protocol is deterministic given
// its inputs, so the prover is expected to treat this as fatal rather than
// resample; see spec's numeric-edge-cases note.
var ErrZeroChallenge = errors.New("transcript: challenge reduced to zero")
