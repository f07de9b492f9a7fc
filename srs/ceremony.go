package srs

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

// CeremonyManifest is the on-disk shape of a powers-of-tau ceremony output,
// the way a production SRS actually reaches this library. Hex-encoded
// power sequences plus a declared size, in YAML, over two toxic-waste
// exponents (alpha, beta) rather than one, matching this protocol's
// VKey/WKey shape.
type CeremonyManifest struct {
	N            uint64   `yaml:"n"`
	G1AlphaPower []string `yaml:"g1_alpha_powers"`
	G1BetaPower  []string `yaml:"g1_beta_powers"`
	G2AlphaPower []string `yaml:"g2_alpha_powers"`
	G2BetaPower  []string `yaml:"g2_beta_powers"`
}

// ErrMalformedManifest is returned when a ceremony manifest fails
// structural or curve-membership validation.
var ErrMalformedManifest = errors.New("srs: malformed ceremony manifest")

// LoadCeremonyManifest parses and validates a YAML ceremony manifest into a
// GenericSRS, checking that every declared power is a well-formed,
// subgroup-member curve point and that the declared size is a power of two
// within MaxSRSSize.
func LoadCeremonyManifest(r io.Reader) (*GenericSRS, error) {
	var manifest CeremonyManifest
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedManifest, err)
	}

	if err := checkSize(manifest.N); err != nil {
		return nil, err
	}
	total := 2 * manifest.N
	if uint64(len(manifest.G1AlphaPower)) != total || uint64(len(manifest.G1BetaPower)) != total {
		return nil, fmt.Errorf("%w: expected %d G1 powers", ErrMalformedManifest, total)
	}
	if uint64(len(manifest.G2AlphaPower)) != manifest.N || uint64(len(manifest.G2BetaPower)) != manifest.N {
		return nil, fmt.Errorf("%w: expected %d G2 powers", ErrMalformedManifest, manifest.N)
	}

	g1Alpha, err := decodeG1List(manifest.G1AlphaPower)
	if err != nil {
		return nil, err
	}
	g1Beta, err := decodeG1List(manifest.G1BetaPower)
	if err != nil {
		return nil, err
	}
	g2Alpha, err := decodeG2List(manifest.G2AlphaPower)
	if err != nil {
		return nil, err
	}
	g2Beta, err := decodeG2List(manifest.G2BetaPower)
	if err != nil {
		return nil, err
	}

	return &GenericSRS{
		G1Alpha: g1Alpha,
		G1Beta:  g1Beta,
		G2Alpha: g2Alpha,
		G2Beta:  g2Beta,
	}, nil
}

func decodeG1List(hexPoints []string) ([]curve.G1, error) {
	out := make([]curve.G1, len(hexPoints))
	for i, h := range hexPoints {
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedManifest, err)
		}
		p, err := curve.UnmarshalG1(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedManifest, err)
		}
		out[i] = p
	}
	return out, nil
}

func decodeG2List(hexPoints []string) ([]curve.G2, error) {
	out := make([]curve.G2, len(hexPoints))
	for i, h := range hexPoints {
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedManifest, err)
		}
		p, err := curve.UnmarshalG2(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedManifest, err)
		}
		out[i] = p
	}
	return out, nil
}
