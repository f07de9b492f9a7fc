// Package srs holds the structured reference string material: the prover's
// commitment keys V and W, and the verifier's fixed-size KZG opening key.
package srs

import (
	"errors"
	"io"
	"math/big"
	"math/bits"

	"github.com/MartinTeoZhang/snarkpack-slim/curve"
)

// MaxSRSSize is the generic cap on a specialized batch size: 2^20 + 1,
// large enough to cover any practical Groth16 proof batch while keeping
// GIPA's round count bounded.
const MaxSRSSize = (2 << 19) + 1

var (
	// ErrNotPowerOfTwo is returned when a requested SRS/batch size isn't a
	// power of two.
	ErrNotPowerOfTwo = errors.New("srs: size must be a power of two")
	// ErrTooLarge is returned when a requested size exceeds MaxSRSSize.
	ErrTooLarge = errors.New("srs: size exceeds MAX_SRS_SIZE")
	// ErrTooSmall is returned when a requested size is below the protocol
	// minimum of 2 (spec explicitly rejects the degenerate n=1 case).
	ErrTooSmall = errors.New("srs: size must be at least 2")
	// ErrSpecializeTooLarge is returned when specialize is asked for a size
	// larger than the SRS it is specializing.
	ErrSpecializeTooLarge = errors.New("srs: cannot specialize to a size larger than the generic SRS")
)

// VKey is the prover's G2 commitment key: two aligned length-n sequences
// (h^{alpha^i}, h^{beta^i}) for i in [0,n).
type VKey struct {
	A []curve.G2
	B []curve.G2
}

// WKey is the prover's G1 commitment key: two aligned length-n sequences
// (g^{alpha^{n+i}}, g^{beta^{n+i}}) for i in [0,n). The shift by n is
// structural: it is what keeps V- and W-commitments from colliding.
type WKey struct {
	A []curve.G1
	B []curve.G1
}

// Len returns the common length of a key pair, or -1 if the invariant
// |a|=|b| is broken.
func (k VKey) Len() int {
	if len(k.A) != len(k.B) {
		return -1
	}
	return len(k.A)
}

// Len returns the common length of a key pair, or -1 if the invariant
// |a|=|b| is broken.
func (k WKey) Len() int {
	if len(k.A) != len(k.B) {
		return -1
	}
	return len(k.A)
}

// Split partitions a VKey into its left and right halves.
func (k VKey) Split() (left, right VKey) {
	m := len(k.A) / 2
	return VKey{A: k.A[:m], B: k.B[:m]}, VKey{A: k.A[m:], B: k.B[m:]}
}

// Split partitions a WKey into its left and right halves.
func (k WKey) Split() (left, right WKey) {
	m := len(k.A) / 2
	return WKey{A: k.A[:m], B: k.B[:m]}, WKey{A: k.A[m:], B: k.B[m:]}
}

// ProverSRS is immutable after construction and may be shared read-only
// across proving calls; GIPA halving allocates fresh, shorter key
// sequences at every round rather than mutating these.
type ProverSRS struct {
	N    uint64
	VKey VKey
	WKey WKey
}

// VerifierSRS is of fixed size regardless of the number of proofs
// aggregated. GAlphaN/GBetaN are the n-th powers g^{alpha^n}/g^{beta^n} —
// the same shift WKey's exponents carry — needed to verify a W-key
// opening without the verifier holding WKey's full length-n basis.
type VerifierSRS struct {
	N       uint64
	G       curve.G1
	H       curve.G2
	GAlpha  curve.G1
	GBeta   curve.G1
	HAlpha  curve.G2
	HBeta   curve.G2
	GAlphaN curve.G1
	GBetaN  curve.G1
}

// GenericSRS holds the full powers-of-tau material a ceremony produces,
// from which both a ProverSRS and VerifierSRS are specialized to a given
// batch size n. It mirrors the shape of gnark-crypto's kzg.SRS (parallel
// G1/G2 power sequences) but carries two independent toxic-waste exponents
// (alpha, beta) since TIPP/MIPP commit under both simultaneously.
type GenericSRS struct {
	// G1Alpha[i] = g^{alpha^i}, G1Beta[i] = g^{beta^i}, for i in [0, 2n).
	G1Alpha []curve.G1
	G1Beta  []curve.G1
	// G2Alpha[i] = h^{alpha^i}, G2Beta[i] = h^{beta^i}, for i in [0, n).
	G2Alpha []curve.G2
	G2Beta  []curve.G2
}

func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

func checkSize(n uint64) error {
	if n < 2 {
		return ErrTooSmall
	}
	if n > MaxSRSSize {
		return ErrTooLarge
	}
	if !isPowerOfTwo(n) {
		return ErrNotPowerOfTwo
	}
	return nil
}

// SetupFakeSRS builds a test-only SRS of size n by sampling alpha and beta
// directly from rd rather than running a ceremony. Production SRS material
// must instead come from LoadCeremonyManifest.
func SetupFakeSRS(rd io.Reader, n uint64) (*GenericSRS, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	alpha, err := curve.RandomScalar(rd)
	if err != nil {
		return nil, err
	}
	beta, err := curve.RandomScalar(rd)
	if err != nil {
		return nil, err
	}
	return buildGenericSRS(n, alpha, beta), nil
}

func buildGenericSRS(n uint64, alpha, beta curve.Scalar) *GenericSRS {
	g, h := curve.Generators()

	total := 2 * n
	alphaPowers := powers(alpha, total)
	betaPowers := powers(beta, total)

	return &GenericSRS{
		G1Alpha: curve.BatchScalarMulG1(g, alphaPowers),
		G1Beta:  curve.BatchScalarMulG1(g, betaPowers),
		G2Alpha: scalarMulG2Many(h, alphaPowers[:n]),
		G2Beta:  scalarMulG2Many(h, betaPowers[:n]),
	}
}

func powers(x curve.Scalar, count uint64) []curve.Scalar {
	out := make([]curve.Scalar, count)
	out[0] = curve.One()
	for i := uint64(1); i < count; i++ {
		out[i] = curve.Mul(out[i-1], x)
	}
	return out
}

func scalarMulG2Many(base curve.G2, scalars []curve.Scalar) []curve.G2 {
	out := make([]curve.G2, len(scalars))
	for i, s := range scalars {
		var bi big.Int
		curve.BigInt(s, &bi)
		out[i] = curve.ScalarMulG2(base, &bi)
	}
	return out
}

// Specialize restricts a GenericSRS to a ProverSRS/VerifierSRS pair sized
// for aggregating exactly n Groth16 proofs.
func (g *GenericSRS) Specialize(n uint64) (*ProverSRS, *VerifierSRS, error) {
	if err := checkSize(n); err != nil {
		return nil, nil, err
	}
	if n > uint64(len(g.G2Alpha)) || n > uint64(len(g.G2Beta)) ||
		2*n > uint64(len(g.G1Alpha)) || 2*n > uint64(len(g.G1Beta)) {
		return nil, nil, ErrSpecializeTooLarge
	}

	prover := &ProverSRS{
		N: n,
		VKey: VKey{
			A: append([]curve.G2(nil), g.G2Alpha[:n]...),
			B: append([]curve.G2(nil), g.G2Beta[:n]...),
		},
		WKey: WKey{
			A: append([]curve.G1(nil), g.G1Alpha[n:2*n]...),
			B: append([]curve.G1(nil), g.G1Beta[n:2*n]...),
		},
	}

	gen, h := curve.Generators()
	verifier := &VerifierSRS{
		N:       n,
		G:       gen,
		H:       h,
		GAlpha:  g.G1Alpha[1],
		GBeta:   g.G1Beta[1],
		HAlpha:  g.G2Alpha[1],
		HBeta:   g.G2Beta[1],
		GAlphaN: g.G1Alpha[n],
		GBetaN:  g.G1Beta[n],
	}

	return prover, verifier, nil
}

// CheckInvariant verifies the structural invariant |V.a|=|V.b|=|W.a|=|W.b|
// at the top level of a ProverSRS.
func (p *ProverSRS) CheckInvariant() error {
	if p.VKey.Len() < 0 || p.WKey.Len() < 0 || p.VKey.Len() != p.WKey.Len() {
		return ErrKeyLengthMismatch
	}
	if uint64(p.VKey.Len()) != p.N {
		return ErrKeyLengthMismatch
	}
	if !isPowerOfTwo(p.N) || p.N < 2 {
		return ErrNotPowerOfTwo
	}
	return nil
}

// ErrKeyLengthMismatch is returned when a ProverSRS's key sequences don't
// line up with its declared N.
var ErrKeyLengthMismatch = errors.New("srs: commitment key length does not match srs.N")

func trailingZeros(n uint64) int {
	return bits.TrailingZeros64(n)
}

// LogN returns log2(N), the number of GIPA halving rounds this SRS
// supports.
func (p *ProverSRS) LogN() int {
	return trailingZeros(p.N)
}
