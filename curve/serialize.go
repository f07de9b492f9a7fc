package curve

// Canonical little-endian-fixed-width, compressed-point serialization, as
// spec'd for the wire format: group points use gnark-crypto's native
// Marshal form (compressed for G1/G2, raw fixed-width for GT which has no
// compression), and scalars use fr.Element's fixed-width bytes in
// little-endian order.

// MarshalScalar returns the canonical little-endian encoding of s.
func MarshalScalar(s Scalar) []byte {
	b := s.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b[:]
}

// UnmarshalScalar decodes bytes produced by MarshalScalar.
func UnmarshalScalar(b []byte) (Scalar, error) {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	var s Scalar
	s.SetBytes(be)
	return s, nil
}

// MarshalG1 returns the canonical compressed encoding of p.
func MarshalG1(p G1) []byte {
	return p.Marshal()
}

// UnmarshalG1 decodes bytes produced by MarshalG1, checking curve and
// subgroup membership.
func UnmarshalG1(b []byte) (G1, error) {
	var p G1
	if err := p.Unmarshal(b); err != nil {
		return G1{}, err
	}
	if !p.IsInSubGroup() {
		return G1{}, ErrNotInSubgroup
	}
	return p, nil
}

// MarshalG2 returns the canonical compressed encoding of p.
func MarshalG2(p G2) []byte {
	return p.Marshal()
}

// UnmarshalG2 decodes bytes produced by MarshalG2, checking curve and
// subgroup membership.
func UnmarshalG2(b []byte) (G2, error) {
	var p G2
	if err := p.Unmarshal(b); err != nil {
		return G2{}, err
	}
	if !p.IsInSubGroup() {
		return G2{}, ErrNotInSubgroup
	}
	return p, nil
}

// MarshalGT returns the canonical encoding of a.
func MarshalGT(a GT) []byte {
	return a.Marshal()
}

// UnmarshalGT decodes bytes produced by MarshalGT.
func UnmarshalGT(b []byte) (GT, error) {
	var a GT
	if err := a.Unmarshal(b); err != nil {
		return GT{}, err
	}
	return a, nil
}
