package curve

import "errors"

// ErrNotInSubgroup is returned when a decoded point is on the curve but not
// in the prime-order subgroup the protocol requires.
var ErrNotInSubgroup = errors.New("curve: point not in prime-order subgroup")
