package inrange

import (
	"fmt"
)

// BoundType indicates whether the bound of a Range is contained in the Range itself ("closed") or not ("open"). If a
// Range is unbounded on a side, it is neither open nor closed on that side; the bound simply does not exist.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the bound is not considered part of the Range ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the bound is considered part of the Range ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// boundTypeFromInclusive returns the BoundType that corresponds to the given inclusive flag.
func boundTypeFromInclusive(inclusive bool) BoundType {
	if inclusive {
		return BoundTypeClosed
	}

	return BoundTypeOpen
}

// Inclusive returns true if the BoundType includes its bound value.
func (b BoundType) Inclusive() bool {
	return b == BoundTypeClosed
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
