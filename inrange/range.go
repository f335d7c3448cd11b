package inrange

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/predicate"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// Range is a predicate that tests if a value lies within the interval [start, end].
//
// Both bounds are optional. A missing start makes the Range unbounded below, a missing end makes it unbounded above.
// By default, both bounds are inclusive, which can be changed using the WithStartInclusive and WithEndInclusive
// options.
//
// A Range whose start is bigger than its end is valid, it just never matches. A Range is immutable once created and
// can be used from multiple goroutines without synchronization.
type Range[T any] struct {
	// start holds the lower bound (nil if the Range is unbounded below).
	start *T

	// end holds the upper bound (nil if the Range is unbounded above).
	end *T

	// startInclusive defines if the start value itself is part of the Range.
	startInclusive bool

	// endInclusive defines if the end value itself is part of the Range.
	endInclusive bool

	// compare is the total order of T.
	compare func(a, b T) int

	// logger reports the creation of the Range.
	logger log.Logger
}

// New creates a Range for a type with a natural order.
func New[T constraints.Ordered](opts ...options.Option[Range[T]]) *Range[T] {
	return NewWithComparator(lo.Comparator[T], opts...)
}

// NewComparable creates a Range for a type that defines its own order through a Compare method (i.e. time.Time).
func NewComparable[T constraints.Comparable[T]](opts ...options.Option[Range[T]]) *Range[T] {
	return NewWithComparator(func(a, b T) int { return a.Compare(b) }, opts...)
}

// NewWithComparator creates a Range that orders its values using the given comparison function. The function must
// return a negative number if a < b, zero if a == b and a positive number if a > b.
func NewWithComparator[T any](compare func(a, b T) int, opts ...options.Option[Range[T]]) *Range[T] {
	return options.Apply(&Range[T]{
		startInclusive: true,
		endInclusive:   true,
		compare:        compare,
		logger:         log.EmptyLogger,
	}, opts, (*Range[T]).logCreation)
}

// Test returns true if the value lies within the Range. Absent values are never contained.
func (r *Range[T]) Test(value *T) bool {
	if value == nil {
		return false
	}

	return r.TestDual(value, value)
}

// TestDual returns true if the interval [low, high] overlaps the Range. It returns false if either of the values is
// absent.
func (r *Range[T]) TestDual(low, high *T) bool {
	if low == nil || high == nil {
		return false
	}

	if r.start != nil {
		if cmp := r.compare(*high, *r.start); cmp < 0 || (cmp == 0 && !r.startInclusive) {
			return false
		}
	}

	if r.end != nil {
		if cmp := r.compare(*low, *r.end); cmp > 0 || (cmp == 0 && !r.endInclusive) {
			return false
		}
	}

	return true
}

// Contains returns true if the value lies within the Range.
func (r *Range[T]) Contains(value T) bool {
	return r.Test(&value)
}

// Overlaps returns true if the interval [low, high] overlaps the Range.
func (r *Range[T]) Overlaps(low, high T) bool {
	return r.TestDual(&low, &high)
}

// Start returns the lower bound of the Range and a flag that indicates if it exists.
func (r *Range[T]) Start() (start T, exists bool) {
	if r.start == nil {
		return start, false
	}

	return *r.start, true
}

// End returns the upper bound of the Range and a flag that indicates if it exists.
func (r *Range[T]) End() (end T, exists bool) {
	if r.end == nil {
		return end, false
	}

	return *r.end, true
}

// StartInclusive returns true if the start value is part of the Range.
func (r *Range[T]) StartInclusive() bool {
	return r.startInclusive
}

// EndInclusive returns true if the end value is part of the Range.
func (r *Range[T]) EndInclusive() bool {
	return r.endInclusive
}

// HasLowerBound returns true if the Range has a start value.
func (r *Range[T]) HasLowerBound() bool {
	return r.start != nil
}

// HasUpperBound returns true if the Range has an end value.
func (r *Range[T]) HasUpperBound() bool {
	return r.end != nil
}

// StartBoundType returns the BoundType of the lower bound. It panics if the Range has no lower bound.
func (r *Range[T]) StartBoundType() BoundType {
	if r.start == nil {
		panic("Range has no lower bound - check HasLowerBound() before calling this method")
	}

	return boundTypeFromInclusive(r.startInclusive)
}

// EndBoundType returns the BoundType of the upper bound. It panics if the Range has no upper bound.
func (r *Range[T]) EndBoundType() BoundType {
	if r.end == nil {
		panic("Range has no upper bound - check HasUpperBound() before calling this method")
	}

	return boundTypeFromInclusive(r.endInclusive)
}

// Empty returns true if no value can ever lie within the Range, which is the case for ranges of the form [b..a] with
// a < b and for ranges of the form [a..a), (a..a] and (a..a).
func (r *Range[T]) Empty() bool {
	if r.start == nil || r.end == nil {
		return false
	}

	cmp := r.compare(*r.start, *r.end)

	return cmp > 0 || (cmp == 0 && !(r.startInclusive && r.endInclusive))
}

// Equal returns true if both Ranges have the same bounds and inclusivity flags. Bounds are compared by their canonical
// encoding, so -0 equals +0 and instants in time are equal regardless of their location.
func (r *Range[T]) Equal(other *Range[T]) bool {
	if r == other {
		return true
	}

	if r == nil || other == nil {
		return false
	}

	return r.startInclusive == other.startInclusive &&
		r.endInclusive == other.endInclusive &&
		boundKey(pointerBound(r.start)) == boundKey(pointerBound(other.start)) &&
		boundKey(pointerBound(r.end)) == boundKey(pointerBound(other.end))
}

// Hash returns a digest of the Range that is identical for equal Ranges.
func (r *Range[T]) Hash() uint64 {
	digest := xxhash.New()
	_, _ = fmt.Fprintf(digest, "%T|", r)
	_, _ = fmt.Fprintf(digest, "%s|%s|", boundKey(pointerBound(r.start)), boundKey(pointerBound(r.end)))
	_, _ = fmt.Fprintf(digest, "%t|%t", r.startInclusive, r.endInclusive)

	return digest.Sum64()
}

// Notation returns the interval notation of the Range (i.e. "[10 ... 20)").
func (r *Range[T]) Notation() string {
	return notation(boundString(r.start), boundString(r.end), r.start != nil, r.end != nil, r.startInclusive, r.endInclusive)
}

// String returns a human-readable version of the Range.
func (r *Range[T]) String() string {
	return stringify.Struct("Range",
		stringify.NewStructField("start", boundString(r.start)),
		stringify.NewStructField("end", boundString(r.end)),
		stringify.NewStructField("startInclusive", r.startInclusive),
		stringify.NewStructField("endInclusive", r.endInclusive),
	)
}

func (r *Range[T]) logCreation() {
	if r.Empty() {
		r.logger.LogWarn("created range that can never match", "range", r.Notation())

		return
	}

	r.logger.LogDebug("created range", "range", r.Notation())
}

// boundString returns the string representation of an optional bound.
func boundString[T any](bound *T) string {
	if bound == nil {
		return "<nil>"
	}

	return fmt.Sprint(*bound)
}

// notation renders the interval notation of a range from its string-encoded bounds.
func notation(start, end string, hasStart, hasEnd, startInclusive, endInclusive bool) string {
	var lower string
	switch {
	case !hasStart:
		lower = "(-INF"
	case startInclusive:
		lower = "[" + start
	default:
		lower = "(" + start
	}

	var upper string
	switch {
	case !hasEnd:
		upper = "+INF)"
	case endInclusive:
		upper = end + "]"
	default:
		upper = end + ")"
	}

	return lower + " ... " + upper
}

// code contract (make sure the type implements all required methods).
var (
	_ predicate.Predicate[int]     = (*Range[int])(nil)
	_ predicate.DualPredicate[int] = (*Range[int])(nil)
)
