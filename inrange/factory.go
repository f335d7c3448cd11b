package inrange

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/runtime/options"
)

// The factory functions below cover the nine basic shapes of a Range:
//
// Notation         Definition          Factory method
// (a .. b)         {x | a < x < b}     Open
// [a .. b]         {x | a <= x <= b}   Closed
// (a .. b]         {x | a < x <= b}    OpenClosed
// [a .. b)         {x | a <= x < b}    ClosedOpen
// (a .. +INF)      {x | x > a}         GreaterThan
// [a .. +INF)      {x | x >= a}        AtLeast
// (-INF .. b)      {x | x < b}         LessThan
// (-INF .. b]      {x | x <= b}        AtMost
// (-INF .. +INF)   {x}                 All
//
// Passing a lower bound that is bigger than the upper bound creates an empty Range.

// All returns a Range that contains all values. Bounds that are set through the options are discarded.
func All[T constraints.Ordered](opts ...options.Option[Range[T]]) *Range[T] {
	return New(append(opts[:len(opts):len(opts)], withoutBounds[T]())...)
}

// AtLeast returns a Range that contains all values greater than or equal to lower.
func AtLeast[T constraints.Ordered](lower T, opts ...options.Option[Range[T]]) *Range[T] {
	return New(append(opts[:len(opts):len(opts)], WithStart(lower), WithStartInclusive[T](true))...)
}

// AtMost returns a Range that contains all values less than or equal to upper.
func AtMost[T constraints.Ordered](upper T, opts ...options.Option[Range[T]]) *Range[T] {
	return New(append(opts[:len(opts):len(opts)], WithEnd(upper), WithEndInclusive[T](true))...)
}

// GreaterThan returns a Range that contains all values strictly greater than lower.
func GreaterThan[T constraints.Ordered](lower T, opts ...options.Option[Range[T]]) *Range[T] {
	return New(append(opts[:len(opts):len(opts)], WithStart(lower), WithStartInclusive[T](false))...)
}

// LessThan returns a Range that contains all values strictly less than upper.
func LessThan[T constraints.Ordered](upper T, opts ...options.Option[Range[T]]) *Range[T] {
	return New(append(opts[:len(opts):len(opts)], WithEnd(upper), WithEndInclusive[T](false))...)
}

// Closed returns a Range that contains all values greater than or equal to lower and less than or equal to upper.
func Closed[T constraints.Ordered](lower, upper T, opts ...options.Option[Range[T]]) *Range[T] {
	return between(lower, upper, true, true, opts)
}

// ClosedOpen returns a Range that contains all values greater than or equal to lower and strictly less than upper.
func ClosedOpen[T constraints.Ordered](lower, upper T, opts ...options.Option[Range[T]]) *Range[T] {
	return between(lower, upper, true, false, opts)
}

// Open returns a Range that contains all values strictly greater than lower and strictly less than upper.
func Open[T constraints.Ordered](lower, upper T, opts ...options.Option[Range[T]]) *Range[T] {
	return between(lower, upper, false, false, opts)
}

// OpenClosed returns a Range that contains all values strictly greater than lower and less than or equal to upper.
func OpenClosed[T constraints.Ordered](lower, upper T, opts ...options.Option[Range[T]]) *Range[T] {
	return between(lower, upper, false, true, opts)
}

// withoutBounds removes both bounds of the Range.
func withoutBounds[T any]() options.Option[Range[T]] {
	return func(r *Range[T]) {
		r.start = nil
		r.end = nil
	}
}

func between[T constraints.Ordered](lower, upper T, startInclusive, endInclusive bool, opts []options.Option[Range[T]]) *Range[T] {
	return New(append(opts[:len(opts):len(opts)],
		WithStart(lower),
		WithEnd(upper),
		WithStartInclusive[T](startInclusive),
		WithEndInclusive[T](endInclusive),
	)...)
}
