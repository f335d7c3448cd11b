package inrange

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// WithStart sets the lower bound of the Range.
func WithStart[T any](start T) options.Option[Range[T]] {
	return func(r *Range[T]) {
		r.start = &start
	}
}

// WithEnd sets the upper bound of the Range.
func WithEnd[T any](end T) options.Option[Range[T]] {
	return func(r *Range[T]) {
		r.end = &end
	}
}

// WithStartInclusive defines if the start value is part of the Range (default: true).
func WithStartInclusive[T any](startInclusive bool) options.Option[Range[T]] {
	return func(r *Range[T]) {
		r.startInclusive = startInclusive
	}
}

// WithEndInclusive defines if the end value is part of the Range (default: true).
func WithEndInclusive[T any](endInclusive bool) options.Option[Range[T]] {
	return func(r *Range[T]) {
		r.endInclusive = endInclusive
	}
}

// WithStartInclusivePtr is the nullable version of WithStartInclusive. A nil flag is treated as true.
func WithStartInclusivePtr[T any](startInclusive *bool) options.Option[Range[T]] {
	return WithStartInclusive[T](startInclusive == nil || *startInclusive)
}

// WithEndInclusivePtr is the nullable version of WithEndInclusive. A nil flag is treated as true.
func WithEndInclusivePtr[T any](endInclusive *bool) options.Option[Range[T]] {
	return WithEndInclusive[T](endInclusive == nil || *endInclusive)
}

// WithLogger sets the logger that is used to report the creation of the Range.
func WithLogger[T any](logger log.Logger) options.Option[Range[T]] {
	return func(r *Range[T]) {
		r.logger = logger
	}
}
