package inrange

import (
	"fmt"
	"reflect"
	"time"
)

// boundKey returns the canonical encoding of an optional bound. Equal and Hash both work on this encoding, so equal
// ranges always produce the same digest.
func boundKey(bound any) string {
	if bound == nil {
		return "-"
	}

	return "+" + canonicalValue(bound)
}

// canonicalValue encodes a value so that different representations of the same point map to the same string.
func canonicalValue(value any) string {
	if timestamp, isTime := value.(time.Time); isTime {
		return timestamp.UTC().Format(time.RFC3339Nano)
	}

	// -0 and +0 are the same point
	if reflected := reflect.ValueOf(value); (reflected.Kind() == reflect.Float32 || reflected.Kind() == reflect.Float64) && reflected.Float() == 0 {
		return "0"
	}

	return fmt.Sprint(value)
}

// pointerBound turns a typed optional bound into an untyped one (nil if absent).
func pointerBound[T any](bound *T) any {
	if bound == nil {
		return nil
	}

	return *bound
}
