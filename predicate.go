// Package predicate contains the interfaces that are shared by the predicates of this module. A Predicate tests a
// single value, a DualPredicate tests a pair of values (i.e. the two ends of an interval) at once.
package predicate

// Predicate tests a single, optional value. A nil value means that the value is absent.
type Predicate[T any] interface {
	// Test returns true if the value satisfies the predicate.
	Test(value *T) bool
}

// DualPredicate tests a pair of optional values.
type DualPredicate[T any] interface {
	// TestDual returns true if the pair of values satisfies the predicate.
	TestDual(low, high *T) bool
}

// Func is a function that can be used as a Predicate.
type Func[T any] func(value *T) bool

// Test calls the function.
func (f Func[T]) Test(value *T) bool {
	return f(value)
}

// DualFunc is a function that can be used as a DualPredicate.
type DualFunc[T any] func(low, high *T) bool

// TestDual calls the function.
func (f DualFunc[T]) TestDual(low, high *T) bool {
	return f(low, high)
}

// Single turns a DualPredicate into a Predicate by using the tested value as both the low and the high value.
func Single[T any](dual DualPredicate[T]) Predicate[T] {
	return Func[T](func(value *T) bool {
		if value == nil {
			return false
		}

		return dual.TestDual(value, value)
	})
}

// code contract (make sure the types implement all required methods).
var (
	_ Predicate[int]     = Func[int](nil)
	_ DualPredicate[int] = DualFunc[int](nil)
)
