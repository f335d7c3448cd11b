package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/predicate"
)

func TestSingle(t *testing.T) {
	var calls [][2]int
	dual := predicate.DualFunc[int](func(low, high *int) bool {
		calls = append(calls, [2]int{*low, *high})

		return *low <= 10 && *high >= 5
	})

	single := predicate.Single[int](dual)

	value := 7
	require.True(t, single.Test(&value))

	value = 11
	require.False(t, single.Test(&value))

	require.Equal(t, [][2]int{{7, 7}, {11, 11}}, calls)
}

func TestSingle_Nil(t *testing.T) {
	called := false
	single := predicate.Single[string](predicate.DualFunc[string](func(_, _ *string) bool {
		called = true

		return true
	}))

	require.False(t, single.Test(nil))
	require.False(t, called, "the dual predicate must not be consulted for absent values")
}

func TestFunc(t *testing.T) {
	isPositive := predicate.Func[int](func(value *int) bool {
		return value != nil && *value > 0
	})

	one, minusOne := 1, -1
	require.True(t, isPositive.Test(&one))
	require.False(t, isPositive.Test(&minusOne))
	require.False(t, isPositive.Test(nil))
}
