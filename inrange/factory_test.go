package inrange

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name      string
		r         *Range[int]
		contained []int
		excluded  []int
	}{
		{"All", All[int](), []int{-100, 0, 100}, nil},
		{"AtLeast", AtLeast(3), []int{3, 4, 100}, []int{2}},
		{"AtMost", AtMost(3), []int{-100, 2, 3}, []int{4}},
		{"GreaterThan", GreaterThan(3), []int{4, 100}, []int{2, 3}},
		{"LessThan", LessThan(3), []int{-100, 2}, []int{3, 4}},
		{"Closed", Closed(1, 3), []int{1, 2, 3}, []int{0, 4}},
		{"ClosedOpen", ClosedOpen(1, 3), []int{1, 2}, []int{0, 3}},
		{"Open", Open(1, 3), []int{2}, []int{1, 3}},
		{"OpenClosed", OpenClosed(1, 3), []int{2, 3}, []int{1, 4}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, value := range test.contained {
				require.True(t, test.r.Contains(value), "%s should contain %d", test.r.Notation(), value)
			}
			for _, value := range test.excluded {
				require.False(t, test.r.Contains(value), "%s should not contain %d", test.r.Notation(), value)
			}
		})
	}
}

func TestFactories_BoundTypes(t *testing.T) {
	require.Equal(t, BoundTypeClosed, AtLeast(1).StartBoundType())
	require.False(t, AtLeast(1).HasUpperBound())
	require.Equal(t, BoundTypeOpen, GreaterThan(1).StartBoundType())
	require.Equal(t, BoundTypeClosed, AtMost(1).EndBoundType())
	require.False(t, AtMost(1).HasLowerBound())
	require.Equal(t, BoundTypeOpen, LessThan(1).EndBoundType())

	r := OpenClosed(1, 2)
	require.Equal(t, BoundTypeOpen, r.StartBoundType())
	require.Equal(t, BoundTypeClosed, r.EndBoundType())
}

func TestFactories_DoNotPanicOnReversedBounds(t *testing.T) {
	require.NotPanics(t, func() {
		require.True(t, Closed(3, 1).Empty())
		require.True(t, Open(1, 1).Empty())
		require.False(t, Closed(1, 1).Empty())
	})
}

func TestFactories_AllDiscardsBounds(t *testing.T) {
	r := All(WithStart(3), WithEnd(5), WithEndInclusive[int](false))

	require.False(t, r.HasLowerBound())
	require.False(t, r.HasUpperBound())
	require.True(t, r.Contains(-100))
	require.True(t, r.Contains(100))
	require.Equal(t, "(-INF ... +INF)", r.Notation())
}

func TestFactories_Options(t *testing.T) {
	// the shape of the factory wins over conflicting options
	r := ClosedOpen(1, 3, WithEndInclusive[int](true), WithStart(0))
	require.Equal(t, ClosedOpen(1, 3).Hash(), r.Hash())
	require.True(t, r.Equal(ClosedOpen(1, 3)))

	// the caller's options are never overwritten
	opts := make([]options.Option[Range[int]], 1, 8)
	opts[0] = WithLogger[int](log.EmptyLogger)
	AtLeast(1, opts...)
	require.Nil(t, opts[:2][1])
}
