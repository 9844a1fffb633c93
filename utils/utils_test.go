package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, uint64(7), Min(uint64(7), uint64(7)))
	require.Equal(t, -3.5, Min(-3.5, 0.0))
}

func TestMaxSlice(t *testing.T) {
	require.Equal(t, uint64(9), MaxSlice([]uint64{1, 9, 3}))
	require.Equal(t, uint64(0), MaxSlice([]uint64{}))
	require.Equal(t, 4, MaxSlice([]int{4}))
}

func TestMinSlice(t *testing.T) {
	require.Equal(t, uint64(1), MinSlice([]uint64{1, 9, 3}))
	require.Equal(t, -2, MinSlice([]int{5, -2, 3}))
	require.Equal(t, 0, MinSlice([]int{}))
}

func TestEqualSlice(t *testing.T) {
	require.True(t, EqualSlice([]uint64{1, 2, 3}, []uint64{1, 2, 3}))
	require.False(t, EqualSlice([]uint64{1, 2, 3}, []uint64{1, 2, 4}))
	require.False(t, EqualSlice([]uint64{1, 2}, []uint64{1, 2, 3}))
	require.True(t, EqualSlice([]uint64{}, []uint64{}))
}
