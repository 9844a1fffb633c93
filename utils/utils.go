// Package utils implements generic helper functions shared across the
// module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum of the two inputs.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of the two inputs.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of the input slice (the zero value for
// an empty slice).
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	for _, v := range s {
		max = Max(max, v)
	}
	return
}

// MinSlice returns the minimum value of the input slice (the zero value for
// an empty slice).
func MinSlice[T constraints.Ordered](s []T) (min T) {
	for i, v := range s {
		if i == 0 {
			min = v
			continue
		}
		min = Min(min, v)
	}
	return
}

// EqualSlice checks the equality of two slices element by element.
func EqualSlice[T comparable](a, b []T) (v bool) {
	if len(a) != len(b) {
		return false
	}
	v = true
	for i := range a {
		v = v && (a[i] == b[i])
	}
	return
}
