// SPDX-License-Identifier: MIT
// Package: lvseq/rearrange
//
// slices.go - slice-level entry points.

package rearrange

import "github.com/katalvlaran/lvseq/iterator"

// ReverseSlice reverses s in place.
func ReverseSlice[T any](s []T) {
	f, _ := iterator.Bounds(s)
	ReverseNIndexed[T](f, len(s))
}

// RotateSlice moves s[:m] behind s[m:] and returns the new index of the
// element originally at s[0]. Requires 0 <= m <= len(s).
func RotateSlice[T any](s []T, m int) int {
	f, l := iterator.Bounds(s)
	return Rotate[T](f, f.Offset(m), l).Index()
}
