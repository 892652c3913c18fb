// SPDX-License-Identifier: MIT
// Package: lvseq/merge
//
// merge.go - in-place merging of adjacent increasing ranges.

package merge

import (
	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/integer"
	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/rearrange"
)

// MergeNWithBuffer merges the adjacent increasing ranges (f0, n0) and
// (f1, n1), f1 == f0+n0, through the buffer at fb, which must hold n0
// elements. It returns f0+n0+n1.
func MergeNWithBuffer[T any, I iterator.MutableIterator[I, T], B iterator.MutableIterator[B, T]](f0 I, n0 int, f1 I, n1 int, fb B, r func(T, T) bool) I {
	copying.CopyN[T](f0, n0, fb)
	_, _, l := copying.MergeCopyN(fb, n0, f1, n1, f0, r)
	return l
}

// MergeNStep0 splits a merge of (f0, n0) and (f1, n1) at the midpoint of the
// first range. The pivot x = f0[n0/2] is rotated to its final place, just
// before the first element of the second range not less than it, and the
// two independent merges left to do are returned as (a0, a1) and (b0, b1).
func MergeNStep0[T any, I iterator.MutableIterator[I, T]](f0 I, n0 int, f1 I, n1 int, r func(T, T) bool) (a0, a1, b0, b1 iterator.Counted[I]) {
	a0 = iterator.Counted[I]{First: f0, N: integer.HalfNonnegative(n0)}
	f01 := iterator.Advance(f0, a0.N)
	f11 := iterator.LowerBoundN(f1, n1, f01.Source(), r)
	f10 := rearrange.Rotate[T](f01, f1, f11)
	a1 = iterator.Counted[I]{First: f01, N: iterator.Distance(f01, f10)}
	b0 = iterator.Counted[I]{First: f10.Successor(), N: n0 - a0.N - 1}
	b1 = iterator.Counted[I]{First: f11, N: n1 - a1.N}
	return a0, a1, b0, b1
}

// MergeNStep1 splits at the midpoint of the second range. The pivot
// y = f1[n1/2] is rotated in front of the first element of the first range
// greater than it, which keeps equivalent elements of range 0 first.
func MergeNStep1[T any, I iterator.MutableIterator[I, T]](f0 I, n0 int, f1 I, n1 int, r func(T, T) bool) (a0, a1, b0, b1 iterator.Counted[I]) {
	h := integer.HalfNonnegative(n1)
	f11 := iterator.Advance(f1, h)
	f01 := iterator.UpperBoundN(f0, n0, f11.Source(), r)
	f11 = f11.Successor()
	f10 := rearrange.Rotate[T](f01, f1, f11)
	a0 = iterator.Counted[I]{First: f0, N: iterator.Distance(f0, f01)}
	a1 = iterator.Counted[I]{First: f01, N: h}
	b0 = iterator.Counted[I]{First: f10, N: n0 - a0.N}
	b1 = iterator.Counted[I]{First: f11, N: n1 - h - 1}
	return a0, a1, b0, b1
}

// MergeNAdaptive merges the adjacent increasing ranges (f0, n0) and
// (f1, n1) using the buffer (fb, nb) whenever the current first range fits
// in it, and rotations otherwise. Correct for every nb >= 0. Returns
// f0+n0+n1.
//
// Algorithm Outline:
//
//	either range empty       -> done
//	n0 <= nb                 -> MergeNWithBuffer
//	n0 < n1                  -> MergeNStep0 (split range 0 at its middle)
//	otherwise                -> MergeNStep1 (split range 1 at its middle)
//	merge (a0, a1), then return the merge of (b0, b1)
//
// The pivot of each split lands in its final position, so both halves
// shrink by at least a quarter of the larger range.
func MergeNAdaptive[T any, I iterator.MutableIterator[I, T], B iterator.MutableIterator[B, T]](f0 I, n0 int, f1 I, n1 int, fb B, nb int, r func(T, T) bool) I {
	if n0 == 0 || n1 == 0 {
		return iterator.Advance(f0, n0+n1)
	}
	if n0 <= nb {
		return MergeNWithBuffer[T](f0, n0, f1, n1, fb, r)
	}
	var a0, a1, b0, b1 iterator.Counted[I]
	if n0 < n1 {
		a0, a1, b0, b1 = MergeNStep0[T](f0, n0, f1, n1, r)
	} else {
		a0, a1, b0, b1 = MergeNStep1[T](f0, n0, f1, n1, r)
	}
	MergeNAdaptive[T](a0.First, a0.N, a1.First, a1.N, fb, nb, r)
	return MergeNAdaptive[T](b0.First, b0.N, b1.First, b1.N, fb, nb, r)
}
