// SPDX-License-Identifier: MIT
// Package: lvseq/partition
//
// stable.go - stable partitions: buffered, divide and conquer, adaptive.

package partition

import (
	"github.com/katalvlaran/lvseq/buffer"
	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/integer"
	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/rearrange"
)

// StableWithBuffer partitions [f, l) stably in one pass: false elements are
// compacted in place, true elements are parked in the buffer at fb and
// copied back behind them. The buffer must hold l-f elements.
func StableWithBuffer[T any, I iterator.MutableIterator[I, T], B iterator.MutableIterator[B, T]](f, l I, fb B, p func(T) bool) I {
	m, lb := copying.PartitionCopy(f, l, f, fb, p)
	copying.Copy[T](fb, lb, m)
	return m
}

// StableSingleton partitions the one-element range at f and returns it as
// (partition point, end).
func StableSingleton[T any, I iterator.ReadableIterator[I, T]](f I, p func(T) bool) iterator.Bounded[I] {
	l := f.Successor()
	if !p(f.Source()) {
		f = l
	}
	return iterator.Bounded[I]{First: f, Last: l}
}

// CombineRanges joins two adjacent partitioned ranges x and y, where
// x.Last == start of y's range, by rotating x's true block past y's false
// block. The result is (new partition point, y.Last).
func CombineRanges[T any, I iterator.MutableIterator[I, T]](x, y iterator.Bounded[I]) iterator.Bounded[I] {
	return iterator.Bounded[I]{First: rearrange.Rotate[T](x.First, x.Last, y.First), Last: y.Last}
}

// StableNNonempty stably partitions (f, n), n > 0, and returns (partition
// point, f+n).
//
// Algorithm Outline:
//
//	n == 1: StableSingleton
//	partition (f, n/2) and (mid, n-n/2) recursively
//	rotate the first true block past the second false block
//
// Complexity: O(n log n) moves, ⌈log2 n⌉ recursion depth, n predicate calls.
func StableNNonempty[T any, I iterator.MutableIterator[I, T]](f I, n int, p func(T) bool) iterator.Bounded[I] {
	if integer.One(n) {
		return StableSingleton(f, p)
	}
	h := integer.HalfNonnegative(n)
	x := StableNNonempty[T](f, h, p)
	y := StableNNonempty[T](x.Last, n-h, p)
	return CombineRanges[T](x, y)
}

// StableN stably partitions (f, n) and returns (partition point, f+n).
func StableN[T any, I iterator.MutableIterator[I, T]](f I, n int, p func(T) bool) iterator.Bounded[I] {
	if n == 0 {
		return iterator.Bounded[I]{First: f, Last: f}
	}
	return StableNNonempty[T](f, n, p)
}

// Stable stably partitions [f, l) without a buffer and returns the
// partition point.
func Stable[T any, I iterator.MutableIterator[I, T]](f, l I, p func(T) bool) I {
	return StableN[T](f, iterator.Distance(f, l), p).First
}

// StableNAdaptive stably partitions (f, n) using the buffer (fb, nb) for
// every subproblem of at most nb elements and divide and conquer above
// that. Any nb >= 0 gives the same result.
func StableNAdaptive[T any, I iterator.MutableIterator[I, T], B iterator.MutableIterator[B, T]](f I, n int, fb B, nb int, p func(T) bool) iterator.Bounded[I] {
	if n == 0 {
		return iterator.Bounded[I]{First: f, Last: f}
	}
	if n == 1 {
		return StableSingleton(f, p)
	}
	if n <= nb {
		_, m, lb := copying.PartitionCopyN(f, n, f, fb, p)
		return iterator.Bounded[I]{First: m, Last: copying.Copy[T](fb, lb, m)}
	}
	h := integer.HalfNonnegative(n)
	x := StableNAdaptive[T](f, h, fb, nb, p)
	y := StableNAdaptive[T](x.Last, n-h, fb, nb, p)
	return CombineRanges[T](x, y)
}

// StableAdaptive stably partitions [f, l) with a temporary buffer of up to
// l-f elements and returns the partition point.
func StableAdaptive[T any, I iterator.MutableIterator[I, T]](f, l I, p func(T) bool, opts ...buffer.Option[T]) I {
	n := iterator.Distance(f, l)
	b := buffer.New[T](n, opts...)
	defer b.Release()
	return StableNAdaptive[T](f, n, b.Begin(), b.Len(), p).First
}
