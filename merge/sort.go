// SPDX-License-Identifier: MIT
// Package: lvseq/merge
//
// sort.go - stable merge sorts.

package merge

import (
	"github.com/katalvlaran/lvseq/buffer"
	"github.com/katalvlaran/lvseq/integer"
	"github.com/katalvlaran/lvseq/iterator"
)

// SortNWithBuffer stably sorts (f, n) with a buffer of at least ⌊n/2⌋
// elements at fb and returns f+n.
func SortNWithBuffer[T any, I iterator.MutableIterator[I, T], B iterator.MutableIterator[B, T]](f I, n int, fb B, r func(T, T) bool) I {
	h := integer.HalfNonnegative(n)
	if h == 0 {
		return iterator.Advance(f, n)
	}
	m := SortNWithBuffer[T](f, h, fb, r)
	SortNWithBuffer[T](m, n-h, fb, r)
	return MergeNWithBuffer[T](f, h, m, n-h, fb, r)
}

// SortNAdaptive stably sorts (f, n) with the buffer (fb, nb), which may be
// of any size including zero, and returns f+n.
func SortNAdaptive[T any, I iterator.MutableIterator[I, T], B iterator.MutableIterator[B, T]](f I, n int, fb B, nb int, r func(T, T) bool) I {
	h := integer.HalfNonnegative(n)
	if h == 0 {
		return iterator.Advance(f, n)
	}
	m := SortNAdaptive[T](f, h, fb, nb, r)
	SortNAdaptive[T](m, n-h, fb, nb, r)
	return MergeNAdaptive[T](f, h, m, n-h, fb, nb, r)
}

// SortN stably sorts (f, n) using a temporary buffer of ⌊n/2⌋ elements, or
// whatever the options and the allocator allow, and returns f+n.
func SortN[T any, I iterator.MutableIterator[I, T]](f I, n int, r func(T, T) bool, opts ...Option[T]) I {
	cfg := newConfig(opts)
	b := buffer.New[T](cfg.resolve(n), cfg.bufferOpts...)
	defer b.Release()
	return SortNAdaptive[T](f, n, b.Begin(), b.Len(), r)
}

// Sort stably sorts s under the weak ordering less.
func Sort[T any](s []T, less func(a, b T) bool, opts ...Option[T]) {
	f, _ := iterator.Bounds(s)
	SortN[T](f, len(s), less, opts...)
}
