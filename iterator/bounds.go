// SPDX-License-Identifier: MIT
// Package: lvseq/iterator
//
// bounds.go - bisection over partitioned ranges and backward searches.

package iterator

import "github.com/katalvlaran/lvseq/integer"

// PartitionPointN returns the first position of (f, n) satisfying p, where
// the range is partitioned by p (all failing elements first).
//
// Algorithm Outline:
//
//	while n > 0: probe the middle m = f + n/2;
//	  p(m)  -> answer is in [f, m]:   n = n/2
//	  !p(m) -> answer is in (m, f+n): f = m+1, n -= n/2 + 1
//
// Complexity: ⌊log2 n⌋+1 applications of p.
func PartitionPointN[T any, I ReadableIterator[I, T]](f I, n int, p func(T) bool) I {
	for n != 0 {
		h := integer.HalfNonnegative(n)
		m := Advance(f, h)
		if p(m.Source()) {
			n = h
		} else {
			n -= h + 1
			f = m.Successor()
		}
	}
	return f
}

// PartitionPoint is PartitionPointN over a bounded range.
func PartitionPoint[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) I {
	return PartitionPointN(f, Distance(f, l), p)
}

// LowerBoundN returns the first position in the increasing range (f, n)
// whose element is not less than a.
func LowerBoundN[T any, I ReadableIterator[I, T]](f I, n int, a T, r func(T, T) bool) I {
	return PartitionPointN(f, n, func(x T) bool { return !r(x, a) })
}

// UpperBoundN returns the first position in the increasing range (f, n)
// whose element is greater than a.
func UpperBoundN[T any, I ReadableIterator[I, T]](f I, n int, a T, r func(T, T) bool) I {
	return PartitionPointN(f, n, func(x T) bool { return r(a, x) })
}

// EqualRange returns the lower and upper bound of a in (f, n).
func EqualRange[T any, I ReadableIterator[I, T]](f I, n int, a T, r func(T, T) bool) (I, I) {
	lo := LowerBoundN(f, n, a, r)
	hi := UpperBoundN(lo, n-Distance(f, lo), a, r)
	return lo, hi
}

// FindBackwardIf returns the position after the last element of [f, l)
// satisfying p, or f when there is none.
func FindBackwardIf[T any, I ReadableBidirectional[I, T]](f, l I, p func(T) bool) I {
	for l != f && !p(l.Predecessor().Source()) {
		l = l.Predecessor()
	}
	return l
}

// FindBackwardIfNot returns the position after the last element of [f, l)
// failing p, or f when there is none.
func FindBackwardIfNot[T any, I ReadableBidirectional[I, T]](f, l I, p func(T) bool) I {
	for l != f && p(l.Predecessor().Source()) {
		l = l.Predecessor()
	}
	return l
}

// FindBackwardIfUnguarded returns the last position before l satisfying p.
// Such a position must exist.
func FindBackwardIfUnguarded[T any, I ReadableBidirectional[I, T]](l I, p func(T) bool) I {
	l = l.Predecessor()
	for !p(l.Source()) {
		l = l.Predecessor()
	}
	return l
}

// FindBackwardIfNotUnguarded returns the last position before l failing p.
// Such a position must exist.
func FindBackwardIfNotUnguarded[T any, I ReadableBidirectional[I, T]](l I, p func(T) bool) I {
	l = l.Predecessor()
	for p(l.Source()) {
		l = l.Predecessor()
	}
	return l
}
