// SPDX-License-Identifier: MIT
// Package: lvseq/copying
//
// combine.go - combining two ranges into one, forward and backward.
//
// Algorithm Outline (CombineCopy):
//
//	while both inputs remain:
//	  rs(head1, head0) -> emit head1
//	  otherwise        -> emit head0
//	copy the rest of range 0, then the rest of range 1
//
// Only one input can have elements left when the loop ends, so the two
// trailing copies emit at most one non-empty tail.
//
// Complexity: O(n0+n1) time, at most n0+n1-1 applications of rs, O(1) space.

package copying

import "github.com/katalvlaran/lvseq/iterator"

// CombineCopy merges [fi0, li0) and [fi1, li1) into fo, choosing the element
// of range 1 exactly when rs(position1, position0) holds.
func CombineCopy[T any, I0 iterator.ReadableIterator[I0, T], I1 iterator.ReadableIterator[I1, T], O iterator.WritableIterator[O, T]](fi0, li0 I0, fi1, li1 I1, fo O, rs func(I1, I0) bool) O {
	for fi0 != li0 && fi1 != li1 {
		if rs(fi1, fi0) {
			fo.Sink(fi1.Source())
			fi1 = fi1.Successor()
		} else {
			fo.Sink(fi0.Source())
			fi0 = fi0.Successor()
		}
		fo = fo.Successor()
	}
	return Copy[T](fi1, li1, Copy[T](fi0, li0, fo))
}

// CombineCopyN is CombineCopy over counted ranges. It returns the ends of
// both inputs and of the output.
func CombineCopyN[T any, I0 iterator.ReadableIterator[I0, T], I1 iterator.ReadableIterator[I1, T], O iterator.WritableIterator[O, T]](fi0 I0, n0 int, fi1 I1, n1 int, fo O, rs func(I1, I0) bool) (I0, I1, O) {
	for {
		if n0 == 0 {
			fi1, fo = CopyN[T](fi1, n1, fo)
			return fi0, fi1, fo
		}
		if n1 == 0 {
			fi0, fo = CopyN[T](fi0, n0, fo)
			return fi0, fi1, fo
		}
		if rs(fi1, fi0) {
			fo.Sink(fi1.Source())
			fi1 = fi1.Successor()
			n1--
		} else {
			fo.Sink(fi0.Source())
			fi0 = fi0.Successor()
			n0--
		}
		fo = fo.Successor()
	}
}

// CombineCopyBackward fills the range ending at lo from the back, taking
// the last element of range 0 exactly when rs(last1, last0) holds.
func CombineCopyBackward[T any, I0 iterator.ReadableBidirectional[I0, T], I1 iterator.ReadableBidirectional[I1, T], O iterator.WritableBidirectional[O, T]](fi0, li0 I0, fi1, li1 I1, lo O, rs func(I1, I0) bool) O {
	for fi0 != li0 && fi1 != li1 {
		lo = lo.Predecessor()
		if rs(li1.Predecessor(), li0.Predecessor()) {
			li0 = li0.Predecessor()
			lo.Sink(li0.Source())
		} else {
			li1 = li1.Predecessor()
			lo.Sink(li1.Source())
		}
	}
	return CopyBackward[T](fi0, li0, CopyBackward[T](fi1, li1, lo))
}

// CombineCopyBackwardN is CombineCopyBackward over the n0 elements ending
// at li0 and the n1 elements ending at li1.
func CombineCopyBackwardN[T any, I0 iterator.ReadableBidirectional[I0, T], I1 iterator.ReadableBidirectional[I1, T], O iterator.WritableBidirectional[O, T]](li0 I0, n0 int, li1 I1, n1 int, lo O, rs func(I1, I0) bool) (I0, I1, O) {
	for {
		if n0 == 0 {
			li1, lo = CopyBackwardN[T](li1, n1, lo)
			return li0, li1, lo
		}
		if n1 == 0 {
			li0, lo = CopyBackwardN[T](li0, n0, lo)
			return li0, li1, lo
		}
		lo = lo.Predecessor()
		if rs(li1.Predecessor(), li0.Predecessor()) {
			li0 = li0.Predecessor()
			lo.Sink(li0.Source())
			n0--
		} else {
			li1 = li1.Predecessor()
			lo.Sink(li1.Source())
			n1--
		}
	}
}

// MergeCopy merges two ranges that are increasing under r. Ties keep the
// element of range 0 first.
func MergeCopy[T any, I0 iterator.ReadableIterator[I0, T], I1 iterator.ReadableIterator[I1, T], O iterator.WritableIterator[O, T]](fi0, li0 I0, fi1, li1 I1, fo O, r func(T, T) bool) O {
	return CombineCopy[T](fi0, li0, fi1, li1, fo, relationSource[T, I1, I0](r))
}

// MergeCopyN is MergeCopy over counted ranges.
func MergeCopyN[T any, I0 iterator.ReadableIterator[I0, T], I1 iterator.ReadableIterator[I1, T], O iterator.WritableIterator[O, T]](fi0 I0, n0 int, fi1 I1, n1 int, fo O, r func(T, T) bool) (I0, I1, O) {
	return CombineCopyN[T](fi0, n0, fi1, n1, fo, relationSource[T, I1, I0](r))
}

// MergeCopyBackward merges two increasing ranges into the range ending at
// lo, producing the same order as MergeCopy.
func MergeCopyBackward[T any, I0 iterator.ReadableBidirectional[I0, T], I1 iterator.ReadableBidirectional[I1, T], O iterator.WritableBidirectional[O, T]](fi0, li0 I0, fi1, li1 I1, lo O, r func(T, T) bool) O {
	return CombineCopyBackward[T](fi0, li0, fi1, li1, lo, relationSource[T, I1, I0](r))
}

// MergeCopyBackwardN is MergeCopyBackward over counted ranges.
func MergeCopyBackwardN[T any, I0 iterator.ReadableBidirectional[I0, T], I1 iterator.ReadableBidirectional[I1, T], O iterator.WritableBidirectional[O, T]](li0 I0, n0 int, li1 I1, n1 int, lo O, r func(T, T) bool) (I0, I1, O) {
	return CombineCopyBackwardN[T](li0, n0, li1, n1, lo, relationSource[T, I1, I0](r))
}

// relationSource lifts a value relation to a relation on positions.
func relationSource[T any, A iterator.Readable[T], B iterator.Readable[T]](r func(T, T) bool) func(A, B) bool {
	return func(a A, b B) bool { return r(a.Source(), b.Source()) }
}
