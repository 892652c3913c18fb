// SPDX-License-Identifier: MIT
// Package: lvseq/linked
//
// algorithms.go - split, combine, reverse and sort by relinking.
//
// Contract:
//   - Ranges are bounded: l is reachable from f by successor steps.
//   - Only links are written; values stay in their nodes.
//   - Links leaving the returned tails are unspecified unless stated.

package linked

import (
	"github.com/katalvlaran/lvseq/integer"
	"github.com/katalvlaran/lvseq/iterator"
)

// splitState tracks which chains are open and which one received the
// previous node. A link is only written on a switch between chains.
type splitState uint8

const (
	splitNone          splitState = iota // nothing seen yet
	splitOnlyFalse                       // false chain open, true chain empty
	splitOnlyTrue                        // true chain open, false chain empty
	splitBothLastFalse                   // both open, last node went false
	splitBothLastTrue                    // both open, last node went true
)

// SplitLinked distributes [f, l) into the chain of positions failing p and
// the chain of positions satisfying p, each in its original order. An empty
// chain has Head == Tail == l.
//
// Complexity: n applications of p, at most n link writes.
func SplitLinked[I iterator.Iterator[I]](f, l I, p func(I) bool, setLink Linker[I]) (ff, ft Chain[I]) {
	linkToTail := LinkerToTail(setLink)
	h0, t0, h1, t1 := l, l, l, l
	state := splitNone
	for f != l {
		pass := p(f)
		switch state {
		case splitNone:
			if pass {
				h1 = f
				AdvanceTail(&t1, &f)
				state = splitOnlyTrue
			} else {
				h0 = f
				AdvanceTail(&t0, &f)
				state = splitOnlyFalse
			}
		case splitOnlyFalse:
			if pass {
				h1 = f
				AdvanceTail(&t1, &f)
				state = splitBothLastTrue
			} else {
				AdvanceTail(&t0, &f)
			}
		case splitOnlyTrue:
			if pass {
				AdvanceTail(&t1, &f)
			} else {
				h0 = f
				AdvanceTail(&t0, &f)
				state = splitBothLastFalse
			}
		case splitBothLastFalse:
			if pass {
				linkToTail(&t1, &f)
				state = splitBothLastTrue
			} else {
				AdvanceTail(&t0, &f)
			}
		case splitBothLastTrue:
			if pass {
				AdvanceTail(&t1, &f)
			} else {
				linkToTail(&t0, &f)
				state = splitBothLastFalse
			}
		}
	}
	return Chain[I]{Head: h0, Tail: t0}, Chain[I]{Head: h1, Tail: t1}
}

// PartitionLinked is SplitLinked with a predicate on values.
func PartitionLinked[T any, I iterator.ReadableIterator[I, T]](f, l I, p func(T) bool, setLink Linker[I]) (ff, ft Chain[I]) {
	return SplitLinked(f, l, func(i I) bool { return p(i.Source()) }, setLink)
}

// CombineLinkedNonempty interleaves the nonempty disjoint ranges [f0, l0)
// and [f1, l1): the node of the second range is taken when r(f1, f0)
// holds, the node of the first otherwise. It returns the head h, the last
// node t that was linked, and the limit l of the range whose remainder
// follows t. The remainder is already attached to t.
func CombineLinkedNonempty[I iterator.Iterator[I]](f0, l0, f1, l1 I, r func(i1, i0 I) bool, setLink Linker[I]) (h, t, l I) {
	linkToTail := LinkerToTail(setLink)
	fromSecond := r(f1, f0)
	if fromSecond {
		h = f1
		AdvanceTail(&t, &f1)
	} else {
		h = f0
		AdvanceTail(&t, &f0)
	}
	for {
		if fromSecond {
			if f1 == l1 {
				setLink(t, f0)
				return h, t, l0
			}
			if r(f1, f0) {
				AdvanceTail(&t, &f1)
			} else {
				linkToTail(&t, &f0)
				fromSecond = false
			}
			continue
		}
		if f0 == l0 {
			setLink(t, f1)
			return h, t, l1
		}
		if r(f1, f0) {
			linkToTail(&t, &f1)
			fromSecond = true
		} else {
			AdvanceTail(&t, &f0)
		}
	}
}

// MergeLinkedNonempty merges the nonempty increasing ranges [f0, l0) and
// [f1, l1) under the weak ordering r. The result is the range [h, l1):
// the last merged node is linked to l1. Equivalent values keep their
// order, with the first range going first.
func MergeLinkedNonempty[T any, I iterator.ReadableIterator[I, T]](f0, l0, f1, l1 I, r func(a, b T) bool, setLink Linker[I]) (h, l I) {
	h, t, rest := CombineLinkedNonempty(f0, l0, f1, l1, func(i1, i0 I) bool {
		return r(i1.Source(), i0.Source())
	}, setLink)
	setLink(FindLast(t, rest), l1)
	return h, l1
}

// SortLinkedNonemptyN sorts the counted range (f, n), n > 0, under the weak
// ordering r and returns the sorted range [h, l), where l is the position
// that followed the n-th node. The sort is stable.
//
// Complexity: O(n log n) comparisons and link writes, O(log n) recursion.
func SortLinkedNonemptyN[T any, I iterator.ReadableIterator[I, T]](f I, n int, r func(a, b T) bool, setLink Linker[I]) (h, l I) {
	if n == 1 {
		return f, f.Successor()
	}
	half := integer.HalfNonnegative(n)
	h0, l0 := SortLinkedNonemptyN(f, half, r, setLink)
	h1, l1 := SortLinkedNonemptyN(l0, n-half, r, setLink)
	return MergeLinkedNonempty(h0, l0, h1, l1, r, setLink)
}

// ReverseAppend links the nodes of [f, l) in reverse order in front of h
// and returns the new head.
func ReverseAppend[I iterator.Iterator[I]](f, l, h I, setLink Linker[I]) I {
	linkToHead := LinkerToHead(setLink)
	for f != l {
		linkToHead(&h, &f)
	}
	return h
}
