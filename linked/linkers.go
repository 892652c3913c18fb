// SPDX-License-Identifier: MIT
// Package: lvseq/linked
//
// linkers.go - link-setting capabilities and tail/head builders.

package linked

import "github.com/katalvlaran/lvseq/iterator"

// ForwardLinked positions can redirect their successor.
type ForwardLinked[I any] interface {
	SetSuccessor(j I)
}

// BackwardLinked positions can redirect their predecessor.
type BackwardLinked[I any] interface {
	SetPredecessor(j I)
}

// Linker makes y the successor of x, in whatever link fields the position
// representation keeps.
type Linker[I any] func(x, y I)

// Chain is the closed run [Head, Tail] produced by splitting a range. A
// chain whose Head equals the limit of the split range is empty. The link
// leaving Tail is unspecified.
type Chain[I any] struct {
	Head, Tail I
}

// ForwardLinker sets the forward link of x to y.
func ForwardLinker[I ForwardLinked[I]](x, y I) {
	x.SetSuccessor(y)
}

// BackwardLinker sets the backward link of y to x.
func BackwardLinker[I BackwardLinked[I]](x, y I) {
	y.SetPredecessor(x)
}

// BidirectionalLinker sets both links between x and y.
func BidirectionalLinker[I interface {
	ForwardLinked[I]
	BackwardLinked[I]
}](x, y I) {
	x.SetSuccessor(y)
	y.SetPredecessor(x)
}

// AdvanceTail moves the tail t to f and f to its successor.
func AdvanceTail[I iterator.Forward[I]](t, f *I) {
	*t = *f
	*f = (*f).Successor()
}

// LinkerToTail returns a step that links f after the tail t, then advances
// the tail as AdvanceTail does.
func LinkerToTail[I iterator.Forward[I]](setLink Linker[I]) func(t, f *I) {
	return func(t, f *I) {
		setLink(*t, *f)
		AdvanceTail(t, f)
	}
}

// LinkerToHead returns a step that detaches f, links it in front of the
// head h and makes it the new head. f moves to its former successor.
func LinkerToHead[I iterator.Forward[I]](setLink Linker[I]) func(h, f *I) {
	return func(h, f *I) {
		next := (*f).Successor()
		setLink(*f, *h)
		*h = *f
		*f = next
	}
}

// FindLast returns the last position of the nonempty range [f, l).
func FindLast[I iterator.Iterator[I]](f, l I) I {
	var t I
	for {
		AdvanceTail(&t, &f)
		if f == l {
			return t
		}
	}
}
