// SPDX-License-Identifier: MIT
// Package: lvseq/iterator
//
// slice.go - random-access positions over a Go slice and the restricted
// views used to reach the weaker algorithm variants.

package iterator

// Slice is a random-access, mutable position into a Go slice. Two Slice
// values are equal iff they were derived from the same Bounds call (or the
// same Begin value) and sit at the same index.
//
// Slice is a small value type; passing it by value is intended.
type Slice[T any] struct {
	data *[]T
	i    int
}

// Bounds returns the positions delimiting all of s.
func Bounds[T any](s []T) (Slice[T], Slice[T]) {
	p := &s
	return Slice[T]{data: p}, Slice[T]{data: p, i: len(s)}
}

// Begin returns the position of s[0]. Use Offset on it to reach other
// positions of the same range.
func Begin[T any](s []T) Slice[T] {
	return Slice[T]{data: &s}
}

// Successor returns the next position.
func (p Slice[T]) Successor() Slice[T] { return Slice[T]{data: p.data, i: p.i + 1} }

// Predecessor returns the previous position.
func (p Slice[T]) Predecessor() Slice[T] { return Slice[T]{data: p.data, i: p.i - 1} }

// Offset returns the position n elements away; n may be negative.
func (p Slice[T]) Offset(n int) Slice[T] { return Slice[T]{data: p.data, i: p.i + n} }

// Distance returns l - p.
func (p Slice[T]) Distance(l Slice[T]) int { return l.i - p.i }

// Less orders positions of the same slice.
func (p Slice[T]) Less(j Slice[T]) bool { return p.i < j.i }

// Source returns the element at p.
func (p Slice[T]) Source() T { return (*p.data)[p.i] }

// Sink stores x at p.
func (p Slice[T]) Sink(x T) { (*p.data)[p.i] = x }

// Index returns the index of p in its slice.
func (p Slice[T]) Index() int { return p.i }

// ForwardSlice is a Slice restricted to forward traversal.
type ForwardSlice[T any] struct{ p Slice[T] }

// ForwardBounds returns forward-only positions delimiting s.
func ForwardBounds[T any](s []T) (ForwardSlice[T], ForwardSlice[T]) {
	f, l := Bounds(s)
	return ForwardSlice[T]{f}, ForwardSlice[T]{l}
}

// Successor returns the next position.
func (p ForwardSlice[T]) Successor() ForwardSlice[T] { return ForwardSlice[T]{p.p.Successor()} }

// Source returns the element at p.
func (p ForwardSlice[T]) Source() T { return p.p.Source() }

// Sink stores x at p.
func (p ForwardSlice[T]) Sink(x T) { p.p.Sink(x) }

// Index returns the index of p in its slice.
func (p ForwardSlice[T]) Index() int { return p.p.i }

// BidirectionalSlice is a Slice restricted to stepping both ways.
type BidirectionalSlice[T any] struct{ p Slice[T] }

// BidirectionalBounds returns bidirectional positions delimiting s.
func BidirectionalBounds[T any](s []T) (BidirectionalSlice[T], BidirectionalSlice[T]) {
	f, l := Bounds(s)
	return BidirectionalSlice[T]{f}, BidirectionalSlice[T]{l}
}

// Successor returns the next position.
func (p BidirectionalSlice[T]) Successor() BidirectionalSlice[T] {
	return BidirectionalSlice[T]{p.p.Successor()}
}

// Predecessor returns the previous position.
func (p BidirectionalSlice[T]) Predecessor() BidirectionalSlice[T] {
	return BidirectionalSlice[T]{p.p.Predecessor()}
}

// Source returns the element at p.
func (p BidirectionalSlice[T]) Source() T { return p.p.Source() }

// Sink stores x at p.
func (p BidirectionalSlice[T]) Sink(x T) { p.p.Sink(x) }

// Index returns the index of p in its slice.
func (p BidirectionalSlice[T]) Index() int { return p.p.i }

// IndexedSlice is a Slice restricted to forward steps and offsets.
type IndexedSlice[T any] struct{ p Slice[T] }

// IndexedBounds returns indexed positions delimiting s.
func IndexedBounds[T any](s []T) (IndexedSlice[T], IndexedSlice[T]) {
	f, l := Bounds(s)
	return IndexedSlice[T]{f}, IndexedSlice[T]{l}
}

// Successor returns the next position.
func (p IndexedSlice[T]) Successor() IndexedSlice[T] { return IndexedSlice[T]{p.p.Successor()} }

// Offset returns the position n >= 0 elements ahead.
func (p IndexedSlice[T]) Offset(n int) IndexedSlice[T] { return IndexedSlice[T]{p.p.Offset(n)} }

// Distance returns l - p.
func (p IndexedSlice[T]) Distance(l IndexedSlice[T]) int { return p.p.Distance(l.p) }

// Source returns the element at p.
func (p IndexedSlice[T]) Source() T { return p.p.Source() }

// Sink stores x at p.
func (p IndexedSlice[T]) Sink(x T) { p.p.Sink(x) }

// Index returns the index of p in its slice.
func (p IndexedSlice[T]) Index() int { return p.p.i }
