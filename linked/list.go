// SPDX-License-Identifier: MIT
// Package: lvseq/linked
//
// list.go - doubly linked circular list with a dummy header.

package linked

import "github.com/katalvlaran/lvseq/iterator"

// Node is a node of a List and the position type of its algorithms.
type Node[T any] struct {
	value      T
	next, prev *Node[T]
}

// Successor returns the next node.
func (n *Node[T]) Successor() *Node[T] { return n.next }

// Predecessor returns the previous node.
func (n *Node[T]) Predecessor() *Node[T] { return n.prev }

// SetSuccessor relinks the next node.
func (n *Node[T]) SetSuccessor(j *Node[T]) { n.next = j }

// SetPredecessor relinks the previous node.
func (n *Node[T]) SetPredecessor(j *Node[T]) { n.prev = j }

// Source returns the stored value.
func (n *Node[T]) Source() T { return n.value }

// Sink stores x.
func (n *Node[T]) Sink(x T) { n.value = x }

// List is a doubly linked list closed into a ring through a dummy header.
// The header is End(); its value is never read. The zero value is not
// usable; construct with NewList or ListOf. List is not safe for
// concurrent use.
type List[T any] struct {
	dummy *Node[T]
	cfg   config
}

// NewList returns an empty list.
func NewList[T any](opts ...Option) *List[T] {
	x := &List[T]{dummy: &Node[T]{}, cfg: newConfig(opts)}
	BidirectionalLinker(x.dummy, x.dummy)
	return x
}

// ListOf returns a list holding values in order.
func ListOf[T any](values []T, opts ...Option) *List[T] {
	x := NewList[T](opts...)
	for _, v := range values {
		x.PushBack(v)
	}
	return x
}

// Begin returns the first node, or End() when empty.
func (x *List[T]) Begin() *Node[T] { return x.dummy.next }

// End returns the header, the limit of the list.
func (x *List[T]) End() *Node[T] { return x.dummy }

// Empty reports whether the list has no nodes.
func (x *List[T]) Empty() bool { return x.dummy.next == x.dummy }

// Len counts the nodes in O(n).
func (x *List[T]) Len() int { return iterator.Distance(x.Begin(), x.End()) }

// Insert creates a node holding v before j and returns it.
func (x *List[T]) Insert(j *Node[T], v T) *Node[T] {
	x.cfg.observer.Acquired(1)
	i := &Node[T]{value: v}
	BidirectionalLinker(j.prev, i)
	BidirectionalLinker(i, j)
	return i
}

// PushFront inserts v before the first node.
func (x *List[T]) PushFront(v T) { x.Insert(x.Begin(), v) }

// PushBack inserts v after the last node.
func (x *List[T]) PushBack(v T) { x.Insert(x.End(), v) }

// Erase removes i, which must be a node of x other than End().
func (x *List[T]) Erase(i *Node[T]) {
	BidirectionalLinker(i.prev, i.next)
	*i = Node[T]{}
	x.cfg.observer.Released(1)
}

// EraseAll removes every node, last first.
func (x *List[T]) EraseAll() {
	for !x.Empty() {
		x.Erase(x.End().Predecessor())
	}
}

// Reverse reverses the list by relinking.
func (x *List[T]) Reverse() {
	setLink := BidirectionalLinker[*Node[T]]
	setLink(x.dummy, ReverseAppend(x.Begin(), x.End(), x.End(), setLink))
}

// Partition keeps in x the nodes failing p and moves the nodes satisfying
// p to the front of y. Both groups keep their relative order.
func (x *List[T]) Partition(y *List[T], p func(T) bool) {
	setLink := BidirectionalLinker[*Node[T]]
	ff, ft := PartitionLinked(x.Begin(), x.End(), p, setLink)
	y.cfg.adopt(x.cfg, func() int { return chainLen(ft, x.dummy) })
	setLink(ff.Tail, x.dummy)
	setLink(x.dummy, ff.Head)
	if ft.Head != x.dummy {
		setLink(ft.Tail, y.Begin())
		setLink(y.dummy, ft.Head)
	}
}

// Merge moves every node of y into x. Both lists must be increasing under
// the weak ordering less; x stays increasing and y ends empty. On ties the
// node from x goes first.
func (x *List[T]) Merge(y *List[T], less func(a, b T) bool) {
	if y.Empty() {
		return
	}
	x.cfg.adopt(y.cfg, y.Len)
	if x.Empty() {
		x.dummy, y.dummy = y.dummy, x.dummy
		return
	}
	setLink := BidirectionalLinker[*Node[T]]
	h, l := MergeLinkedNonempty(x.Begin(), x.End(), y.Begin(), y.End(), less, setLink)
	setLink(x.dummy, h)
	setLink(FindLast(h, l), x.dummy)
	setLink(y.dummy, y.dummy)
}

// Sort stably sorts the list under the weak ordering less. Sorting uses
// forward links only; the backward links are rebuilt in one pass.
func (x *List[T]) Sort(less func(a, b T) bool) {
	if x.Empty() {
		return
	}
	h, l := SortLinkedNonemptyN(x.Begin(), x.Len(), less, ForwardLinker[*Node[T]])
	BidirectionalLinker(x.dummy, h)
	for f := h; f != l; f = f.next {
		BackwardLinker(f, f.next)
	}
}

// Values copies the values into a new slice.
func (x *List[T]) Values() []T {
	out := make([]T, 0, x.Len())
	iterator.ForEach(x.Begin(), x.End(), func(v T) { out = append(out, v) })
	return out
}

// Equal reports whether x and y hold equal values under eq, position by
// position.
func (x *List[T]) Equal(y *List[T], eq func(a, b T) bool) bool {
	return iterator.LexicographicalEqual(x.Begin(), x.End(), y.Begin(), y.End(), eq)
}

// Less reports whether x precedes y lexicographically under less.
func (x *List[T]) Less(y *List[T], less func(a, b T) bool) bool {
	return iterator.LexicographicalCompare(x.Begin(), x.End(), y.Begin(), y.End(), less)
}
