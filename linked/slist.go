// SPDX-License-Identifier: MIT
// Package: lvseq/linked
//
// slist.go - nil-terminated singly linked list.

package linked

import "github.com/katalvlaran/lvseq/iterator"

// SNode is a node of an SList and the position type of its algorithms.
// The nil *SNode is the limit of every SList range.
type SNode[T any] struct {
	value T
	next  *SNode[T]
}

// Successor returns the next node.
func (n *SNode[T]) Successor() *SNode[T] { return n.next }

// SetSuccessor relinks the next node.
func (n *SNode[T]) SetSuccessor(j *SNode[T]) { n.next = j }

// Source returns the stored value.
func (n *SNode[T]) Source() T { return n.value }

// Sink stores x.
func (n *SNode[T]) Sink(x T) { n.value = x }

// SList is a singly linked list. The zero value is not usable; construct
// with NewSList or SListOf. SList is not safe for concurrent use.
type SList[T any] struct {
	first *SNode[T]
	cfg   config
}

// NewSList returns an empty list.
func NewSList[T any](opts ...Option) *SList[T] {
	return &SList[T]{cfg: newConfig(opts)}
}

// SListOf returns a list holding values in order.
func SListOf[T any](values []T, opts ...Option) *SList[T] {
	x := NewSList[T](opts...)
	var p *SNode[T]
	for _, v := range values {
		p = x.InsertAfter(p, v)
	}
	return x
}

// Begin returns the first node, or nil when empty.
func (x *SList[T]) Begin() *SNode[T] { return x.first }

// End returns nil, the limit of the list.
func (x *SList[T]) End() *SNode[T] { return nil }

// Empty reports whether the list has no nodes.
func (x *SList[T]) Empty() bool { return x.first == nil }

// Len counts the nodes in O(n).
func (x *SList[T]) Len() int { return iterator.Distance(x.Begin(), x.End()) }

// InsertAfter creates a node holding v after p and returns it. A nil p
// inserts at the front.
func (x *SList[T]) InsertAfter(p *SNode[T], v T) *SNode[T] {
	x.cfg.observer.Acquired(1)
	i := &SNode[T]{value: v}
	if p == nil {
		ForwardLinker(i, x.first)
		x.first = i
	} else {
		ForwardLinker(i, p.next)
		ForwardLinker(p, i)
	}
	return i
}

// PushFront inserts v at the front.
func (x *SList[T]) PushFront(v T) { x.InsertAfter(nil, v) }

// eraseFirst frees i and returns its successor.
func (x *SList[T]) eraseFirst(i *SNode[T]) *SNode[T] {
	j := i.next
	*i = SNode[T]{}
	x.cfg.observer.Released(1)
	return j
}

// PopFront removes the first node. The list must not be empty.
func (x *SList[T]) PopFront() { x.first = x.eraseFirst(x.first) }

// EraseAfter removes the successor of p, which must exist.
func (x *SList[T]) EraseAfter(p *SNode[T]) {
	ForwardLinker(p, x.eraseFirst(p.next))
}

// EraseAll removes every node.
func (x *SList[T]) EraseAll() {
	for !x.Empty() {
		x.PopFront()
	}
}

// Reverse reverses the list by relinking.
func (x *SList[T]) Reverse() {
	x.first = ReverseAppend(x.Begin(), x.End(), x.End(), ForwardLinker[*SNode[T]])
}

// Partition keeps in x the nodes failing p and moves the nodes satisfying
// p to the front of y. Both groups keep their relative order.
func (x *SList[T]) Partition(y *SList[T], p func(T) bool) {
	setLink := ForwardLinker[*SNode[T]]
	ff, ft := PartitionLinked(x.Begin(), x.End(), p, setLink)
	y.cfg.adopt(x.cfg, func() int { return chainLen(ft, nil) })
	x.first = ff.Head
	if ff.Head != nil {
		setLink(ff.Tail, nil)
	}
	if ft.Head != nil {
		setLink(ft.Tail, y.first)
		y.first = ft.Head
	}
}

// Merge moves every node of y into x. Both lists must be increasing under
// the weak ordering less; x stays increasing and y ends empty. On ties the
// node from x goes first.
func (x *SList[T]) Merge(y *SList[T], less func(a, b T) bool) {
	if y.Empty() {
		return
	}
	x.cfg.adopt(y.cfg, y.Len)
	if x.Empty() {
		x.first, y.first = y.first, nil
		return
	}
	x.first, _ = MergeLinkedNonempty(x.Begin(), x.End(), y.Begin(), y.End(), less, ForwardLinker[*SNode[T]])
	y.first = nil
}

// Sort stably sorts the list under the weak ordering less.
func (x *SList[T]) Sort(less func(a, b T) bool) {
	if x.Empty() {
		return
	}
	x.first, _ = SortLinkedNonemptyN(x.Begin(), x.Len(), less, ForwardLinker[*SNode[T]])
}

// Values copies the values into a new slice.
func (x *SList[T]) Values() []T {
	out := make([]T, 0, x.Len())
	iterator.ForEach(x.Begin(), x.End(), func(v T) { out = append(out, v) })
	return out
}

// Equal reports whether x and y hold equal values under eq, position by
// position.
func (x *SList[T]) Equal(y *SList[T], eq func(a, b T) bool) bool {
	return iterator.LexicographicalEqual(x.Begin(), x.End(), y.Begin(), y.End(), eq)
}

// Less reports whether x precedes y lexicographically under less.
func (x *SList[T]) Less(y *SList[T], less func(a, b T) bool) bool {
	return iterator.LexicographicalCompare(x.Begin(), x.End(), y.Begin(), y.End(), less)
}
