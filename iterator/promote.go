// SPDX-License-Identifier: MIT
// Package: lvseq/iterator
//
// promote.go - lifting a weakly constrained position to the tiers its
// dynamic type implements.
//
// Go generics cannot call a function whose constraint is stronger than the
// caller's, even when the dynamic type would satisfy it. Dispatching entry
// points (rearrange.Rotate, partition.Partition, ...) therefore inspect
// CategoryOf once and hand Promoted positions to the chosen variant.
//
// Cost: each promoted step performs one dynamic interface conversion.

package iterator

// Promoted wraps a mutable forward position and statically offers every
// tier. Calls to tiers the wrapped position lacks fall back to stepping:
// Offset and Distance walk with Successor (or Predecessor for a negative
// offset), and Less compares by Distance. Use Promoted only for tiers that
// CategoryOf reported.
type Promoted[T any, I MutableIterator[I, T]] struct {
	Pos I
}

// Promote wraps i.
func Promote[T any, I MutableIterator[I, T]](i I) Promoted[T, I] {
	return Promoted[T, I]{Pos: i}
}

// Successor returns the next position.
func (p Promoted[T, I]) Successor() Promoted[T, I] {
	return Promoted[T, I]{Pos: p.Pos.Successor()}
}

// Predecessor returns the previous position. The wrapped position must be
// bidirectional.
func (p Promoted[T, I]) Predecessor() Promoted[T, I] {
	return Promoted[T, I]{Pos: any(p.Pos).(Bidirectional[I]).Predecessor()}
}

// Offset returns the position n steps away.
func (p Promoted[T, I]) Offset(n int) Promoted[T, I] {
	if x, ok := any(p.Pos).(Indexed[I]); ok {
		return Promoted[T, I]{Pos: x.Offset(n)}
	}
	i := p.Pos
	for ; n > 0; n-- {
		i = i.Successor()
	}
	for ; n < 0; n++ {
		i = any(i).(Bidirectional[I]).Predecessor()
	}
	return Promoted[T, I]{Pos: i}
}

// Distance returns l - p.
func (p Promoted[T, I]) Distance(l Promoted[T, I]) int {
	return Distance(p.Pos, l.Pos)
}

// Less orders positions of the same range.
func (p Promoted[T, I]) Less(j Promoted[T, I]) bool {
	if x, ok := any(p.Pos).(RandomAccess[I]); ok {
		return x.Less(j.Pos)
	}
	return p.Distance(j) > 0
}

// Source returns the element at p.
func (p Promoted[T, I]) Source() T { return p.Pos.Source() }

// Sink stores x at p.
func (p Promoted[T, I]) Sink(x T) { p.Pos.Sink(x) }
