// SPDX-License-Identifier: MIT
// Package: lvseq/iterator
//
// advance.go - position arithmetic that uses Indexed when available.

package iterator

// Advance returns f moved n >= 0 steps forward. Indexed positions jump in
// O(1); others step n times.
func Advance[I Iterator[I]](f I, n int) I {
	if x, ok := any(f).(Indexed[I]); ok {
		return x.Offset(n)
	}
	for n > 0 {
		f = f.Successor()
		n--
	}
	return f
}

// Retreat returns l moved n >= 0 steps backward.
func Retreat[I interface {
	comparable
	Bidirectional[I]
}](l I, n int) I {
	if x, ok := any(l).(RandomAccess[I]); ok {
		return x.Offset(-n)
	}
	for n > 0 {
		l = l.Predecessor()
		n--
	}
	return l
}

// Distance returns the number of successor steps from f to l, where l is
// reachable from f.
func Distance[I Iterator[I]](f, l I) int {
	if x, ok := any(f).(Indexed[I]); ok {
		return x.Distance(l)
	}
	n := 0
	for f != l {
		f = f.Successor()
		n++
	}
	return n
}

// Bound converts a counted range to a bounded one.
func Bound[I Iterator[I]](r Counted[I]) Bounded[I] {
	return Bounded[I]{First: r.First, Last: Advance(r.First, r.N)}
}

// Count converts a bounded range to a counted one.
func Count[I Iterator[I]](r Bounded[I]) Counted[I] {
	return Counted[I]{First: r.First, N: Distance(r.First, r.Last)}
}
