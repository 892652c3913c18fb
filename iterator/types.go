// SPDX-License-Identifier: MIT
// Package: lvseq/iterator
//
// types.go - capability interfaces, algorithm constraints and range forms.

package iterator

// Forward is a position that can step to the next position.
type Forward[I any] interface {
	Successor() I
}

// Bidirectional can also step back.
type Bidirectional[I any] interface {
	Forward[I]
	Predecessor() I
}

// Indexed positions move by an arbitrary offset in constant time and measure
// the distance to a later position. Offset(n) is only required for n >= 0;
// Distance(l) is l - i for l reachable from i.
type Indexed[I any] interface {
	Forward[I]
	Offset(n int) I
	Distance(l I) int
}

// RandomAccess is Indexed plus Bidirectional, with negative offsets allowed
// and a constant time ordering of positions in the same range.
type RandomAccess[I any] interface {
	Indexed[I]
	Bidirectional[I]
	Less(j I) bool
}

// Readable yields the value at the position.
type Readable[T any] interface {
	Source() T
}

// Writable stores a value at the position.
type Writable[T any] interface {
	Sink(x T)
}

// Iterator is the constraint for forward traversal without access.
type Iterator[I any] interface {
	comparable
	Forward[I]
}

// ReadableIterator constrains a readable forward position.
type ReadableIterator[I, T any] interface {
	comparable
	Forward[I]
	Readable[T]
}

// WritableIterator constrains a writable forward position.
type WritableIterator[I, T any] interface {
	comparable
	Forward[I]
	Writable[T]
}

// MutableIterator constrains a readable and writable forward position.
type MutableIterator[I, T any] interface {
	comparable
	Forward[I]
	Readable[T]
	Writable[T]
}

// ReadableBidirectional constrains a readable bidirectional position.
type ReadableBidirectional[I, T any] interface {
	comparable
	Bidirectional[I]
	Readable[T]
}

// WritableBidirectional constrains a writable bidirectional position.
type WritableBidirectional[I, T any] interface {
	comparable
	Bidirectional[I]
	Writable[T]
}

// MutableBidirectional constrains a mutable bidirectional position.
type MutableBidirectional[I, T any] interface {
	comparable
	Bidirectional[I]
	Readable[T]
	Writable[T]
}

// ReadableIndexed constrains a readable indexed position.
type ReadableIndexed[I, T any] interface {
	comparable
	Indexed[I]
	Readable[T]
}

// MutableIndexed constrains a mutable indexed position.
type MutableIndexed[I, T any] interface {
	comparable
	Indexed[I]
	Readable[T]
	Writable[T]
}

// MutableRandomAccess constrains a mutable random-access position.
type MutableRandomAccess[I, T any] interface {
	comparable
	RandomAccess[I]
	Readable[T]
	Writable[T]
}

// Category names the strongest traversal tier a position offers.
type Category int

const (
	// CategoryForward positions only advance.
	CategoryForward Category = iota
	// CategoryBidirectional positions advance and retreat.
	CategoryBidirectional
	// CategoryIndexed positions offset and measure in O(1).
	CategoryIndexed
	// CategoryRandomAccess positions are indexed, bidirectional and ordered.
	CategoryRandomAccess
)

// String returns the tier name.
func (c Category) String() string {
	switch c {
	case CategoryBidirectional:
		return "bidirectional"
	case CategoryIndexed:
		return "indexed"
	case CategoryRandomAccess:
		return "random-access"
	default:
		return "forward"
	}
}

// CategoryOf reports the strongest tier implemented by the dynamic type of i.
func CategoryOf[I any](i I) Category {
	switch any(i).(type) {
	case RandomAccess[I]:
		return CategoryRandomAccess
	case Indexed[I]:
		return CategoryIndexed
	case Bidirectional[I]:
		return CategoryBidirectional
	default:
		return CategoryForward
	}
}

// Bounded is the range [First, Last).
type Bounded[I any] struct {
	First, Last I
}

// Counted is the range (First, N), equivalent to [First, First+N).
type Counted[I any] struct {
	First I
	N     int
}

// Empty reports whether the bounded range holds no positions.
func (r Bounded[I]) Empty() bool { return any(r.First) == any(r.Last) }
