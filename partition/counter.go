// SPDX-License-Identifier: MIT
// Package: lvseq/partition
//
// counter.go - balanced reduction with a binary counter, and the iterative
// stable partition built on it.
//
// Slot i of the counter holds either the zero value z or the combination
// of 2^i consecutive inputs. Adding an input propagates carries exactly as
// incrementing a binary number does, so every combination merges two
// operands of equal weight. With 64 slots the machine accepts 2^64-1
// inputs.

package partition

import "github.com/katalvlaran/lvseq/iterator"

const counterSlots = 64

// AddToCounter adds x to the counter held in slots, combining with op and
// carrying upward, and returns the carry left over when every slot was
// occupied (z otherwise). op is called as op(older, newer).
func AddToCounter[T comparable](slots []T, op func(T, T) T, x, z T) T {
	if x == z {
		return z
	}
	for i := range slots {
		if slots[i] == z {
			slots[i] = x
			return z
		}
		x = op(slots[i], x)
		slots[i] = z
	}
	return x
}

// CounterMachine accumulates inputs into a binary counter of partial
// results.
type CounterMachine[T comparable] struct {
	op    func(T, T) T
	z     T
	slots [counterSlots]T
	n     int
}

// NewCounterMachine returns an empty counter for op with zero value z.
func NewCounterMachine[T comparable](op func(T, T) T, z T) *CounterMachine[T] {
	return &CounterMachine[T]{op: op, z: z}
}

// Add feeds x to the counter.
func (c *CounterMachine[T]) Add(x T) {
	carry := AddToCounter(c.slots[:c.n], c.op, x, c.z)
	if carry != c.z {
		c.slots[c.n] = carry
		c.n++
	}
}

// Slots returns the occupied prefix of the counter, lowest weight first.
func (c *CounterMachine[T]) Slots() []T { return c.slots[:c.n] }

// Reduce combines the non-zero slots, highest weight (oldest inputs) on the
// left, and returns z when nothing was added.
func (c *CounterMachine[T]) Reduce() T {
	x := c.z
	found := false
	for _, y := range c.slots[:c.n] {
		if y == c.z {
			continue
		}
		if !found {
			x, found = y, true
			continue
		}
		x = c.op(y, x)
	}
	return x
}

// ReduceBalanced combines fun(i) for every position i of [f, l) with the
// partially associative op, in order, as a balanced tree of operations.
func ReduceBalanced[T comparable, I iterator.Iterator[I]](f, l I, op func(T, T) T, fun func(I) T, z T) T {
	c := NewCounterMachine(op, z)
	for f != l {
		c.Add(fun(f))
		f = f.Successor()
	}
	return c.Reduce()
}

// Trivial returns the singleton stable partition function for p.
func Trivial[T any, I iterator.ReadableIterator[I, T]](p func(T) bool) func(I) iterator.Bounded[I] {
	return func(i I) iterator.Bounded[I] { return StableSingleton(i, p) }
}

// StableIterative stably partitions [f, l) without recursion by reducing
// the singleton partitions of every position with CombineRanges through a
// counter machine. Extra space is the 64 counter slots.
func StableIterative[T any, I iterator.MutableIterator[I, T]](f, l I, p func(T) bool) I {
	z := iterator.Bounded[I]{First: f, Last: f}
	return ReduceBalanced(f, l, CombineRanges[T, I], Trivial[T, I](p), z).First
}
