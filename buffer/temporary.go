// SPDX-License-Identifier: MIT
// Package: lvseq/buffer
//
// temporary.go - owned scratch storage that shrinks instead of failing.

package buffer

import (
	"github.com/katalvlaran/lvseq/integer"
	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/memory"
)

// Temporary is an exclusively owned block of scratch elements.
type Temporary[T any] struct {
	data      []T
	requested int
	alloc     memory.Allocator[T]
}

// New acquires a buffer for up to n elements, halving the request on every
// allocator failure. The result may be shorter than n, possibly empty.
func New[T any](n int, opts ...Option[T]) *Temporary[T] {
	cfg := newConfig(opts)
	b := &Temporary[T]{requested: n, alloc: cfg.alloc}
	for n > 0 {
		s, err := cfg.alloc.Acquire(n)
		if err == nil {
			b.data = s[:n]
			break
		}
		n = integer.HalfNonnegative(n)
	}
	if n < 0 {
		n = 0
	}
	if n < b.requested && cfg.onShrink != nil {
		cfg.onShrink(b.requested, n)
	}
	return b
}

// Len returns the number of elements actually granted.
func (b *Temporary[T]) Len() int { return len(b.data) }

// Requested returns the size originally asked for.
func (b *Temporary[T]) Requested() int { return b.requested }

// Bounds returns random-access positions over the granted elements.
func (b *Temporary[T]) Bounds() (iterator.Slice[T], iterator.Slice[T]) {
	return iterator.Bounds(b.data)
}

// Begin returns the position of the first granted element.
func (b *Temporary[T]) Begin() iterator.Slice[T] {
	f, _ := b.Bounds()
	return f
}

// Slice exposes the granted elements directly.
func (b *Temporary[T]) Slice() []T { return b.data }

// Release zeroes the elements and hands the storage back to the allocator.
// Calling Release more than once is harmless.
func (b *Temporary[T]) Release() {
	if b.data == nil {
		return
	}
	clear(b.data)
	b.alloc.Release(b.data)
	b.data = nil
}
