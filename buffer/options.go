// SPDX-License-Identifier: MIT
// Package: lvseq/buffer
//
// options.go - functional options for temporary buffers.
//
// Contract:
//   - Option constructors validate and panic on nil arguments.
//   - New itself never panics and never fails.

package buffer

import "github.com/katalvlaran/lvseq/memory"

// Option customizes a temporary buffer before its storage is acquired.
type Option[T any] func(*config[T])

type config[T any] struct {
	alloc    memory.Allocator[T]
	onShrink func(requested, granted int)
}

func newConfig[T any](opts []Option[T]) config[T] {
	c := config[T]{alloc: memory.Heap[T]{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithAllocator sets the storage source. Default: memory.Heap.
// Panics on nil.
func WithAllocator[T any](a memory.Allocator[T]) Option[T] {
	if a == nil {
		panic("buffer: WithAllocator(nil)")
	}
	return func(c *config[T]) {
		c.alloc = a
	}
}

// WithOnShrink installs a hook called once, after acquisition, when the
// granted size is smaller than the requested one. Panics on nil.
func WithOnShrink[T any](fn func(requested, granted int)) Option[T] {
	if fn == nil {
		panic("buffer: WithOnShrink(nil)")
	}
	return func(c *config[T]) {
		c.onShrink = fn
	}
}
