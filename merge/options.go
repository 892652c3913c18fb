// SPDX-License-Identifier: MIT
// Package: lvseq/merge
//
// options.go - functional options for Sort and SortN.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Sort never panics and never fails; a refused buffer only costs speed.

package merge

import (
	"github.com/katalvlaran/lvseq/buffer"
	"github.com/katalvlaran/lvseq/memory"
)

// Option customizes a sort before its buffer is acquired.
type Option[T any] func(*config[T])

const autoBufferSize = -1

type config[T any] struct {
	// bufferSize < 0 means ⌊n/2⌋.
	bufferSize int
	bufferOpts []buffer.Option[T]
}

func newConfig[T any](opts []Option[T]) config[T] {
	c := config[T]{bufferSize: autoBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// resolve returns the buffer size to request for n elements.
func (c config[T]) resolve(n int) int {
	if c.bufferSize < 0 {
		return n / 2
	}
	return min(c.bufferSize, n)
}

// WithBufferSize requests a temporary buffer of exactly n elements instead
// of ⌊len/2⌋. Zero selects the pure rotation-based merge. Panics if n < 0.
func WithBufferSize[T any](n int) Option[T] {
	if n < 0 {
		panic("merge: WithBufferSize(negative)")
	}
	return func(c *config[T]) {
		c.bufferSize = n
	}
}

// WithAllocator sets the allocator behind the temporary buffer.
// Panics on nil.
func WithAllocator[T any](a memory.Allocator[T]) Option[T] {
	if a == nil {
		panic("merge: WithAllocator(nil)")
	}
	return func(c *config[T]) {
		c.bufferOpts = append(c.bufferOpts, buffer.WithAllocator(a))
	}
}

// WithOnShrink installs a hook reporting a buffer granted smaller than
// requested. Panics on nil.
func WithOnShrink[T any](fn func(requested, granted int)) Option[T] {
	if fn == nil {
		panic("merge: WithOnShrink(nil)")
	}
	return func(c *config[T]) {
		c.bufferOpts = append(c.bufferOpts, buffer.WithOnShrink[T](fn))
	}
}
