// SPDX-License-Identifier: MIT
// Package: lvseq/memory
//
// allocator.go - element storage acquisition and release.

package memory

import (
	"errors"
	"fmt"
)

// ErrAllocationFailed indicates that an allocator could not provide the
// requested number of elements.
// Usage: if errors.Is(err, ErrAllocationFailed) { /* ask for less */ }.
var ErrAllocationFailed = errors.New("memory: allocation failed")

// Allocator acquires and releases storage for elements of type T.
// Acquire(n) returns a slice of length n or an error wrapping
// ErrAllocationFailed. Release takes back exactly a slice previously
// returned by Acquire.
type Allocator[T any] interface {
	Acquire(n int) ([]T, error)
	Release(s []T)
}

// Heap allocates from the Go heap and never fails for n >= 0.
type Heap[T any] struct{}

// Acquire returns make([]T, n).
func (Heap[T]) Acquire(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("Heap.Acquire(%d): %w", n, ErrAllocationFailed)
	}
	return make([]T, n), nil
}

// Release is a no-op; the garbage collector reclaims the slice.
func (Heap[T]) Release([]T) {}

// Limited is an allocator with a fixed element budget shared by all live
// acquisitions. It stands in for a constrained system allocator: requests
// beyond the remaining budget fail.
type Limited[T any] struct {
	budget int
	inUse  int
	peak   int
}

// NewLimited returns an allocator that can hold at most budget elements at
// a time. Panics on a negative budget.
func NewLimited[T any](budget int) *Limited[T] {
	if budget < 0 {
		panic("memory: NewLimited(negative budget)")
	}
	return &Limited[T]{budget: budget}
}

// Acquire grants n elements if they fit in the remaining budget.
func (a *Limited[T]) Acquire(n int) ([]T, error) {
	if n < 0 || n > a.budget-a.inUse {
		return nil, fmt.Errorf("Limited.Acquire(%d): %d of %d in use: %w",
			n, a.inUse, a.budget, ErrAllocationFailed)
	}
	a.inUse += n
	if a.inUse > a.peak {
		a.peak = a.inUse
	}
	return make([]T, n), nil
}

// Release returns len(s) elements to the budget.
func (a *Limited[T]) Release(s []T) {
	a.inUse -= len(s)
}

// InUse reports the elements currently acquired.
func (a *Limited[T]) InUse() int { return a.inUse }

// Peak reports the largest InUse value observed.
func (a *Limited[T]) Peak() int { return a.peak }

// Observed wraps an allocator so that every successful acquisition and
// every release is reported to o.
func Observed[T any](a Allocator[T], o Observer) Allocator[T] {
	return observed[T]{a: a, o: o}
}

type observed[T any] struct {
	a Allocator[T]
	o Observer
}

func (x observed[T]) Acquire(n int) ([]T, error) {
	s, err := x.a.Acquire(n)
	if err == nil {
		x.o.Acquired(n)
	}
	return s, err
}

func (x observed[T]) Release(s []T) {
	x.o.Released(len(s))
	x.a.Release(s)
}
