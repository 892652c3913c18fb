// SPDX-License-Identifier: MIT
// Package: lvseq/linked
//
// options.go - functional options shared by SList and List.

package linked

import (
	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/memory"
)

// Option customizes a list at construction.
type Option func(*config)

type config struct {
	observer memory.Observer
}

func newConfig(opts []Option) config {
	c := config{observer: memory.Nop{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithObserver reports every node creation as Acquired(1) and every node
// release as Released(1). The dummy header of a List is not reported.
// Nodes moved between containers by Merge or Partition are released from
// the source observer and acquired by the destination one, unless both
// containers share the observer. o must be comparable (a pointer, say).
// Default: memory.Nop. Panics on nil.
func WithObserver(o memory.Observer) Option {
	if o == nil {
		panic("linked: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}

// adopt moves the accounting of the nodes counted by n from the container
// configured by from to the one configured by c.
func (c config) adopt(from config, n func() int) {
	if c.observer == from.observer {
		return
	}
	if k := n(); k > 0 {
		from.observer.Released(k)
		c.observer.Acquired(k)
	}
}

// chainLen counts the nodes of a nonempty chain, or returns 0 for the empty
// chain ending at l.
func chainLen[I iterator.Iterator[I]](c Chain[I], l I) int {
	if c.Head == l {
		return 0
	}
	return iterator.Distance(c.Head, c.Tail) + 1
}
