// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// options.go - functional options shared by STree and Tree.

package bifurcate

import "github.com/katalvlaran/lvseq/memory"

// Option customizes a tree at construction.
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
// release as Released(1). Default: memory.Nop. Panics on nil.
func WithObserver(o memory.Observer) Option {
	if o == nil {
		panic("bifurcate: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}
