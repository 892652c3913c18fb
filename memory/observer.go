// SPDX-License-Identifier: MIT
// Package: lvseq/memory
//
// observer.go - injectable accounting of acquired and released storage.

package memory

// Observer is notified of storage entering and leaving use. Node containers
// report one unit per node; allocators report element counts.
type Observer interface {
	Acquired(n int)
	Released(n int)
}

// Nop is an Observer that ignores all notifications.
type Nop struct{}

// Acquired does nothing.
func (Nop) Acquired(int) {}

// Released does nothing.
func (Nop) Released(int) {}

// Counter tallies notifications. The zero value is ready to use.
// Counter is not safe for concurrent use.
type Counter struct {
	acquired int
	released int
}

// Acquired adds n to the acquired tally.
func (c *Counter) Acquired(n int) { c.acquired += n }

// Released adds n to the released tally.
func (c *Counter) Released(n int) { c.released += n }

// Live returns acquired minus released.
func (c *Counter) Live() int { return c.acquired - c.released }

// Total returns the acquired tally.
func (c *Counter) Total() int { return c.acquired }

// Freed returns the released tally.
func (c *Counter) Freed() int { return c.released }

// Reset zeroes both tallies.
func (c *Counter) Reset() { *c = Counter{} }
