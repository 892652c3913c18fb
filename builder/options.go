// SPDX-License-Identifier: MIT
// Package: lvseq/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvseq/bifurcate"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before the fixture is built.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. The RNG
// is shared, so consecutive calls continue one stream.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the half-open range [lo, hi) of drawn values.
// Panics if hi <= lo.
func WithRange(lo, hi int64) BuilderOption {
	if hi <= lo {
		panic("builder: WithRange(hi<=lo)")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithDistinct makes Random, Sorted and Reversed draw without
// replacement.
func WithDistinct() BuilderOption {
	return func(c *builderConfig) {
		c.distinct = true
	}
}

// WithTreeOptions passes options to the bifurcate containers built by
// tree constructors, e.g. bifurcate.WithObserver.
func WithTreeOptions(opts ...bifurcate.Option) BuilderOption {
	return func(c *builderConfig) {
		c.treeOpts = append(c.treeOpts, opts...)
	}
}
