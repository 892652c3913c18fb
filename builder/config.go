// SPDX-License-Identifier: MIT
// Package: lvseq/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil                (stochastic constructors refuse to run)
//   • [lo, hi)  = [0, 1<<16)
//   • distinct  = false
//   • treeOpts  = none               (bifurcate defaults)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvseq/bifurcate"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Half-open value range for Random, Sorted and Reversed.
	lo, hi int64
	// Draw without replacement.
	distinct bool
	// Options for the bifurcate containers built by tree constructors.
	treeOpts []bifurcate.Option
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultLo = int64(0)       // smallest drawn value
	defaultHi = int64(1 << 16) // one past the largest drawn value
)

// Method names used as error prefixes.
const (
	MethodIota         = "Iota"
	MethodRandom       = "Random"
	MethodSorted       = "Sorted"
	MethodReversed     = "Reversed"
	MethodFewUnique    = "FewUnique"
	MethodCompleteTree = "CompleteTree"
	MethodRandomTree   = "RandomTree"
	MethodLeftSpine    = "LeftSpine"
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng: nil,
		lo:  defaultLo,
		hi:  defaultHi,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
