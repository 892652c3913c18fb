// SPDX-License-Identifier: MIT
// Package: lvseq/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach their name with builderErrorf, keeping %w.
//   • Validation panics are confined to option constructors (WithX).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid size: a negative length or depth, or a
// request for more distinct values than the value range holds.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n, k or depth */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved builderConfig (set WithSeed or WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a formatted message with the constructor name and
// wraps sentinel, producing "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// validateSize rejects negative sizes.
func validateSize(method string, n int) error {
	if n < 0 {
		return builderErrorf(method, ErrBadSize, "size must be ≥ 0, got %d", n)
	}

	return nil
}

// requireRand rejects a config without an RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "set WithSeed or WithRand")
	}

	return nil
}
