// SPDX-License-Identifier: MIT
// Package: lvseq/builder
//
// sequences.go - integer sequences with controlled order profiles.
//
// Contract:
//   • Every constructor returns a fresh slice of length n, or an error.
//   • n == 0 yields an empty, non-nil slice.
//   • Stochastic constructors draw only from cfg.rng.

package builder

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Iota returns 0, 1, …, n-1.
// Complexity: O(n).
func Iota[N constraints.Integer](n int) ([]N, error) {
	if err := validateSize(MethodIota, n); err != nil {
		return nil, err
	}
	out := make([]N, n)
	for i := range out {
		out[i] = N(i)
	}

	return out, nil
}

// Random returns n values drawn uniformly from the configured range.
// With WithDistinct no value repeats, and the range must hold n values.
// Complexity: O(n) expected.
func Random[N constraints.Integer](n int, opts ...BuilderOption) ([]N, error) {
	return random[N](MethodRandom, n, newBuilderConfig(opts...))
}

// Sorted is Random in non-decreasing order.
// Complexity: O(n log n).
func Sorted[N constraints.Integer](n int, opts ...BuilderOption) ([]N, error) {
	out, err := random[N](MethodSorted, n, newBuilderConfig(opts...))
	if err != nil {
		return nil, err
	}
	slices.Sort(out)

	return out, nil
}

// Reversed is Random in non-increasing order.
// Complexity: O(n log n).
func Reversed[N constraints.Integer](n int, opts ...BuilderOption) ([]N, error) {
	out, err := random[N](MethodReversed, n, newBuilderConfig(opts...))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b N) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	return out, nil
}

// FewUnique returns n values drawn from 0..k-1, so that long runs of
// equivalent elements appear. k must be positive when n is.
// Complexity: O(n).
func FewUnique[N constraints.Integer](n, k int, opts ...BuilderOption) ([]N, error) {
	if err := validateSize(MethodFewUnique, n); err != nil {
		return nil, err
	}
	if n > 0 && k < 1 {
		return nil, builderErrorf(MethodFewUnique, ErrBadSize, "k must be ≥ 1, got %d", k)
	}
	cfg := newBuilderConfig(opts...)
	if err := requireRand(MethodFewUnique, cfg); err != nil {
		return nil, err
	}
	out := make([]N, n)
	for i := range out {
		out[i] = N(cfg.rng.Intn(k))
	}

	return out, nil
}

// random draws n values from [cfg.lo, cfg.hi), without replacement when
// cfg.distinct is set.
func random[N constraints.Integer](method string, n int, cfg builderConfig) ([]N, error) {
	if err := validateSize(method, n); err != nil {
		return nil, err
	}
	if err := requireRand(method, cfg); err != nil {
		return nil, err
	}
	span := cfg.hi - cfg.lo
	if cfg.distinct && int64(n) > span {
		return nil, builderErrorf(method, ErrBadSize, "%d distinct values requested from a range of %d", n, span)
	}
	out := make([]N, 0, n)
	var seen map[int64]struct{}
	if cfg.distinct {
		seen = make(map[int64]struct{}, n)
	}
	for len(out) < n {
		v := cfg.lo + cfg.rng.Int63n(span)
		if seen != nil {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
		}
		out = append(out, N(v))
	}

	return out, nil
}
