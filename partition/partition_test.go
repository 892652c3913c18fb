package partition_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/builder"
	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/partition"
)

func isEven(x int) bool { return x%2 == 0 }

// fixtures returns deterministic inputs covering empty, all-true,
// all-false, alternating and random ranges.
func fixtures() [][]int {
	rng := rand.New(rand.NewSource(7))
	out := [][]int{
		{},
		{1},
		{2},
		{2, 4, 6},
		{1, 3, 5},
		{0, 1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1, 0},
		{2, 1},
		{1, 2},
	}
	for n := 3; n < 40; n += 3 {
		xs, err := builder.Random[int](n, builder.WithRand(rng), builder.WithRange(0, 100))
		if err != nil {
			panic(err)
		}
		out = append(out, xs)
	}
	return out
}

func clone(xs []int) []int { return append([]int(nil), xs...) }

// stableOracle splits xs into the false and true subsequences.
func stableOracle(xs []int, p func(int) bool) ([]int, []int) {
	var fs, ts []int
	for _, x := range xs {
		if p(x) {
			ts = append(ts, x)
		} else {
			fs = append(fs, x)
		}
	}
	return fs, ts
}

func sorted(xs []int) []int {
	ys := clone(xs)
	sort.Ints(ys)
	return ys
}

// requirePartitioned checks that xs is a permutation of orig partitioned at
// index m.
func requirePartitioned(t *testing.T, orig, xs []int, m int, name string) {
	t.Helper()
	fs, _ := stableOracle(orig, isEven)
	require.Equal(t, len(fs), m, "%s: partition point for %v", name, orig)
	f, l := iterator.Bounds(xs)
	require.True(t, partition.PartitionedAtPoint(f, f.Offset(m), l, isEven), "%s: %v", name, xs)
	require.Equal(t, sorted(orig), sorted(xs), "%s: not a permutation", name)
}

func TestStablePartitionScenario(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5}
	f, _ := iterator.Bounds(xs)
	r := partition.StableN[int](f, 6, isEven)
	assert.Equal(t, []int{1, 3, 5, 0, 2, 4}, xs)
	assert.Equal(t, 3, r.First.Index())
	assert.Equal(t, 6, r.Last.Index())
}

// unstableVariants runs each unstable partition over xs with isEven and
// returns the partition point as an index.
func unstableVariants() map[string]func(xs []int) int {
	return map[string]func(xs []int) int{
		"semistable": func(xs []int) int {
			f, l := iterator.ForwardBounds(xs)
			return partition.Semistable(f, l, isEven).Index()
		},
		"forward": func(xs []int) int {
			f, l := iterator.ForwardBounds(xs)
			return partition.Forward(f, l, isEven).Index()
		},
		"bidirectional": func(xs []int) int {
			f, l := iterator.BidirectionalBounds(xs)
			return partition.Bidirectional(f, l, isEven).Index()
		},
		"single-cycle": func(xs []int) int {
			f, l := iterator.BidirectionalBounds(xs)
			return partition.SingleCycle(f, l, isEven).Index()
		},
		"sentinel": func(xs []int) int {
			f, l := iterator.BidirectionalBounds(xs)
			return partition.Sentinel(f, l, isEven).Index()
		},
		"indexed": func(xs []int) int {
			f, l := iterator.IndexedBounds(xs)
			return partition.Indexed(f, l, isEven).Index()
		},
		"dispatch-random-access": func(xs []int) int {
			f, l := iterator.Bounds(xs)
			return partition.Partition(f, l, isEven).Index()
		},
		"dispatch-bidirectional": func(xs []int) int {
			f, l := iterator.BidirectionalBounds(xs)
			return partition.Partition(f, l, isEven).Index()
		},
		"dispatch-indexed": func(xs []int) int {
			f, l := iterator.IndexedBounds(xs)
			return partition.Partition(f, l, isEven).Index()
		},
		"dispatch-forward": func(xs []int) int {
			f, l := iterator.ForwardBounds(xs)
			return partition.Partition(f, l, isEven).Index()
		},
	}
}

func TestUnstableVariants(t *testing.T) {
	for name, run := range unstableVariants() {
		for _, orig := range fixtures() {
			xs := clone(orig)
			m := run(xs)
			requirePartitioned(t, orig, xs, m, name)
		}
	}
}

// TestUnstableVariantsEveryMask runs every variant over every arrangement
// of true and false elements up to length 6, so each scan meets its bound
// from both sides.
func TestUnstableVariantsEveryMask(t *testing.T) {
	for name, run := range unstableVariants() {
		for n := 0; n <= 6; n++ {
			for mask := 0; mask < 1<<n; mask++ {
				orig := make([]int, n)
				for i := range orig {
					orig[i] = 2*i + (mask>>i)&1
				}
				xs := clone(orig)
				requirePartitioned(t, orig, xs, run(xs), name)
			}
		}
	}
}

// TestSingleCycleAllTrueBeforeHole covers a backward scan that reaches the
// hole left by the forward scan.
func TestSingleCycleAllTrueBeforeHole(t *testing.T) {
	xs := []int{0, 2, 5}
	f, l := iterator.BidirectionalBounds(xs)
	m := partition.SingleCycle(f, l, isEven).Index()
	assert.Equal(t, 1, m)
	assert.Equal(t, []int{5, 0, 2}, xs)
}

func TestIndexedPartitionPoint(t *testing.T) {
	for _, tc := range []struct {
		in   []int
		want int
	}{
		{[]int{0}, 0},
		{[]int{1, 2}, 1},
		{[]int{0, 2, 5}, 1},
		{[]int{1, 3, 4}, 2},
	} {
		xs := clone(tc.in)
		f, l := iterator.IndexedBounds(xs)
		assert.Equal(t, tc.want, partition.Indexed(f, l, isEven).Index(), "Indexed(%v)", tc.in)
	}
}

func TestSemistableKeepsFalseOrder(t *testing.T) {
	for _, orig := range fixtures() {
		xs := clone(orig)
		f, l := iterator.ForwardBounds(xs)
		m := partition.Semistable(f, l, isEven).Index()
		requirePartitioned(t, orig, xs, m, "semistable")

		fs, _ := stableOracle(orig, isEven)
		assert.Equal(t, fs, nilIfEmpty(xs[:m]), "false side order for %v", orig)
	}
}

func nilIfEmpty(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	return xs
}

func TestStableVariantsPreserveBothSides(t *testing.T) {
	type variant func(xs []int) int
	variants := map[string]variant{
		"stable": func(xs []int) int {
			f, l := iterator.ForwardBounds(xs)
			return partition.Stable(f, l, isEven).Index()
		},
		"with-buffer": func(xs []int) int {
			f, l := iterator.ForwardBounds(xs)
			buf := make([]int, len(xs))
			bf, _ := iterator.Bounds(buf)
			return partition.StableWithBuffer(f, l, bf, isEven).Index()
		},
		"iterative": func(xs []int) int {
			f, l := iterator.ForwardBounds(xs)
			return partition.StableIterative(f, l, isEven).Index()
		},
		"adaptive-temporary": func(xs []int) int {
			f, l := iterator.Bounds(xs)
			return partition.StableAdaptive(f, l, isEven).Index()
		},
		"adaptive-small-buffer": func(xs []int) int {
			f, _ := iterator.ForwardBounds(xs)
			buf := make([]int, 3)
			bf, _ := iterator.Bounds(buf)
			return partition.StableNAdaptive(f, len(xs), bf, len(buf), isEven).First.Index()
		},
	}
	for name, run := range variants {
		for _, orig := range fixtures() {
			xs := clone(orig)
			m := run(xs)
			fs, ts := stableOracle(orig, isEven)
			require.Equal(t, len(fs), m, "%s: %v", name, orig)
			require.Equal(t, append(fs, ts...), nilIfEmpty(xs), "%s: %v", name, orig)
		}
	}
}

func TestRemoveIfCompactsKeptElements(t *testing.T) {
	xs := []int{1, 2, 3, 4, 6, 7}
	f, l := iterator.Bounds(xs)
	m := partition.RemoveIf(f, l, isEven)
	assert.Equal(t, 3, m.Index())
	assert.Equal(t, []int{1, 3, 7}, xs[:3])
}

func TestPotentialPartitionPoint(t *testing.T) {
	xs := []int{2, 1, 4, 3, 5}
	f, l := iterator.Bounds(xs)
	assert.Equal(t, 3, partition.PotentialPartitionPoint(f, l, isEven).Index())
	assert.False(t, partition.PartitionedAtPoint(f, f.Offset(3), l, isEven))
}
