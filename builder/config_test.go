// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and
// override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvseq/bifurcate"
	"github.com/katalvlaran/lvseq/memory"
)

// TestDefaults verifies the deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.lo != defaultLo || cfg.hi != defaultHi {
		t.Errorf("default range: expected [%d,%d), got [%d,%d)", defaultLo, defaultHi, cfg.lo, cfg.hi)
	}
	if cfg.distinct {
		t.Error("default distinct: expected false")
	}
	if len(cfg.treeOpts) != 0 {
		t.Errorf("default treeOpts: expected none, got %d", len(cfg.treeOpts))
	}
}

// TestRNGOptions verifies that RNG options configure the rng field,
// including reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	expRNG := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(expRNG)); cfg.rng != expRNG {
		t.Errorf("WithRand: expected rng %p, got %p", expRNG, cfg.rng)
	}

	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected identical draws, got %d and %d", a, b)
	}

	if cfg := newBuilderConfig(WithSeed(1), WithRand(expRNG)); cfg.rng != expRNG {
		t.Error("WithRand after WithSeed: expected last option to win")
	}
}

// TestRangeAndTreeOptions verifies WithRange, WithDistinct and
// WithTreeOptions accumulation.
func TestRangeAndTreeOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithRange(-5, 5), WithDistinct())
	if cfg.lo != -5 || cfg.hi != 5 || !cfg.distinct {
		t.Errorf("WithRange/WithDistinct: got [%d,%d) distinct=%v", cfg.lo, cfg.hi, cfg.distinct)
	}

	var c memory.Counter
	cfg = newBuilderConfig(
		WithTreeOptions(bifurcate.WithObserver(&c)),
		WithTreeOptions(bifurcate.WithObserver(memory.Nop{})),
	)
	if len(cfg.treeOpts) != 2 {
		t.Errorf("WithTreeOptions: expected 2 accumulated options, got %d", len(cfg.treeOpts))
	}
}

// TestOptionPanics verifies that option constructors reject meaningless
// values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":    func() { WithRand(nil) },
		"WithRange(1, 1)":  func() { WithRange(1, 1) },
		"WithRange(2, -2)": func() { WithRange(2, -2) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
