package bifurcate_test

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/bifurcate"
	"github.com/katalvlaran/lvseq/memory"
)

const sample = "(1 (2 (4) (5)) (3))"

func eq(a, b int) bool { return a == b }

func less(a, b int) bool { return a < b }

func mustParse(t testing.TB, text string, opts ...bifurcate.Option) *bifurcate.Tree[int] {
	t.Helper()
	x, err := bifurcate.Parse(text, strconv.Atoi, opts...)
	require.NoError(t, err, text)
	return x
}

func mustParseS(t testing.TB, text string, opts ...bifurcate.Option) *bifurcate.STree[int] {
	t.Helper()
	x, err := bifurcate.ParseSTree(text, strconv.Atoi, opts...)
	require.NoError(t, err, text)
	return x
}

// complete returns the s-expression of a complete tree of the given depth
// with values numbered in preorder from *next.
func complete(depth int, next *int) string {
	if depth == 0 {
		return "()"
	}
	v := *next
	*next++
	l := complete(depth-1, next)
	r := complete(depth-1, next)
	return fmt.Sprintf("(%d %s %s)", v, l, r)
}

// randomTree returns the s-expression of a random tree of n nodes with
// values in [0, k).
func randomTree(rng *rand.Rand, n, k int) string {
	if n == 0 {
		return "()"
	}
	left := rng.Intn(n)
	return fmt.Sprintf("(%d %s %s)", rng.Intn(k),
		randomTree(rng, left, k), randomTree(rng, n-1-left, k))
}

func nodes[T any](x *bifurcate.Tree[T]) []*bifurcate.Node[T] {
	var out []*bifurcate.Node[T]
	x.Traverse(func(v bifurcate.Visit, n *bifurcate.Node[T]) {
		if v == bifurcate.Pre {
			out = append(out, n)
		}
	})
	return out
}

func TestCopyIsEquivalentWithDistinctNodes(t *testing.T) {
	x := mustParse(t, sample)
	y := x.Clone()

	assert.True(t, x.Equal(y, eq))
	assert.True(t, bifurcate.Equivalent(x.Root(), y.Root(), eq))
	assert.Equal(t, sample, y.String())

	seen := make(map[*bifurcate.Node[int]]bool)
	for _, n := range nodes(x) {
		seen[n] = true
	}
	for _, n := range nodes(y) {
		assert.False(t, seen[n], "copy shares node %d", n.Source())
	}
	for _, n := range nodes(y)[1:] {
		require.NotNil(t, n.Predecessor())
		assert.True(t, bifurcate.IsLeftSuccessor(n) || bifurcate.IsRightSuccessor(n))
	}
	assert.Nil(t, y.Root().Predecessor())
}

func TestCopyCompleteTreesAccountsEveryNode(t *testing.T) {
	for depth := 0; depth <= 12; depth++ {
		var c memory.Counter
		next := 0
		x := mustParse(t, complete(depth, &next), bifurcate.WithObserver(&c))
		weight := (1 << depth) - 1
		require.Equal(t, weight, c.Live())

		y := x.Clone()
		assert.Equal(t, 2*weight, c.Live(), "depth %d", depth)
		assert.True(t, x.Equal(y, eq), "depth %d", depth)
		assert.Equal(t, weight, y.Weight())
		assert.Equal(t, depth, y.Height())

		x.Erase()
		assert.Equal(t, weight, c.Freed(), "erase releases each node once")
		assert.True(t, x.Empty())
		assert.Equal(t, weight, y.Weight())
		y.Erase()
		assert.Equal(t, 0, c.Live())
	}
}

func TestSTreeCopyAndErase(t *testing.T) {
	var c memory.Counter
	next := 0
	x := mustParseS(t, complete(6, &next), bifurcate.WithObserver(&c))
	y := x.Clone()
	assert.True(t, x.Equal(y, eq))
	assert.Equal(t, x.String(), y.String())
	assert.Equal(t, 126, c.Live())
	x.Erase()
	y.Erase()
	assert.Equal(t, 0, c.Live())
	assert.Equal(t, 126, c.Total())
}

func TestTraversalOrders(t *testing.T) {
	x := mustParse(t, sample)
	assert.Equal(t, []int{1, 2, 4, 5, 3}, x.Values(bifurcate.Pre))
	assert.Equal(t, []int{4, 2, 5, 1, 3}, x.Values(bifurcate.In))
	assert.Equal(t, []int{4, 5, 2, 3, 1}, x.Values(bifurcate.Post))

	s := mustParseS(t, sample)
	assert.Equal(t, x.Values(bifurcate.Pre), s.Values(bifurcate.Pre))
	assert.Equal(t, x.Values(bifurcate.In), s.Values(bifurcate.In))
	assert.Equal(t, x.Values(bifurcate.Post), s.Values(bifurcate.Post))
}

func TestIterativeAndRecursiveAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 40; n++ {
		text := randomTree(rng, n, 100)
		x := mustParse(t, text)
		root := x.Root()

		assert.Equal(t, n, bifurcate.Weight(root))
		assert.Equal(t, n, bifurcate.WeightRecursive(root))
		assert.Equal(t, bifurcate.HeightRecursive(root), bifurcate.Height(root))

		type visit struct {
			V bifurcate.Visit
			X int
		}
		var iter, rec []visit
		bifurcate.Traverse(root, func(v bifurcate.Visit, c *bifurcate.Node[int]) {
			iter = append(iter, visit{v, c.Source()})
		})
		if n > 0 {
			bifurcate.TraverseNonemptyRecursive(root, func(v bifurcate.Visit, c *bifurcate.Node[int]) {
				rec = append(rec, visit{v, c.Source()})
			})
		}
		if d := cmp.Diff(rec, iter); d != "" {
			t.Fatalf("%s (-recursive +iterative):\n%s", text, d)
		}
		assert.Len(t, iter, 3*n)
	}
}

func TestTraverseStepDepth(t *testing.T) {
	x := mustParse(t, sample)
	c, v := x.Root(), bifurcate.Pre
	depth, deepest := 0, 0
	for {
		depth += bifurcate.TraverseStep(&v, &c)
		deepest = max(deepest, depth)
		if c == x.Root() && v == bifurcate.Post {
			break
		}
	}
	assert.Equal(t, 0, depth)
	assert.Equal(t, x.Height()-1, deepest)
}

func TestRotatingTraversalRestoresShape(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 0; n < 30; n++ {
		s := mustParseS(t, randomTree(rng, n, 10))
		before := s.String()
		count := 0
		bifurcate.TraverseRotating(s.Root(), func(*bifurcate.SNode[int]) { count++ })
		assert.Equal(t, 3*n, count)
		assert.Equal(t, before, s.String())
		assert.Equal(t, n, s.Weight())
		assert.Equal(t, before, s.String())
	}
}

func TestPhasedRotatingVisitsEachNodeOnce(t *testing.T) {
	s := mustParseS(t, sample)
	for phase := 0; phase < 3; phase++ {
		var got []int
		bifurcate.TraversePhasedRotating(s.Root(), phase, func(c *bifurcate.SNode[int]) {
			got = append(got, c.Source())
		})
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, got, "phase %d", phase)
	}
	assert.Equal(t, sample, s.String())
}

func TestReachable(t *testing.T) {
	x := mustParse(t, sample)
	y := x.Clone()
	for _, n := range nodes(x) {
		assert.True(t, bifurcate.Reachable(x.Root(), n))
		assert.False(t, bifurcate.Reachable(y.Root(), n))
	}
	left := x.Root().LeftSuccessor()
	assert.False(t, bifurcate.Reachable(left, x.Root().RightSuccessor()))
	assert.True(t, bifurcate.Reachable(left, left.RightSuccessor()))
	assert.False(t, bifurcate.Reachable(bifurcate.NewTree[int]().Root(), x.Root()))
}

func TestShapeAndValueComparisons(t *testing.T) {
	a := mustParse(t, "(1 (2) (3))")
	b := mustParse(t, "(9 (8) (7))")
	c := mustParse(t, "(1 (2))")
	empty := bifurcate.NewTree[int]()

	assert.True(t, bifurcate.Isomorphic(a.Root(), b.Root()))
	assert.False(t, bifurcate.Isomorphic(a.Root(), c.Root()))
	assert.False(t, bifurcate.ShapeCompare(a.Root(), b.Root()))
	assert.True(t, bifurcate.ShapeCompare(c.Root(), a.Root()))
	assert.True(t, a.Less(b, less))
	assert.False(t, b.Less(a, less))
	assert.True(t, c.Less(a, less))
	assert.True(t, empty.Less(c, less))
	assert.False(t, c.Less(empty, less))
	assert.False(t, a.Equal(b, eq))
	assert.True(t, empty.Equal(bifurcate.NewTree[int](), eq))
}

func TestCompareAgreesAcrossRepresentations(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 300; i++ {
		ta, tb := randomTree(rng, rng.Intn(6), 3), randomTree(rng, rng.Intn(6), 3)
		a, b := mustParse(t, ta), mustParse(t, tb)
		sa, sb := mustParseS(t, ta), mustParseS(t, tb)

		ab, ba := a.Less(b, less), b.Less(a, less)
		assert.Equal(t, ab, sa.Less(sb, less), "%s < %s", ta, tb)
		assert.Equal(t, ba, sb.Less(sa, less), "%s < %s", tb, ta)
		assert.Equal(t, a.Equal(b, eq), sa.Equal(sb, eq), "%s == %s", ta, tb)
		assert.False(t, ab && ba, "%s and %s", ta, tb)
		assert.Equal(t, !ab && !ba, a.Equal(b, eq), "%s vs %s", ta, tb)

		iso := bifurcate.Isomorphic(a.Root(), b.Root())
		shapeAB := bifurcate.ShapeCompare(a.Root(), b.Root())
		shapeBA := bifurcate.ShapeCompare(b.Root(), a.Root())
		assert.Equal(t, iso, !shapeAB && !shapeBA, "%s vs %s", ta, tb)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, text := range []string{
		"()",
		"(7)",
		"(1 (2))",
		"(1 () (3))",
		sample,
		"(1 (2 () (4 (5))) (3 (6) ()))",
	} {
		x := mustParse(t, text)
		want := strings.ReplaceAll(text, " ())", ")")
		assert.Equal(t, want, x.String())
		s := mustParseS(t, text)
		assert.Equal(t, want, s.String())
	}
	assert.Equal(t, []int{1, 3}, mustParse(t, "(1 () (3))").Values(bifurcate.In))
	assert.Equal(t, "(a (b) (c))", bifurcate.Format[string](mustStrings(t, "(a (b) (c))").Root()))
}

func mustStrings(t *testing.T, text string) *bifurcate.Tree[string] {
	t.Helper()
	x, err := bifurcate.Parse(text, func(s string) (string, error) { return s, nil })
	require.NoError(t, err)
	return x
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"1",
		"(",
		"(1",
		"(1 (2)",
		"( )x",
		"(1 (2) (3) (4))",
		"(1 2)",
		"(1))",
	} {
		var c memory.Counter
		_, err := bifurcate.Parse(text, strconv.Atoi, bifurcate.WithObserver(&c))
		assert.ErrorIs(t, err, bifurcate.ErrSyntax, "%q", text)
		assert.Equal(t, 0, c.Live(), "%q leaks nodes", text)
	}

	_, err := bifurcate.Parse("(1 (x))", strconv.Atoi)
	assert.ErrorIs(t, err, bifurcate.ErrSyntax)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestWithObserverNilPanics(t *testing.T) {
	assert.Panics(t, func() { bifurcate.WithObserver(nil) })
}
