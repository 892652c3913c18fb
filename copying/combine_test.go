package copying_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/iterator"
)

func TestMergeCopyInterleaves(t *testing.T) {
	a, b := []int{0, 2, 4}, []int{1, 3, 5}
	af, al := iterator.Bounds(a)
	bf, bl := iterator.ForwardBounds(b)
	out := make([]int, 6)
	of, ol := iterator.Bounds(out)

	end := copying.MergeCopy(af, al, bf, bl, of, less)
	require.Equal(t, ol, end)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5}, out); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

type tagged struct {
	key int
	src string
}

func byKey(x, y tagged) bool { return x.key < y.key }

func TestMergeCopyIsStable(t *testing.T) {
	a := []tagged{{1, "a"}, {2, "a"}, {2, "a2"}}
	b := []tagged{{1, "b"}, {2, "b"}, {3, "b"}}
	want := []tagged{{1, "a"}, {1, "b"}, {2, "a"}, {2, "a2"}, {2, "b"}, {3, "b"}}

	af, al := iterator.Bounds(a)
	bf, bl := iterator.Bounds(b)

	fwd := make([]tagged, 6)
	ff, _ := iterator.Bounds(fwd)
	copying.MergeCopy(af, al, bf, bl, ff, byKey)
	assert.Equal(t, want, fwd)

	bwd := make([]tagged, 6)
	_, bwl := iterator.Bounds(bwd)
	first := copying.MergeCopyBackward(af, al, bf, bl, bwl, byKey)
	assert.Equal(t, 0, first.Index())
	assert.Equal(t, want, bwd, "backward merge yields the same order")

	cnt := make([]tagged, 6)
	cf, _ := iterator.Bounds(cnt)
	e0, e1, eo := copying.MergeCopyN(af, 3, bf, 3, cf, byKey)
	assert.Equal(t, al, e0)
	assert.Equal(t, bl, e1)
	assert.Equal(t, 6, eo.Index())
	assert.Equal(t, want, cnt)

	cntb := make([]tagged, 6)
	_, cbl := iterator.Bounds(cntb)
	r0, r1, ro := copying.MergeCopyBackwardN(al, 3, bl, 3, cbl, byKey)
	assert.Equal(t, af, r0)
	assert.Equal(t, bf, r1)
	assert.Equal(t, 0, ro.Index())
	assert.Equal(t, want, cntb)
}

func TestMergeCopyWithEmptyInputs(t *testing.T) {
	a := []int{}
	b := []int{4, 5}
	af, al := iterator.Bounds(a)
	bf, bl := iterator.Bounds(b)
	out := make([]int, 2)
	of, _ := iterator.Bounds(out)

	copying.MergeCopy(af, al, bf, bl, of, less)
	assert.Equal(t, []int{4, 5}, out)

	out2 := make([]int, 2)
	o2f, _ := iterator.Bounds(out2)
	copying.MergeCopy(bf, bl, af, al, o2f, less)
	assert.Equal(t, []int{4, 5}, out2)
}

func TestCombineCopyByPosition(t *testing.T) {
	// Take from range 1 whenever its index is smaller: a positional zip.
	a, b := []int{10, 11, 12}, []int{20, 21}
	af, al := iterator.Bounds(a)
	bf, bl := iterator.Bounds(b)
	out := make([]int, 5)
	of, _ := iterator.Bounds(out)

	copying.CombineCopy[int](af, al, bf, bl, of, func(i1, i0 iterator.Slice[int]) bool {
		return i1.Index() < i0.Index()
	})
	assert.Equal(t, []int{10, 20, 11, 21, 12}, out)
}
