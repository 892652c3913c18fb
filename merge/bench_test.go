package merge_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvseq/builder"
	"github.com/katalvlaran/lvseq/merge"
)

func BenchmarkSortBufferSizes(b *testing.B) {
	const n = 1 << 12
	less := func(x, y int) bool { return x < y }
	profiles := map[string]func() ([]int, error){
		"random":    func() ([]int, error) { return builder.Random[int](n, builder.WithSeed(1)) },
		"fewunique": func() ([]int, error) { return builder.FewUnique[int](n, 4, builder.WithSeed(1)) },
		"reversed":  func() ([]int, error) { return builder.Reversed[int](n, builder.WithSeed(1)) },
	}
	for name, profile := range profiles {
		orig, err := profile()
		if err != nil {
			b.Fatal(err)
		}
		for _, size := range []int{0, n / 64, n / 8, n / 2} {
			b.Run(name+"/buffer="+strconv.Itoa(size), func(b *testing.B) {
				xs := make([]int, n)
				for i := 0; i < b.N; i++ {
					copy(xs, orig)
					merge.Sort(xs, less, merge.WithBufferSize[int](size))
				}
			})
		}
	}
}
