package partition_test

import (
	"testing"

	"github.com/katalvlaran/lvseq/builder"
	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/partition"
)

func benchPartition(b *testing.B, run func(xs []int)) {
	orig, err := builder.Random[int](1<<12, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	xs := make([]int, len(orig))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(xs, orig)
		run(xs)
	}
}

func BenchmarkStableN(b *testing.B) {
	benchPartition(b, func(xs []int) {
		f, _ := iterator.Bounds(xs)
		partition.StableN[int](f, len(xs), isEven)
	})
}

func BenchmarkStableIterative(b *testing.B) {
	benchPartition(b, func(xs []int) {
		f, l := iterator.Bounds(xs)
		partition.StableIterative(f, l, isEven)
	})
}

func BenchmarkStableAdaptive(b *testing.B) {
	benchPartition(b, func(xs []int) {
		f, l := iterator.Bounds(xs)
		partition.StableAdaptive(f, l, isEven)
	})
}

func BenchmarkIndexed(b *testing.B) {
	benchPartition(b, func(xs []int) {
		f, l := iterator.IndexedBounds(xs)
		partition.Indexed(f, l, isEven)
	})
}
