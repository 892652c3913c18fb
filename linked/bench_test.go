package linked_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvseq/linked"
)

func BenchmarkSListSort(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	in := make([]int, 1<<12)
	for i := range in {
		in[i] = rng.Int()
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		x := linked.SListOf(in)
		b.StartTimer()
		x.Sort(less)
	}
}

func BenchmarkListSort(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	in := make([]int, 1<<12)
	for i := range in {
		in[i] = rng.Int()
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		x := linked.ListOf(in)
		b.StartTimer()
		x.Sort(less)
	}
}
