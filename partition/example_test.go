package partition_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/partition"
)

// ExampleStableIterative partitions without recursion or buffer.
func ExampleStableIterative() {
	xs := []int{0, 1, 2, 3, 4, 5}
	f, l := iterator.ForwardBounds(xs)
	m := partition.StableIterative(f, l, func(x int) bool { return x%2 == 0 })
	fmt.Println(xs, m.Index())
	// Output: [1 3 5 0 2 4] 3
}
