package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bstviz/bst"
)

// BenchmarkInsert_Random measures copy-on-write inserts of random keys
// (expected depth O(log n)).
func BenchmarkInsert_Random(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	keys := make([]int64, N)
	for i := range keys {
		keys[i] = rng.Int63()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var root *bst.Node
		for _, k := range keys {
			root = bst.Insert(root, k)
		}
	}
}

// BenchmarkSearch_Random looks up every key of a random 10k tree.
func BenchmarkSearch_Random(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(2))
	keys := make([]int64, N)
	var root *bst.Node
	for i := range keys {
		keys[i] = rng.Int63()
		root = bst.Insert(root, keys[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			_ = bst.Search(root, k)
		}
	}
}

// BenchmarkTraversals_Chain runs all traversals over a 2000-node chain,
// the worst case for stack depth.
func BenchmarkTraversals_Chain(b *testing.B) {
	const N = 2000
	var root *bst.Node
	for i := int64(0); i < N; i++ {
		root = bst.Insert(root, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bst.Inorder(root)
		_ = bst.Preorder(root)
		_ = bst.Postorder(root)
		_ = bst.LevelOrder(root)
		_ = bst.Height(root)
	}
}
