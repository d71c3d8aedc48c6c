package bst_test

import (
	"fmt"

	"github.com/katalvlaran/bstviz/bst"
)

// ExampleTree builds the demo tree, deletes a two-child node and prints the
// resulting traversals.
func ExampleTree() {
	t := bst.New(50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45)
	fmt.Println(t.Count(), t.Height())

	t = t.Delete(30) // successor 35 replaces 30
	fmt.Println(t.Inorder())
	fmt.Println(t.Preorder())
	fmt.Println(t.LevelOrder())
	// Output:
	// 11 4
	// [10 20 25 35 40 45 50 60 70 80]
	// [50 35 20 10 25 40 45 70 60 80]
	// [[50] [35 70] [20 40 60 80] [10 25 45]]
}

// ExampleInsert shows that the old root still describes the old tree.
func ExampleInsert() {
	var root *bst.Node
	for _, v := range []int64{8, 3, 10} {
		root = bst.Insert(root, v)
	}
	next := bst.Insert(root, 6)

	fmt.Println(bst.Inorder(root))
	fmt.Println(bst.Inorder(next))
	fmt.Println(bst.Insert(next, 6) == next)
	// Output:
	// [3 8 10]
	// [3 6 8 10]
	// true
}

// ExampleWalk stops after the first key greater than 40.
func ExampleWalk() {
	root := bst.New(50, 30, 70, 20, 40, 60, 80).Root()
	bst.Walk(root, bst.InOrder, func(n *bst.Node) bool {
		fmt.Print(n.Value(), " ")
		return n.Value() <= 40
	})
	fmt.Println()
	// Output:
	// 20 30 40 50
}
