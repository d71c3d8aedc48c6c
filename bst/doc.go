// Package bst provides an unbalanced binary search tree over int64 keys,
// with copy-on-write insert and delete, membership search, the classic
// depth-first traversals, breadth-first level grouping and structural metrics.
//
// What
//
//   - Node:  one stored key with optional left/right children.
//   - Tree:  a value wrapping an optional root; the zero value is the empty tree.
//   - Insert, Search, Delete, MinNode, MaxNode over *Node (nil means absent).
//   - Height, Count, Inorder, Preorder, Postorder, LevelOrder, Walk.
//   - Validate: checks the ordering invariant of an arbitrary tree.
//
// Why
//
//   - Inorder of a valid tree is strictly ascending; this is the round-trip
//     property every other component (layout, rendering) relies on.
//   - Snapshots are immutable: Insert and Delete copy only the root-to-target
//     path and share every untouched subtree. A Tree handed to a renderer or
//     traversal stays valid while the caller keeps mutating its own copy.
//
// Semantics
//
//   - Keys are strictly ordered; inserting a present key is a no-op and returns
//     the same root pointer.
//   - Deleting an absent key is a silent no-op and returns the same root pointer.
//     Callers that need to report "not found" check Search first.
//   - A node with two children is replaced by a fresh node carrying its in-order
//     successor's value; the successor is then deleted from the right subtree,
//     so exactly one node leaves the tree.
//   - No rebalancing: ascending inserts degenerate into a right-leaning chain.
//
// Complexity (n = Count, h = Height)
//
//   - Insert, Delete:   O(h) time, O(h) fresh nodes.
//   - Search, MinNode:  O(h) time, O(1) memory.
//   - Height, Count, traversals: O(n) time, O(n) worst-case memory.
//
// Every operation is iterative with an explicit stack or queue, so a
// 100k-node chain does not grow the goroutine stack.
//
// Usage
//
//	t := bst.New(50, 30, 70, 20, 40)
//	t = t.Insert(60).Delete(30)
//	fmt.Println(t.Inorder())      // [20 40 50 60 70]
//	fmt.Println(t.Height(), t.Count())
//
// Errors
//
//   - ErrEmptyTree  Min/Max on an empty tree.
//   - ErrInvariant  Validate found an out-of-order or duplicate key; this is a
//     programming error, reported as an assertion failure.
package bst
