// Package bst defines the Node and Tree types, traversal orders and
// sentinel errors shared by the engine, traversal and validation files.
package bst

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for tree operations.
var (
	// ErrEmptyTree is returned by Min and Max on a tree without a root.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrInvariant marks every ordering violation reported by Validate.
	ErrInvariant = errors.New("bst: ordering invariant violated")
)

// Node stores one key and exclusively owns its children.
//
// A Node reachable from a Tree is never modified again: Insert and Delete
// build fresh nodes along the changed path and reuse the rest, so a *Node may
// be shared freely between snapshots and goroutines that only read it.
type Node struct {
	value int64
	left  *Node
	right *Node
}

// Value returns the key stored in n.
func (n *Node) Value() int64 { return n.value }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("Node(%d)", n.value)
}

// Order selects a traversal sequence for Walk and Traverse.
type Order int

const (
	// InOrder visits left subtree, node, right subtree (ascending keys).
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
	// LevelOrderFlat visits nodes breadth-first, left to right within a level.
	LevelOrderFlat
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrderFlat:
		return "levelorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Tree is an immutable snapshot of a binary search tree.
//
// The zero value is the empty tree. Insert and Delete return a new Tree and
// leave the receiver untouched, so a Tree value is safe to read concurrently.
type Tree struct {
	root *Node
}
