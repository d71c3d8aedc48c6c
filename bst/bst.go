package bst

import "github.com/cockroachdb/errors"

// Insert returns the root of a tree that contains v in addition to every key
// under root. If v is already present, root itself is returned.
//
// Only the nodes on the search path are copied; all other subtrees are shared.
// Complexity: O(h) time and fresh nodes.
func Insert(root *Node, v int64) *Node {
	path := make([]*Node, 0, 16) // ancestors of the insertion point, root first
	for n := root; n != nil; {
		switch {
		case v < n.value:
			path = append(path, n)
			n = n.left
		case v > n.value:
			path = append(path, n)
			n = n.right
		default:
			return root // duplicate
		}
	}

	return rebuild(path, v, &Node{value: v})
}

// Search reports whether v is stored under root.
// Complexity: O(h) time, O(1) memory.
func Search(root *Node, v int64) bool {
	for n := root; n != nil; {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Delete returns the root of a tree holding every key under root except v.
// Deleting an absent key is a no-op that returns root itself.
//
// At the matching node:
//   - no children, or only a right child: the right child takes its place;
//   - only a left child: the left child takes its place;
//   - two children: a fresh node carrying the in-order successor's value
//     replaces it, and the successor is deleted from the right subtree.
//
// Complexity: O(h) time and fresh nodes.
func Delete(root *Node, v int64) *Node {
	path := make([]*Node, 0, 16)
	n := root
	for n != nil && n.value != v {
		path = append(path, n)
		if v < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		return root // absent
	}

	var repl *Node
	switch {
	case n.left == nil:
		repl = n.right
	case n.right == nil:
		repl = n.left
	default:
		succ := MinNode(n.right)
		// the successor has no left child, so this second Delete never
		// reaches the two-children branch again
		repl = &Node{
			value: succ.value,
			left:  n.left,
			right: Delete(n.right, succ.value),
		}
	}

	return rebuild(path, v, repl)
}

// rebuild copies each node of path bottom-up, pointing the copy at child on
// the side where key lies, and returns the new root. An empty path makes child
// the root.
func rebuild(path []*Node, key int64, child *Node) *Node {
	for i := len(path) - 1; i >= 0; i-- {
		cp := *path[i]
		if key < cp.value {
			cp.left = child
		} else {
			cp.right = child
		}
		child = &cp
	}

	return child
}

// MinNode returns the node with the smallest key in the subtree rooted at n
// by following left children.
//
// n must not be nil; calling MinNode on an absent subtree is a programming
// error and panics with an assertion failure.
func MinNode(n *Node) *Node {
	if n == nil {
		panic(errors.AssertionFailedf("bst: MinNode called on an empty subtree"))
	}
	for n.left != nil {
		n = n.left
	}

	return n
}

// MaxNode returns the node with the largest key in the subtree rooted at n.
// Like MinNode, it panics when n is nil.
func MaxNode(n *Node) *Node {
	if n == nil {
		panic(errors.AssertionFailedf("bst: MaxNode called on an empty subtree"))
	}
	for n.right != nil {
		n = n.right
	}

	return n
}

// Height returns the number of nodes on the longest root-to-leaf path:
// 0 for an empty tree, 1 for a single node.
//
// Computed level by level so degenerate chains need no recursion.
func Height(root *Node) int {
	if root == nil {
		return 0
	}
	h := 0
	level := []*Node{root}
	for len(level) > 0 {
		h++
		next := make([]*Node, 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return h
}

// Count returns the number of nodes under root.
func Count(root *Node) int {
	c := 0
	Walk(root, PreOrder, func(*Node) bool {
		c++
		return true
	})

	return c
}
