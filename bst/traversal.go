package bst

import "github.com/cockroachdb/errors"

// Walk visits every node under root in the given order, stopping early as
// soon as fn returns false. Each call starts from scratch; no iterator state
// survives between calls.
//
// Walk panics on an unknown Order.
// Complexity: O(n) time, O(h) memory for depth-first orders, O(width) for
// LevelOrderFlat.
func Walk(root *Node, order Order, fn func(n *Node) bool) {
	switch order {
	case InOrder:
		walkInorder(root, fn)
	case PreOrder:
		walkPreorder(root, fn)
	case PostOrder:
		walkPostorder(root, fn)
	case LevelOrderFlat:
		WalkLevels(root, func(n *Node, _ int) bool { return fn(n) })
	default:
		panic(errors.AssertionFailedf("bst: unknown traversal order %d", int(order)))
	}
}

// Traverse collects the keys under root in the given order into a fresh slice.
func Traverse(root *Node, order Order) []int64 {
	out := make([]int64, 0, 16)
	Walk(root, order, func(n *Node) bool {
		out = append(out, n.value)
		return true
	})

	return out
}

// Inorder returns the keys under root in ascending order.
func Inorder(root *Node) []int64 { return Traverse(root, InOrder) }

// Preorder returns the keys under root, each node before its children.
func Preorder(root *Node) []int64 { return Traverse(root, PreOrder) }

// Postorder returns the keys under root, each node after its children.
func Postorder(root *Node) []int64 { return Traverse(root, PostOrder) }

// LevelOrder returns the keys under root grouped by depth: result[d] holds
// the keys at depth d from left to right. An empty tree yields nil.
func LevelOrder(root *Node) [][]int64 {
	var levels [][]int64
	WalkLevels(root, func(n *Node, depth int) bool {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n.value)
		return true
	})

	return levels
}

// walkInorder descends left pushing ancestors, then visits and turns right.
func walkInorder(root *Node, fn func(*Node) bool) {
	stack := make([]*Node, 0, 16)
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = n.right
	}
}

// walkPreorder pushes right before left so the left subtree pops first.
func walkPreorder(root *Node, fn func(*Node) bool) {
	if root == nil {
		return
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

// walkPostorder keeps the last emitted node to tell whether the right
// subtree of the stack top is already done.
func walkPostorder(root *Node, fn func(*Node) bool) {
	stack := make([]*Node, 0, 16)
	var last *Node
	n := root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		if !fn(top) {
			return
		}
		last = top
	}
}

// queueItem pairs a node with its depth below the walk root.
type queueItem struct {
	node  *Node
	depth int
}

// levelWalker encapsulates mutable breadth-first state.
type levelWalker struct {
	queue []queueItem
	visit func(n *Node, depth int) bool
}

// WalkLevels visits nodes breadth-first with FIFO discipline: every node at
// depth d is visited, left to right, before any node at depth d+1. The root
// has depth 0. Returning false from fn stops the walk.
func WalkLevels(root *Node, fn func(n *Node, depth int) bool) {
	w := &levelWalker{
		queue: make([]queueItem, 0, 16),
		visit: fn,
	}
	w.enqueue(root, 0)
	w.loop()
}

// enqueue appends n at depth d; nil children are skipped.
func (w *levelWalker) enqueue(n *Node, d int) {
	if n == nil {
		return
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// dequeue pops the first item.
func (w *levelWalker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// loop processes the queue until it drains or visit asks to stop.
func (w *levelWalker) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if !w.visit(item.node, item.depth) {
			return
		}
		w.enqueue(item.node.left, item.depth+1)
		w.enqueue(item.node.right, item.depth+1)
	}
}
