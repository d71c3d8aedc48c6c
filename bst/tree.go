package bst

// New builds a tree by inserting values in order. Duplicates are ignored.
func New(values ...int64) Tree {
	var root *Node
	for _, v := range values {
		root = Insert(root, v)
	}

	return Tree{root: root}
}

// Root returns the root node, or nil for the empty tree.
func (t Tree) Root() *Node { return t.root }

// IsEmpty reports whether t has no nodes.
func (t Tree) IsEmpty() bool { return t.root == nil }

// RootValue returns the root key and true, or 0 and false for an empty tree.
func (t Tree) RootValue() (int64, bool) {
	if t.root == nil {
		return 0, false
	}

	return t.root.value, true
}

// Insert returns a tree that also contains v. t is not modified.
func (t Tree) Insert(v int64) Tree { return Tree{root: Insert(t.root, v)} }

// Delete returns a tree without v. Deleting an absent key returns t as is.
func (t Tree) Delete(v int64) Tree { return Tree{root: Delete(t.root, v)} }

// Search reports whether v is stored in t.
func (t Tree) Search(v int64) bool { return Search(t.root, v) }

// Height returns the number of levels in t.
func (t Tree) Height() int { return Height(t.root) }

// Count returns the number of keys in t.
func (t Tree) Count() int { return Count(t.root) }

// Inorder returns the keys of t in ascending order.
func (t Tree) Inorder() []int64 { return Inorder(t.root) }

// Preorder returns the keys of t in pre-order.
func (t Tree) Preorder() []int64 { return Preorder(t.root) }

// Postorder returns the keys of t in post-order.
func (t Tree) Postorder() []int64 { return Postorder(t.root) }

// LevelOrder returns the keys of t grouped by depth.
func (t Tree) LevelOrder() [][]int64 { return LevelOrder(t.root) }

// Min returns the smallest key, or ErrEmptyTree.
func (t Tree) Min() (int64, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}

	return MinNode(t.root).value, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t Tree) Max() (int64, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}

	return MaxNode(t.root).value, nil
}

// Validate checks the ordering invariant of t. See Validate.
func (t Tree) Validate() error { return Validate(t.root) }
