package bst

import "github.com/cockroachdb/errors"

// Validate checks the ordering invariant of the tree rooted at root: an
// in-order walk must produce strictly increasing keys, which rules out both
// misplaced subtrees and duplicates.
//
// Public operations never produce an invalid tree, so a non-nil result is a
// programming error. It is an assertion failure marked with ErrInvariant.
func Validate(root *Node) error {
	var (
		prev  int64
		first = true
		err   error
	)
	walkInorder(root, func(n *Node) bool {
		if !first && n.value <= prev {
			err = errors.Mark(
				errors.AssertionFailedf("bst: key %d follows %d in in-order walk", n.value, prev),
				ErrInvariant,
			)
			return false
		}
		prev, first = n.value, false
		return true
	})

	return err
}
