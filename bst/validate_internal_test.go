package bst

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// node is a test-only constructor that bypasses Insert, so corrupted trees
// can be assembled by hand.
func node(v int64, l, r *Node) *Node { return &Node{value: v, left: l, right: r} }

func TestValidate_Corrupted(t *testing.T) {
	tests := []struct {
		name string
		root *Node
	}{
		{"left child too large", node(5, node(7, nil, nil), nil)},
		{"right child too small", node(5, nil, node(3, nil, nil))},
		{"duplicate key", node(5, node(5, nil, nil), nil)},
		// 6 sits under 3 correctly but breaks the bound imposed by root 5
		{"deep violation", node(5, node(3, nil, node(6, nil, nil)), node(8, nil, nil))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.root)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvariant))
			assert.True(t, errors.HasAssertionFailure(err))
		})
	}
}

func TestWalk_UnknownOrderPanics(t *testing.T) {
	assert.Panics(t, func() { Walk(node(1, nil, nil), Order(99), func(*Node) bool { return true }) })
}

func TestRebuild_EmptyPathReturnsChild(t *testing.T) {
	c := node(9, nil, nil)
	assert.Same(t, c, rebuild(nil, 9, c))
}
