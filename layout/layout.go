package layout

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bstviz/bst"
)

// frame is one pending placement on the work stack.
type frame struct {
	node        *bst.Node
	depth       int
	left, right float64
}

// Compute lays out the whole tree over [0, CanvasWidth] starting at depth 0.
// An empty tree yields an empty, non-nil Map.
func Compute(root *bst.Node, opts ...Option) (Map, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}

	return span(root, 0, 0, o.CanvasWidth, o), nil
}

// Span lays out the subtree rooted at root, placing root at depth over
// [leftBound, rightBound].
//
// x is the midpoint of the bounds, y is depth*LevelSpacing + TopOffset.
// The left child is laid out over [leftBound, mid], the right child over
// [mid, rightBound]. A nil root contributes nothing.
func Span(root *bst.Node, depth int, leftBound, rightBound float64, opts ...Option) (Map, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	switch {
	case depth < 0:
		return nil, errors.Wrapf(ErrInvalidSpan, "negative depth %d", depth)
	case !finite(leftBound) || !finite(rightBound):
		return nil, errors.Wrapf(ErrInvalidSpan, "bounds [%v, %v] must be finite", leftBound, rightBound)
	case leftBound > rightBound:
		return nil, errors.Wrapf(ErrInvalidSpan, "left bound %v exceeds right bound %v", leftBound, rightBound)
	}

	return span(root, depth, leftBound, rightBound, o), nil
}

// span is the validated core of Span. It uses an explicit stack so that a
// degenerate chain does not recurse once per level.
func span(root *bst.Node, depth int, left, right float64, o Options) Map {
	m := make(Map)
	if root == nil {
		return m
	}
	stack := []frame{{node: root, depth: depth, left: left, right: right}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := (f.left + f.right) / 2
		m[f.node.Value()] = Position{
			X:     mid,
			Y:     float64(f.depth)*o.LevelSpacing + o.TopOffset,
			Depth: f.depth,
			Node:  f.node,
		}
		if r := f.node.Right(); r != nil {
			stack = append(stack, frame{node: r, depth: f.depth + 1, left: mid, right: f.right})
		}
		if l := f.node.Left(); l != nil {
			stack = append(stack, frame{node: l, depth: f.depth + 1, left: f.left, right: mid})
		}
	}

	return m
}

// CanvasHeight returns the drawing height needed for root:
// max(MinCanvasHeight, Height*LevelSpacing + LevelSpacing).
func CanvasHeight(root *bst.Node, opts ...Option) (float64, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return 0, err
	}
	h := float64(bst.Height(root))*o.LevelSpacing + o.LevelSpacing
	if h < o.MinCanvasHeight {
		h = o.MinCanvasHeight
	}

	return h, nil
}

// Sorted returns the positions ordered by key.
func (m Map) Sorted() []Position {
	out := make([]Position, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node.Value() < out[j].Node.Value() })

	return out
}

// Edges returns every parent→child segment whose endpoints are both in m,
// ordered by parent key with the left edge first.
func (m Map) Edges() []Edge {
	edges := make([]Edge, 0, len(m))
	for _, p := range m.Sorted() {
		if l := p.Node.Left(); l != nil {
			if c, ok := m[l.Value()]; ok {
				edges = append(edges, Edge{From: p, To: c, Side: LeftChild})
			}
		}
		if r := p.Node.Right(); r != nil {
			if c, ok := m[r.Value()]; ok {
				edges = append(edges, Edge{From: p, To: c, Side: RightChild})
			}
		}
	}

	return edges
}
