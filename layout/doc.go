// Package layout assigns deterministic 2D coordinates to the nodes of a
// bst tree so it can be drawn without edge crossings.
//
// What
//
//   - Span(root, depth, left, right) places root at the midpoint of
//     [left, right] and at y = depth*LevelSpacing + TopOffset, then lays out
//     the left child over [left, mid] and the right child over [mid, right].
//   - Compute(root) is Span(root, 0, 0, CanvasWidth).
//   - CanvasHeight sizes the drawing surface from the tree height.
//   - Map.Edges and Map.Sorted give render-order-independent views of a Map.
//
// Determinism
//
//	The result depends only on tree shape and options. There is no randomness
//	and no dependence on map iteration order, so two calls on the same tree
//	return equal maps.
//
// Degenerate shapes
//
//	The horizontal range halves at every level regardless of subtree size.
//	A chain built from ascending keys therefore crowds toward one edge of the
//	canvas, and past roughly log2(CanvasWidth) levels neighbouring nodes are
//	less than a pixel apart. This is accepted: the layout mirrors the real tree
//	shape and never rebalances to look nicer.
//
// Complexity
//
//   - Time:   O(n)
//   - Memory: O(n) for the map, O(h) for the explicit work stack.
//
// Options
//
//   - DefaultOptions(): width 900, level spacing 80, top offset 50, min height 420.
//   - WithCanvasWidth(w), WithLevelSpacing(s), WithTopOffset(o), WithMinCanvasHeight(h).
//
// Errors
//
//   - ErrOptionViolation  non-finite or non-positive width/spacing, non-finite offset,
//     negative minimum height.
//   - ErrInvalidSpan      inverted or non-finite bounds, or negative depth passed to Span.
package layout
