// Package render draws session snapshots as SVG documents or plain text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bstviz/internal/session"
	"github.com/katalvlaran/bstviz/layout"
)

// DefaultNodeRadius is the circle radius in pixels.
const DefaultNodeRadius = 22.0

// Palette.
const (
	colorNodeFill   = "#1e1e2e"
	colorNodeStroke = "#3b3b5c"
	colorText       = "#e4e4f0"
	colorEdge       = "#3b3b5c"
	colorInserted   = "#7c3aed"
	colorFound      = "#22c55e"
	colorRemoved    = "#ef4444"
)

// Option configures SVG output.
type Option func(*Options)

// Options holds SVG parameters.
type Options struct {
	NodeRadius float64

	// Marked is drawn in the color of Highlight when Highlight is set.
	Marked    int64
	Highlight session.Highlight
}

// WithNodeRadius sets the circle radius; non-positive values are ignored.
func WithNodeRadius(r float64) Option {
	return func(o *Options) {
		if r > 0 {
			o.NodeRadius = r
		}
	}
}

// WithHighlight marks the node holding v.
func WithHighlight(v int64, h session.Highlight) Option {
	return func(o *Options) { o.Marked, o.Highlight = v, h }
}

// WithResult marks the value touched by r, if any.
func WithResult(r session.Result) Option {
	return WithHighlight(r.Value, r.Highlight)
}

// SVG writes snap as a standalone SVG document: edges first, then nodes in
// key order so the output is byte-for-byte stable.
func SVG(w io.Writer, snap session.Snapshot, opts ...Option) error {
	o := Options{NodeRadius: DefaultNodeRadius}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g">`+"\n",
		snap.CanvasWidth, snap.CanvasHeight)
	for _, e := range snap.Edges {
		writeEdge(bw, e, o.NodeRadius)
	}
	for _, p := range snap.Positions.Sorted() {
		writeNode(bw, p, o)
	}
	fmt.Fprintln(bw, `</svg>`)

	return errors.Wrap(bw.Flush(), "render: svg")
}

// writeEdge draws the segment between two circle borders.
func writeEdge(w io.Writer, e layout.Edge, r float64) {
	dx, dy := e.To.X-e.From.X, e.To.Y-e.From.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	fmt.Fprintf(w, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1.5"/>`+"\n",
		e.From.X+dx/l*r, e.From.Y+dy/l*r, e.To.X-dx/l*r, e.To.Y-dy/l*r, colorEdge)
}

func writeNode(w io.Writer, p layout.Position, o Options) {
	fill, stroke := colorNodeFill, colorNodeStroke
	if c, ok := highlightColor(o.Highlight); ok && p.Node.Value() == o.Marked {
		fill, stroke = c, c
	}
	fmt.Fprintf(w, `  <g><circle cx="%.2f" cy="%.2f" r="%g" fill="%s" stroke="%s" stroke-width="2"/>`,
		p.X, p.Y, o.NodeRadius, fill, stroke)
	fmt.Fprintf(w, `<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" fill="%s" font-size="12" font-family="monospace" font-weight="700">%d</text></g>`+"\n",
		p.X, p.Y+1, colorText, p.Node.Value())
}

func highlightColor(h session.Highlight) (string, bool) {
	switch h {
	case session.HighlightInserted:
		return colorInserted, true
	case session.HighlightFound:
		return colorFound, true
	case session.HighlightMissing, session.HighlightDeleted:
		return colorRemoved, true
	default:
		return "", false
	}
}
