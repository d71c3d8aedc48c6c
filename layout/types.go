// Package layout defines positions, options and sentinel errors for the
// layout engine.
package layout

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bstviz/bst"
)

// Sentinel errors for layout computation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")

	// ErrInvalidSpan is returned by Span for inverted or non-finite bounds.
	ErrInvalidSpan = errors.New("layout: invalid horizontal span")
)

// Defaults give a 900px canvas with 80px rows.
const (
	DefaultCanvasWidth     = 900.0
	DefaultLevelSpacing    = 80.0
	DefaultTopOffset       = 50.0
	DefaultMinCanvasHeight = 420.0
)

// Position is the placement of one node.
type Position struct {
	X, Y  float64
	Depth int
	Node  *bst.Node
}

// Map holds one Position per key. Keys are unique in a valid tree, so the
// key identifies the node.
type Map map[int64]Position

// Side tells which child an Edge leads to.
type Side int

const (
	// LeftChild marks an edge to the parent's left child.
	LeftChild Side = iota
	// RightChild marks an edge to the parent's right child.
	RightChild
)

// Edge is a parent→child segment between two placed nodes.
type Edge struct {
	From, To Position
	Side     Side
}

// Option configures layout via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds layout parameters.
type Options struct {
	// CanvasWidth is the initial right bound for Compute.
	CanvasWidth float64

	// LevelSpacing is the vertical distance between consecutive depths.
	LevelSpacing float64

	// TopOffset is the y coordinate of the root.
	TopOffset float64

	// MinCanvasHeight is the lower bound returned by CanvasHeight.
	MinCanvasHeight float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		CanvasWidth:     DefaultCanvasWidth,
		LevelSpacing:    DefaultLevelSpacing,
		TopOffset:       DefaultTopOffset,
		MinCanvasHeight: DefaultMinCanvasHeight,
	}
}

// WithCanvasWidth sets the canvas width; w must be finite and > 0.
func WithCanvasWidth(w float64) Option {
	return func(o *Options) {
		if !finite(w) || w <= 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "canvas width must be finite and positive (%v)", w)
			return
		}
		o.CanvasWidth = w
	}
}

// WithLevelSpacing sets the vertical distance between levels; s must be finite and > 0.
func WithLevelSpacing(s float64) Option {
	return func(o *Options) {
		if !finite(s) || s <= 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "level spacing must be finite and positive (%v)", s)
			return
		}
		o.LevelSpacing = s
	}
}

// WithTopOffset sets the y coordinate of depth 0.
func WithTopOffset(off float64) Option {
	return func(o *Options) {
		if !finite(off) {
			o.err = errors.Wrapf(ErrOptionViolation, "top offset must be finite (%v)", off)
			return
		}
		o.TopOffset = off
	}
}

// WithMinCanvasHeight sets the smallest height CanvasHeight may return.
func WithMinCanvasHeight(h float64) Option {
	return func(o *Options) {
		if !finite(h) || h < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "min canvas height must be finite and non-negative (%v)", h)
			return
		}
		o.MinCanvasHeight = h
	}
}

// Resolve applies opts over DefaultOptions and returns the first recorded
// violation, if any.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
