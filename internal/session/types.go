package session

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bstviz/bst"
	"github.com/katalvlaran/bstviz/layout"
)

// ErrNotANumber is returned when raw input does not parse as a base-10 int64.
var ErrNotANumber = errors.New("session: enter a number")

// DemoValues is the insertion order of the demo tree.
var DemoValues = []int64{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45}

// Op names a session operation.
type Op int

const (
	OpInsert Op = iota
	OpSearch
	OpDelete
	OpReset
	OpDemo
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpSearch:
		return "search"
	case OpDelete:
		return "delete"
	case OpReset:
		return "reset"
	case OpDemo:
		return "demo"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Highlight tells a renderer how to mark the value an operation touched.
// How long the mark stays on screen is up to the renderer.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightInserted
	HighlightFound
	HighlightMissing
	HighlightDeleted
)

// Result describes the outcome of one operation in user-facing terms.
type Result struct {
	Op        Op
	Value     int64
	OK        bool
	Message   string
	Highlight Highlight

	// Before is the tree the operation started from. It is set only by a
	// successful delete, so the removed key can still be drawn once.
	Before bst.Tree
}

// Stats are the summary figures shown under the tree.
type Stats struct {
	Nodes   int
	Height  int
	Root    int64
	HasRoot bool
}

// Snapshot is everything a renderer needs for one frame. It is derived
// from an immutable tree and may be shared freely.
type Snapshot struct {
	Tree         bst.Tree
	Positions    layout.Map
	Edges        []layout.Edge
	CanvasWidth  float64
	CanvasHeight float64
	Inorder      []int64
	Preorder     []int64
	Postorder    []int64
	LevelOrder   [][]int64
	Stats        Stats
}
