// Package session is the display-independent half of the visualizer: it
// turns raw user text into engine calls, keeps the current tree, and derives
// the layout, traversals and figures a front-end shows.
//
// A Session is not safe for concurrent use. Snapshots are.
package session

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bstviz/bst"
	"github.com/katalvlaran/bstviz/layout"
)

// Session holds the current tree of one visualizer instance.
type Session struct {
	tree bst.Tree
	opts Options

	validate func(bst.Tree) error
}

// New creates a Session with an empty tree. It fails with
// layout.ErrOptionViolation if the layout options are invalid.
func New(opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := layout.Resolve(o.Layout...); err != nil {
		return nil, errors.Wrap(err, "session")
	}

	return &Session{opts: o, validate: bst.Tree.Validate}, nil
}

// ParseValue converts user text to a key. Surrounding whitespace is ignored;
// anything else that is not a base-10 int64 yields ErrNotANumber.
func ParseValue(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNotANumber, "%q", raw)
	}

	return v, nil
}

// Tree returns the current tree.
func (s *Session) Tree() bst.Tree { return s.tree }

// Insert parses raw and inserts it. Inserting a present key succeeds and
// leaves the tree unchanged.
func (s *Session) Insert(raw string) (Result, error) {
	v, err := s.parse(OpInsert, raw)
	if err != nil {
		return invalid(OpInsert), err
	}
	s.setTree(s.tree.Insert(v))

	return s.done(Result{
		Op:        OpInsert,
		Value:     v,
		OK:        true,
		Message:   "Inserted " + strconv.FormatInt(v, 10),
		Highlight: HighlightInserted,
	}), nil
}

// Search parses raw and reports whether it is in the tree.
func (s *Session) Search(raw string) (Result, error) {
	v, err := s.parse(OpSearch, raw)
	if err != nil {
		return invalid(OpSearch), err
	}
	r := Result{Op: OpSearch, Value: v}
	if s.tree.Search(v) {
		r.OK, r.Message, r.Highlight = true, "Found "+strconv.FormatInt(v, 10)+"!", HighlightFound
	} else {
		r.Message, r.Highlight = strconv.FormatInt(v, 10)+" not found", HighlightMissing
	}

	return s.done(r), nil
}

// Delete parses raw and removes it. An absent key is reported with OK false
// and the tree is left as is.
func (s *Session) Delete(raw string) (Result, error) {
	v, err := s.parse(OpDelete, raw)
	if err != nil {
		return invalid(OpDelete), err
	}
	if !s.tree.Search(v) {
		return s.done(Result{
			Op:        OpDelete,
			Value:     v,
			Message:   strconv.FormatInt(v, 10) + " not in tree",
			Highlight: HighlightMissing,
		}), nil
	}
	before := s.tree
	s.setTree(s.tree.Delete(v))

	return s.done(Result{
		Op:        OpDelete,
		Value:     v,
		OK:        true,
		Message:   "Deleted " + strconv.FormatInt(v, 10),
		Highlight: HighlightDeleted,
		Before:    before,
	}), nil
}

// Reset empties the tree.
func (s *Session) Reset() Result {
	s.setTree(bst.Tree{})

	return s.done(Result{Op: OpReset, OK: true, Message: "Cleared"})
}

// LoadDemo replaces the tree with the demo tree built from DemoValues.
func (s *Session) LoadDemo() Result {
	s.setTree(bst.New(DemoValues...))

	return s.done(Result{Op: OpDemo, OK: true, Message: "Demo tree loaded!"})
}

// Snapshot derives the render data for the current tree.
func (s *Session) Snapshot() (Snapshot, error) {
	return Build(s.tree, s.opts.Layout...)
}

// Frame derives the render data that shows r. For a successful delete that
// is the tree still holding the removed key; otherwise it is the current
// tree.
func (s *Session) Frame(r Result) (Snapshot, error) {
	if r.Op == OpDelete && r.OK {
		return Build(r.Before, s.opts.Layout...)
	}

	return s.Snapshot()
}

// Build derives the render data for any tree.
func Build(t bst.Tree, opts ...layout.Option) (Snapshot, error) {
	lo, err := layout.Resolve(opts...)
	if err != nil {
		return Snapshot{}, err
	}
	pos, err := layout.Compute(t.Root(), opts...)
	if err != nil {
		return Snapshot{}, err
	}
	height, err := layout.CanvasHeight(t.Root(), opts...)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Tree:         t,
		Positions:    pos,
		Edges:        pos.Edges(),
		CanvasWidth:  lo.CanvasWidth,
		CanvasHeight: height,
		Inorder:      t.Inorder(),
		Preorder:     t.Preorder(),
		Postorder:    t.Postorder(),
		LevelOrder:   t.LevelOrder(),
		Stats: Stats{
			Nodes:  t.Count(),
			Height: t.Height(),
		},
	}
	snap.Stats.Root, snap.Stats.HasRoot = t.RootValue()

	return snap, nil
}

// parse wraps ParseValue with logging and the invalid-input metric.
func (s *Session) parse(op Op, raw string) (int64, error) {
	v, err := ParseValue(raw)
	if err != nil {
		s.opts.Logger.Errorf("session: %s rejected %q", op, raw)
		s.opts.Metrics.observe(op, outcomeInvalid, s.tree)
		return 0, err
	}

	return v, nil
}

// setTree installs t, validating it first when invariant checks are on.
// A tree that fails validation is never installed, even if Fatalf returns.
func (s *Session) setTree(t bst.Tree) {
	if s.opts.CheckInvariants {
		if err := s.validate(t); err != nil {
			s.opts.Logger.Fatalf("session: %+v", err)
			return
		}
	}
	s.tree = t
}

// done logs r and records it in the metrics.
func (s *Session) done(r Result) Result {
	outcome := outcomeOK
	if !r.OK {
		outcome = outcomeMiss
	}
	s.opts.Logger.Infof("session: %s: %s", r.Op, r.Message)
	s.opts.Metrics.observe(r.Op, outcome, s.tree)

	return r
}

func invalid(op Op) Result {
	return Result{Op: op, Message: "Enter a number"}
}
