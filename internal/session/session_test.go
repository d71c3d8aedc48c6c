package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bstviz/internal/session"
	"github.com/katalvlaran/bstviz/layout"
)

// recordingLogger keeps every message so tests can assert on them.
type recordingLogger struct {
	infos  []string
	errors []string
	fatals []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Fatalf(format string, args ...interface{}) {
	l.fatals = append(l.fatals, fmt.Sprintf(format, args...))
}

func newSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.New(opts...)
	require.NoError(t, err)
	return s
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"  -7 ", -7, false},
		{"+3", 3, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"1.5", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := session.ParseValue(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, session.ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSession_Messages(t *testing.T) {
	s := newSession(t)

	r, err := s.Insert("5")
	require.NoError(t, err)
	assert.Equal(t, session.Result{Op: session.OpInsert, Value: 5, OK: true, Message: "Inserted 5", Highlight: session.HighlightInserted}, r)

	r, err = s.Search("5")
	require.NoError(t, err)
	assert.True(t, r.OK)
	assert.Equal(t, "Found 5!", r.Message)
	assert.Equal(t, session.HighlightFound, r.Highlight)

	r, err = s.Search("6")
	require.NoError(t, err)
	assert.False(t, r.OK)
	assert.Equal(t, "6 not found", r.Message)
	assert.Equal(t, session.HighlightMissing, r.Highlight)

	r, err = s.Delete("6")
	require.NoError(t, err)
	assert.False(t, r.OK)
	assert.Equal(t, "6 not in tree", r.Message)

	r, err = s.Delete("5")
	require.NoError(t, err)
	assert.True(t, r.OK)
	assert.Equal(t, "Deleted 5", r.Message)
	assert.True(t, s.Tree().IsEmpty())

	r, err = s.Insert("five")
	assert.ErrorIs(t, err, session.ErrNotANumber)
	assert.False(t, r.OK)
	assert.Equal(t, "Enter a number", r.Message)

	assert.Equal(t, "Demo tree loaded!", s.LoadDemo().Message)
	assert.Equal(t, 11, s.Tree().Count())
	assert.Equal(t, "Cleared", s.Reset().Message)
	assert.True(t, s.Tree().IsEmpty())
}

func TestSession_DeleteAbsentKeepsTree(t *testing.T) {
	s := newSession(t)
	s.LoadDemo()
	before := s.Tree().Root()
	_, err := s.Delete("99")
	require.NoError(t, err)
	assert.Same(t, before, s.Tree().Root())
}

func TestSession_InvalidInputDoesNotMutate(t *testing.T) {
	s := newSession(t)
	s.LoadDemo()
	before := s.Tree().Root()
	for _, raw := range []string{"", "x", "3.0"} {
		_, err := s.Delete(raw)
		assert.ErrorIs(t, err, session.ErrNotANumber)
		_, err = s.Insert(raw)
		assert.ErrorIs(t, err, session.ErrNotANumber)
	}
	assert.Same(t, before, s.Tree().Root())
}

func TestSession_Snapshot(t *testing.T) {
	s := newSession(t)
	s.LoadDemo()
	snap, err := s.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80}, snap.Inorder)
	assert.Equal(t, []int64{50, 30, 20, 10, 25, 40, 35, 45, 70, 60, 80}, snap.Preorder)
	assert.Equal(t, []int64{10, 25, 20, 35, 45, 40, 30, 60, 80, 70, 50}, snap.Postorder)
	assert.Len(t, snap.LevelOrder, 4)
	assert.Equal(t, session.Stats{Nodes: 11, Height: 4, Root: 50, HasRoot: true}, snap.Stats)
	assert.Len(t, snap.Positions, 11)
	assert.Len(t, snap.Edges, 10)
	assert.Equal(t, 900.0, snap.CanvasWidth)
	assert.Equal(t, 420.0, snap.CanvasHeight)
	assert.Equal(t, 450.0, snap.Positions[50].X)

	// the snapshot keeps describing the old tree after further mutation
	_, err = s.Delete("50")
	require.NoError(t, err)
	assert.Equal(t, 11, snap.Tree.Count())
	assert.Equal(t, 10, s.Tree().Count())
}

func TestSession_SnapshotEmpty(t *testing.T) {
	snap, err := newSession(t).Snapshot()
	require.NoError(t, err)
	assert.Equal(t, session.Stats{}, snap.Stats)
	assert.Empty(t, snap.Positions)
	assert.Empty(t, snap.Edges)
	assert.Nil(t, snap.LevelOrder)
}

func TestSession_LayoutOptions(t *testing.T) {
	s := newSession(t, session.WithLayoutOptions(layout.WithCanvasWidth(400)))
	_, err := s.Insert("1")
	require.NoError(t, err)
	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 400.0, snap.CanvasWidth)
	assert.Equal(t, 200.0, snap.Positions[1].X)

	_, err = session.New(session.WithLayoutOptions(layout.WithCanvasWidth(-1)))
	assert.ErrorIs(t, err, layout.ErrOptionViolation)
}

func TestSession_LoggingAndInvariantChecks(t *testing.T) {
	log := &recordingLogger{}
	s := newSession(t, session.WithLogger(log), session.WithInvariantChecks(true))
	s.LoadDemo()
	for _, raw := range []string{"30", "50", "10", "45"} {
		_, err := s.Delete(raw)
		require.NoError(t, err)
	}
	_, _ = s.Insert("nope")

	assert.Empty(t, log.fatals)
	assert.Equal(t, "session: demo: Demo tree loaded!", log.infos[0])
	assert.Contains(t, log.infos, "session: delete: Deleted 30")
	assert.Equal(t, []string{`session: insert rejected "nope"`}, log.errors)
	assert.NotContains(t, log.infos, `session: insert rejected "nope"`)
}

func TestNoopLogger_FatalfPanics(t *testing.T) {
	assert.Panics(t, func() { session.NoopLogger{}.Fatalf("boom %d", 1) })
	assert.NotPanics(t, func() { session.NoopLogger{}.Infof("quiet") })
	assert.NotPanics(t, func() { session.NoopLogger{}.Errorf("quiet") })
}

func TestSession_DeleteKeepsPreviousTree(t *testing.T) {
	s := newSession(t, session.WithLayoutOptions(layout.WithCanvasWidth(400)))
	s.LoadDemo()
	demo := s.Tree()

	r, err := s.Delete("30")
	require.NoError(t, err)
	assert.Same(t, demo.Root(), r.Before.Root())
	assert.False(t, s.Tree().Search(30))

	frame, err := s.Frame(r)
	require.NoError(t, err)
	assert.Equal(t, 11, frame.Stats.Nodes)
	assert.Contains(t, frame.Positions, int64(30))
	assert.Equal(t, 400.0, frame.CanvasWidth)

	// a miss carries no previous tree and frames the current one
	r, err = s.Delete("99")
	require.NoError(t, err)
	assert.True(t, r.Before.IsEmpty())
	frame, err = s.Frame(r)
	require.NoError(t, err)
	assert.Equal(t, 10, frame.Stats.Nodes)

	r, err = s.Search("40")
	require.NoError(t, err)
	assert.True(t, r.Before.IsEmpty())
	frame, err = s.Frame(r)
	require.NoError(t, err)
	assert.Equal(t, 10, frame.Stats.Nodes)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "insert", session.OpInsert.String())
	assert.Equal(t, "demo", session.OpDemo.String())
	assert.Equal(t, "Op(9)", session.Op(9).String())
}
