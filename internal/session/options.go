package session

import "github.com/katalvlaran/bstviz/layout"

// Option configures a Session.
type Option func(*Options)

// Options holds Session dependencies and switches.
type Options struct {
	Logger  Logger
	Metrics *Metrics

	// Layout is passed to every layout call made by Snapshot.
	Layout []layout.Option

	// CheckInvariants validates the tree after every mutation and reports a
	// violation through Logger.Fatalf.
	CheckInvariants bool
}

// DefaultOptions returns a NoopLogger, no metrics, default layout and no
// invariant checks.
func DefaultOptions() Options {
	return Options{Logger: NoopLogger{}}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithLayoutOptions appends layout options used by Snapshot.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(o *Options) { o.Layout = append(o.Layout, opts...) }
}

// WithInvariantChecks enables validation after every mutation.
func WithInvariantChecks(on bool) Option {
	return func(o *Options) { o.CheckInvariants = on }
}
