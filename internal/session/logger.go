package session

import (
	"fmt"
	"log"
	"os"
)

// Logger receives session events.
type Logger interface {
	// Infof reports an operation that ran to completion, hit or miss.
	Infof(format string, args ...interface{})
	// Errorf reports input that was rejected before reaching the tree.
	Errorf(format string, args ...interface{})
	// Fatalf reports a tree that broke the ordering invariant. It is not
	// expected to return.
	Fatalf(format string, args ...interface{})
}

// DefaultLogger writes session events through the standard library logger,
// tagging rejected input and invariant failures so they stand out in
// verbose output.
type DefaultLogger struct{}

func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

func (DefaultLogger) Errorf(format string, args ...interface{}) {
	_ = log.Output(2, "error: "+fmt.Sprintf(format, args...))
}

// Fatalf logs and exits with status 1.
func (DefaultLogger) Fatalf(format string, args ...interface{}) {
	_ = log.Output(2, "fatal: "+fmt.Sprintf(format, args...))
	os.Exit(1)
}

// NoopLogger discards operation and input events. Fatalf still stops the
// caller, by panicking, because it is only used for broken invariants.
type NoopLogger struct{}

func (NoopLogger) Infof(string, ...interface{}) {}

func (NoopLogger) Errorf(string, ...interface{}) {}

func (NoopLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
