package logger

import "errors"

// Fanout forwards every call to an ordered collection of loggers, in
// insertion order, synchronously on the calling goroutine. It owns no
// file resources itself and takes no internal lock: its safety under
// concurrency is exactly the aggregate of its children's.
//
// The fanout's own threshold is carried for the Logger contract but is
// not enforced on forwarding; children filter for themselves.
type Fanout struct {
	levelVar
	children []Logger
}

var _ Logger = (*Fanout)(nil)

// NewFanout creates a fanout over the given children.
func NewFanout(level Level, children ...Logger) *Fanout {
	f := &Fanout{children: children}
	f.SetLevel(level)
	return f
}

// Add appends a logger to the dispatch order. Loggers cannot be removed.
func (f *Fanout) Add(l Logger) {
	f.children = append(f.children, l)
}

// Log forwards to every child in insertion order. A failing child does
// not stop dispatch to the remaining children; all failures are joined
// into the returned error.
func (f *Fanout) Log(level Level, msg string) error {
	var errs []error
	for _, child := range f.children {
		if err := child.Log(level, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *Fanout) Debug(msg string) error { return f.Log(LevelDebug, msg) }
func (f *Fanout) Info(msg string) error  { return f.Log(LevelInfo, msg) }
func (f *Fanout) Warn(msg string) error  { return f.Log(LevelWarn, msg) }
func (f *Fanout) Error(msg string) error { return f.Log(LevelError, msg) }

// Fatal forwards the fatal line to every child, then terminates the
// process once.
func (f *Fanout) Fatal(msg string) {
	_ = f.Log(LevelFatal, msg)
	exitFn(1)
}
