package logger

import (
	"os"
	"time"
)

// Logger is the contract shared by all sinks. Console, FileSink and
// Fanout all implement it, so callers can hold any of them behind the
// same interface.
//
// The convenience calls (Debug through Error) delegate to Log. Fatal is
// deliberately a distinct operation rather than a level routed through
// Log: it writes the message, flushes, and then terminates the process
// with a nonzero status. Passing LevelFatal to Log records the line
// without exiting, which is what tests should use.
type Logger interface {
	// Level returns the sink's current threshold.
	Level() Level
	// SetLevel replaces the threshold at runtime.
	SetLevel(l Level)

	// Log records msg when level is at or above the threshold.
	// I/O failures propagate to the caller; there is no retry and the
	// sink never logs its own errors.
	Log(level Level, msg string) error

	Debug(msg string) error
	Info(msg string) error
	Warn(msg string) error
	Error(msg string) error

	// Fatal logs msg at LevelFatal and terminates the process with a
	// nonzero exit status. The write completes before the process exits.
	Fatal(msg string)
}

// timeLayout is the fixed timestamp layout of every log line:
// day/month/year followed by a 24h clock.
const timeLayout = "02/01/2006 15:04:05"

// formatLine renders one newline-terminated log line. Embedded newlines
// in msg are written verbatim.
func formatLine(t time.Time, level Level, msg string) string {
	return t.Format(timeLayout) + " " + level.String() + " " + msg + "\n"
}

// exitFn is swapped out in tests so Fatal can be exercised without
// killing the test process.
var exitFn = os.Exit
