package logger

import "errors"

var (
	// ErrClosed is returned by Rotate after the sink has been closed.
	// Log on a closed sink is a silent no-op instead.
	ErrClosed = errors.New("logger: sink is closed")

	// ErrLocked is returned when another FileSink already owns the
	// target log file.
	ErrLocked = errors.New("logger: log file is locked by another sink")

	// ErrEmptyPath is returned when a file sink is constructed without
	// a file path.
	ErrEmptyPath = errors.New("logger: empty log file path")

	// ErrNoSinks is returned by Setup when the configuration enables
	// neither console nor file output.
	ErrNoSinks = errors.New("logger: config enables no sinks")
)
