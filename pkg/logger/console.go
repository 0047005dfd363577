package logger

import (
	"io"
	"os"
	"time"
)

// Console writes formatted lines to standard output. It is stateless
// aside from its threshold and takes no internal lock: line atomicity
// under concurrent callers is whatever the underlying stream provides.
type Console struct {
	levelVar
	out io.Writer
}

var _ Logger = (*Console)(nil)

// NewConsole creates a console sink writing to stdout.
func NewConsole(level Level) *Console {
	return NewConsoleWriter(os.Stdout, level)
}

// NewConsoleWriter creates a console sink writing to w.
func NewConsoleWriter(w io.Writer, level Level) *Console {
	c := &Console{out: w}
	c.SetLevel(level)
	return c
}

// Log writes msg to the output stream when level passes the threshold.
func (c *Console) Log(level Level, msg string) error {
	if level < c.Level() {
		return nil
	}
	_, err := io.WriteString(c.out, formatLine(time.Now(), level, msg))
	return err
}

func (c *Console) Debug(msg string) error { return c.Log(LevelDebug, msg) }
func (c *Console) Info(msg string) error  { return c.Log(LevelInfo, msg) }
func (c *Console) Warn(msg string) error  { return c.Log(LevelWarn, msg) }
func (c *Console) Error(msg string) error { return c.Log(LevelError, msg) }

// Fatal logs msg at LevelFatal and terminates the process.
func (c *Console) Fatal(msg string) {
	_ = c.Log(LevelFatal, msg)
	exitFn(1)
}
