package logger

import (
	"strings"
	"sync/atomic"
)

// Level is the severity of a log message. Levels are totally ordered;
// a sink records a message when its level is at or above the sink's
// threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the upper-case level name used in the line format.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "INFO"
	}
}

// ParseLevel converts a string level to a Level.
// Unknown values default to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// levelVar holds a sink's threshold. It is safe to read and replace
// concurrently, so SetLevel never needs the sink's write lock.
type levelVar struct {
	v atomic.Int32
}

// Level returns the current threshold.
func (lv *levelVar) Level() Level {
	return Level(lv.v.Load())
}

// SetLevel replaces the threshold at runtime.
func (lv *levelVar) SetLevel(l Level) {
	lv.v.Store(int32(l))
}
