package logger

import "sync"

// The process-wide default logger. It starts as a console sink at Info
// and can be replaced at any time with SetDefault. The slot itself is
// guarded by a RWMutex, but replacement is not atomic with respect to
// in-flight calls: a goroutine that already fetched the old logger will
// finish its call against it.
var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewConsole(LevelInfo)
)

// Default returns the current default logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default logger. A nil logger is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// GetLevel returns the default logger's threshold.
func GetLevel() Level {
	return Default().Level()
}

// SetLevel sets the default logger's threshold.
func SetLevel(l Level) {
	Default().SetLevel(l)
}

// Log records msg on the default logger.
func Log(level Level, msg string) error {
	return Default().Log(level, msg)
}

func Debug(msg string) error { return Default().Debug(msg) }
func Info(msg string) error  { return Default().Info(msg) }
func Warn(msg string) error  { return Default().Warn(msg) }
func Error(msg string) error { return Default().Error(msg) }

// Fatal logs through the default logger and terminates the process.
func Fatal(msg string) {
	Default().Fatal(msg)
}
