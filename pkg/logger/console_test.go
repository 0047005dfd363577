package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestConsole_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, LevelDebug)

	if err := c.Info("hello"); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	// DD/MM/YYYY HH:MM:SS LEVEL message, newline-terminated
	lineFormat := regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2} INFO hello\n$`)
	if !lineFormat.MatchString(buf.String()) {
		t.Errorf("unexpected line format: %q", buf.String())
	}
}

func TestConsole_ThresholdFiltering(t *testing.T) {
	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

	for _, threshold := range levels {
		for _, level := range levels {
			var buf bytes.Buffer
			c := NewConsoleWriter(&buf, threshold)

			if err := c.Log(level, "msg"); err != nil {
				t.Fatalf("log failed: %v", err)
			}

			wrote := buf.Len() > 0
			if want := level >= threshold; wrote != want {
				t.Errorf("threshold=%s level=%s: wrote=%v, want %v",
					threshold, level, wrote, want)
			}
		}
	}
}

func TestConsole_WarnThresholdScenario(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, LevelWarn)

	if err := c.Debug("a"); err != nil {
		t.Fatalf("debug failed: %v", err)
	}
	if err := c.Error("b"); err != nil {
		t.Fatalf("error failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "ERROR") || !strings.Contains(lines[0], "b") {
		t.Errorf("line should contain ERROR and message b, got %q", lines[0])
	}
}

func TestConsole_MultilineMessageVerbatim(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, LevelDebug)

	if err := c.Info("first\nsecond"); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	if !strings.Contains(buf.String(), "first\nsecond\n") {
		t.Errorf("embedded newlines should be written verbatim, got %q", buf.String())
	}
}

func TestConsole_Fatal(t *testing.T) {
	exitCode := -1
	restore := exitFn
	exitFn = func(code int) { exitCode = code }
	defer func() { exitFn = restore }()

	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, LevelDebug)
	c.Fatal("boom")

	if exitCode == -1 {
		t.Fatal("Fatal should terminate the process")
	}
	if exitCode == 0 {
		t.Error("Fatal should exit with a nonzero status")
	}
	if !strings.Contains(buf.String(), "FATAL boom") {
		t.Errorf("fatal line should be written before exit, got %q", buf.String())
	}
}

func TestConsole_LogFatalLevelDoesNotExit(t *testing.T) {
	called := false
	restore := exitFn
	exitFn = func(int) { called = true }
	defer func() { exitFn = restore }()

	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, LevelDebug)
	if err := c.Log(LevelFatal, "recorded only"); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	if called {
		t.Error("Log(LevelFatal, ...) must not terminate the process")
	}
	if !strings.Contains(buf.String(), "FATAL recorded only") {
		t.Errorf("fatal-level line should still be written, got %q", buf.String())
	}
}
