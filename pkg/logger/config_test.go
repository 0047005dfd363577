package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Empty(t, cfg.FilePath)
	assert.Equal(t, int64(DefaultMaxSizeBytes), cfg.MaxSizeBytes)
	assert.Equal(t, DefaultMaxRotatedFiles, cfg.MaxRotatedFiles)
	assert.True(t, cfg.Console)
}

func TestParseConfig_OmittedKeysKeepDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, int64(DefaultMaxSizeBytes), cfg.MaxSizeBytes)
	assert.True(t, cfg.Console)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("level: [not, a, string"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	content := "level: warn\nfile_path: /tmp/app.log\nmax_size_bytes: 1024\nmax_rotated_files: 3\nconsole: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "/tmp/app.log", cfg.FilePath)
	assert.Equal(t, int64(1024), cfg.MaxSizeBytes)
	assert.Equal(t, 3, cfg.MaxRotatedFiles)
	assert.False(t, cfg.Console)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSetup_ConsoleOnly(t *testing.T) {
	cfg := DefaultConfig()

	l, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	_, ok := l.(*Console)
	assert.True(t, ok, "console-only config should yield a console sink, got %T", l)
	assert.Equal(t, LevelInfo, l.Level())
}

func TestSetup_FileOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.Level = "debug"
	cfg.FilePath = filepath.Join(t.TempDir(), "app.log")

	l, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	file, ok := l.(*FileSink)
	require.True(t, ok, "file-only config should yield a file sink, got %T", l)
	assert.Equal(t, LevelDebug, file.Level())

	require.NoError(t, l.Info("configured"))
	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO configured")
}

func TestSetup_ConsoleAndFileFanout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "app.log")

	l, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	_, ok := l.(*Fanout)
	assert.True(t, ok, "console+file config should yield a fanout, got %T", l)
}

func TestSetup_NoSinks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false

	_, _, err := Setup(cfg)
	assert.ErrorIs(t, err, ErrNoSinks)
}

func TestSetup_CleanupClosesFileSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.FilePath = filepath.Join(t.TempDir(), "app.log")

	l, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	cleanup()

	// A second sink on the same path only succeeds if cleanup released
	// the file lock.
	second, err := NewFile(cfg.FilePath, LevelInfo)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.NoError(t, l.Info("dropped"), "log after cleanup must be a no-op")
}
