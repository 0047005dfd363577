package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/stockholmr/rotolog/internal/lockfile"
)

const (
	// DefaultMaxSizeBytes is the rotation trigger when WithMaxSize is
	// not given: 25 MiB.
	DefaultMaxSizeBytes = 25 * 1024 * 1024

	// DefaultMaxRotatedFiles is the retention bound when
	// WithMaxRotatedFiles is not given. Rotation indices wrap past
	// the bound, so old generations are overwritten instead of
	// accumulating.
	DefaultMaxRotatedFiles = 10
)

// FileSink writes formatted lines to a single active file and rotates it
// by size. The active file always lives at the configured path; rotated
// generations are numbered siblings named <base>_<N><ext>.
//
// One mutex serializes the whole size-check/rotate/write/sync sequence,
// so any number of goroutines may log through the same sink. A sink must
// be the only FileSink on its path: construction takes a cross-process
// advisory lock on <path>.lock and fails with ErrLocked if another sink
// holds it. Outside readers (tail, the rotolog-logs viewer, other
// processes) are unaffected; only a second rotating writer is barred.
type FileSink struct {
	levelVar

	dir  string
	base string // file name without extension
	ext  string // extension including the dot, may be empty

	maxSize    int64
	maxRotated int

	mu     sync.Mutex
	file   *os.File
	index  int // next rotation index to assign, in [1, maxRotated+1]
	closed bool
	lock   *lockfile.Lock
}

var _ Logger = (*FileSink)(nil)

// FileOption configures a FileSink at construction.
type FileOption func(*FileSink)

// WithMaxSize sets the rotation trigger in bytes.
func WithMaxSize(bytes int64) FileOption {
	return func(s *FileSink) {
		if bytes > 0 {
			s.maxSize = bytes
		}
	}
}

// WithMaxRotatedFiles sets the retention bound: how many rotated
// generations exist before indices wrap back to 1.
func WithMaxRotatedFiles(n int) FileOption {
	return func(s *FileSink) {
		if n > 0 {
			s.maxRotated = n
		}
	}
}

// NewFile creates a file sink for the given path. The directory is
// created if absent, the starting rotation index is recovered from
// rotated files already on disk, and the active file is opened in
// append mode.
func NewFile(path string, level Level, opts ...FileOption) (*FileSink, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	ext := filepath.Ext(path)
	s := &FileSink{
		dir:        filepath.Dir(path),
		base:       strings.TrimSuffix(filepath.Base(path), ext),
		ext:        ext,
		maxSize:    DefaultMaxSizeBytes,
		maxRotated: DefaultMaxRotatedFiles,
	}
	s.SetLevel(level)
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	s.index = s.scanStartIndex()

	lock := lockfile.New(path + ".lock")
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	s.lock = lock

	if err := s.openActive(); err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	return s, nil
}

// scanStartIndex recovers the rotation index from rotated files already
// in the directory: one past the highest <base>_<N><ext> found, or 1
// when there are none. Names whose middle segment is not a positive
// integer are not rotation files and are skipped.
func (s *FileSink) scanStartIndex() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 1
	}

	highest := 0
	prefix := s.base + "_"
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, s.ext) {
			continue
		}
		mid := strings.TrimSuffix(strings.TrimPrefix(name, prefix), s.ext)
		n, err := strconv.Atoi(mid)
		if err != nil || n < 1 {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	next := highest + 1
	if next > s.maxRotated+1 {
		next = 1
	}
	return next
}

// activePath returns the canonical path of the active file.
func (s *FileSink) activePath() string {
	return filepath.Join(s.dir, s.base+s.ext)
}

// openActive opens the active file in append mode. Caller must hold
// s.mu (or be the constructor).
func (s *FileSink) openActive() error {
	f, err := os.OpenFile(s.activePath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	s.file = f
	return nil
}

// Log appends one formatted line to the active file, rotating first when
// the file has reached the size threshold. The write is synced to disk
// before Log returns. On a closed sink Log is a no-op.
func (s *FileSink) Log(level Level, msg string) error {
	if level < s.Level() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if s.file == nil {
		// A previous rotation failed after closing the handle; try to
		// get one back before giving up on this call.
		if err := s.openActive(); err != nil {
			return err
		}
	}

	info, err := s.file.Stat()
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() >= s.maxSize {
		if err := s.rotate(); err != nil {
			return err
		}
	}

	if _, err := s.file.WriteString(formatLine(time.Now(), level, msg)); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}
	return nil
}

// Rotate forces a rotation regardless of the active file's size.
// Returns ErrClosed after Close.
func (s *FileSink) Rotate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.rotate()
}

// rotate renames the active file to the next numbered slot and reopens a
// fresh active file. Caller must hold s.mu.
func (s *FileSink) rotate() error {
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close active log file: %w", err)
	}
	s.file = nil

	err := s.moveActive()

	// Reopen even after a failed move so later calls still have a handle.
	if openErr := s.openActive(); err == nil {
		err = openErr
	}
	return err
}

// moveActive renames the active file onto the current rotation slot,
// deleting whatever previous generation occupied it, and advances the
// index with wraparound. Caller must hold s.mu with the handle closed.
func (s *FileSink) moveActive() error {
	target := filepath.Join(s.dir, s.base+"_"+strconv.Itoa(s.index)+s.ext)

	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale rotated file: %w", err)
	}
	if err := os.Rename(s.activePath(), target); err != nil {
		return fmt.Errorf("rename active log file: %w", err)
	}

	s.index++
	if s.index > s.maxRotated+1 {
		s.index = 1
	}
	return nil
}

// Close flushes and closes the active file and releases the file lock.
// After Close every Log call is a silent no-op; repeated Close returns
// nil.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.file != nil {
		if syncErr := s.file.Sync(); syncErr != nil {
			err = fmt.Errorf("sync log file: %w", syncErr)
		}
		if closeErr := s.file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close log file: %w", closeErr)
		}
		s.file = nil
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

func (s *FileSink) Debug(msg string) error { return s.Log(LevelDebug, msg) }
func (s *FileSink) Info(msg string) error  { return s.Log(LevelInfo, msg) }
func (s *FileSink) Warn(msg string) error  { return s.Log(LevelWarn, msg) }
func (s *FileSink) Error(msg string) error { return s.Log(LevelError, msg) }

// Fatal logs msg at LevelFatal, which syncs the line to disk, and then
// terminates the process.
func (s *FileSink) Fatal(msg string) {
	_ = s.Log(LevelFatal, msg)
	exitFn(1)
}
