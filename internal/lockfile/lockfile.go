// Package lockfile provides cross-process advisory locking for log files
// using gofrs/flock. A FileSink takes the lock at construction so two
// sinks (in the same process or different ones) can never rotate the same
// file out from under each other. Works on Unix, macOS and Windows.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock guards a single log file via a sibling .lock file.
type Lock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// New creates a lock for the given lock file path. The lock is not
// acquired until TryLock is called.
func New(path string) *Lock {
	return &Lock{
		path:  path,
		flock: flock.New(path),
	}
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false if it is held elsewhere.
func (l *Lock) TryLock() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return false, fmt.Errorf("create lock directory: %w", err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}

	if acquired {
		l.locked = true
	}
	return acquired, nil
}

// Unlock releases the lock. It is safe to call on an unlocked Lock.
func (l *Lock) Unlock() error {
	if !l.locked {
		return nil
	}

	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

// Path returns the path to the lock file.
func (l *Lock) Path() string {
	return l.path
}
