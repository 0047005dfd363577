package logview

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Follow watches a log file and sends new entries to the channel until
// the context is cancelled. Rotation is handled: when the active file is
// renamed away and a fresh one appears at the same path, the follower
// reopens it from the start so no post-rotation lines are missed.
func (v *Viewer) Follow(ctx context.Context, path string, entries chan<- Entry) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: the watch must survive the
	// active file being renamed to a rotated generation.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch log directory: %w", err)
	}

	source := filepath.Base(path)

	var (
		file   *os.File
		reader *bufio.Reader
	)
	closeFile := func() {
		if file != nil {
			_ = file.Close()
			file = nil
			reader = nil
		}
	}
	defer closeFile()

	open := func(fromStart bool) error {
		closeFile()
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil // wait for the file to appear
			}
			return fmt.Errorf("open log file: %w", err)
		}
		if !fromStart {
			if _, err := f.Seek(0, io.SeekEnd); err != nil {
				_ = f.Close()
				return fmt.Errorf("seek to end: %w", err)
			}
		}
		file = f
		reader = bufio.NewReader(f)
		return nil
	}

	drain := func() error {
		if reader == nil {
			return nil
		}
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil // no complete line available yet
			}
			line = strings.TrimSuffix(line, "\n")
			if line == "" {
				continue
			}

			entry := v.parseLine(line)
			entry.Source = source
			if !v.matchesFilter(entry) {
				continue
			}
			select {
			case entries <- entry:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	if err := open(false); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			switch {
			case event.Op.Has(fsnotify.Create):
				// A fresh active file after rotation: read it from the
				// beginning.
				if err := open(true); err != nil {
					return err
				}
				if err := drain(); err != nil {
					return nil
				}
			case event.Op.Has(fsnotify.Write):
				if reader == nil {
					if err := open(true); err != nil {
						return err
					}
				}
				if err := drain(); err != nil {
					return nil
				}
			case event.Op.Has(fsnotify.Rename), event.Op.Has(fsnotify.Remove):
				// The handle still reads the renamed file; pick up any
				// straggling lines before letting it go.
				if err := drain(); err != nil {
					return nil
				}
				closeFile()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		}
	}
}
