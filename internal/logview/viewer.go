// Package logview provides tailing, following and filtering of rotolog
// log files for the rotolog-logs command. It parses the fixed
// "DD/MM/YYYY HH:MM:SS LEVEL message" line format; lines that do not
// parse (for example continuation lines of a multi-line message) pass
// through raw.
package logview

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stockholmr/rotolog/pkg/logger"
)

// lineTimeLayout matches the timestamp prefix every sink writes.
const lineTimeLayout = "02/01/2006 15:04:05"

const timestampLen = len(lineTimeLayout)

// levelNames is the set of tokens a valid line carries after the
// timestamp.
var levelNames = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
	"FATAL": true,
}

// Entry is one parsed log line.
type Entry struct {
	Time    time.Time
	Level   string // upper-case level name
	Msg     string
	Source  string // base name of the file the line came from
	Raw     string // original line
	IsValid bool   // whether the line parsed
}

// Config configures the viewer's filtering and output.
type Config struct {
	Level      string         // minimum level (debug, info, warn, error, fatal)
	Pattern    *regexp.Regexp // filter by pattern
	NoColor    bool           // disable ANSI colors
	ShowSource bool           // show the originating file in output
}

// Viewer reads, filters and formats log entries.
type Viewer struct {
	config Config
	out    io.Writer
}

// New creates a viewer writing formatted output to out.
func New(cfg Config, out io.Writer) *Viewer {
	return &Viewer{config: cfg, out: out}
}

// Tail reads the last n lines from a log file and returns the entries
// that pass the viewer's filters.
func (v *Viewer) Tail(path string, n int) ([]Entry, error) {
	return v.tailFile(path, n)
}

// TailMultiple tails several files concurrently and merges the results
// into a single timeline ordered by timestamp. Files that cannot be
// read are skipped so one missing generation does not hide the rest.
func (v *Viewer) TailMultiple(paths []string, n int) ([]Entry, error) {
	var (
		mu  sync.Mutex
		all []Entry
	)

	g := new(errgroup.Group)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			entries, err := v.tailFile(path, n)
			if err != nil {
				return nil
			}
			mu.Lock()
			all = append(all, entries...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Time.Before(all[j].Time)
	})
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

func (v *Viewer) tailFile(path string, n int) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	// Long messages are written verbatim, so allow oversized lines.
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	source := filepath.Base(path)
	var entries []Entry
	for _, line := range lines {
		entry := v.parseLine(line)
		entry.Source = source
		if v.matchesFilter(entry) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// parseLine splits one line into timestamp, level and message.
func (v *Viewer) parseLine(line string) Entry {
	entry := Entry{Raw: line}

	if len(line) < timestampLen+2 || line[timestampLen] != ' ' {
		return entry
	}
	ts, err := time.Parse(lineTimeLayout, line[:timestampLen])
	if err != nil {
		return entry
	}

	rest := line[timestampLen+1:]
	level := rest
	msg := ""
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		level, msg = rest[:i], rest[i+1:]
	}
	if !levelNames[level] {
		return entry
	}

	entry.Time = ts
	entry.Level = level
	entry.Msg = msg
	entry.IsValid = true
	return entry
}

// matchesFilter checks an entry against the configured filters.
// Unparseable lines only pass when no level filter is set.
func (v *Viewer) matchesFilter(entry Entry) bool {
	if v.config.Level != "" {
		if !entry.IsValid {
			return false
		}
		entryLevel := logger.ParseLevel(entry.Level)
		if entryLevel < logger.ParseLevel(v.config.Level) {
			return false
		}
	}

	if v.config.Pattern != nil && !v.config.Pattern.MatchString(entry.Raw) {
		return false
	}
	return true
}

// FormatEntry formats an entry for display.
func (v *Viewer) FormatEntry(entry Entry) string {
	if !entry.IsValid {
		return entry.Raw
	}

	timestamp := entry.Time.Format("15:04:05")
	level := v.formatLevel(entry.Level)

	sourceLabel := ""
	if v.config.ShowSource && entry.Source != "" {
		sourceLabel = v.formatSource(entry.Source) + " "
	}

	return fmt.Sprintf("%s %s %s%s", timestamp, level, sourceLabel, entry.Msg)
}

// Print writes formatted entries to the output, one per line.
func (v *Viewer) Print(entries []Entry) {
	for _, entry := range entries {
		_, _ = fmt.Fprintln(v.out, v.FormatEntry(entry))
	}
}

// formatLevel pads the level to a fixed width and colors it.
func (v *Viewer) formatLevel(level string) string {
	levelStr := fmt.Sprintf("%-5s", level)

	if v.config.NoColor {
		return levelStr
	}

	switch level {
	case "DEBUG":
		return "\033[90m" + levelStr + "\033[0m" // gray
	case "INFO":
		return "\033[32m" + levelStr + "\033[0m" // green
	case "WARN":
		return "\033[33m" + levelStr + "\033[0m" // yellow
	case "ERROR", "FATAL":
		return "\033[31m" + levelStr + "\033[0m" // red
	default:
		return levelStr
	}
}

// formatSource formats the originating file label.
func (v *Viewer) formatSource(source string) string {
	label := "[" + source + "]"
	if v.config.NoColor {
		return label
	}
	return "\033[36m" + label + "\033[0m" // cyan
}
