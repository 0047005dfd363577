// Package main provides the rotolog-logs command - a viewer for rotolog
// log files.
//
// Usage:
//
//	rotolog-logs [flags] <logfile>
//
// Flags:
//
//	-f, --follow         Follow log output (like tail -f)
//	-n, --lines int      Number of lines to show (default 50)
//	    --level string   Filter by level (debug|info|warn|error|fatal)
//	    --filter string  Filter by pattern (regex)
//	-a, --rotated        Include rotated generations, merged by timestamp
//	    --no-color       Disable colored output
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stockholmr/rotolog/internal/logview"
	"github.com/stockholmr/rotolog/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		follow  bool
		lines   int
		level   string
		filter  string
		rotated bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "rotolog-logs <logfile>",
		Short: "View rotolog log files",
		Long: `View and tail log files written by rotolog sinks.

By default, shows the last 50 lines of the given active log file. Use -f
to follow new entries in real-time (like 'tail -f'); following survives
rotation of the active file. Use --rotated to merge the rotated
generations (<base>_1.log, <base>_2.log, ...) into the timeline.

Examples:
  rotolog-logs app.log                # Show last 50 lines
  rotolog-logs -n 100 app.log         # Show last 100 lines
  rotolog-logs -f app.log             # Follow in real-time
  rotolog-logs --rotated app.log      # Include rotated generations
  rotolog-logs --level error app.log  # Show only error and fatal lines
  rotolog-logs --filter "timeout" app.log`,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(cmd.Context(), logsOptions{
				path:    args[0],
				follow:  follow,
				lines:   lines,
				level:   level,
				filter:  filter,
				rotated: rotated,
				noColor: noColor,
			})
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output (like tail -f)")
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().StringVar(&level, "level", "", "Filter by log level (debug|info|warn|error|fatal)")
	cmd.Flags().StringVar(&filter, "filter", "", "Filter by keyword/pattern (regex)")
	cmd.Flags().BoolVarP(&rotated, "rotated", "a", false, "Include rotated generations, merged by timestamp")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

type logsOptions struct {
	path    string
	follow  bool
	lines   int
	level   string
	filter  string
	rotated bool
	noColor bool
}

func runLogs(ctx context.Context, opts logsOptions) error {
	if _, err := os.Stat(opts.path); err != nil {
		return fmt.Errorf("log file not found: %s", opts.path)
	}

	var pattern *regexp.Regexp
	if opts.filter != "" {
		var err error
		pattern, err = regexp.Compile(opts.filter)
		if err != nil {
			return fmt.Errorf("invalid filter pattern: %w", err)
		}
	}

	// Colors are only useful on a terminal.
	noColor := opts.noColor
	if !noColor && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		noColor = true
	}

	paths := []string{opts.path}
	if opts.rotated {
		generations, err := logview.RotatedFiles(opts.path)
		if err != nil {
			return err
		}
		paths = append(generations, opts.path)
	}

	viewer := logview.New(logview.Config{
		Level:      opts.level,
		Pattern:    pattern,
		NoColor:    noColor,
		ShowSource: len(paths) > 1,
	}, os.Stdout)

	if len(paths) == 1 {
		fmt.Fprintf(os.Stderr, "Log file: %s\n", paths[0])
	} else {
		fmt.Fprintf(os.Stderr, "Log files: %s\n", strings.Join(paths, ", "))
	}
	if opts.follow {
		fmt.Fprintf(os.Stderr, "Following... (Ctrl+C to stop)\n")
	}
	fmt.Fprintln(os.Stderr, "---")

	if opts.follow {
		return runFollow(ctx, viewer, opts.path)
	}

	var entries []logview.Entry
	var err error
	if len(paths) == 1 {
		entries, err = viewer.Tail(paths[0], opts.lines)
	} else {
		entries, err = viewer.TailMultiple(paths, opts.lines)
	}
	if err != nil {
		return err
	}

	viewer.Print(entries)
	return nil
}

func runFollow(ctx context.Context, viewer *logview.Viewer, path string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	entries := make(chan logview.Entry, 100)
	errCh := make(chan error, 1)

	go func() {
		errCh <- viewer.Follow(ctx, path, entries)
	}()

	for {
		select {
		case entry := <-entries:
			fmt.Println(viewer.FormatEntry(entry))
		case err := <-errCh:
			return err
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "\n---")
			fmt.Fprintln(os.Stderr, "Stopped.")
			return nil
		}
	}
}
