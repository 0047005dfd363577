// Package logger provides leveled log output to files and the console,
// with size-based rotation of log files.
//
// The core sink is FileSink: it owns a single append-mode file handle and
// renames it to a numbered sibling (app_1.log, app_2.log, ...) once a size
// threshold is crossed, wrapping back to 1 after the retention bound so
// disk usage stays bounded. Console and Fanout are thin composition
// wrappers over the same Logger contract, and a process-wide default
// logger is available through Default/SetDefault.
//
// All sinks write the same fixed line format:
//
//	23/08/2026 14:03:55 INFO message text
//
// There is no structured output, no buffering and no background work:
// every call formats, writes and syncs before returning.
package logger
