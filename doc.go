// Copyright (c) 2025 BVK Chaitanya

// Package flog provides a log/slog logging handler that writes sortable,
// glog-style log lines to the standard error and a timestamped log file --
// similar to Google's glog package, with a full-date timestamp format.
//
// Each log line begins with a single severity letter (D, I, W, E or F), a
// millisecond-precision timestamp with the numeric UTC offset, a compacted
// goroutine id and the source location, so that sorting lines alphabetically
// groups them by severity letter and orders each group by time.
//
// # DIFFERENCES
//
//   - Unlike glog, there is one log file per logger instance and not one per
//     severity. The file name carries the logger construction time.
//
//   - The standard log/slog package doesn't define a Fatal level, so this
//     package extends the level space with LevelFatal. The Die and
//     LogStackTrace functions and the abort-signal handler log at that
//     level.
//
//   - Attributes attached through slog are not encoded into the line; the
//     line format carries only the rendered message.
//
// # ABORT TRACES
//
// When Options.AutoAbortTrace is set, a process-wide handler is installed
// for the interrupt, terminate and quit signals. On receipt it logs the
// receiving goroutine's stack trace at the FATAL level and then re-delivers
// the signal with its default disposition restored, so the process exit
// status is the same as it would be without the handler. When multiple
// loggers arm the handler, the last one wins.
package flog
