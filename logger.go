// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"
)

// stderr is the console sink. It is a package variable only so that tests
// can substitute it before constructing a logger.
var stderr io.Writer = os.Stderr

type Logger struct {
	opts *Options

	spec DestinationSpec

	handler *slogHandler
	slogger *slog.Logger

	signals *SignalRegistration

	currentLevel slog.LevelVar

	// mu serializes formatting-plus-write so concurrent log calls never
	// interleave partial lines on the shared sinks.
	mu     sync.Mutex
	stderr io.Writer
	file   *os.File
	bio    *bufio.Writer
}

// New creates a logger with the resolved log destination and emits the
// startup announcement. Construction fails only on configuration errors,
// i.e., when the log directory or file can't be created. A nil opts value
// selects DefaultOptions.
func New(opts *Options) (*Logger, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts.setDefaults()

	now := time.Now()
	spec, err := ResolveDestination(opts, now)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		opts:   opts,
		spec:   spec,
		stderr: stderr,
	}
	l.handler = &slogHandler{logger: l}
	l.slogger = slog.New(l.handler)

	if spec.FileEnabled {
		fp, err := os.OpenFile(spec.FilePath(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, opts.FileMode)
		if err != nil {
			return nil, fmt.Errorf("could not open log file: %w", err)
		}
		l.file = fp
		l.bio = bufio.NewWriterSize(fp, opts.BufferSize)
	}

	l.announceStartup()

	if opts.AutoAbortTrace {
		l.signals = armAbortTrace(l)
	}
	return l, nil
}

// Name returns the logger identity from the options.
func (l *Logger) Name() string {
	return l.opts.Name
}

// Slog returns a slog.Logger that dispatches through this logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}

// Handler returns the slog.Handler for this logger.
func (l *Logger) Handler() slog.Handler {
	return l.handler
}

// Destination returns the resolved log destination.
func (l *Logger) Destination() DestinationSpec {
	return l.spec
}

// FilePath returns the log file path, or the empty string when file output
// is disabled.
func (l *Logger) FilePath() string {
	return l.spec.FilePath()
}

// EnableDebugLog enables logging for slog.LevelDebug messages.
func (l *Logger) EnableDebugLog() {
	l.currentLevel.Set(slog.LevelDebug)
}

// DisableDebugLog disables logging for slog.LevelDebug messages.
func (l *Logger) DisableDebugLog() {
	l.currentLevel.Set(slog.LevelInfo)
}

func (l *Logger) emit(msg []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	if l.spec.StderrEnabled {
		if _, err := l.stderr.Write(msg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if l.bio != nil {
		if _, err := l.bio.Write(msg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// logFatal emits msg at the FATAL level with the source location of the
// caller callerSkip frames above logFatal.
func (l *Logger) logFatal(callerSkip int, msg string) {
	var pcs [1]uintptr
	runtime.Callers(callerSkip+2, pcs[:])
	r := slog.NewRecord(time.Now(), LevelFatal, msg, pcs[0])
	l.handler.Handle(context.Background(), r)
}

// Flush force writes buffered log messages to the log file.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.bio == nil {
		return nil
	}
	if err := l.bio.Flush(); err != nil {
		return err
	}
	return l.file.Sync()
}

// Close flushes and closes the log file. The logger must not be used after
// Close.
func (l *Logger) Close() error {
	if err := l.Flush(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		if err := l.file.Close(); err != nil {
			return err
		}
		l.file, l.bio = nil, nil
	}
	return nil
}
