// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// osExit is substituted in tests; Die must otherwise never return.
var osExit = os.Exit

// renderStack appends a "Stack trace:" block to msg with one indented frame
// line per call frame of the current goroutine, innermost first. Frames
// belonging to skip callers above renderStack are omitted.
func renderStack(msg string, skip int) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\nStack trace:")

	var pcs [64]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		sb.WriteString("\n\t")
		sb.WriteString(f.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(f.Line))
		sb.WriteByte(' ')
		sb.WriteString(f.Function)
		if !more {
			break
		}
	}
	return sb.String()
}

// LogStackTrace logs msg and the calling goroutine's stack trace at the
// FATAL level through l, and returns normally.
func LogStackTrace(l *Logger, msg string) {
	l.logFatal(1, renderStack(msg, 1))
}

// Die logs msg and the calling goroutine's stack trace at the FATAL level
// through l, flushes the log file and terminates the process with exit
// status 1. Die never returns; callers must finish any cleanup before
// calling it.
func Die(l *Logger, msg string) {
	l.logFatal(1, renderStack(msg, 1))
	l.Flush()
	osExit(1)
}
