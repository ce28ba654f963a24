// Copyright (c) 2025 BVK Chaitanya

//go:build !windows

package flog

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// abortSignals are the termination-class signals that trigger a stack trace.
var abortSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT}

// redeliverSignal resets sig to its default disposition and sends it to the
// current process again, so the process terminates with the same status and
// core dump behavior it would have without our handler installed.
func redeliverSignal(sig os.Signal) {
	signal.Reset(sig)
	if s, ok := sig.(syscall.Signal); ok {
		unix.Kill(unix.Getpid(), s)
	}
}
