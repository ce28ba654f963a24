// Copyright (c) 2025 BVK Chaitanya

//go:build windows

package flog

import (
	"os"
	"os/signal"
)

// Windows delivers only the interrupt signal to console programs.
var abortSignals = []os.Signal{os.Interrupt}

// redeliverSignal approximates the default interrupt disposition; signals
// can't be re-raised against our own process on Windows.
func redeliverSignal(sig os.Signal) {
	signal.Reset(sig)
	os.Exit(1)
}
