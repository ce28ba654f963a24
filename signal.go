// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
)

// SignalRegistration is the process-wide registration for abort-signal stack
// traces. One set of OS-level handlers is installed for the whole process,
// so all loggers share a single registration; when more than one logger arms
// it, the last writer wins and becomes the emission target.
type SignalRegistration struct {
	// Signals holds the termination-class signals this registration handles.
	Signals []os.Signal

	// redeliver restores the default disposition for the signal and delivers
	// it again, so the default exit status and core dump semantics are
	// preserved. It stands in for the previously-installed handler, which
	// the runtime doesn't expose. Substituted in tests.
	redeliver func(os.Signal)
}

var (
	armOnce      sync.Once
	registration *SignalRegistration
	traceTarget  atomic.Pointer[Logger]
)

// armAbortTrace arms the process-wide abort-signal handler to log stack
// traces through l. The first call installs the OS handlers; later calls
// only retarget which logger receives the traces.
func armAbortTrace(l *Logger) *SignalRegistration {
	traceTarget.Store(l)
	armOnce.Do(func() {
		registration = &SignalRegistration{
			Signals:   abortSignals,
			redeliver: redeliverSignal,
		}
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, abortSignals...)
		go func() {
			for sig := range ch {
				registration.handle(sig)
			}
		}()
	})
	return registration
}

// handle logs one FATAL stack trace for sig and forwards the signal to its
// default disposition. A second signal arriving while handle is still
// emitting is not guarded against.
func (r *SignalRegistration) handle(sig os.Signal) {
	if l := traceTarget.Load(); l != nil {
		l.logFatal(0, renderStack(fmt.Sprintf("Received signal: %v", sig), 0))
		l.Flush()
	}
	r.redeliver(sig)
}
