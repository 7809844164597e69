package render

import (
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Interrupt supervises user cancellation during a run. The first signal is
// not treated as a failure: it flips the supervisor into a draining state,
// which stops the executor from dispatching new frames while in-flight
// frames finish. A second signal aborts the process immediately.
type Interrupt struct {
	draining atomic.Bool
	logf     func(format string, args ...interface{})
	exit     func(code int)
}

// NewInterrupt creates a supervisor for one render invocation.
func NewInterrupt() *Interrupt {
	return &Interrupt{logf: log.Printf, exit: os.Exit}
}

// Watch installs the signal handler and returns a function that releases
// it. Call the returned function once the run has drained.
func (in *Interrupt) Watch() (stop func()) {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ch:
				if in.draining.CompareAndSwap(false, true) {
					in.logf("Interrupt: waiting for frames in flight, the video will be generated from the frames rendered so far. Press Ctrl+C again to abort.")
					continue
				}
				in.logf("Second interrupt, aborting.")
				signal.Stop(ch)
				in.exit(130)
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}

// Draining reports whether a first interrupt has been observed. Nil-safe:
// an executor running without a supervisor never drains early.
func (in *Interrupt) Draining() bool {
	return in != nil && in.draining.Load()
}
