package render

import (
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptNilIsNeverDraining(t *testing.T) {
	var in *Interrupt
	assert.False(t, in.Draining())
}

func TestInterruptStateMachine(t *testing.T) {
	var exited atomic.Int32
	var messages atomic.Int32
	in := NewInterrupt()
	in.logf = func(string, ...interface{}) { messages.Add(1) }
	in.exit = func(code int) {
		assert.Equal(t, 130, code)
		exited.Store(1)
	}

	stop := in.Watch()
	defer stop()

	assert.False(t, in.Draining())

	// First interrupt: Running -> Draining, informational only.
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))
	require.Eventually(t, in.Draining, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), exited.Load())

	// Second interrupt while draining: Aborted.
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))
	require.Eventually(t, func() bool { return exited.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, messages.Load(), int32(2))
}
