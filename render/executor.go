package render

import (
	"context"
	"sync"
	"time"
)

// Action is the work the executor runs for one frame index. It may fail;
// the first failure of a run wins and suppresses further dispatch.
type Action func(ctx context.Context, index int) error

// State classifies how a run ended.
type State int

const (
	// StateCompleted means every frame in the order was executed.
	StateCompleted State = iota
	// StatePartiallyComplete means a first interrupt stopped dispatch and
	// only the frames dispatched before it exist on disk.
	StatePartiallyComplete
)

// Result summarizes a finished run.
type Result struct {
	State     State
	Completed int
	Total     int
	Elapsed   time.Duration
}

// Executor dispatches one Action per frame index with a fixed concurrency
// ceiling. Dispatch follows the input order; completion order is
// unconstrained. Failures collapse into a single error: once a task has
// failed, frames not yet dispatched are skipped, but frames already in
// flight always run to natural completion. The same drain behavior
// applies when the interrupt supervisor reports a first interrupt, except
// that the run then counts as partially complete rather than failed.
type Executor struct {
	workers  int
	progress *Progress
	intr     *Interrupt
}

// NewExecutor sizes the worker slot pool. intr may be nil when no
// interrupt handling is wanted (tests, library use).
func NewExecutor(workers int, progress *Progress, intr *Interrupt) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{workers: workers, progress: progress, intr: intr}
}

// Run executes action for every index in order and returns when all
// dispatched work has drained. At most one error is returned, the first
// one recorded.
func (e *Executor) Run(ctx context.Context, order []int, action Action) (Result, error) {
	start := time.Now()
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup
	var slot errSlot

	for _, index := range order {
		// Acquiring blocks until a running frame releases its slot, which
		// caps dispatch at the pool size.
		sem <- struct{}{}

		// Once an error is recorded or a drain was requested, remaining
		// frames are skipped: the slot is cycled without running the action.
		if slot.get() != nil || e.intr.Draining() {
			<-sem
			continue
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }() // Release slot

			if err := action(ctx, i); err != nil {
				slot.trySet(err)
				return
			}
			e.progress.Ack(i)
		}(index)
	}

	// Everything is dispatched or skipped; wait for in-flight frames.
	wg.Wait()

	res := Result{
		Completed: e.progress.Completed(),
		Total:     e.progress.Total(),
		Elapsed:   time.Since(start),
	}
	if err := slot.get(); err != nil {
		return res, err
	}
	if e.intr.Draining() {
		res.State = StatePartiallyComplete
	}
	return res, nil
}
