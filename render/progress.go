package render

import (
	"fmt"
	"io"
	"sync"
)

// Progress counts completed frames and acknowledges each one on a shared
// output sink. A single lock covers both the counter and the sink, so
// concurrent completions never interleave their output mid-line.
type Progress struct {
	mu    sync.Mutex
	out   io.Writer
	total int
	done  int
}

// NewProgress creates a reporter for a run of total frames writing to out.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Ack records the completion of one frame and writes a single
// "completed/total" status line for it. Returns the new completed count.
func (p *Progress) Ack(index int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	fmt.Fprintf(p.out, "frame %05d\t%d/%d\n", index, p.done, p.total)
	return p.done
}

// Completed returns the number of frames acknowledged so far.
func (p *Progress) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Total returns the number of frames the run was started with.
func (p *Progress) Total() int {
	return p.total
}
