package render

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressAck(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3)

	assert.Equal(t, 1, p.Ack(7))
	assert.Equal(t, 2, p.Ack(0))
	assert.Equal(t, 2, p.Completed())
	assert.Equal(t, 3, p.Total())

	out := buf.String()
	assert.Contains(t, out, "frame 00007\t1/3")
	assert.Contains(t, out, "frame 00000\t2/3")
}

func TestProgressConcurrentAcksDoNotInterleave(t *testing.T) {
	const n = 64
	var buf bytes.Buffer
	p := NewProgress(&buf, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p.Ack(i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, p.Completed())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, n)
	wellFormed := regexp.MustCompile(`^frame \d{5}\t\d+/64$`)
	for _, line := range lines {
		assert.Regexp(t, wellFormed, line)
	}
}
