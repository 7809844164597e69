package render

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameOrderInterlaces(t *testing.T) {
	// First pass (step 4) emits 0,4,8; step 2 fills 2,6; step 1 the odds.
	assert.Equal(t, []int{0, 4, 8, 2, 6, 1, 3, 5, 7, 9}, FrameOrder(4, 10))
}

func TestFrameOrderSequentialAtRateOne(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, FrameOrder(1, 5))
}

func TestFrameOrderEmpty(t *testing.T) {
	assert.Empty(t, FrameOrder(4, 0))
	assert.Empty(t, FrameOrder(60, 0))
}

func TestFrameOrderFullSecond(t *testing.T) {
	order := FrameOrder(60, 60)

	// Only one multiple of 60 lies in [0,60): the very first frame.
	require.NotEmpty(t, order)
	assert.Equal(t, 0, order[0])
	assert.Equal(t, 30, order[1])

	assertPermutation(t, order, 60)
}

func TestFrameOrderIsPermutation(t *testing.T) {
	// The exclusion rule assumes every index divisible by an earlier step
	// was emitted in that step's own pass. Exercise it across many
	// (rate, n) pairs, including rates that are not powers of two.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		rate := 1 + rng.Intn(120)
		n := rng.Intn(700)
		assertPermutation(t, FrameOrder(rate, n), n)
	}
}

func assertPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	require.Len(t, order, n)
	seen := make(map[int]bool, n)
	for _, i := range order {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, n)
		require.False(t, seen[i], "index %d emitted twice", i)
		seen[i] = true
	}
}
