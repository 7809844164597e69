package render

// FrameOrder returns the order in which the n frames of a render are
// visited. Rather than scanning left to right, the sequence interlaces:
// the first pass emits every rate-th frame, each following pass halves the
// stride and fills in the frames the earlier passes skipped. A client
// consuming the sequence front to back therefore sees an increasingly
// dense, evenly spread preview of the whole timeline.
//
// The result is a permutation of [0, n) for every rate > 0: a frame
// divisible by an earlier (larger) stride was already emitted in that
// stride's own pass, so the exclusion check makes each index appear
// exactly once.
func FrameOrder(rate, n int) []int {
	order := make([]int, 0, n)
	var seenSteps []int

	for step := rate; step > 0; step /= 2 {
		for i := 0; i < n; i += step {
			if divisibleByAny(i, seenSteps) {
				continue
			}
			order = append(order, i)
		}
		seenSteps = append(seenSteps, step)
	}

	return order
}

func divisibleByAny(i int, steps []int) bool {
	for _, s := range steps {
		if i%s == 0 {
			return true
		}
	}
	return false
}
