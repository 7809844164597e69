package scene

// An Animation implements a way to sample a specific animation at a point
// in time. Sample must be pure: the same t always yields the same scene,
// and no runtime state may leak between calls. The frame scheduler relies
// on this to evaluate timestamps concurrently and in arbitrary order.
type Animation interface {
	// Duration reports the animation length in seconds.
	Duration() float64
	// Sample computes the scene at t seconds, t in [0, Duration()).
	Sample(t float64) *Scene
}
