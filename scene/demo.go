package scene

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// GradientSweep blends the background between two colors while a ball
// sweeps across the canvas on an eased path. It is the default demo
// animation for exercising the render pipeline end to end.
type GradientSweep struct {
	duration float64
	from, to colorful.Color
}

// NewGradientSweep creates a gradient sweep lasting duration seconds.
func NewGradientSweep(duration float64) *GradientSweep {
	return &GradientSweep{
		duration: duration,
		from:     colorful.Color{R: 0.09, G: 0.13, B: 0.35},
		to:       colorful.Color{R: 0.85, G: 0.30, B: 0.13},
	}
}

func (g *GradientSweep) Duration() float64 {
	return g.duration
}

func (g *GradientSweep) Sample(t float64) *Scene {
	progress := t / g.duration
	bg := g.from.BlendHcl(g.to, ease.InOutQuad(progress)).Clamped()

	s := NewScene(bg.Hex())
	x := 0.1 + 0.8*ease.InOutCubic(progress)
	y := 0.5 + 0.25*math.Sin(progress*4*math.Pi)
	s.Add(
		Circle{X: x, Y: y, R: 0.06, Fill: g.to.BlendHcl(g.from, progress).Clamped().Hex()},
		Rect{X: 0.1, Y: 0.9, W: 0.8 * progress, H: 0.02, Fill: "#ffffff"},
	)
	return s
}

// Pulse renders a circle whose radius breathes with an eased sine cycle.
type Pulse struct {
	duration float64
	color    colorful.Color
}

// NewPulse creates a pulse animation lasting duration seconds.
func NewPulse(duration float64) *Pulse {
	return &Pulse{
		duration: duration,
		color:    colorful.Color{R: 0.2, G: 0.7, B: 0.5},
	}
}

func (p *Pulse) Duration() float64 {
	return p.duration
}

func (p *Pulse) Sample(t float64) *Scene {
	// Two full breaths over the animation, eased at the turning points.
	cycle := math.Mod(t*2/p.duration, 1)
	r := 0.1 + 0.25*ease.InOutSine(1-math.Abs(2*cycle-1))

	s := NewScene("#101418")
	s.Add(Circle{X: 0.5, Y: 0.5, R: r, Fill: p.color.Clamped().Hex()})
	return s
}
