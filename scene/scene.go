package scene

import (
	"fmt"
	"strings"
)

// A Scene is an ordered collection of vector nodes on a unit canvas.
// Coordinates run from 0 to 1 on both axes; serialization scales them to
// the requested pixel dimensions.
type Scene struct {
	Background string
	nodes      []Node
}

// A Node renders itself as one SVG element.
type Node interface {
	svg(b *strings.Builder, w, h float64)
}

// NewScene creates an empty scene with the given background color.
func NewScene(background string) *Scene {
	return &Scene{Background: background}
}

// Add appends nodes in paint order.
func (s *Scene) Add(nodes ...Node) {
	s.nodes = append(s.nodes, nodes...)
}

// Len reports the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// SVG serializes the scene to SVG markup at w x h pixels.
func (s *Scene) SVG(w, h int) string {
	fw, fh := float64(w), float64(h)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)
	b.WriteByte('\n')
	if s.Background != "" {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, w, h, s.Background)
		b.WriteByte('\n')
	}
	for _, n := range s.nodes {
		n.svg(&b, fw, fh)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// Circle is a filled circle. X, Y and R are unit-canvas fractions; R is
// relative to the canvas height.
type Circle struct {
	X, Y, R float64
	Fill    string
}

func (c Circle) svg(b *strings.Builder, w, h float64) {
	fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, c.X*w, c.Y*h, c.R*h, c.Fill)
}

// Rect is a filled axis-aligned rectangle in unit-canvas fractions.
type Rect struct {
	X, Y, W, H float64
	Fill       string
}

func (r Rect) svg(b *strings.Builder, w, h float64) {
	fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`, r.X*w, r.Y*h, r.W*w, r.H*h, r.Fill)
}

// Text is a centered text label. Size is a fraction of the canvas height.
type Text struct {
	X, Y, Size float64
	Fill       string
	Value      string
}

func (t Text) svg(b *strings.Builder, w, h float64) {
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" font-size="%.2f" fill="%s" text-anchor="middle">%s</text>`, t.X*w, t.Y*h, t.Size*h, t.Fill, t.Value)
}
