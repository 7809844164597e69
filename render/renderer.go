package render

import (
	"context"
	"fmt"
	"os"

	"animforge/config"
	"animforge/scene"
)

// ConvertFunc rasterizes one SVG file into outPath. A nil ConvertFunc
// leaves the SVG as the frame artifact.
type ConvertFunc func(ctx context.Context, svgPath, outPath string) error

// Renderer is the executor's unit of work: it turns one frame index into
// one artifact on disk. It holds no mutable state, so any number of
// frames may render concurrently.
type Renderer struct {
	anim    scene.Animation
	cfg     *config.Config
	session *Session
	convert ConvertFunc
}

// NewRenderer wires an animation to a session. convert may be nil.
func NewRenderer(anim scene.Animation, cfg *config.Config, sess *Session, convert ConvertFunc) *Renderer {
	return &Renderer{anim: anim, cfg: cfg, session: sess, convert: convert}
}

// RenderFrame samples the animation at frame i's timestamp, serializes the
// scene to SVG, optionally rasterizes it, and registers the artifact.
func (r *Renderer) RenderFrame(ctx context.Context, i int) error {
	t := float64(i) / float64(r.cfg.FPS)
	markup := r.anim.Sample(t).SVG(r.cfg.Width, r.cfg.Height)

	if int64(len(markup)) > r.cfg.MaxFrameSize {
		return fmt.Errorf("frame %d: serialized size %d exceeds limit of %d bytes", i, len(markup), r.cfg.MaxFrameSize)
	}

	vec := r.session.VectorPath(i)
	if err := os.WriteFile(vec, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("frame %d: %w", i, err)
	}

	if r.convert != nil {
		if err := r.convert(ctx, vec, r.session.FramePath(i)); err != nil {
			return fmt.Errorf("frame %d: raster conversion: %w", i, err)
		}
		// The raster replaces the vector artifact.
		os.Remove(vec)
	}

	r.session.Register(i)
	return nil
}
