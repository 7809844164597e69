// animforge/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"animforge/api"
	"animforge/config"
	"animforge/ffmpeg"
	"animforge/render"
	"animforge/scene"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("animforge: %v", err)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format, err := ffmpeg.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	raster, err := ffmpeg.ParseRaster(cfg.Raster)
	if err != nil {
		return err
	}

	// 2. Resolve tools before any frame work starts
	raster, err = raster.Resolve()
	if err != nil {
		return err
	}
	if err := ffmpeg.CheckTools(cfg, raster); err != nil {
		return err
	}
	encoder, err := ffmpeg.NewEncoder(cfg)
	if err != nil {
		return err
	}

	anim, err := demoAnimation(cfg)
	if err != nil {
		return err
	}
	total := cfg.FrameCount()

	// 3. Session-scoped temp storage, removed however the run ends
	sess, err := render.NewSession(raster.Enabled())
	if err != nil {
		return err
	}
	defer sess.Cleanup()
	log.Printf("Using temporary directory: %s", sess.Dir)

	if err := ffmpeg.CheckDisk(sess.Dir, cfg.ThrottleFreeDisk); err != nil {
		return err
	}

	progress := render.NewProgress(os.Stdout, total)

	// 4. Optional live preview of the in-progress session
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.PreviewEnable {
		router := api.SetupRouter(sess, progress, cfg)
		go func() {
			if err := api.Serve(ctx, router, cfg.PreviewPort); err != nil {
				log.Printf("Preview server error: %v", err)
			}
		}()
		log.Printf("Preview server on port %s", cfg.PreviewPort)
	}

	// 5. Render all frames under the interrupt supervisor
	workers := workerCount(cfg)
	intr := render.NewInterrupt()
	stopWatch := intr.Watch()

	var convert render.ConvertFunc
	if raster.Enabled() {
		convert = raster.Convert
	}
	renderer := render.NewRenderer(anim, cfg, sess, convert)
	executor := render.NewExecutor(workers, progress, intr)

	log.Printf("Rendering %d frames at %d fps with %d workers", total, cfg.FPS, workers)
	res, err := executor.Run(ctx, render.FrameOrder(cfg.FPS, total), renderer.RenderFrame)
	stopWatch()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if res.State == render.StatePartiallyComplete {
		log.Printf("Interrupted: rendered %d of %d frames, encoding the partial result", res.Completed, res.Total)
	}

	// 6. Encode whatever frames exist on disk
	frames, err := sess.Compact()
	if err != nil {
		return err
	}
	if frames == 0 {
		log.Printf("No frames rendered, nothing to encode")
		return nil
	}

	output := cfg.Output
	if output == "" {
		output = "output." + format.Ext()
	}

	encodeCtx, encodeCancel := context.WithTimeout(ctx, cfg.EncodeTimeout)
	defer encodeCancel()
	progressFile := filepath.Join(sess.Dir, "ffmpeg-progress.log")
	if err := encoder.Encode(encodeCtx, sess.Template(), format, progressFile, output); err != nil {
		return err
	}

	log.Printf("Wrote %s (%d frames in %s)", output, frames, res.Elapsed.Round(10*time.Millisecond))
	return nil
}

// demoAnimation picks the built-in animation named by the config.
func demoAnimation(cfg *config.Config) (scene.Animation, error) {
	seconds := cfg.Duration.Seconds()
	switch cfg.Demo {
	case "gradient":
		return scene.NewGradientSweep(seconds), nil
	case "pulse":
		return scene.NewPulse(seconds), nil
	default:
		return nil, fmt.Errorf("unknown demo animation %q (want gradient or pulse)", cfg.Demo)
	}
}

// workerCount resolves the worker slot pool size: the configured override,
// or the machine's logical CPU count.
func workerCount(cfg *config.Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return 1
}
