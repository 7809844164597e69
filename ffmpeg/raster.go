package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Raster selects the external tool that converts a vector frame into a
// raster image before encoding. RasterNone feeds SVG frames to the
// encoder directly; RasterAuto picks the first converter found on PATH.
type Raster string

const (
	RasterNone     Raster = "none"
	RasterAuto     Raster = "auto"
	RasterInkscape Raster = "inkscape"
	RasterRSVG     Raster = "rsvg"
	RasterMagick   Raster = "magick"
)

// ParseRaster validates a configuration value.
func ParseRaster(s string) (Raster, error) {
	switch r := Raster(s); r {
	case RasterNone, RasterAuto, RasterInkscape, RasterRSVG, RasterMagick:
		return r, nil
	default:
		return "", fmt.Errorf("unknown raster variant %q (want none, auto, inkscape, rsvg or magick)", s)
	}
}

// Resolve maps RasterAuto to a concrete variant on PATH. Other variants
// pass through unchanged; availability is checked later by CheckTools.
func (r Raster) Resolve() (Raster, error) {
	if r != RasterAuto {
		return r, nil
	}
	for _, candidate := range []Raster{RasterInkscape, RasterRSVG, RasterMagick} {
		if _, err := exec.LookPath(candidate.bin()); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no raster converter found in PATH (tried inkscape, rsvg-convert, magick)")
}

// Enabled reports whether frames are rasterized before encoding.
func (r Raster) Enabled() bool {
	return r != RasterNone && r != ""
}

func (r Raster) bin() string {
	switch r {
	case RasterInkscape:
		return "inkscape"
	case RasterRSVG:
		return "rsvg-convert"
	case RasterMagick:
		return "magick"
	}
	return ""
}

// ConvertArgs builds the argv converting svgPath into outPath.
func (r Raster) ConvertArgs(svgPath, outPath string) []string {
	switch r {
	case RasterInkscape:
		return []string{"inkscape", svgPath, "--export-type=png", "--export-filename=" + outPath}
	case RasterRSVG:
		return []string{"rsvg-convert", "-o", outPath, svgPath}
	case RasterMagick:
		return []string{"magick", svgPath, outPath}
	}
	return nil
}

// Convert rasterizes one frame. A nonzero exit from the converter is
// returned with the tool's output attached.
func (r Raster) Convert(ctx context.Context, svgPath, outPath string) error {
	args := r.ConvertArgs(svgPath, outPath)
	if args == nil {
		return fmt.Errorf("raster variant %q cannot convert", r)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", args[0], err, tail(out.String()))
	}
	return nil
}

// tail keeps error messages readable when a tool dumps pages of output.
func tail(s string) string {
	const max = 400
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max:]
}
