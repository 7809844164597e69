package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"animforge/config"
)

// Format is the output container.
type Format string

const (
	FormatMP4  Format = "mp4"
	FormatWebM Format = "webm"
	FormatGIF  Format = "gif"
)

// ParseFormat validates a configuration value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatMP4, FormatWebM, FormatGIF:
		return f, nil
	default:
		return "", fmt.Errorf("unknown container format %q (want mp4, webm or gif)", s)
	}
}

// Ext returns the output file extension, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Encoder invokes ffmpeg over a completed frame sequence.
type Encoder struct {
	cfg   *config.Config
	extra []string
}

// NewEncoder validates the configured extra arguments up front so that a
// bad EXTRA_FF_ARGS fails before any frame is rendered.
func NewEncoder(cfg *config.Config) (*Encoder, error) {
	var extra []string
	if cfg.ExtraFFArgs != "" {
		args, err := SplitArgs(cfg.ExtraFFArgs)
		if err != nil {
			return nil, err
		}
		if err := ValidateArgs(args); err != nil {
			return nil, err
		}
		extra = args
	}
	return &Encoder{cfg: cfg, extra: extra}, nil
}

// BuildArgs constructs the complete ffmpeg argument slice for encoding the
// frame-file template into output. progressFile, when non-empty, receives
// ffmpeg's machine-readable progress; this package does not interpret it.
func (e *Encoder) BuildArgs(template string, format Format, progressFile, output string) []string {
	args := []string{
		"-y", "-hide_banner", "-nostdin",
		"-framerate", strconv.Itoa(e.cfg.FPS),
		"-i", template,
	}

	switch format {
	case FormatMP4:
		args = append(args, "-c:v", "libx264", "-pix_fmt", "yuv420p")
	case FormatWebM:
		args = append(args, "-c:v", "libvpx-vp9", "-b:v", "0", "-crf", "30")
	case FormatGIF:
		args = append(args, "-vf", "split[s0][s1];[s0]palettegen[p];[s1][p]paletteuse")
	}

	args = append(args, e.extra...)

	if progressFile != "" {
		args = append(args, "-progress", progressFile)
	}

	return append(args, output)
}

// Encode runs ffmpeg and returns its stderr attached to any failure.
func (e *Encoder) Encode(ctx context.Context, template string, format Format, progressFile, output string) error {
	args := e.BuildArgs(template, format, progressFile, output)
	cmd := exec.CommandContext(ctx, e.cfg.FFBin, args...)

	var outputBuf bytes.Buffer
	cmd.Stdout = &outputBuf
	cmd.Stderr = &outputBuf

	if e.cfg.Verbose {
		log.Printf("Executing: %s %s", e.cfg.FFBin, strings.Join(args, " "))
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg execution failed: %w: %s", err, tail(outputBuf.String()))
	}
	return nil
}
