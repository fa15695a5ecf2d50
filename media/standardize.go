package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Standardizer re-encodes raw downloads to the pipeline's fixed vertical
// resolution and frame rate so every clip concatenates cleanly later.
type Standardizer struct {
	Width  int
	Height int
	FPS    int

	log zerolog.Logger
}

func NewStandardizer(width, height, fps int) *Standardizer {
	return &Standardizer{
		Width:  width,
		Height: height,
		FPS:    fps,
		log:    log.With().Str("stage", "standardize").Logger(),
	}
}

// Standardize encodes inputPath to outputPath at the configured geometry,
// letterboxing instead of stretching. Clip audio is stripped; narration is
// the only audio track in the final artifact.
func (s *Standardizer) Standardize(ctx context.Context, inputPath, outputPath string) error {
	vf := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1",
		s.Width, s.Height, s.Width, s.Height,
	)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-i", inputPath,
		"-vf", vf,
		"-r", strconv.Itoa(s.FPS),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		"-an",
		outputPath,
	)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("ffmpeg standardize %s: %w: %s", inputPath, err, lastLine(stderr.String()))
	}
	return nil
}

// lastLine extracts the tail of ffmpeg's stderr for error messages.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
