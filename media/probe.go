// Package media is the ffmpeg/ffprobe backend: clip standardization,
// duration synchronization and final assembly.
package media

import (
	"fmt"
	"math"
	"os/exec"
	"strings"
)

// Duration returns a media file's duration in seconds via ffprobe.
func Duration(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	var dur float64
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &dur); err != nil {
		return 0, fmt.Errorf("ffprobe %s: parse duration: %w", path, err)
	}
	return dur, nil
}

// Round2 rounds a duration to two decimal places, the pipeline-wide tolerance
// that absorbs frame-boundary floating-point error.
func Round2(d float64) float64 {
	return math.Round(d*100) / 100
}
