package media

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mode says how a source clip is fitted to its target duration.
type Mode int

const (
	// Passthrough: source already matches the target.
	Passthrough Mode = iota
	// Trim: source is longer, cut to [0, target].
	Trim
	// Loop: source is shorter, whole loops plus a trimmed remainder.
	Loop
)

func (m Mode) String() string {
	switch m {
	case Trim:
		return "trim"
	case Loop:
		return "loop"
	default:
		return "passthrough"
	}
}

// Plan is the duration-fitting arithmetic for one clip, independent of any
// media backend. Target carries the two-decimal rounding applied before any
// comparison, so trim/loop decisions cannot oscillate on floating-point
// noise.
type Plan struct {
	Mode      Mode
	Target    float64
	Loops     int     // whole plays of the source, Loop mode only
	Remainder float64 // trimmed tail after the whole plays, Loop mode only
}

// PlanDuration computes how to fit a clip of sourceDur seconds to targetDur
// seconds of narration.
func PlanDuration(sourceDur, targetDur float64) Plan {
	target := Round2(targetDur)
	p := Plan{Target: target}
	switch {
	case target < sourceDur:
		p.Mode = Trim
	case target > sourceDur:
		p.Mode = Loop
		p.Loops = int(math.Floor(target / sourceDur))
		p.Remainder = math.Mod(target, sourceDur)
	default:
		p.Mode = Passthrough
	}
	return p
}

// ExtraPlays is how many times the source must repeat beyond its first play
// to cover the target (the ffmpeg -stream_loop value).
func (p Plan) ExtraPlays() int {
	if p.Mode != Loop {
		return 0
	}
	if p.Remainder > 0 {
		return p.Loops
	}
	return p.Loops - 1
}

// Synchronizer realizes duration plans with ffmpeg.
type Synchronizer struct {
	probe func(path string) (float64, error)
	log   zerolog.Logger
}

func NewSynchronizer() *Synchronizer {
	return &Synchronizer{
		probe: Duration,
		log:   log.With().Str("stage", "sync").Logger(),
	}
}

// Sync writes inputPath to outputPath with its duration forced to exactly
// targetDur (rounded to two decimals). The output duration is pinned with -t
// in all modes, which also absorbs sub-clip drift in Loop mode. Failures
// remove any partial output and are reported to the caller; the scene is then
// simply missing a synchronized clip.
func (s *Synchronizer) Sync(ctx context.Context, inputPath, outputPath string, targetDur float64) error {
	sourceDur, err := s.probe(inputPath)
	if err != nil {
		return err
	}
	// A corrupt or still stream can probe as zero; looping math would divide
	// by it.
	if sourceDur <= 0 {
		return fmt.Errorf("sync %s: unusable source duration %.2fs", inputPath, sourceDur)
	}

	plan := PlanDuration(sourceDur, targetDur)
	s.log.Debug().
		Str("input", inputPath).
		Str("mode", plan.Mode.String()).
		Float64("source", sourceDur).
		Float64("target", plan.Target).
		Int("loops", plan.Loops).
		Float64("remainder", plan.Remainder).
		Msg("duration plan")

	args := []string{"-y"}
	if plan.Mode == Loop {
		args = append(args, "-stream_loop", strconv.Itoa(plan.ExtraPlays()))
	}
	args = append(args,
		"-i", inputPath,
		"-t", fmt.Sprintf("%.2f", plan.Target),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		"-an",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("ffmpeg sync %s: %w: %s", inputPath, err, lastLine(stderr.String()))
	}
	return nil
}
