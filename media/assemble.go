package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arora200/pixabay2vedio/types"
)

// Assembler concatenates every qualifying scene's synchronized clip and
// narration audio, in scene order, into the final artifact.
type Assembler struct {
	log zerolog.Logger
}

func NewAssembler() *Assembler {
	return &Assembler{log: log.With().Str("stage", "assemble").Logger()}
}

// Assemble filters to scenes that have both a synchronized clip and narration
// audio on disk, orders them by ordinal key, concatenates video and audio and
// muxes them into outDir/filename. It returns the artifact path and the total
// duration (the sum of the qualifying scenes' narration durations). An empty
// path with a nil error means no scene qualified. Intermediate files are
// removed on every path.
func (a *Assembler) Assemble(ctx context.Context, records []*types.SceneRecord, outDir, filename string) (string, float64, error) {
	eligible := Eligible(records)
	if len(eligible) == 0 {
		a.log.Warn().Msg("no scene has both a synchronized clip and narration audio")
		return "", 0, nil
	}
	SortByOrdinal(eligible)

	var videoPaths, audioPaths []string
	for _, rec := range eligible {
		videoPaths = append(videoPaths, rec.Adjusted.Path)
		audioPaths = append(audioPaths, rec.Audio.Filename)
	}
	total := TotalNarration(eligible)
	a.log.Info().Int("scenes", len(eligible)).Float64("total_sec", total).Msg("assembling final video")

	silentVideo := filepath.Join(outDir, "concat_video.mp4")
	defer os.Remove(silentVideo)
	if err := a.concat(ctx, videoPaths, silentVideo, outDir, "video_concat.txt", false); err != nil {
		return "", 0, fmt.Errorf("concatenate video: %w", err)
	}

	narration := filepath.Join(outDir, "concat_audio.mp3")
	defer os.Remove(narration)
	if err := a.concat(ctx, audioPaths, narration, outDir, "audio_concat.txt", true); err != nil {
		return "", 0, fmt.Errorf("concatenate audio: %w", err)
	}

	finalPath := filepath.Join(outDir, filename)
	if err := a.mux(ctx, silentVideo, narration, finalPath); err != nil {
		return "", 0, fmt.Errorf("combine video+audio: %w", err)
	}

	a.log.Info().Str("path", finalPath).Msg("final video ready")
	return finalPath, total, nil
}

// TotalNarration sums the narration durations of records, rounded to the
// pipeline-wide two-decimal tolerance. Over the eligible scene set this is
// the final artifact's expected duration.
func TotalNarration(records []*types.SceneRecord) float64 {
	var total float64
	for _, rec := range records {
		if rec.Audio != nil {
			total += rec.Audio.Duration
		}
	}
	return Round2(total)
}

// concat joins files in order with the ffmpeg concat demuxer. Audio streams
// are stream-copied; video is re-encoded so differing encoder settings cannot
// corrupt the result.
func (a *Assembler) concat(ctx context.Context, inputs []string, outFile, outDir, listName string, audio bool) error {
	listFile := filepath.Join(outDir, listName)
	var lines []string
	for _, p := range inputs {
		lines = append(lines, fmt.Sprintf("file '%s'", p))
	}
	if err := os.WriteFile(listFile, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return err
	}
	defer os.Remove(listFile)

	args := []string{"-y", "-f", "concat", "-safe", "0", "-i", listFile}
	if audio {
		args = append(args, "-c", "copy")
	} else {
		args = append(args,
			"-c:v", "libx264",
			"-preset", "fast",
			"-crf", "22",
			"-pix_fmt", "yuv420p",
			"-an",
		)
	}
	args = append(args, outFile)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(outFile)
		return fmt.Errorf("ffmpeg concat: %w: %s", err, lastLine(stderr.String()))
	}
	return nil
}

// mux binds the narration track onto the concatenated video.
func (a *Assembler) mux(ctx context.Context, videoFile, audioFile, outFile string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-i", videoFile,
		"-i", audioFile,
		"-c:v", "copy",
		"-c:a", "aac",
		"-b:a", "192k",
		"-shortest",
		"-movflags", "+faststart",
		outFile,
	)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(outFile)
		return fmt.Errorf("ffmpeg mux: %w: %s", err, lastLine(stderr.String()))
	}
	return nil
}

// Eligible returns the records that have both a synchronized clip and
// narration audio, each confirmed to exist on disk.
func Eligible(records []*types.SceneRecord) []*types.SceneRecord {
	var out []*types.SceneRecord
	for _, rec := range records {
		if rec.Adjusted == nil || rec.Audio == nil {
			continue
		}
		if !fileExists(rec.Adjusted.Path) || !fileExists(rec.Audio.Filename) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SortByOrdinal orders records by the numeric suffix of the scene key, so S2
// sorts before S10 where a plain string sort would not.
func SortByOrdinal(records []*types.SceneRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return ordinal(records[i].Key) < ordinal(records[j].Key)
	})
}

func ordinal(key string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(key, "S"))
	if err != nil {
		return 0
	}
	return n
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
