// Package tts renders per-scene narration through an external text-to-speech
// engine and measures the resulting audio.
package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arora200/pixabay2vedio/media"
	"github.com/arora200/pixabay2vedio/types"
)

// Engine renders narration text to an audio file.
type Engine interface {
	Render(ctx context.Context, text, outFile string) error
}

// CommandEngine shells out to an external TTS command. Set TTS_COMMAND to a
// binary or Python script that accepts --text and --output; without it,
// edge-tts is used when available.
type CommandEngine struct {
	command string
	voice   string
	log     zerolog.Logger
}

func NewCommandEngine(voice string) (*CommandEngine, error) {
	command := strings.TrimSpace(os.Getenv("TTS_COMMAND"))
	if command == "" {
		if _, err := exec.LookPath("edge-tts"); err != nil {
			return nil, fmt.Errorf("no TTS engine found: set TTS_COMMAND or install edge-tts (pip install edge-tts)")
		}
		command = "edge-tts"
	}
	return &CommandEngine{
		command: command,
		voice:   voice,
		log:     log.With().Str("stage", "tts").Logger(),
	}, nil
}

// Render synthesizes text into outFile, retrying up to three times.
func (e *CommandEngine) Render(ctx context.Context, text, outFile string) error {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if lastErr = e.buildCmd(ctx, text, outFile).Run(); lastErr == nil {
			return nil
		}
		e.log.Warn().Err(lastErr).Int("attempt", attempt).Msg("TTS attempt failed, retrying")
		time.Sleep(time.Duration(attempt) * 2 * time.Second)
	}
	return lastErr
}

func (e *CommandEngine) buildCmd(ctx context.Context, text, outFile string) *exec.Cmd {
	switch {
	case e.command == "edge-tts":
		return exec.CommandContext(ctx, "edge-tts",
			"--voice", e.voice,
			"--text", text,
			"--write-media", outFile,
		)
	case strings.HasSuffix(e.command, ".py"):
		return exec.CommandContext(ctx, "python3", e.command,
			"--text", text,
			"--output", outFile,
		)
	default:
		return exec.CommandContext(ctx, e.command,
			"--text", text,
			"--output", outFile,
		)
	}
}

// Generator renders scene narration and measures it.
type Generator struct {
	engine Engine
	log    zerolog.Logger
}

func NewGenerator(engine Engine) *Generator {
	return &Generator{engine: engine, log: log.With().Str("stage", "tts").Logger()}
}

// Render produces audioDir/<sceneKey>.mp3 and returns its path and measured
// duration. The measured duration is the ground truth the video clip is later
// synchronized against.
func (g *Generator) Render(ctx context.Context, sceneKey, text, audioDir string) (*types.AudioInfo, error) {
	outFile := filepath.Join(audioDir, sceneKey+".mp3")
	if err := g.engine.Render(ctx, text, outFile); err != nil {
		return nil, fmt.Errorf("scene %s TTS: %w", sceneKey, err)
	}

	dur, err := media.Duration(outFile)
	if err != nil {
		return nil, fmt.Errorf("scene %s audio: %w", sceneKey, err)
	}

	g.log.Info().Str("scene", sceneKey).Float64("duration", dur).Msg("narration rendered")
	return &types.AudioInfo{Filename: outFile, Duration: dur}, nil
}
