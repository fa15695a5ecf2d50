package main

import (
	"testing"

	"github.com/arora200/pixabay2vedio/config"
)

func fileConfig() *config.Config {
	cfg := config.Default()
	cfg.Pixabay.Safesearch = true
	cfg.Pixabay.VideoType = "animation"
	cfg.Pixabay.PerPage = 50
	cfg.Pixabay.Order = "popular"
	return cfg
}

func TestApplyFlagOverridesUnsetFlagsKeepConfig(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	cfg := fileConfig()
	applyFlagOverrides(cmd.Flags(), cfg)

	if !cfg.Pixabay.Safesearch {
		t.Error("safesearch from config clobbered by flag default")
	}
	if cfg.Pixabay.VideoType != "animation" {
		t.Errorf("video_type: got %q, want animation", cfg.Pixabay.VideoType)
	}
	if cfg.Pixabay.PerPage != 50 {
		t.Errorf("per_page: got %d, want 50", cfg.Pixabay.PerPage)
	}
	if cfg.Pixabay.Order != "popular" {
		t.Errorf("order: got %q, want popular", cfg.Pixabay.Order)
	}
}

func TestApplyFlagOverridesPassedFlagsWin(t *testing.T) {
	cmd := newRootCmd()
	args := []string{
		"--safesearch=false",
		"--video-type", "film",
		"--per-page", "25",
		"--order", "latest",
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}

	cfg := fileConfig()
	applyFlagOverrides(cmd.Flags(), cfg)

	if cfg.Pixabay.Safesearch {
		t.Error("safesearch: explicit --safesearch=false not applied")
	}
	if cfg.Pixabay.VideoType != "film" {
		t.Errorf("video_type: got %q, want film", cfg.Pixabay.VideoType)
	}
	if cfg.Pixabay.PerPage != 25 {
		t.Errorf("per_page: got %d, want 25", cfg.Pixabay.PerPage)
	}
	if cfg.Pixabay.Order != "latest" {
		t.Errorf("order: got %q, want latest", cfg.Pixabay.Order)
	}
}
