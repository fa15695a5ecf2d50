package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
pixabay:
  per_page: 50
  order: popular
script:
  max_sentences_per_scene: 2
tts:
  voice: en-GB-SoniaNeural
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Pixabay.PerPage != 50 {
		t.Errorf("per_page: got %d, want 50", cfg.Pixabay.PerPage)
	}
	if cfg.Pixabay.Order != "popular" {
		t.Errorf("order: got %q, want popular", cfg.Pixabay.Order)
	}
	if cfg.Script.MaxSentencesPerScene != 2 {
		t.Errorf("max_sentences_per_scene: got %d, want 2", cfg.Script.MaxSentencesPerScene)
	}
	if cfg.TTS.Voice != "en-GB-SoniaNeural" {
		t.Errorf("voice: got %q", cfg.TTS.Voice)
	}

	// Sections absent from the file keep their defaults.
	if cfg.Pixabay.VideoType != "film" {
		t.Errorf("video_type default lost: got %q", cfg.Pixabay.VideoType)
	}
	if cfg.Video.Width != 1080 || cfg.Video.Height != 1920 {
		t.Errorf("video geometry defaults lost: %dx%d", cfg.Video.Width, cfg.Video.Height)
	}
	if cfg.Paths.FinalVideo != "final_youtube_short.mp4" {
		t.Errorf("final_video default lost: got %q", cfg.Paths.FinalVideo)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("pixabay: [not: a: mapping"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("want error for malformed yaml, got nil")
	}
}

func TestDefaultQueryBias(t *testing.T) {
	want := []string{"father", "son", "people"}
	if got := Default().Query.BiasTerms; !reflect.DeepEqual(got, want) {
		t.Errorf("bias terms: got %v, want %v", got, want)
	}
}
