package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pixabay  PixabayConfig  `yaml:"pixabay"`
	Script   ScriptConfig   `yaml:"script"`
	Query    QueryConfig    `yaml:"query"`
	Video    VideoConfig    `yaml:"video"`
	TTS      TTSConfig      `yaml:"tts"`
	Settings SettingsConfig `yaml:"settings_keywords"`
	Upload   UploadConfig   `yaml:"upload"`
	Paths    PathsConfig    `yaml:"paths"`
}

type PixabayConfig struct {
	PerPage         int     `yaml:"per_page"`
	Order           string  `yaml:"order"`
	VideoType       string  `yaml:"video_type"`
	Safesearch      bool    `yaml:"safesearch"`
	EditorsChoice   bool    `yaml:"editors_choice"`
	RequestDelaySec float64 `yaml:"request_delay_sec"`
}

type ScriptConfig struct {
	MaxSentencesPerScene int `yaml:"max_sentences_per_scene"`
}

type QueryConfig struct {
	BiasTerms []string `yaml:"bias_terms"`
}

type VideoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type TTSConfig struct {
	Voice string `yaml:"voice"`
}

type SettingsConfig struct {
	Locations  []string `yaml:"locations"`
	Atmosphere []string `yaml:"atmosphere"`
}

type UploadConfig struct {
	Visibility        string `yaml:"visibility"`
	CategoryID        string `yaml:"category_id"`
	DefaultLanguage   string `yaml:"default_language"`
	MadeForKids       bool   `yaml:"made_for_kids"`
	NotifySubscribers bool   `yaml:"notify_subscribers"`
}

type PathsConfig struct {
	Output           string `yaml:"output"`
	AudioDir         string `yaml:"audio_dir"`
	ClipsDir         string `yaml:"clips_dir"`
	AdjustedDir      string `yaml:"adjusted_dir"`
	SceneJSON        string `yaml:"scene_json"`
	QueryLog         string `yaml:"query_log"`
	ConsolidatedJSON string `yaml:"consolidated_json"`
	FinalVideo       string `yaml:"final_video"`
}

// Default returns the built-in configuration used when config.yaml is absent.
func Default() *Config {
	return &Config{
		Pixabay: PixabayConfig{
			PerPage:         200,
			Order:           "latest",
			VideoType:       "film",
			Safesearch:      false,
			EditorsChoice:   true,
			RequestDelaySec: 1,
		},
		Script: ScriptConfig{
			MaxSentencesPerScene: 3,
		},
		Query: QueryConfig{
			BiasTerms: []string{"father", "son", "people"},
		},
		Video: VideoConfig{
			Width:  1080,
			Height: 1920,
			FPS:    30,
		},
		TTS: TTSConfig{
			Voice: "en-US-GuyNeural",
		},
		Settings: SettingsConfig{
			Locations: []string{
				"forest", "clearing", "portal", "tree", "distance", "city", "lights",
			},
			Atmosphere: []string{
				"mysterious", "tall", "thick", "fog", "strange", "scared", "friendly",
				"cautious", "long", "challenging", "changed", "golden", "glow", "deep",
				"peace", "hopeful", "heavy", "sad", "bittersweet", "beautiful",
			},
		},
		Upload: UploadConfig{
			Visibility:      "private",
			CategoryID:      "22",
			DefaultLanguage: "en",
		},
		Paths: PathsConfig{
			Output:           "output",
			AudioDir:         "audio",
			ClipsDir:         "video_clips",
			AdjustedDir:      "adjusted_video_clips",
			SceneJSON:        "scenes.json",
			QueryLog:         "QueryLog.json",
			ConsolidatedJSON: "consolidated_analysis_results.json",
			FinalVideo:       "final_youtube_short.mp4",
		},
	}
}

// Load reads the yaml config at path over the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
