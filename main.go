package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arora200/pixabay2vedio/analysis"
	"github.com/arora200/pixabay2vedio/config"
	"github.com/arora200/pixabay2vedio/media"
	"github.com/arora200/pixabay2vedio/pixabay"
	"github.com/arora200/pixabay2vedio/query"
	"github.com/arora200/pixabay2vedio/retrieve"
	"github.com/arora200/pixabay2vedio/segment"
	"github.com/arora200/pixabay2vedio/tts"
	"github.com/arora200/pixabay2vedio/types"
	"github.com/arora200/pixabay2vedio/upload"
)

type runOptions struct {
	scriptPath    string
	outputDir     string
	apiKey        string
	configPath    string
	skipDownloads bool
	safesearch    bool
	videoType     string
	perPage       int
	order         string
	doUpload      bool
	title         string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:           "pixabay2vedio",
		Short:         "Turns a narrative script into a narrated stock-footage video",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.Flags(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.scriptPath, "script-path", "", "path to the input narrative text file (required)")
	f.StringVar(&opts.outputDir, "output-dir", "", "directory for run output (default from config)")
	f.StringVar(&opts.apiKey, "api-key", "", "Pixabay API key (defaults to PIXABAY_API_KEY)")
	f.StringVar(&opts.configPath, "config", "config.yaml", "path to the yaml config file")
	f.BoolVar(&opts.skipDownloads, "skip-downloads", false, "run analysis and narration without retrieving videos")
	f.BoolVar(&opts.safesearch, "safesearch", false, "enable the provider's safesearch filter")
	f.StringVar(&opts.videoType, "video-type", "film", "provider video type (film, animation)")
	f.IntVar(&opts.perPage, "per-page", 200, "provider results per page")
	f.StringVar(&opts.order, "order", "latest", "provider result order (popular, latest)")
	f.BoolVar(&opts.doUpload, "upload", false, "upload the final video to YouTube")
	f.StringVar(&opts.title, "title", "", "video title for upload (defaults to the script filename)")
	_ = cmd.MarkFlagRequired("script-path")

	return cmd
}

func run(ctx context.Context, flags *pflag.FlagSet, opts runOptions) error {
	// .env is for local dev only; CI injects real env vars.
	_ = godotenv.Load()
	setupLogging()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(flags, cfg)
	if opts.outputDir == "" {
		opts.outputDir = cfg.Paths.Output
	}

	apiKey := opts.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("PIXABAY_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("Pixabay API key not found: set PIXABAY_API_KEY or pass --api-key")
	}

	raw, err := os.ReadFile(opts.scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	scriptText := string(raw)
	if strings.TrimSpace(scriptText) == "" {
		return fmt.Errorf("script file %s is empty", opts.scriptPath)
	}

	runID := uuid.NewString()[:8]
	runDir := filepath.Join(opts.outputDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	log.Info().Str("run_id", runID).Str("dir", runDir).Msg("pipeline starting")

	p := &pipeline{cfg: cfg, opts: opts, apiKey: apiKey, runDir: runDir}
	return p.run(ctx, scriptText)
}

type pipeline struct {
	cfg    *config.Config
	opts   runOptions
	apiKey string
	runDir string
}

func (p *pipeline) run(ctx context.Context, scriptText string) error {
	tok := analysis.RuleTokenizer{}

	// Phase 1: segmentation
	log.Info().Msg("phase 1: segmentation")
	seg := segment.New(tok, p.cfg.Script.MaxSentencesPerScene)
	scenes := seg.Split(scriptText)
	log.Info().Int("scenes", len(scenes)).Msg("script segmented")
	if err := saveJSON(filepath.Join(p.runDir, p.cfg.Paths.SceneJSON), types.SceneDoc(scenes)); err != nil {
		return err
	}

	// Phase 2: analysis
	log.Info().Msg("phase 2: analysis")
	analyzer := analysis.New(tok)
	records := make([]*types.SceneRecord, 0, len(scenes))
	for _, scene := range scenes {
		records = append(records, &types.SceneRecord{
			Key:      scene.Key,
			Text:     scene.Text,
			Analysis: analyzer.Analyze(scene.Text),
		})
	}

	// Phase 3: narration
	log.Info().Msg("phase 3: narration")
	if err := p.renderNarration(ctx, records); err != nil {
		return err
	}

	// Phase 4: retrieval
	if p.opts.skipDownloads {
		log.Info().Msg("phase 4: retrieval skipped (--skip-downloads)")
	} else {
		log.Info().Msg("phase 4: video retrieval")
		if err := p.retrieveVideos(ctx, scriptText, records); err != nil {
			return err
		}
	}

	// Phase 5: duration synchronization
	if !p.opts.skipDownloads {
		log.Info().Msg("phase 5: duration synchronization")
		p.syncDurations(ctx, records)
	}

	// Phase 6: consolidated record
	if err := saveJSON(filepath.Join(p.runDir, p.cfg.Paths.ConsolidatedJSON), types.RunDoc(records)); err != nil {
		return err
	}
	log.Info().Str("path", filepath.Join(p.runDir, p.cfg.Paths.ConsolidatedJSON)).Msg("consolidated analysis saved")

	// Phase 7: final assembly
	log.Info().Msg("phase 7: final assembly")
	assembler := media.NewAssembler()
	finalPath, totalDur, err := assembler.Assemble(ctx, records, p.runDir, p.cfg.Paths.FinalVideo)
	if err != nil {
		return fmt.Errorf("assemble final video: %w", err)
	}
	if finalPath == "" {
		log.Warn().Msg("no output produced: no scene had both a clip and narration")
		return nil
	}
	log.Info().Str("path", finalPath).Float64("duration", totalDur).Msg("pipeline complete")

	// Phase 8: upload (optional)
	if p.opts.doUpload {
		title := p.opts.title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(p.opts.scriptPath), filepath.Ext(p.opts.scriptPath))
		}
		uploader := upload.New(p.cfg.Upload)
		if _, _, err := uploader.Run(ctx, finalPath, title, "", nil); err != nil {
			return fmt.Errorf("upload: %w", err)
		}
	}

	return nil
}

func (p *pipeline) renderNarration(ctx context.Context, records []*types.SceneRecord) error {
	audioDir := filepath.Join(p.runDir, p.cfg.Paths.AudioDir)
	if err := os.MkdirAll(audioDir, 0755); err != nil {
		return err
	}

	engine, err := tts.NewCommandEngine(p.cfg.TTS.Voice)
	if err != nil {
		return err
	}
	gen := tts.NewGenerator(engine)

	for _, rec := range records {
		info, err := gen.Render(ctx, rec.Key, rec.Text, audioDir)
		if err != nil {
			log.Warn().Err(err).Str("scene", rec.Key).Msg("narration failed, scene will be omitted")
			continue
		}
		rec.Audio = info
	}
	return nil
}

func (p *pipeline) retrieveVideos(ctx context.Context, scriptText string, records []*types.SceneRecord) error {
	clipsDir := filepath.Join(p.runDir, p.cfg.Paths.ClipsDir)
	if err := os.MkdirAll(clipsDir, 0755); err != nil {
		return err
	}

	settings := query.ExtractSettings(scriptText, p.cfg.Settings.Locations, p.cfg.Settings.Atmosphere)
	log.Info().
		Strs("locations", settings.Locations).
		Strs("atmosphere", settings.Atmosphere).
		Msg("narrative-wide settings extracted")

	client := pixabay.NewClient(p.apiKey, pixabay.SearchOptions{
		Safesearch:    p.cfg.Pixabay.Safesearch,
		VideoType:     p.cfg.Pixabay.VideoType,
		EditorsChoice: p.cfg.Pixabay.EditorsChoice,
		PerPage:       p.cfg.Pixabay.PerPage,
		Order:         p.cfg.Pixabay.Order,
	})

	selected := retrieve.NewSelectedSet()
	audit := retrieve.NewLog()
	delay := time.Duration(p.cfg.Pixabay.RequestDelaySec * float64(time.Second))
	retriever := retrieve.New(client, selected, audit, clipsDir, delay)
	qgen := query.Generator{Bias: p.cfg.Query.BiasTerms}
	standardizer := media.NewStandardizer(p.cfg.Video.Width, p.cfg.Video.Height, p.cfg.Video.FPS)

	for _, rec := range records {
		rec.Queries = qgen.Generate(rec.Analysis, settings)

		sel, err := retriever.Retrieve(ctx, rec.Key, rec.Queries)
		if err != nil {
			return err
		}
		if sel == nil {
			continue
		}

		// Raw downloads are transient; only the standardized copy is kept.
		stdPath := filepath.Join(clipsDir, fmt.Sprintf("%s_%d_standardized.mp4", rec.Key, sel.ID))
		if err := standardizer.Standardize(ctx, sel.DownloadPath, stdPath); err != nil {
			log.Warn().Err(err).Str("scene", rec.Key).Msg("standardization failed, scene will have no clip")
			os.Remove(sel.DownloadPath)
			continue
		}
		os.Remove(sel.DownloadPath)
		sel.DownloadPath = stdPath
		rec.Video = sel
	}

	if err := audit.Save(filepath.Join(p.runDir, p.cfg.Paths.QueryLog)); err != nil {
		return fmt.Errorf("save query log: %w", err)
	}
	return nil
}

func (p *pipeline) syncDurations(ctx context.Context, records []*types.SceneRecord) {
	adjustedDir := filepath.Join(p.runDir, p.cfg.Paths.AdjustedDir)
	if err := os.MkdirAll(adjustedDir, 0755); err != nil {
		log.Warn().Err(err).Msg("create adjusted clips dir failed")
		return
	}

	sync := media.NewSynchronizer()
	for _, rec := range records {
		if rec.Video == nil || rec.Audio == nil {
			continue
		}
		outPath := filepath.Join(adjustedDir, rec.Key+"_adjusted.mp4")
		if err := sync.Sync(ctx, rec.Video.DownloadPath, outPath, rec.Audio.Duration); err != nil {
			log.Warn().Err(err).Str("scene", rec.Key).Msg("duration sync failed, scene will be omitted")
			continue
		}
		rec.Adjusted = &types.AdjustedVideoInfo{
			Path:     outPath,
			Duration: media.Round2(rec.Audio.Duration),
		}
	}
}

// applyFlagOverrides copies provider flags onto cfg, but only the flags the
// user actually passed. Unset flags must not clobber config.yaml values with
// their defaults.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("safesearch") {
		cfg.Pixabay.Safesearch, _ = flags.GetBool("safesearch")
	}
	if flags.Changed("video-type") {
		cfg.Pixabay.VideoType, _ = flags.GetString("video-type")
	}
	if flags.Changed("per-page") {
		cfg.Pixabay.PerPage, _ = flags.GetInt("per-page")
	}
	if flags.Changed("order") {
		cfg.Pixabay.Order, _ = flags.GetString("order")
	}
}

func setupLogging() {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
