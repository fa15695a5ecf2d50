// Package retrieve implements the per-scene asset selection protocol against
// the stock-footage provider, with run-wide deduplication.
package retrieve

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arora200/pixabay2vedio/pixabay"
	"github.com/arora200/pixabay2vedio/types"
)

// Searcher is the provider's video-search collaborator.
type Searcher interface {
	Search(ctx context.Context, query string) (*pixabay.SearchResponse, error)
}

// Downloader fetches a selected asset's media to a local file.
type Downloader interface {
	Download(ctx context.Context, url, dest string) error
}

// Provider is the full stock-footage collaborator surface.
type Provider interface {
	Searcher
	Downloader
}

// Retriever walks a scene's queries in order and binds the first unused
// candidate. It owns neither the dedup set nor the audit log: both are shared
// across every scene of the run and injected by the caller.
type Retriever struct {
	provider Provider
	selected *SelectedSet
	audit    *Log
	clipsDir string
	delay    time.Duration
	log      zerolog.Logger
}

func New(provider Provider, selected *SelectedSet, audit *Log, clipsDir string, delay time.Duration) *Retriever {
	return &Retriever{
		provider: provider,
		selected: selected,
		audit:    audit,
		clipsDir: clipsDir,
		delay:    delay,
		log:      log.With().Str("stage", "retrieve").Logger(),
	}
}

// Retrieve tries each query in order until one yields a candidate not yet
// bound to another scene, then downloads it. A nil result with a nil error
// means every query was exhausted without a selection; the scene simply has
// no asset. Provider errors count as zero results for that query. Every
// provider call is followed by the configured rate-limit delay and logged to
// the audit log.
func (r *Retriever) Retrieve(ctx context.Context, sceneKey string, queries []string) (*types.VideoInfo, error) {
	for _, q := range queries {
		res, err := r.provider.Search(ctx, q)
		if err != nil {
			r.log.Warn().Err(err).Str("scene", sceneKey).Str("query", q).Msg("search failed")
			r.audit.Append(sceneKey, q, nil)
			time.Sleep(r.delay)
			continue
		}
		r.audit.Append(sceneKey, q, res)

		sel := r.selectFrom(ctx, sceneKey, res.Hits)
		time.Sleep(r.delay)
		if sel != nil {
			r.log.Info().Str("scene", sceneKey).Int("id", sel.ID).Str("query", q).Msg("asset selected")
			return sel, nil
		}
	}

	r.log.Warn().Str("scene", sceneKey).Int("queries", len(queries)).Msg("no unused asset found")
	return nil, nil
}

// selectFrom scans candidates in provider order. Reserving the ID happens
// before the download so no other scene can race for the same asset; a
// reservation is kept even if the download then fails, and the scan moves on
// to the next candidate.
func (r *Retriever) selectFrom(ctx context.Context, sceneKey string, hits []pixabay.Hit) *types.VideoInfo {
	for _, hit := range hits {
		if !r.selected.Reserve(hit.ID) {
			continue
		}

		url := hit.BestURL()
		if url == "" {
			// Unusable for every scene; the reservation is moot.
			continue
		}

		dest := filepath.Join(r.clipsDir, fmt.Sprintf("%s_%d_raw.mp4", sceneKey, hit.ID))
		if err := r.provider.Download(ctx, url, dest); err != nil {
			r.log.Warn().Err(err).Str("scene", sceneKey).Int("id", hit.ID).Msg("download failed")
			continue
		}

		return &types.VideoInfo{
			ID:           hit.ID,
			URL:          url,
			Tags:         hit.TagList(),
			DownloadPath: dest,
		}
	}
	return nil
}
