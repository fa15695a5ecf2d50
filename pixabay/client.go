// Package pixabay is the client for the Pixabay video search API.
package pixabay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://pixabay.com/api/videos/"

// Rendition is one quality tier of a hit's media.
type Rendition struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

// Hit is one candidate asset in provider order.
type Hit struct {
	ID     int                  `json:"id"`
	Tags   string               `json:"tags"`
	Videos map[string]Rendition `json:"videos"`
}

// BestURL resolves the hit's primary media URL, preferring the "large"
// rendition and falling back to "medium". Empty when neither exists.
func (h Hit) BestURL() string {
	if r, ok := h.Videos["large"]; ok && r.URL != "" {
		return r.URL
	}
	if r, ok := h.Videos["medium"]; ok && r.URL != "" {
		return r.URL
	}
	return ""
}

// TagList splits the provider's comma-separated tag string.
func (h Hit) TagList() []string {
	var tags []string
	for _, t := range strings.Split(h.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SearchResponse is the provider's response envelope.
type SearchResponse struct {
	Total     int   `json:"total"`
	TotalHits int   `json:"totalHits"`
	Hits      []Hit `json:"hits"`
}

// SearchOptions are the fixed per-run search parameters. Orientation is
// always vertical and is not configurable.
type SearchOptions struct {
	Safesearch    bool
	VideoType     string
	EditorsChoice bool
	PerPage       int
	Order         string
}

// Client searches and downloads Pixabay videos.
type Client struct {
	// BaseURL may be overridden for tests.
	BaseURL string

	apiKey string
	opts   SearchOptions
	http   *http.Client
	log    zerolog.Logger
}

func NewClient(apiKey string, opts SearchOptions) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		opts:    opts,
		http:    &http.Client{Timeout: 60 * time.Second},
		log:     log.With().Str("stage", "pixabay").Logger(),
	}
}

// Search runs one video query. Results come back in provider order.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("orientation", "vertical")
	params.Set("safesearch", strconv.FormatBool(c.opts.Safesearch))
	params.Set("video_type", c.opts.VideoType)
	params.Set("editors_choice", strconv.FormatBool(c.opts.EditorsChoice))
	params.Set("per_page", strconv.Itoa(c.opts.PerPage))
	params.Set("order", c.opts.Order)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pixabay search: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sr SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("pixabay search: decode response: %w", err)
	}

	c.log.Debug().Str("query", query).Int("hits", len(sr.Hits)).Msg("search complete")
	return &sr, nil
}

// Download streams a video to dest. A partial file is removed on failure.
func (c *Client) Download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download video: status %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return fmt.Errorf("download video: %w", err)
	}
	return f.Close()
}
