// Package upload publishes the final artifact to YouTube.
package upload

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/arora200/pixabay2vedio/config"
)

// Uploader uploads a video via the YouTube Data API v3 using OAuth2
// refresh-token credentials from the environment.
type Uploader struct {
	cfg config.UploadConfig
	log zerolog.Logger
}

func New(cfg config.UploadConfig) *Uploader {
	return &Uploader{cfg: cfg, log: log.With().Str("stage", "upload").Logger()}
}

// Run uploads videoFile and returns the video ID and watch URL.
func (u *Uploader) Run(ctx context.Context, videoFile, title, description string, tags []string) (string, string, error) {
	u.log.Info().Msg("authenticating with YouTube API")

	transport, err := u.oauthTransport(ctx)
	if err != nil {
		return "", "", fmt.Errorf("youtube auth: %w", err)
	}

	svc, err := youtube.NewService(ctx, option.WithHTTPClient(&http.Client{Transport: transport}))
	if err != nil {
		return "", "", fmt.Errorf("youtube service: %w", err)
	}

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:                title,
			Description:          description,
			Tags:                 tags,
			CategoryId:           u.cfg.CategoryID,
			DefaultLanguage:      u.cfg.DefaultLanguage,
			DefaultAudioLanguage: u.cfg.DefaultLanguage,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           u.cfg.Visibility,
			SelfDeclaredMadeForKids: u.cfg.MadeForKids,
		},
	}

	f, err := os.Open(videoFile)
	if err != nil {
		return "", "", fmt.Errorf("open video file: %w", err)
	}
	defer f.Close()

	call := svc.Videos.Insert([]string{"snippet", "status"}, video)
	call.NotifySubscribers(u.cfg.NotifySubscribers)
	call.Media(f)

	uploaded, err := call.Do()
	if err != nil {
		return "", "", fmt.Errorf("youtube upload: %w", err)
	}

	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", uploaded.Id)
	u.log.Info().Str("id", uploaded.Id).Str("url", videoURL).Msg("upload complete")
	return uploaded.Id, videoURL, nil
}

// oauthTransport builds an OAuth2 transport from env credentials.
func (u *Uploader) oauthTransport(ctx context.Context) (*oauth2.Transport, error) {
	clientID := os.Getenv("YOUTUBE_CLIENT_ID")
	clientSecret := os.Getenv("YOUTUBE_CLIENT_SECRET")
	refreshToken := os.Getenv("YOUTUBE_REFRESH_TOKEN")
	if clientID == "" || clientSecret == "" || refreshToken == "" {
		return nil, fmt.Errorf("YOUTUBE_CLIENT_ID, YOUTUBE_CLIENT_SECRET, or YOUTUBE_REFRESH_TOKEN not set")
	}

	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{youtube.YoutubeUploadScope, youtube.YoutubeScope},
	}
	token := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour), // force refresh
	}

	return &oauth2.Transport{Source: conf.TokenSource(ctx, token)}, nil
}
