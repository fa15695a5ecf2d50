package pixabay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSearchParameters(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 0, "totalHits": 0, "hits": []}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", SearchOptions{
		Safesearch:    true,
		VideoType:     "animation",
		EditorsChoice: true,
		PerPage:       50,
		Order:         "popular",
	})
	c.BaseURL = srv.URL

	if _, err := c.Search(context.Background(), "family life"); err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := map[string]string{
		"key":            "test-key",
		"q":              "family life",
		"orientation":    "vertical",
		"safesearch":     "true",
		"video_type":     "animation",
		"editors_choice": "true",
		"per_page":       "50",
		"order":          "popular",
	}
	for k, v := range want {
		if got := gotQuery.Get(k); got != v {
			t.Errorf("param %s: got %q, want %q", k, got, v)
		}
	}
}

func TestSearchDecodesHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 2, "totalHits": 2,
			"hits": [
				{"id": 789, "tags": "father, son, walking", "videos": {"large": {"url": "https://cdn/789-large.mp4"}, "medium": {"url": "https://cdn/789-medium.mp4"}}},
				{"id": 456, "tags": "forest", "videos": {"medium": {"url": "https://cdn/456-medium.mp4"}}}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient("k", SearchOptions{})
	c.BaseURL = srv.URL

	res, err := c.Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.TotalHits != 2 || len(res.Hits) != 2 {
		t.Fatalf("got totalHits=%d hits=%d, want 2/2", res.TotalHits, len(res.Hits))
	}
	if res.Hits[0].ID != 789 {
		t.Errorf("first hit id: got %d, want 789", res.Hits[0].ID)
	}
}

func TestSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("k", SearchOptions{})
	c.BaseURL = srv.URL

	if _, err := c.Search(context.Background(), "q"); err == nil {
		t.Fatal("want error for non-200 status, got nil")
	}
}

func TestBestURL(t *testing.T) {
	tests := []struct {
		name string
		hit  Hit
		want string
	}{
		{
			name: "large preferred",
			hit: Hit{Videos: map[string]Rendition{
				"large":  {URL: "large.mp4"},
				"medium": {URL: "medium.mp4"},
			}},
			want: "large.mp4",
		},
		{
			name: "medium fallback",
			hit:  Hit{Videos: map[string]Rendition{"medium": {URL: "medium.mp4"}}},
			want: "medium.mp4",
		},
		{
			name: "empty large falls back",
			hit: Hit{Videos: map[string]Rendition{
				"large":  {},
				"medium": {URL: "medium.mp4"},
			}},
			want: "medium.mp4",
		},
		{
			name: "no usable rendition",
			hit:  Hit{Videos: map[string]Rendition{"tiny": {URL: "tiny.mp4"}}},
			want: "",
		},
		{
			name: "no videos at all",
			hit:  Hit{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hit.BestURL(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagList(t *testing.T) {
	hit := Hit{Tags: "father, son,  walking , "}
	want := []string{"father", "son", "walking"}
	if got := hit.TagList(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("video-bytes"))
	}))
	defer srv.Close()

	c := NewClient("k", SearchOptions{})
	dest := filepath.Join(t.TempDir(), "clip.mp4")

	if err := c.Download(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("Download: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != "video-bytes" {
		t.Errorf("downloaded content: got %q", data)
	}
}

func TestDownloadNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient("k", SearchOptions{})
	dest := filepath.Join(t.TempDir(), "clip.mp4")

	if err := c.Download(context.Background(), srv.URL, dest); err == nil {
		t.Fatal("want error for 404, got nil")
	}
	if _, err := os.Stat(dest); err == nil {
		t.Error("partial file left behind after failed download")
	}
}
