package types

// Scene is one bounded segment of narrative text, the unit of narration and
// visual asset selection. Keys are "S1", "S2", … in narrative order.
type Scene struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Entities holds the part-of-speech term lists for one scene, in text order.
type Entities struct {
	Nouns   []string `json:"nouns"`
	Adverbs []string `json:"adverbs"`
	Verbs   []string `json:"verbs"`
}

// Sentiment is the per-scene sentiment signal. DominantLabel is one of
// "Positive", "Negative" or "Neutral".
type Sentiment struct {
	Compound      float64 `json:"compound"`
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	DominantLabel string  `json:"dominant_emotion"`
}

// Emotion is the per-scene coarse emotion label (e.g. "joy", "sadness").
type Emotion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Pragmatics counts sentence types and lists conjunctions for one scene.
type Pragmatics struct {
	SentenceTypes map[string]int `json:"sentence_types"`
	Conjunctions  []string       `json:"conjunctions"`
}

// Analysis is the per-scene signal bag produced by the analysis collaborators.
// Every field is optional; the pipeline only ever reads it.
type Analysis struct {
	Sentiment  *Sentiment  `json:"sentiment,omitempty"`
	Emotion    *Emotion    `json:"emotion,omitempty"`
	Entities   *Entities   `json:"entities,omitempty"`
	Pragmatics *Pragmatics `json:"pragmatics,omitempty"`
}

// Settings are the narrative-wide keywords fed into query generation.
type Settings struct {
	Locations  []string `json:"locations"`
	Atmosphere []string `json:"atmosphere"`
}

// AudioInfo describes a scene's rendered narration. Duration is the ground
// truth for video synchronization.
type AudioInfo struct {
	Filename string  `json:"filename"`
	Duration float64 `json:"duration"`
}

// VideoInfo describes the asset selected for a scene.
type VideoInfo struct {
	ID           int      `json:"id"`
	URL          string   `json:"url"`
	Tags         []string `json:"tags"`
	DownloadPath string   `json:"download_path"`
}

// AdjustedVideoInfo describes a scene clip after duration synchronization.
type AdjustedVideoInfo struct {
	Path     string  `json:"path"`
	Duration float64 `json:"duration"`
}

// SceneRecord is the consolidated per-scene record persisted at the end of a
// run. Fields are attached as the pipeline stages complete.
type SceneRecord struct {
	Key      string             `json:"-"`
	Text     string             `json:"scene_text"`
	Analysis *Analysis          `json:"analysis,omitempty"`
	Queries  []string           `json:"generated_queries,omitempty"`
	Audio    *AudioInfo         `json:"audio_info,omitempty"`
	Video    *VideoInfo         `json:"video_info,omitempty"`
	Adjusted *AdjustedVideoInfo `json:"adjusted_video_info,omitempty"`
}

// QueryLogEntry is one audit-log line: a query issued for a scene and the raw
// provider response, whether or not a selection resulted.
type QueryLogEntry struct {
	Timestamp string `json:"timestamp"`
	SceneKey  string `json:"scene_key"`
	Query     string `json:"query"`
	Results   any    `json:"results"`
}
