package retrieve

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/arora200/pixabay2vedio/types"
)

// Log is the per-run query audit log: one entry per query issued, with the
// raw result set, whether or not a selection came out of it.
type Log struct {
	mu      sync.Mutex
	entries []types.QueryLogEntry
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(sceneKey, query string, results any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, types.QueryLogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		SceneKey:  sceneKey,
		Query:     query,
		Results:   results,
	})
}

// Entries returns a snapshot of the log in append order.
func (l *Log) Entries() []types.QueryLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.QueryLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Save writes the log as an indented JSON array.
func (l *Log) Save(path string) error {
	data, err := json.MarshalIndent(l.Entries(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
