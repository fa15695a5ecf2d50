// Package segment splits narrative text into ordered scenes bounded by
// sentence and paragraph structure.
package segment

import (
	"fmt"
	"strings"

	"github.com/arora200/pixabay2vedio/analysis"
	"github.com/arora200/pixabay2vedio/types"
)

// Segmenter groups sentences into scenes. A scene closes on a paragraph break
// or when it reaches maxSentences sentences, whichever comes first.
type Segmenter struct {
	tok          analysis.Tokenizer
	maxSentences int
}

func New(tok analysis.Tokenizer, maxSentences int) *Segmenter {
	if maxSentences < 1 {
		maxSentences = 1
	}
	return &Segmenter{tok: tok, maxSentences: maxSentences}
}

// Split returns the scenes of text in narrative order. Keys are "S1", "S2", …
// gapless and 1-based regardless of how many sentences each scene holds.
// Text with no sentences yields no scenes.
func (s *Segmenter) Split(text string) []types.Scene {
	var scenes []types.Scene
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		scenes = append(scenes, types.Scene{
			Key:  fmt.Sprintf("S%d", len(scenes)+1),
			Text: strings.Join(buf, " "),
		})
		buf = nil
	}

	for _, sent := range s.tok.Sentences(text) {
		buf = append(buf, sent.Text)
		if sent.ParagraphBreak() || len(buf) >= s.maxSentences {
			flush()
		}
	}
	flush()

	return scenes
}
