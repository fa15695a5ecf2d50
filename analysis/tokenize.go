package analysis

import (
	"strings"
	"unicode"
)

// Sentence is one tokenized sentence together with the whitespace that
// followed it in the source text. The trailing whitespace is what lets the
// segmenter detect paragraph breaks.
type Sentence struct {
	Text     string
	Trailing string
}

// ParagraphBreak reports whether the sentence closed a paragraph.
func (s Sentence) ParagraphBreak() bool {
	return strings.Contains(s.Trailing, "\n\n")
}

// Tokenizer splits narrative text into ordered sentences.
type Tokenizer interface {
	Sentences(text string) []Sentence
}

// RuleTokenizer is a punctuation-based sentence splitter. It is the default
// stand-in for a model-backed tokenizer; anything implementing Tokenizer can
// replace it.
type RuleTokenizer struct{}

// Sentences splits text on runs of terminal punctuation (. ! ?) followed by
// whitespace, keeping the whitespace attached to the sentence it follows.
// Trailing text without terminal punctuation is returned as a final sentence.
func (RuleTokenizer) Sentences(text string) []Sentence {
	var out []Sentence
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		if !isTerminal(runes[i]) {
			i++
			continue
		}
		for i < len(runes) && isTerminal(runes[i]) {
			i++
		}
		end := i
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if sent := strings.TrimSpace(string(runes[start:end])); sent != "" {
			out = append(out, Sentence{Text: sent, Trailing: string(runes[end:i])})
		}
		start = i
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		out = append(out, Sentence{Text: rest})
	}
	return out
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
