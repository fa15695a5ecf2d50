// Package query derives stock-footage search queries from per-scene analysis
// signals and narrative-wide setting keywords.
package query

import (
	"strings"

	"github.com/arora200/pixabay2vedio/types"
)

// FallbackQuery is used when no terms survive at all.
const FallbackQuery = "family life"

// maxQueryTerms keeps queries inside the provider's practical length limits.
const maxQueryTerms = 5

// Generator builds the per-scene query list. Bias terms come first in every
// primary query to steer the provider toward the narrative's subject matter.
type Generator struct {
	Bias []string
}

// Generate returns the ordered, de-duplicated query list for one scene.
// Term priority for the primary query: bias terms, top-3 nouns (excluding the
// literal "scene"), top-3 verbs, one emotion-derived term, one
// sentiment-derived term, then narrative-wide locations and atmosphere.
// Terms are lowercased, de-duplicated preserving first-seen order, stripped
// of numeric-only tokens and truncated to five. If nothing survives, the
// fallback is the scene's first noun and first verb, else FallbackQuery.
func (g Generator) Generate(a *types.Analysis, settings types.Settings) []string {
	var nouns, verbs []string
	if a != nil && a.Entities != nil {
		for _, n := range a.Entities.Nouns {
			if !strings.EqualFold(n, "scene") {
				nouns = append(nouns, n)
			}
		}
		verbs = a.Entities.Verbs
	}

	var terms []string
	terms = append(terms, g.Bias...)
	terms = append(terms, lowerHead(nouns, 3)...)
	terms = append(terms, lowerHead(verbs, 3)...)

	if a != nil && a.Emotion != nil {
		switch a.Emotion.Label {
		case "optimism", "joy", "love":
			terms = append(terms, "happy")
		case "sadness", "anger", "fear":
			terms = append(terms, "struggle")
		}
	}
	if a != nil && a.Sentiment != nil {
		switch a.Sentiment.DominantLabel {
		case "Positive":
			terms = append(terms, "love")
		case "Negative":
			terms = append(terms, "sad")
		}
	}

	terms = append(terms, lowerHead(settings.Locations, len(settings.Locations))...)
	terms = append(terms, lowerHead(settings.Atmosphere, len(settings.Atmosphere))...)

	var queries []string
	if primary := joinTerms(terms, maxQueryTerms); primary != "" {
		queries = append(queries, primary)
	}

	if len(queries) == 0 {
		var fb []string
		if len(nouns) > 0 {
			fb = append(fb, strings.ToLower(nouns[0]))
		}
		if len(verbs) > 0 {
			fb = append(fb, strings.ToLower(verbs[0]))
		}
		if len(fb) > 0 {
			queries = append(queries, strings.Join(fb, " "))
		} else {
			queries = append(queries, FallbackQuery)
		}
	}

	return dedupStrings(queries)
}

// joinTerms de-duplicates terms preserving first-seen order, drops empty and
// numeric-only tokens, and joins at most max of them.
func joinTerms(terms []string, max int) string {
	seen := make(map[string]bool, len(terms))
	var kept []string
	for _, t := range terms {
		if t == "" || isNumeric(t) || seen[t] {
			continue
		}
		seen[t] = true
		kept = append(kept, t)
		if len(kept) == max {
			break
		}
	}
	return strings.Join(kept, " ")
}

func lowerHead(terms []string, n int) []string {
	if len(terms) < n {
		n = len(terms)
	}
	out := make([]string, 0, n)
	for _, t := range terms[:n] {
		out = append(out, strings.ToLower(t))
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func dedupStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
