package query

import (
	"strings"

	"github.com/arora200/pixabay2vedio/types"
)

// ExtractSettings scans the whole narrative for the configured location and
// atmosphere keywords. Matches keep their original casing and first-seen
// order; each keyword is recorded once.
func ExtractSettings(text string, locations, atmosphere []string) types.Settings {
	locSet := lowerSet(locations)
	atmSet := lowerSet(atmosphere)

	var s types.Settings
	seenLoc := make(map[string]bool)
	seenAtm := make(map[string]bool)
	for _, word := range fieldsAlpha(text) {
		lw := strings.ToLower(word)
		if locSet[lw] && !seenLoc[word] {
			seenLoc[word] = true
			s.Locations = append(s.Locations, word)
		}
		if atmSet[lw] && !seenAtm[word] {
			seenAtm[word] = true
			s.Atmosphere = append(s.Atmosphere, word)
		}
	}
	return s
}

func lowerSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// fieldsAlpha splits text into runs of letters, dropping punctuation digits
// and whitespace.
func fieldsAlpha(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'))
	})
}
