package analysis

import (
	"math"
	"strings"

	"github.com/arora200/pixabay2vedio/types"
)

// Analyzer derives the per-scene analysis bag: sentiment, a coarse emotion
// label, part-of-speech term lists and pragmatics. It is a lexicon-based
// stand-in for the model-backed collaborators the pipeline was designed
// around; everything downstream only reads the resulting bag, so any
// implementation producing the same shape can replace it.
type Analyzer struct {
	tok Tokenizer
}

func New(tok Tokenizer) *Analyzer {
	return &Analyzer{tok: tok}
}

// Analyze builds the full signal bag for one scene's text.
func (a *Analyzer) Analyze(text string) *types.Analysis {
	words := splitWords(text)
	return &types.Analysis{
		Sentiment:  a.sentiment(words),
		Emotion:    a.emotion(words),
		Entities:   a.entities(words),
		Pragmatics: a.pragmatics(text),
	}
}

func (a *Analyzer) sentiment(words []string) *types.Sentiment {
	pos, neg := 0, 0
	for _, w := range words {
		lw := strings.ToLower(w)
		if positiveLexicon[lw] {
			pos++
		}
		if negativeLexicon[lw] {
			neg++
		}
	}

	// Normalized the way VADER normalizes its raw valence sum.
	raw := float64(pos - neg)
	compound := 0.0
	if raw != 0 {
		compound = raw / math.Sqrt(raw*raw+15)
	}

	label := "Neutral"
	if compound >= 0.05 {
		label = "Positive"
	} else if compound <= -0.05 {
		label = "Negative"
	}

	return &types.Sentiment{
		Compound:      compound,
		Positive:      pos,
		Negative:      neg,
		DominantLabel: label,
	}
}

func (a *Analyzer) emotion(words []string) *types.Emotion {
	counts := make(map[string]int)
	total := 0
	for _, w := range words {
		if label, ok := emotionLexicon[strings.ToLower(w)]; ok {
			counts[label]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	best, bestCount := "", 0
	for label, n := range counts {
		if n > bestCount || (n == bestCount && label < best) {
			best, bestCount = label, n
		}
	}
	return &types.Emotion{Label: best, Score: float64(bestCount) / float64(total)}
}

// entities assigns each content word a coarse part of speech. Function words
// are skipped, -ly words become adverbs, -ing/-ed words and known verbs become
// verbs, everything else counts as a noun.
func (a *Analyzer) entities(words []string) *types.Entities {
	e := &types.Entities{}
	for _, w := range words {
		lw := strings.ToLower(w)
		switch {
		case functionWords[lw]:
		case strings.HasSuffix(lw, "ly") && len(lw) > 4 && !lyNouns[lw]:
			e.Adverbs = append(e.Adverbs, w)
		case verbLexicon[lw] || strings.HasSuffix(lw, "ing") || strings.HasSuffix(lw, "ed"):
			e.Verbs = append(e.Verbs, w)
		default:
			e.Nouns = append(e.Nouns, w)
		}
	}
	return e
}

func (a *Analyzer) pragmatics(text string) *types.Pragmatics {
	p := &types.Pragmatics{SentenceTypes: make(map[string]int)}
	for _, sent := range a.tok.Sentences(text) {
		switch {
		case strings.HasSuffix(sent.Text, "?"):
			p.SentenceTypes["interrogative"]++
		case strings.HasSuffix(sent.Text, "!"):
			p.SentenceTypes["exclamatory"]++
		case strings.HasSuffix(sent.Text, "."):
			p.SentenceTypes["declarative"]++
		}
	}
	for _, w := range splitWords(text) {
		if conjunctions[strings.ToLower(w)] {
			p.Conjunctions = append(p.Conjunctions, w)
		}
	}
	return p
}

// splitWords returns the alphabetic word tokens of text, original case kept.
func splitWords(text string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		if r == '\'' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return words
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var positiveLexicon = toSet(
	"love", "loved", "loving", "happy", "happiness", "joy", "joyful", "hope",
	"hopeful", "beautiful", "wonderful", "peace", "peaceful", "proud", "pride",
	"warm", "warmth", "smile", "smiled", "laugh", "laughed", "gentle", "kind",
	"golden", "bright", "friendly", "safe", "together", "embrace", "cherish",
	"grateful", "glad", "delight", "comfort", "trust", "brave",
)

var negativeLexicon = toSet(
	"sad", "sadness", "cry", "cried", "crying", "tears", "fear", "feared",
	"afraid", "scared", "dark", "darkness", "lost", "lonely", "alone", "angry",
	"anger", "pain", "painful", "hurt", "struggle", "struggled", "heavy",
	"cold", "bitter", "grief", "sorrow", "worry", "worried", "danger",
	"strange", "hard", "difficult", "goodbye", "missing", "gone",
)

var emotionLexicon = map[string]string{
	"love": "love", "loved": "love", "loving": "love", "cherish": "love",
	"embrace": "love", "warmth": "love",
	"happy": "joy", "happiness": "joy", "joy": "joy", "joyful": "joy",
	"smile": "joy", "smiled": "joy", "laugh": "joy", "laughed": "joy",
	"delight": "joy", "glad": "joy",
	"hope": "optimism", "hopeful": "optimism", "bright": "optimism",
	"proud": "optimism", "brave": "optimism", "trust": "optimism",
	"sad": "sadness", "sadness": "sadness", "tears": "sadness",
	"cry": "sadness", "cried": "sadness", "crying": "sadness",
	"grief": "sadness", "sorrow": "sadness", "lonely": "sadness",
	"goodbye": "sadness", "gone": "sadness",
	"angry": "anger", "anger": "anger", "bitter": "anger", "hurt": "anger",
	"fear": "fear", "feared": "fear", "afraid": "fear", "scared": "fear",
	"danger": "fear", "worry": "fear", "worried": "fear", "darkness": "fear",
}

var verbLexicon = toSet(
	"is", "are", "was", "were", "be", "been", "am", "go", "goes", "went",
	"come", "came", "see", "saw", "say", "said", "tell", "told", "walk",
	"run", "ran", "hold", "held", "take", "took", "give", "gave", "know",
	"knew", "think", "thought", "feel", "felt", "find", "found", "leave",
	"left", "stay", "stand", "stood", "sit", "sat", "watch", "look", "grow",
	"grew", "write", "wrote", "read", "speak", "spoke", "hear", "heard",
	"remember", "wait", "reach", "climb", "carry", "love", "hope",
)

var functionWords = toSet(
	"a", "an", "the", "and", "or", "but", "nor", "so", "yet", "if", "then",
	"than", "that", "this", "these", "those", "there", "here", "of", "in",
	"on", "at", "to", "for", "from", "with", "without", "by", "about",
	"into", "onto", "over", "under", "through", "between", "after", "before",
	"during", "above", "below", "up", "down", "out", "off", "as", "it",
	"its", "he", "him", "his", "she", "her", "hers", "they", "them",
	"their", "we", "us", "our", "you", "your", "i", "me", "my", "mine",
	"not", "no", "never", "always", "both", "each", "few", "more", "most",
	"other", "some", "such", "only", "own", "same", "too", "very", "can",
	"could", "will", "would", "shall", "should", "may", "might", "must",
	"do", "does", "did", "have", "has", "had", "because", "although",
	"while", "when", "where", "who", "whom", "which", "what", "how", "why",
	"all", "any", "just", "also", "again", "once", "still", "now",
)

var lyNouns = toSet(
	"family", "assembly", "butterfly", "jelly", "belly", "rally", "ally",
	"reply", "supply", "lily", "italy",
)

var conjunctions = toSet(
	"and", "but", "or", "nor", "so", "yet", "for", "because", "although",
	"though", "while", "if", "unless", "until", "since", "when", "whereas",
	"after", "before",
)
