package analysis

import "testing"

func TestSentences(t *testing.T) {
	tok := RuleTokenizer{}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "three sentence types",
			input: "Hello world. How are you? Great!",
			want:  []string{"Hello world.", "How are you?", "Great!"},
		},
		{
			name:  "ellipsis stays with its sentence",
			input: "Wait... what? He left.",
			want:  []string{"Wait...", "what?", "He left."},
		},
		{
			name:  "fragment without terminal punctuation",
			input: "just a fragment",
			want:  []string{"just a fragment"},
		},
		{
			name:  "terminal punctuation at end of text",
			input: "One. Two.",
			want:  []string{"One.", "Two."},
		},
		{
			name:  "empty text",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "  \n\n  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Sentences(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sentences, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Text != tt.want[i] {
					t.Errorf("sentence %d: got %q, want %q", i, got[i].Text, tt.want[i])
				}
			}
		})
	}
}

func TestParagraphBreak(t *testing.T) {
	tok := RuleTokenizer{}

	sents := tok.Sentences("First paragraph ends here.\n\nSecond starts. And continues.")
	if len(sents) != 3 {
		t.Fatalf("got %d sentences, want 3", len(sents))
	}
	if !sents[0].ParagraphBreak() {
		t.Errorf("sentence %q should end a paragraph (trailing %q)", sents[0].Text, sents[0].Trailing)
	}
	if sents[1].ParagraphBreak() {
		t.Errorf("sentence %q should not end a paragraph", sents[1].Text)
	}
}
