package textnorm

import (
	"testing"

	"github.com/tulna-ai/tulna/internal/models"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "URLs removed",
			input:    "camera is great https://example.com/review check www.example.com too",
			expected: "camera is great check too",
		},
		{
			name:     "mentions and hashtags removed",
			input:    "@reviewer loved it #phone #best",
			expected: "loved it",
		},
		{
			name:     "whitespace collapsed",
			input:    "battery   backup\t\tis\n\nfine",
			expected: "battery backup is fine",
		},
		{
			name:     "emoji and punctuation stripped, Devanagari preserved",
			input:    "कैमरा बहुत बढ़िया है! 😍🔥",
			expected: "कैमरा बहुत बढ़िया है",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "garbage only",
			input:    "!!! ??? ...",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"क़ीमत", "कीमत"},
		{"ज़बरदस्त", "जबरदस्त"},
		{"फ़ोटो", "फोटो"},
		{"battery", "battery"},
		{"", ""},
	}

	for _, tt := range tests {
		got := Canonicalize(tt.input)
		if got != tt.expected {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRemoveStopwords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		language models.LanguageHint
		expected string
	}{
		{
			name:     "Hindi stopwords removed",
			input:    "कैमरा बहुत अच्छा है और बैटरी भी",
			language: models.LanguageHindi,
			expected: "कैमरा बहुत अच्छा बैटरी भी",
		},
		{
			name:     "Marathi stopwords removed",
			input:    "कॅमेरा छान आहे आणि बॅटरी पण",
			language: models.LanguageMarathi,
			expected: "कॅमेरा छान बॅटरी पण",
		},
		{
			name:     "unknown hint falls back to Hindi",
			input:    "डिस्प्ले अच्छा है",
			language: models.LanguageOther,
			expected: "डिस्प्ले अच्छा",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveStopwords(tt.input, tt.language)
			if got != tt.expected {
				t.Errorf("RemoveStopwords(%q, %q) = %q, want %q", tt.input, tt.language, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	inputs := []string{"", "   ", "😀😀😀", "https://only.example.com", "@only #tags"}
	for _, input := range inputs {
		if got := Normalize(input); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}
