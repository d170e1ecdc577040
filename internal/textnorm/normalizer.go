// Package textnorm cleans raw review text ahead of scoring and aspect
// tagging. Every operation is total: arbitrary input, including the empty
// string, yields a best-effort string and never an error.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/tulna-ai/tulna/internal/models"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern        = regexp.MustCompile(`[@#]\w+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	// Keeps word characters, whitespace and the Devanagari block; strips
	// emoji, punctuation and other noise.
	noisePattern = regexp.MustCompile(`[^\w\s\x{0900}-\x{097F}]`)
)

// nuqta-bearing consonants collapse to their base forms so spelling
// variants land on the same keyword.
var canonicalizer = strings.NewReplacer(
	"क़", "क",
	"ख़", "ख",
	"ग़", "ग",
	"ज़", "ज",
	"फ़", "फ",
)

// Clean strips URLs, @mentions, #hashtags and non-word noise, collapses
// whitespace and trims the result.
func Clean(raw string) string {
	text := urlPattern.ReplaceAllString(raw, "")
	text = tagPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = noisePattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Canonicalize maps look-alike Devanagari characters to their base forms.
// Applied before keyword matching, never destructively logged.
func Canonicalize(text string) string {
	return canonicalizer.Replace(text)
}

// Normalize is the default pipeline: Clean then Canonicalize. Stopword
// removal is deliberately not part of it; callers opt in via
// RemoveStopwords.
func Normalize(raw string) string {
	return Canonicalize(Clean(raw))
}

var hindiStopwords = []string{
	"का", "के", "की", "है", "हैं", "था", "थी", "थे", "हो",
	"और", "या", "में", "से", "को", "पर", "यह", "वह",
}

var marathiStopwords = []string{
	"आहे", "आहेत", "होते", "होता", "आणि", "किंवा", "मध्ये",
	"पासून", "साठी", "वर", "हे", "ते",
}

// RemoveStopwords drops exact-token stopwords for the selected language.
// Unknown hints fall back to the Hindi list.
func RemoveStopwords(text string, language models.LanguageHint) string {
	stopwords := hindiStopwords
	if language == models.LanguageMarathi {
		stopwords = marathiStopwords
	}

	stopset := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stopset[w] = struct{}{}
	}

	var kept []string
	for _, word := range strings.Fields(text) {
		if _, skip := stopset[word]; !skip {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}
