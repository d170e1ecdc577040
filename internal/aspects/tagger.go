package aspects

import (
	"regexp"
	"strings"

	"github.com/tulna-ai/tulna/internal/models"
)

// Devanagari danda plus the usual Latin terminators.
var sentenceTerminators = regexp.MustCompile(`[।.!?]`)

// ExtractAspects returns the aspects mentioned in text, in declaration
// order, without duplicates. An aspect counts as mentioned as soon as one
// of its keywords occurs anywhere in the lower-cased text; scanning that
// aspect's keyword list short-circuits on the first hit, but all six
// aspects are always checked.
func ExtractAspects(text string) []models.Aspect {
	lower := strings.ToLower(text)

	var found []models.Aspect
	for _, aspect := range models.AllAspects {
		for _, keyword := range aspectKeywords[aspect] {
			if strings.Contains(lower, keyword) {
				found = append(found, aspect)
				break
			}
		}
	}
	return found
}

// SentencesForAspect splits text on sentence terminators and returns the
// trimmed segments that mention the aspect. Used for excerpt generation
// only, never for scoring.
func SentencesForAspect(text string, aspect models.Aspect) []string {
	keywords := aspectKeywords[aspect]

	var matched []string
	for _, segment := range sentenceTerminators.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		lower := strings.ToLower(segment)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matched = append(matched, segment)
				break
			}
		}
	}
	return matched
}
