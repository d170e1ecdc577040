package sentiment

import "strings"

// Multilingual sentiment word lists. Read-only after init, safe for
// unsynchronized concurrent reads.
var positiveWords = []string{
	"बढ़िया", "अच्छा", "शानदार", "बेहतरीन", "जबरदस्त", "उत्तम",
	"छान", "सुंदर", "perfect", "best", "good", "great", "excellent",
}

var negativeWords = []string{
	"खराब", "बुरा", "कम", "नहीं", "not", "bad", "poor", "waste",
	"वाया", "गयाचा",
}

// RuleScorer is the deterministic keyword-count fallback. A pure function
// of its input: identical text always yields an identical score.
type RuleScorer struct{}

// Score counts case-insensitive substring hits against the positive and
// negative lists and returns 0.8, 0.2 or 0.5.
func (RuleScorer) Score(text string) float64 {
	lower := strings.ToLower(text)

	posCount := countPresent(positiveWords, lower)
	negCount := countPresent(negativeWords, lower)

	switch {
	case posCount > negCount:
		return 0.8
	case negCount > posCount:
		return 0.2
	default:
		return 0.5
	}
}

// countPresent counts how many list words occur in text at least once;
// repeated occurrences of the same word do not add weight.
func countPresent(words []string, text string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			count++
		}
	}
	return count
}
