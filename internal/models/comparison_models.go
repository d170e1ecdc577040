package models

import "encoding/json"

type ProductOverall struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Sentiment string  `json:"sentiment"`
}

// SampleReview is an illustrative excerpt attached to a product's analysis.
// Informational only, never fed back into scoring.
type SampleReview struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Aspect string `json:"aspect"`
}

// ProductAnalysis is the per-product output of the analyzer.
type ProductAnalysis struct {
	Product          string         `json:"product"`
	OverallScore     float64        `json:"overall_score"`
	OverallSentiment string         `json:"overall_sentiment"`
	AspectScores     map[Aspect]int `json:"aspect_scores"`
	Strengths        []string       `json:"strengths"`
	Weaknesses       []string       `json:"weaknesses"`
	SampleReviews    []SampleReview `json:"sample_reviews"`
}

// AspectRow is one row of the aspect-by-product matrix.
type AspectRow struct {
	Aspect Aspect
	Scores map[string]int
}

// MarshalJSON flattens the row into {"aspect": ..., "<product>": score, ...},
// the shape the comparison charts consume.
func (r AspectRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.Scores)+1)
	flat["aspect"] = string(r.Aspect)
	for product, score := range r.Scores {
		flat[product] = score
	}
	return json.Marshal(flat)
}

type Comparison struct {
	Overall    []ProductOverall          `json:"overall"`
	Aspects    []AspectRow               `json:"aspects"`
	RadarData  []AspectRow               `json:"radarData"`
	Reviews    map[string][]SampleReview `json:"reviews"`
	Strengths  map[string][]string       `json:"strengths"`
	Weaknesses map[string][]string       `json:"weaknesses"`
	Winner     string                    `json:"winner"`
	Verdict    string                    `json:"verdict,omitempty"`
}

// ComparisonResult is the terminal output of a comparison call.
type ComparisonResult struct {
	Products   []string   `json:"products"`
	Comparison Comparison `json:"comparison"`
}
