// Package comparison aggregates per-product analyses into the final
// cross-product result: overall ranking, aspect matrix and winner.
package comparison

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tulna-ai/tulna/internal/analyzer"
	"github.com/tulna-ai/tulna/internal/models"
)

// ErrInsufficientProducts rejects comparisons of fewer than two products.
var ErrInsufficientProducts = errors.New("at least 2 products required")

// ErrEmptyReviewSet mirrors the analyzer sentinel so callers can match it
// without importing the analyzer package.
var ErrEmptyReviewSet = analyzer.ErrEmptyReviewSet

type Aggregator struct {
	analyzer *analyzer.Analyzer
}

func New(a *analyzer.Analyzer) *Aggregator {
	return &Aggregator{analyzer: a}
}

// Compare analyzes every product independently, one worker per product,
// and folds the results in input order. All-or-nothing: any analysis
// failure fails the whole call.
func (c *Aggregator) Compare(products []string, reviews map[string][]models.Review) (models.ComparisonResult, error) {
	if len(products) < 2 {
		return models.ComparisonResult{}, fmt.Errorf("%w, got %d", ErrInsufficientProducts, len(products))
	}

	// Workers write into disjoint index slots; the fold below runs in
	// input order, so the result never depends on completion order.
	analyses := make([]models.ProductAnalysis, len(products))
	errs := make([]error, len(products))

	var wg sync.WaitGroup
	for i, product := range products {
		wg.Add(1)
		go func(i int, product string) {
			defer wg.Done()
			analyses[i], errs[i] = c.analyzer.Analyze(product, reviews[product])
		}(i, product)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return models.ComparisonResult{}, err
		}
	}

	return assemble(products, analyses), nil
}

func assemble(products []string, analyses []models.ProductAnalysis) models.ComparisonResult {
	comparison := models.Comparison{
		Reviews:    make(map[string][]models.SampleReview, len(products)),
		Strengths:  make(map[string][]string, len(products)),
		Weaknesses: make(map[string][]string, len(products)),
	}

	for i, product := range products {
		analysis := analyses[i]
		comparison.Overall = append(comparison.Overall, models.ProductOverall{
			Name:      product,
			Score:     analysis.OverallScore,
			Sentiment: analysis.OverallSentiment,
		})
		comparison.Reviews[product] = analysis.SampleReviews
		comparison.Strengths[product] = analysis.Strengths
		comparison.Weaknesses[product] = analysis.Weaknesses
	}

	comparison.Aspects = aspectMatrix(products, analyses)
	comparison.RadarData = comparison.Aspects
	comparison.Winner = winner(comparison.Overall)

	return models.ComparisonResult{
		Products:   products,
		Comparison: comparison,
	}
}

// aspectMatrix builds one row per fixed aspect, each row carrying every
// product's score for that aspect.
func aspectMatrix(products []string, analyses []models.ProductAnalysis) []models.AspectRow {
	rows := make([]models.AspectRow, 0, len(models.AllAspects))
	for _, aspect := range models.AllAspects {
		row := models.AspectRow{
			Aspect: aspect,
			Scores: make(map[string]int, len(products)),
		}
		for i, product := range products {
			row.Scores[product] = analyses[i].AspectScores[aspect]
		}
		rows = append(rows, row)
	}
	return rows
}

// winner is the stable max: ties go to the product listed first.
func winner(overall []models.ProductOverall) string {
	best := overall[0]
	for _, entry := range overall[1:] {
		if entry.Score > best.Score {
			best = entry
		}
	}
	return best.Name
}
