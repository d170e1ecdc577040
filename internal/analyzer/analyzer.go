// Package analyzer folds one product's reviews into a ProductAnalysis:
// overall score and label, per-aspect scores, strengths, weaknesses and
// sample excerpts.
package analyzer

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tulna-ai/tulna/internal/aspects"
	"github.com/tulna-ai/tulna/internal/models"
	"github.com/tulna-ai/tulna/internal/sentiment"
	"github.com/tulna-ai/tulna/internal/textnorm"
)

// ErrEmptyReviewSet rejects aggregation over zero reviews; a mean over no
// data is undefined and must not be silently defaulted.
var ErrEmptyReviewSet = errors.New("product has no reviews")

const (
	strengthThreshold = 70
	weaknessThreshold = 60
	maxRanked         = 3

	sentinelStrength = "Overall Performance"
	sentinelWeakness = "Price Point"

	neutralAspectScore = 50
	maxSampleReviews   = 3
)

type Analyzer struct {
	scorer sentiment.Scorer
}

func New(scorer sentiment.Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// Analyze runs normalize → score → tag over every review and derives the
// product's aggregate result. Fails only on an empty review set.
func (a *Analyzer) Analyze(product string, reviews []models.Review) (models.ProductAnalysis, error) {
	if len(reviews) == 0 {
		return models.ProductAnalysis{}, fmt.Errorf("%q: %w", product, ErrEmptyReviewSet)
	}

	aspectIndex := make(map[models.Aspect]int, len(models.AllAspects))
	for i, aspect := range models.AllAspects {
		aspectIndex[aspect] = i
	}

	// One accumulator per fixed aspect; the aspect set is closed, so
	// dynamic keying buys nothing but lookup failures.
	buckets := make([][]float64, len(models.AllAspects))
	scores := make([]float64, 0, len(reviews))
	firstTagged := make(map[models.Aspect]int)
	reviewTags := make([][]models.Aspect, len(reviews))

	for i, review := range reviews {
		text := textnorm.Normalize(review.Text)
		score := a.scorer.Score(text)
		tags := aspects.ExtractAspects(text)

		scores = append(scores, score)
		reviewTags[i] = tags
		for _, aspect := range tags {
			buckets[aspectIndex[aspect]] = append(buckets[aspectIndex[aspect]], score)
			if _, seen := firstTagged[aspect]; !seen {
				firstTagged[aspect] = i
			}
		}
	}

	overall := stat.Mean(scores, nil) * 10

	aspectScores := make(map[models.Aspect]int, len(models.AllAspects))
	var mentioned []models.Aspect
	for i, aspect := range models.AllAspects {
		if len(buckets[i]) > 0 {
			aspectScores[aspect] = int(math.Round(stat.Mean(buckets[i], nil) * 100))
			mentioned = append(mentioned, aspect)
		} else {
			// Never-mentioned aspects sit at neutral and contribute no
			// strength or weakness signal.
			aspectScores[aspect] = neutralAspectScore
		}
	}

	strengths, weaknesses := rankAspects(mentioned, aspectScores)

	return models.ProductAnalysis{
		Product:          product,
		OverallScore:     math.Round(overall*10) / 10,
		OverallSentiment: sentimentLabel(overall),
		AspectScores:     aspectScores,
		Strengths:        strengths,
		Weaknesses:       weaknesses,
		SampleReviews:    sampleReviews(reviews, scores, reviewTags, firstTagged),
	}, nil
}

// Thresholds are on the 0–10 scale; the boundaries belong to the lower
// branch, so 6.0 is neutral and 4.0 is negative.
func sentimentLabel(overall float64) string {
	switch {
	case overall > 6:
		return "positive"
	case overall > 4:
		return "neutral"
	default:
		return "negative"
	}
}

// rankAspects orders the mentioned aspects by score descending, stable on
// ties in declaration order, and classifies strengths (top 3 above 70)
// and weaknesses (bottom 3 below 60, weakest first). An aspect never
// appears in both lists. Empty lists get their designed sentinels.
func rankAspects(mentioned []models.Aspect, aspectScores map[models.Aspect]int) ([]string, []string) {
	ranked := append([]models.Aspect(nil), mentioned...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return aspectScores[ranked[i]] > aspectScores[ranked[j]]
	})

	var strengths []string
	inStrengths := make(map[models.Aspect]bool)
	for _, aspect := range ranked {
		if len(strengths) == maxRanked {
			break
		}
		if aspectScores[aspect] > strengthThreshold {
			strengths = append(strengths, string(aspect))
			inStrengths[aspect] = true
		}
	}

	var weaknesses []string
	for i := len(ranked) - 1; i >= 0 && len(weaknesses) < maxRanked; i-- {
		aspect := ranked[i]
		if aspectScores[aspect] < weaknessThreshold && !inStrengths[aspect] {
			weaknesses = append(weaknesses, string(aspect))
		}
	}

	if len(strengths) == 0 {
		strengths = []string{sentinelStrength}
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{sentinelWeakness}
	}
	return strengths, weaknesses
}

// sampleReviews picks up to three representative excerpts: the first
// review tagged Camera, the first tagged Battery, the first tagged
// Performance, topped up positionally when fewer distinct tagged reviews
// exist. Display-only output.
func sampleReviews(reviews []models.Review, scores []float64, reviewTags [][]models.Aspect, firstTagged map[models.Aspect]int) []models.SampleReview {
	var samples []models.SampleReview
	used := make(map[int]bool)

	add := func(i int, aspect string) {
		samples = append(samples, models.SampleReview{
			Text:   reviews[i].Text,
			Rating: excerptRating(reviews[i], scores[i]),
			Aspect: aspect,
		})
		used[i] = true
	}

	for _, aspect := range []models.Aspect{models.AspectCamera, models.AspectBattery, models.AspectPerformance} {
		if len(samples) == maxSampleReviews {
			break
		}
		if i, ok := firstTagged[aspect]; ok && !used[i] {
			add(i, string(aspect))
		}
	}

	for i := 0; i < len(reviews) && len(samples) < maxSampleReviews; i++ {
		if used[i] {
			continue
		}
		aspect := "General"
		if len(reviewTags[i]) > 0 {
			aspect = string(reviewTags[i][0])
		}
		add(i, aspect)
	}

	return samples
}

// excerptRating prefers the source star rating; otherwise it derives a
// 1–5 rating from the review's own sentiment score.
func excerptRating(review models.Review, score float64) int {
	if review.Rating >= 1 && review.Rating <= 5 {
		return review.Rating
	}
	return 1 + int(math.Round(score*4))
}
