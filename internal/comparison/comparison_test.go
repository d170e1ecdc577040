package comparison

import (
	"errors"
	"strings"
	"testing"

	"github.com/tulna-ai/tulna/internal/analyzer"
	"github.com/tulna-ai/tulna/internal/models"
)

type scoreFunc func(text string) float64

func (f scoreFunc) Score(text string) float64 { return f(text) }

func reviewsOf(texts ...string) []models.Review {
	reviews := make([]models.Review, 0, len(texts))
	for _, text := range texts {
		reviews = append(reviews, models.Review{Text: text})
	}
	return reviews
}

// phoneScorer gives PhoneA-style reviews 0.9 and PhoneB-style reviews 0.2.
var phoneScorer = scoreFunc(func(text string) float64 {
	if strings.Contains(text, "camera") {
		return 0.9
	}
	return 0.2
})

func newAggregator(scorer scoreFunc) *Aggregator {
	return New(analyzer.New(scorer))
}

func TestCompareRejectsInsufficientProducts(t *testing.T) {
	agg := newAggregator(phoneScorer)

	_, err := agg.Compare([]string{"OnlyOne"}, map[string][]models.Review{
		"OnlyOne": reviewsOf("camera is fine"),
	})
	if !errors.Is(err, ErrInsufficientProducts) {
		t.Fatalf("err = %v, want ErrInsufficientProducts", err)
	}
}

func TestCompareRejectsEmptyReviewSet(t *testing.T) {
	agg := newAggregator(phoneScorer)

	_, err := agg.Compare([]string{"A", "B"}, map[string][]models.Review{
		"A": nil,
		"B": reviewsOf("camera is fine"),
	})
	if !errors.Is(err, ErrEmptyReviewSet) {
		t.Fatalf("err = %v, want ErrEmptyReviewSet", err)
	}
}

func TestCompareTwoPhones(t *testing.T) {
	agg := newAggregator(phoneScorer)

	products := []string{"PhoneA", "PhoneB"}
	result, err := agg.Compare(products, map[string][]models.Review{
		"PhoneA": reviewsOf("camera is amazing", "camera photos are crisp"),
		"PhoneB": reviewsOf("battery drains", "battery is weak"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Comparison.Overall) != 2 {
		t.Fatalf("overall has %d entries, want 2", len(result.Comparison.Overall))
	}

	phoneA := result.Comparison.Overall[0]
	if phoneA.Name != "PhoneA" || phoneA.Score != 9.0 || phoneA.Sentiment != "positive" {
		t.Errorf("PhoneA overall = %+v, want {PhoneA 9.0 positive}", phoneA)
	}
	phoneB := result.Comparison.Overall[1]
	if phoneB.Name != "PhoneB" || phoneB.Score != 2.0 || phoneB.Sentiment != "negative" {
		t.Errorf("PhoneB overall = %+v, want {PhoneB 2.0 negative}", phoneB)
	}

	if result.Comparison.Winner != "PhoneA" {
		t.Errorf("winner = %q, want PhoneA", result.Comparison.Winner)
	}

	if len(result.Comparison.Aspects) != len(models.AllAspects) {
		t.Fatalf("aspect matrix has %d rows, want %d", len(result.Comparison.Aspects), len(models.AllAspects))
	}
	for _, row := range result.Comparison.Aspects {
		for _, product := range products {
			if _, ok := row.Scores[product]; !ok {
				t.Errorf("aspect row %q missing product %q", row.Aspect, product)
			}
		}
		switch row.Aspect {
		case models.AspectCamera:
			if row.Scores["PhoneA"] != 90 {
				t.Errorf("PhoneA camera = %d, want 90", row.Scores["PhoneA"])
			}
		case models.AspectBattery:
			if row.Scores["PhoneB"] != 20 {
				t.Errorf("PhoneB battery = %d, want 20", row.Scores["PhoneB"])
			}
		}
	}

	for _, product := range products {
		if _, ok := result.Comparison.Strengths[product]; !ok {
			t.Errorf("strengths missing product %q", product)
		}
		if _, ok := result.Comparison.Weaknesses[product]; !ok {
			t.Errorf("weaknesses missing product %q", product)
		}
		if len(result.Comparison.Reviews[product]) == 0 {
			t.Errorf("no sample reviews for %q", product)
		}
	}
}

func TestCompareTieGoesToFirstListed(t *testing.T) {
	agg := newAggregator(scoreFunc(func(string) float64 { return 0.7 }))

	result, err := agg.Compare([]string{"First", "Second"}, map[string][]models.Review{
		"First":  reviewsOf("camera works"),
		"Second": reviewsOf("camera works"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Comparison.Winner != "First" {
		t.Errorf("tie winner = %q, want First", result.Comparison.Winner)
	}
}

func TestCompareManyProducts(t *testing.T) {
	agg := newAggregator(scoreFunc(func(text string) float64 {
		switch {
		case strings.Contains(text, "excellent"):
			return 1.0
		case strings.Contains(text, "fine"):
			return 0.5
		default:
			return 0.0
		}
	}))

	products := []string{"Low", "High", "Mid"}
	result, err := agg.Compare(products, map[string][]models.Review{
		"Low":  reviewsOf("terrible"),
		"High": reviewsOf("excellent"),
		"Mid":  reviewsOf("fine"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Comparison.Winner != "High" {
		t.Errorf("winner = %q, want High", result.Comparison.Winner)
	}

	// Overall preserves input order regardless of scores.
	for i, want := range products {
		if result.Comparison.Overall[i].Name != want {
			t.Errorf("overall[%d] = %q, want %q", i, result.Comparison.Overall[i].Name, want)
		}
	}
}
