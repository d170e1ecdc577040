package analyzer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tulna-ai/tulna/internal/models"
)

// scoreFunc lets tests pin exact per-review scores.
type scoreFunc func(text string) float64

func (f scoreFunc) Score(text string) float64 { return f(text) }

func constScorer(score float64) scoreFunc {
	return func(string) float64 { return score }
}

func reviewsOf(texts ...string) []models.Review {
	reviews := make([]models.Review, 0, len(texts))
	for _, text := range texts {
		reviews = append(reviews, models.Review{Text: text})
	}
	return reviews
}

func TestAnalyzeRejectsEmptyReviewSet(t *testing.T) {
	a := New(constScorer(0.5))

	_, err := a.Analyze("PhoneX", nil)
	if !errors.Is(err, ErrEmptyReviewSet) {
		t.Fatalf("Analyze with no reviews: err = %v, want ErrEmptyReviewSet", err)
	}
}

func TestAnalyzePositiveCameraProduct(t *testing.T) {
	a := New(constScorer(0.9))

	analysis, err := a.Analyze("PhoneA", reviewsOf(
		"camera is wonderful",
		"best camera photos",
		"selfie quality rocks",
	))
	if err != nil {
		t.Fatal(err)
	}

	if analysis.OverallScore != 9.0 {
		t.Errorf("OverallScore = %v, want 9.0", analysis.OverallScore)
	}
	if analysis.OverallSentiment != "positive" {
		t.Errorf("OverallSentiment = %q, want positive", analysis.OverallSentiment)
	}
	if analysis.AspectScores[models.AspectCamera] != 90 {
		t.Errorf("Camera score = %d, want 90", analysis.AspectScores[models.AspectCamera])
	}
	if analysis.AspectScores[models.AspectDisplay] != 50 {
		t.Errorf("unmentioned Display score = %d, want 50", analysis.AspectScores[models.AspectDisplay])
	}
}

func TestAnalyzeSentimentLabelBoundaries(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.61, "positive"},
		{0.6, "neutral"}, // 6.0 belongs to the lower branch
		{0.41, "neutral"},
		{0.4, "negative"}, // 4.0 belongs to the lower branch
		{0.1, "negative"},
	}

	for _, tt := range tests {
		a := New(constScorer(tt.score))
		analysis, err := a.Analyze("PhoneX", reviewsOf("just a phone"))
		if err != nil {
			t.Fatal(err)
		}
		if analysis.OverallSentiment != tt.expected {
			t.Errorf("score %v: label = %q, want %q", tt.score, analysis.OverallSentiment, tt.expected)
		}
	}
}

func TestAnalyzeNoAspectMentions(t *testing.T) {
	a := New(constScorer(0.5))

	analysis, err := a.Analyze("PhoneX", reviewsOf(
		"arrived on time",
		"packaging was okay",
	))
	if err != nil {
		t.Fatal(err)
	}

	for _, aspect := range models.AllAspects {
		if analysis.AspectScores[aspect] != 50 {
			t.Errorf("aspect %q = %d, want 50", aspect, analysis.AspectScores[aspect])
		}
	}
	if !reflect.DeepEqual(analysis.Strengths, []string{"Overall Performance"}) {
		t.Errorf("Strengths = %v, want sentinel", analysis.Strengths)
	}
	if !reflect.DeepEqual(analysis.Weaknesses, []string{"Price Point"}) {
		t.Errorf("Weaknesses = %v, want sentinel", analysis.Weaknesses)
	}
}

func TestAnalyzeStrengthsAndWeaknesses(t *testing.T) {
	// Camera reviews score high, battery reviews score low, display sits
	// in the dead zone between the two thresholds.
	scorer := scoreFunc(func(text string) float64 {
		switch {
		case strings.Contains(text, "camera"):
			return 0.9
		case strings.Contains(text, "battery"):
			return 0.2
		default:
			return 0.65
		}
	})
	a := New(scorer)

	analysis, err := a.Analyze("PhoneX", reviewsOf(
		"camera is superb",
		"battery is disappointing",
		"display looks fine",
	))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(analysis.Strengths, []string{"Camera"}) {
		t.Errorf("Strengths = %v, want [Camera]", analysis.Strengths)
	}
	if !reflect.DeepEqual(analysis.Weaknesses, []string{"Battery"}) {
		t.Errorf("Weaknesses = %v, want [Battery]", analysis.Weaknesses)
	}
}

func TestAnalyzeWeaknessesOrderedWeakestFirst(t *testing.T) {
	scorer := scoreFunc(func(text string) float64 {
		switch {
		case strings.Contains(text, "battery"):
			return 0.1
		case strings.Contains(text, "display"):
			return 0.3
		case strings.Contains(text, "price"):
			return 0.5
		default:
			return 0.5
		}
	})
	a := New(scorer)

	analysis, err := a.Analyze("PhoneX", reviewsOf(
		"battery dies quickly",
		"display is dull",
		"price is steep",
	))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(analysis.Weaknesses, []string{"Battery", "Display", "Value"}) {
		t.Errorf("Weaknesses = %v, want weakest first [Battery Display Value]", analysis.Weaknesses)
	}
}

func TestAnalyzeSampleReviews(t *testing.T) {
	a := New(constScorer(0.75))

	analysis, err := a.Analyze("PhoneX", reviewsOf(
		"display is vivid",
		"battery lasts long",
		"camera is sharp",
		"performance is smooth",
	))
	if err != nil {
		t.Fatal(err)
	}

	if len(analysis.SampleReviews) != 3 {
		t.Fatalf("got %d sample reviews, want 3", len(analysis.SampleReviews))
	}

	// Aspect-first selection: Camera, Battery, Performance.
	wantAspects := []string{"Camera", "Battery", "Performance"}
	for i, want := range wantAspects {
		if analysis.SampleReviews[i].Aspect != want {
			t.Errorf("sample %d aspect = %q, want %q", i, analysis.SampleReviews[i].Aspect, want)
		}
	}

	// 0.75 maps to a 4-star derived rating.
	if analysis.SampleReviews[0].Rating != 4 {
		t.Errorf("derived rating = %d, want 4", analysis.SampleReviews[0].Rating)
	}
}

func TestAnalyzeSampleReviewsPositionalFallback(t *testing.T) {
	a := New(constScorer(0.5))

	analysis, err := a.Analyze("PhoneX", reviewsOf(
		"arrived on time",
		"display is okay",
	))
	if err != nil {
		t.Fatal(err)
	}

	if len(analysis.SampleReviews) != 2 {
		t.Fatalf("got %d sample reviews, want 2", len(analysis.SampleReviews))
	}
	if analysis.SampleReviews[0].Aspect != "General" {
		t.Errorf("untagged sample aspect = %q, want General", analysis.SampleReviews[0].Aspect)
	}
	if analysis.SampleReviews[1].Aspect != "Display" {
		t.Errorf("tagged sample aspect = %q, want Display", analysis.SampleReviews[1].Aspect)
	}
}
