package sentiment

import (
	"errors"
	"testing"
)

func TestRuleScorer(t *testing.T) {
	scorer := RuleScorer{}

	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"positive English", "this phone is excellent and great", 0.8},
		{"positive Hindi", "कैमरा बहुत बढ़िया शानदार", 0.8},
		{"positive Marathi", "कॅमेरा खूप छान", 0.8},
		{"negative English", "poor screen, waste of money", 0.2},
		{"negative Hindi", "बैटरी खराब", 0.2},
		{"balanced counts", "good camera bad battery", 0.5},
		{"no keywords", "the phone arrived yesterday", 0.5},
		{"empty text", "", 0.5},
		{"repeats do not add weight", "bad bad bad but good", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.text)
			if got != tt.expected {
				t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestRuleScorerDeterminism(t *testing.T) {
	scorer := RuleScorer{}
	text := "कैमरा अच्छा है but battery is bad"

	first := scorer.Score(text)
	for i := 0; i < 100; i++ {
		if got := scorer.Score(text); got != first {
			t.Fatalf("Score(%q) not deterministic: %v then %v", text, first, got)
		}
	}
}

// fakeVariant stands in for the model path in failover tests.
type fakeVariant struct {
	score float64
	err   error
	calls int
}

func (f *fakeVariant) Score(string) (float64, error) {
	f.calls++
	return f.score, f.err
}

func TestFailoverServesModelWhileHealthy(t *testing.T) {
	model := &fakeVariant{score: 0.93}
	f := NewFailover(model)

	if got := f.Score("anything"); got != 0.93 {
		t.Errorf("Score = %v, want 0.93", got)
	}
	if !f.Healthy() {
		t.Error("scorer should still be healthy")
	}
}

func TestFailoverDegradesPermanentlyOnFault(t *testing.T) {
	model := &fakeVariant{err: errors.New("onnx session exploded")}
	f := NewFailover(model)

	// First call hits the model, absorbs the fault and serves the rule
	// variant's answer.
	if got := f.Score("this is excellent"); got != 0.8 {
		t.Errorf("Score after fault = %v, want rule-based 0.8", got)
	}
	if f.Healthy() {
		t.Error("scorer should be degraded after a model fault")
	}

	// Subsequent calls must not touch the model again.
	callsAfterFault := model.calls
	for i := 0; i < 5; i++ {
		if got := f.Score("this is bad"); got != 0.2 {
			t.Errorf("degraded Score = %v, want 0.2", got)
		}
	}
	if model.calls != callsAfterFault {
		t.Errorf("model called %d times after degradation, want 0", model.calls-callsAfterFault)
	}
}

func TestFailoverWithNilModelStartsDegraded(t *testing.T) {
	f := NewFailover(nil)

	if f.Healthy() {
		t.Error("nil model must start degraded")
	}
	if got := f.Score("खराब बैटरी"); got != 0.2 {
		t.Errorf("Score = %v, want 0.2", got)
	}
}
