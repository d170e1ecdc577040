// Package sentiment scores cleaned review text on a [0,1] scale:
// 0 fully negative, 0.5 neutral, 1 fully positive.
package sentiment

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Scorer is the capability the analyzer consumes. Implementations never
// fail outward; any internal fault resolves to a defined score.
type Scorer interface {
	Score(text string) float64
}

// variant is a scorer that can fail, used inside the failover chain.
type variant interface {
	Score(text string) (float64, error)
}

// Failover owns the model-or-rule decision for every call. While healthy
// it serves from the model variant; the first fault permanently degrades
// it to the rule-based variant for the remainder of the run and emits a
// single observability event rather than per-call logging noise.
type Failover struct {
	model       variant
	rule        RuleScorer
	healthy     atomic.Bool
	degradeOnce sync.Once
	closer      func()
}

// NewScorer builds the production chain: model-backed scoring with the
// deterministic rule-based fallback. Construction never fails outward;
// if the model cannot be loaded the scorer starts degraded.
func NewScorer() *Failover {
	f := &Failover{}

	if os.Getenv("SENTIMENT_DISABLE_MODEL") == "true" {
		slog.Info("[SentimentScorer] Model scoring disabled, using rule-based variant")
		return f
	}

	model, err := NewModelScorer()
	if err != nil {
		slog.Warn("[SentimentScorer] Model unavailable, degrading to rule-based variant",
			slog.String("error", err.Error()))
		return f
	}

	f.model = model
	f.closer = model.Close
	f.healthy.Store(true)
	return f
}

// NewFailover wires an explicit model variant in front of the rule-based
// fallback. A nil model starts the chain degraded.
func NewFailover(model variant) *Failover {
	f := &Failover{model: model}
	f.healthy.Store(model != nil)
	return f
}

// Score never raises to its caller: a model fault is absorbed, reported
// once, and the call is served by the rule-based variant instead.
func (f *Failover) Score(text string) float64 {
	if f.healthy.Load() {
		score, err := f.model.Score(text)
		if err == nil {
			return score
		}
		f.degrade(err)
	}
	return f.rule.Score(text)
}

// Healthy reports whether the model variant is still serving calls.
func (f *Failover) Healthy() bool {
	return f.healthy.Load()
}

// Close releases the model variant's resources, if any.
func (f *Failover) Close() {
	if f.closer != nil {
		f.closer()
	}
}

func (f *Failover) degrade(err error) {
	f.healthy.Store(false)
	f.degradeOnce.Do(func() {
		slog.Warn("[SentimentScorer] Model scoring failed, degrading to rule-based variant",
			slog.String("error", err.Error()))
	})
}
