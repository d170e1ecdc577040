// Package ingest provides the review sources the comparison engine
// consumes: a bundled seed corpus and a marketplace review scraper.
package ingest

import (
	"context"
	"log/slog"
	"os"

	"github.com/tulna-ai/tulna/internal/models"
)

// ReviewSource hands over an ordered sequence of reviews for a product.
type ReviewSource interface {
	FetchReviews(ctx context.Context, product string) ([]models.Review, error)
}

// FromEnv selects the configured source; the seed corpus is the default
// so the engine works without any external collaborators.
func FromEnv() ReviewSource {
	switch os.Getenv("REVIEW_SOURCE") {
	case "marketplace":
		slog.Info("[Ingest] Using marketplace review source")
		return NewMarketplaceSource()
	default:
		slog.Info("[Ingest] Using seed review corpus")
		return NewSeedSource()
	}
}
