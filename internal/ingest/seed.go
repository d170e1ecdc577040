package ingest

import (
	"context"

	"github.com/tulna-ai/tulna/internal/models"
)

// seedCorpus is a small bundled Hindi/Marathi review set used when no
// live source is configured.
var seedCorpus = []models.Review{
	{Text: "कैमरा बहुत बढ़िया है, फोटो क्वालिटी शानदार", LanguageHint: models.LanguageHindi},
	{Text: "बैटरी बैकअप थोड़ा कम है", LanguageHint: models.LanguageHindi},
	{Text: "परफॉर्मेंस एकदम जबरदस्त", LanguageHint: models.LanguageHindi},
	{Text: "डिस्प्ले बहुत अच्छा है", LanguageHint: models.LanguageHindi},
	{Text: "कीमत थोड़ी ज्यादा है", LanguageHint: models.LanguageHindi},
	{Text: "कॅमेरा खूप छान आहे", LanguageHint: models.LanguageMarathi},
	{Text: "बॅटरी बॅकअप कमी आहे", LanguageHint: models.LanguageMarathi},
	{Text: "परफॉर्मन्स उत्तम आहे", LanguageHint: models.LanguageMarathi},
}

type SeedSource struct{}

func NewSeedSource() *SeedSource {
	return &SeedSource{}
}

// FetchReviews returns the bundled corpus with markdown flattened. The
// same corpus is served for every product; it exists so the pipeline is
// exercisable end to end without a live marketplace.
func (s *SeedSource) FetchReviews(_ context.Context, _ string) ([]models.Review, error) {
	reviews := make([]models.Review, 0, len(seedCorpus))
	for _, review := range seedCorpus {
		review.Text = FlattenMarkdown(review.Text)
		review.Source = "seed"
		reviews = append(reviews, review)
	}
	return reviews, nil
}
