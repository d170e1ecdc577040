package models

type LanguageHint string

const (
	LanguageHindi   LanguageHint = "hindi"
	LanguageMarathi LanguageHint = "marathi"
	LanguageOther   LanguageHint = "other"
)

// Review is a single raw review record as handed over by an ingestion
// source. Immutable once ingested; only excerpts survive analysis.
type Review struct {
	Text         string       `json:"text"`
	LanguageHint LanguageHint `json:"language_hint,omitempty"`
	Rating       int          `json:"rating,omitempty"` // source star rating, when the source exposes one
	Source       string       `json:"source,omitempty"`
}
