package mock

import (
	"context"

	"github.com/fwojciec/pagegrade"
)

// Compile-time interface verification.
var (
	_ pagegrade.Annotator         = (*Annotator)(nil)
	_ pagegrade.ReadabilityScorer = (*Annotator)(nil)
	_ pagegrade.ImportanceRanker  = (*Annotator)(nil)
	_ pagegrade.LanguageDetector  = (*LanguageDetector)(nil)
)

// Annotator is a mock implementation of pagegrade.Annotator and its
// optional capabilities. A capability whose Fn is nil reports EUNSUPPORTED.
type Annotator struct {
	AnnotateFn           func(ctx context.Context, text string) (*pagegrade.RawDocument, error)
	ReadabilityStatsFn   func(doc *pagegrade.RawDocument) (*pagegrade.ReadabilityStats, error)
	SentenceImportanceFn func(doc *pagegrade.RawDocument) ([]pagegrade.SentenceImportance, error)
}

func (a *Annotator) Annotate(ctx context.Context, text string) (*pagegrade.RawDocument, error) {
	return a.AnnotateFn(ctx, text)
}

func (a *Annotator) ReadabilityStats(doc *pagegrade.RawDocument) (*pagegrade.ReadabilityStats, error) {
	if a.ReadabilityStatsFn == nil {
		return nil, pagegrade.Errorf(pagegrade.EUNSUPPORTED, "readability stats not supported")
	}
	return a.ReadabilityStatsFn(doc)
}

func (a *Annotator) SentenceImportance(doc *pagegrade.RawDocument) ([]pagegrade.SentenceImportance, error) {
	if a.SentenceImportanceFn == nil {
		return nil, pagegrade.Errorf(pagegrade.EUNSUPPORTED, "sentence importance not supported")
	}
	return a.SentenceImportanceFn(doc)
}

// LanguageDetector is a mock implementation of pagegrade.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}
