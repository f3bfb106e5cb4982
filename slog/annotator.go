// Package slog provides structured logging decorators for pagegrade services.
package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/pagegrade"
)

// Ensure LoggingAnnotator implements the annotator interfaces.
var (
	_ pagegrade.Annotator         = (*LoggingAnnotator)(nil)
	_ pagegrade.ReadabilityScorer = (*LoggingAnnotator)(nil)
	_ pagegrade.ImportanceRanker  = (*LoggingAnnotator)(nil)
)

// LoggingAnnotator wraps an Annotator with debug logging. Optional
// capabilities are forwarded when the wrapped annotator has them and
// report EUNSUPPORTED otherwise.
type LoggingAnnotator struct {
	next   pagegrade.Annotator
	logger *slog.Logger
}

// NewLoggingAnnotator creates a new LoggingAnnotator.
func NewLoggingAnnotator(next pagegrade.Annotator, logger *slog.Logger) *LoggingAnnotator {
	return &LoggingAnnotator{next: next, logger: logger}
}

// Annotate delegates to the wrapped annotator and logs the operation.
func (a *LoggingAnnotator) Annotate(ctx context.Context, text string) (doc *pagegrade.RawDocument, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		}
		if doc != nil {
			attrs = append(attrs, "tokens", len(doc.Tokens), "sentences", len(doc.Sentences))
		}
		a.logger.Debug("annotate", attrs...)
	}(time.Now())
	return a.next.Annotate(ctx, text)
}

// ReadabilityStats forwards to the wrapped annotator's ReadabilityScorer.
func (a *LoggingAnnotator) ReadabilityStats(doc *pagegrade.RawDocument) (stats *pagegrade.ReadabilityStats, err error) {
	scorer, ok := a.next.(pagegrade.ReadabilityScorer)
	if !ok {
		return nil, pagegrade.Errorf(pagegrade.EUNSUPPORTED, "readability stats not supported")
	}
	defer func(begin time.Time) {
		a.logger.Debug("readability stats",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return scorer.ReadabilityStats(doc)
}

// SentenceImportance forwards to the wrapped annotator's ImportanceRanker.
func (a *LoggingAnnotator) SentenceImportance(doc *pagegrade.RawDocument) (ranks []pagegrade.SentenceImportance, err error) {
	ranker, ok := a.next.(pagegrade.ImportanceRanker)
	if !ok {
		return nil, pagegrade.Errorf(pagegrade.EUNSUPPORTED, "sentence importance not supported")
	}
	defer func(begin time.Time) {
		a.logger.Debug("sentence importance",
			"sentences", len(ranks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return ranker.SentenceImportance(doc)
}
