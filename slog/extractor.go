package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagegrade"
)

// Ensure the logging extractors implement their interfaces.
var (
	_ pagegrade.PageExtractor = (*LoggingPageExtractor)(nil)
	_ pagegrade.Extractor     = (*LoggingExtractor)(nil)
)

// LoggingPageExtractor wraps a PageExtractor with debug logging.
type LoggingPageExtractor struct {
	next   pagegrade.PageExtractor
	logger *slog.Logger
}

// NewLoggingPageExtractor creates a new LoggingPageExtractor.
func NewLoggingPageExtractor(next pagegrade.PageExtractor, logger *slog.Logger) *LoggingPageExtractor {
	return &LoggingPageExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingPageExtractor) Extract(ctx context.Context, html string, pageURL string) (page *pagegrade.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if page != nil {
			attrs = append(attrs, "sections", len(page.Sections), "headings", page.Headings.Total())
		}
		e.logger.Debug("extract page", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, html, pageURL)
}

// LoggingExtractor wraps a main-content Extractor with debug logging.
type LoggingExtractor struct {
	next   pagegrade.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagegrade.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *pagegrade.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs, "content_bytes", len(result.ContentHTML))
		}
		e.logger.Debug("extract main content", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
