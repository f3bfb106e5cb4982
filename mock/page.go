package mock

import (
	"context"

	"github.com/fwojciec/pagegrade"
)

// Compile-time interface verification.
var (
	_ pagegrade.PageExtractor = (*PageExtractor)(nil)
	_ pagegrade.PageAnalyzer  = (*PageAnalyzer)(nil)
)

// PageExtractor is a mock implementation of pagegrade.PageExtractor.
type PageExtractor struct {
	ExtractFn func(ctx context.Context, html string, pageURL string) (*pagegrade.Page, error)
}

func (e *PageExtractor) Extract(ctx context.Context, html string, pageURL string) (*pagegrade.Page, error) {
	return e.ExtractFn(ctx, html, pageURL)
}

// PageAnalyzer is a mock implementation of pagegrade.PageAnalyzer.
type PageAnalyzer struct {
	AnalyzeFn func(ctx context.Context, page *pagegrade.Page) (*pagegrade.Report, error)
}

func (a *PageAnalyzer) Analyze(ctx context.Context, page *pagegrade.Page) (*pagegrade.Report, error) {
	return a.AnalyzeFn(ctx, page)
}
