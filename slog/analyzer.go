package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagegrade"
)

// Ensure LoggingAnalyzer implements pagegrade.PageAnalyzer.
var _ pagegrade.PageAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a PageAnalyzer and logs one line per graded page.
type LoggingAnalyzer struct {
	next   pagegrade.PageAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagegrade.PageAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, page *pagegrade.Page) (report *pagegrade.Report, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if page != nil {
			attrs = append(attrs, "url", page.URL)
		}
		switch {
		case report == nil:
		case report.Failed():
			attrs = append(attrs, "result", report.Error)
		case report.Score != nil:
			attrs = append(attrs, "score", report.Score.Total, "grade", report.Score.Grade)
		}
		a.logger.Info("analyze page", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, page)
}
