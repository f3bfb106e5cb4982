package analyze

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagegrade"
)

const textTopKeywords = 20

// AnalyzeText runs a quick analysis of arbitrary text.
// Returns EINVALID if text is blank.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*pagegrade.TextStats, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "text required")
	}

	doc, err := a.Annotator.Annotate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("annotate text: %w", err)
	}
	stats, err := readabilityStats(a.Annotator, doc)
	if err != nil {
		return nil, fmt.Errorf("readability stats: %w", err)
	}

	var words, stopWords int
	for _, tok := range doc.Tokens {
		if tok.Type != pagegrade.TokenWord {
			continue
		}
		words++
		if tok.Stop {
			stopWords++
		}
	}

	entities := doc.Entities
	if entities == nil {
		entities = []pagegrade.Entity{}
	}

	return &pagegrade.TextStats{
		Readability:  stats,
		WordCount:    words,
		ContentWords: words - stopWords,
		StopWords:    stopWords,
		Sentences:    len(doc.Sentences),
		Tokens:       len(doc.Tokens),
		Entities:     entities,
		Sentiment:    doc.Sentiment,
		TopKeywords:  head(RankTerms(doc.ContentTerms()), textTopKeywords),
	}, nil
}
