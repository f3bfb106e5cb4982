// Package readability restricts pages to their main article with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagegrade"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagegrade.Extractor at compile time.
var _ pagegrade.Extractor = (*Extractor)(nil)

// Extractor finds the main article of a page using the Readability algorithm.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's main article. Returns ENOTFOUND if the page
// has no readable article.
func (e *Extractor) Extract(rawHTML string) (*pagegrade.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINTERNAL, "readability: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, pagegrade.Errorf(pagegrade.ENOTFOUND, "no readable article found")
	}

	return &pagegrade.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
