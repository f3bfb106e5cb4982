// Package trafilatura restricts pages to their main content with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagegrade"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagegrade.Extractor at compile time.
var _ pagegrade.Extractor = (*Extractor)(nil)

// Extractor removes boilerplate with trafilatura, falling back to
// readability-style heuristics when its own extraction finds too little.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor that keeps links and images in
// the extracted content.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeLinks:   true,
			IncludeImages:  true,
		},
	}
}

// Extract returns the page's main content. Returns ENOTFOUND if nothing
// survives boilerplate removal.
func (e *Extractor) Extract(rawHTML string) (*pagegrade.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINTERNAL, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, pagegrade.Errorf(pagegrade.ENOTFOUND, "no main content found")
	}

	var sb strings.Builder
	if err := html.Render(&sb, result.ContentNode); err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINTERNAL, "render content: %v", err)
	}

	return &pagegrade.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: sb.String(),
	}, nil
}
