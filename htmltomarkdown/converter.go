// Package htmltomarkdown renders section HTML as Markdown previews.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagegrade"
)

// Ensure Converter implements pagegrade.Converter at compile time.
var _ pagegrade.Converter = (*Converter)(nil)

// Converter converts HTML fragments to CommonMark with table support.
type Converter struct {
	conv *converter.Converter

	// domain resolves relative links and images when set.
	domain string
}

// NewConverter creates a Converter. A non-empty pageURL is used to make
// relative links in the output absolute.
func NewConverter(pageURL string) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv, domain: pageURL}
}

// Convert transforms an HTML fragment into trimmed Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagegrade.Errorf(pagegrade.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if c.domain != "" {
		opts = append(opts, converter.WithDomain(c.domain))
	}

	md, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", pagegrade.Errorf(pagegrade.EINTERNAL, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(md), nil
}
