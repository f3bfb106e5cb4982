// Package goquery builds the page content model from HTML with goquery.
package goquery

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagegrade"
)

// Ensure PageExtractor implements pagegrade.PageExtractor at compile time.
var _ pagegrade.PageExtractor = (*PageExtractor)(nil)

const (
	// minParagraphLength is the length a block must exceed to count as a paragraph.
	minParagraphLength = 20

	// maxMissingAlt caps the image sources reported without alt text.
	maxMissingAlt = 20
)

// bodyNoise are elements removed before collecting body text.
var bodyNoise = []string{"script", "style", "noscript", "iframe", "svg", "nav", "footer", "header"}

// PageExtractor parses HTML into a pagegrade.Page.
type PageExtractor struct {
	// Content, when set, restricts body text and sections to the main
	// content it extracts. Metadata, headings, links and images always
	// come from the full page.
	Content pagegrade.Extractor

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewPageExtractor creates a PageExtractor that reads the full page.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{}
}

// Extract parses html fetched from pageURL.
func (e *PageExtractor) Extract(ctx context.Context, html string, pageURL string) (*pagegrade.Page, error) {
	if strings.TrimSpace(html) == "" {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "empty HTML input")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &pagegrade.Page{
		URL:            pageURL,
		Timestamp:      e.now(),
		Meta:           extractMeta(doc),
		Headings:       extractHeadings(doc),
		Outline:        extractOutline(doc),
		Links:          extractLinks(doc, base),
		Images:         extractImages(doc),
		StructuredData: extractStructuredData(doc),
	}
	page.BodyText, page.Paragraphs = extractBody(doc)
	page.Sections = extractSections(doc)

	if e.Content != nil {
		result, err := e.Content.Extract(html)
		if err != nil {
			return nil, err
		}
		main, err := goquery.NewDocumentFromReader(strings.NewReader(result.ContentHTML))
		if err != nil {
			return nil, pagegrade.Errorf(pagegrade.EINVALID, "failed to parse main content: %v", err)
		}
		page.BodyText, _ = extractBody(main)
		page.Sections = extractSections(main)
	}

	pagegrade.AssignAnchors(page.Sections)

	return page, nil
}

func (e *PageExtractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func extractMeta(doc *goquery.Document) pagegrade.Meta {
	meta := pagegrade.Meta{
		Title:       collapseSpace(doc.Find("title").First().Text()),
		Description: attrOf(doc, `meta[name="description"]`, "content"),
		Keywords:    attrOf(doc, `meta[name="keywords"]`, "content"),
		Canonical:   attrOf(doc, `link[rel="canonical"]`, "href"),
		Robots:      attrOf(doc, `meta[name="robots"]`, "content"),
		OG:          map[string]string{},
		Twitter:     map[string]string{},
		Lang:        doc.Find("html").AttrOr("lang", ""),
		Charset:     charset(doc),
		Viewport:    attrOf(doc, `meta[name="viewport"]`, "content"),
	}

	doc.Find(`meta[property^="og:"]`).Each(func(_ int, sel *goquery.Selection) {
		meta.OG[sel.AttrOr("property", "")] = sel.AttrOr("content", "")
	})
	doc.Find(`meta[name^="twitter:"]`).Each(func(_ int, sel *goquery.Selection) {
		meta.Twitter[sel.AttrOr("name", "")] = sel.AttrOr("content", "")
	})

	return meta
}

// attrOf returns an attribute of the first element matching selector.
func attrOf(doc *goquery.Document, selector, attr string) string {
	return doc.Find(selector).First().AttrOr(attr, "")
}

// charset returns the declared character set, defaulting to UTF-8.
func charset(doc *goquery.Document) string {
	if cs := attrOf(doc, "meta[charset]", "charset"); cs != "" {
		return strings.ToUpper(cs)
	}
	cs := "UTF-8"
	doc.Find("meta[http-equiv]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.EqualFold(sel.AttrOr("http-equiv", ""), "content-type") {
			return true
		}
		if _, declared, ok := strings.Cut(strings.ToLower(sel.AttrOr("content", "")), "charset="); ok {
			cs = strings.ToUpper(strings.TrimSpace(declared))
		}
		return false
	})
	return cs
}

func extractHeadings(doc *goquery.Document) pagegrade.Headings {
	var headings pagegrade.Headings
	for level := 1; level <= 6; level++ {
		doc.Find(headingTag(level)).Each(func(_ int, sel *goquery.Selection) {
			headings.Add(level, strings.TrimSpace(sel.Text()))
		})
	}
	return headings
}

func extractOutline(doc *goquery.Document) []pagegrade.Heading {
	var outline []pagegrade.Heading
	doc.Find(headingSelector).Each(func(_ int, sel *goquery.Selection) {
		outline = append(outline, pagegrade.Heading{
			Level: headingLevel(goquery.NodeName(sel)),
			Text:  strings.TrimSpace(sel.Text()),
		})
	})
	return outline
}

// extractBody returns the whitespace-collapsed body text and the text of
// paragraph-like blocks, with page chrome removed.
func extractBody(doc *goquery.Document) (string, []string) {
	body := doc.Find("body").First().Clone()
	body.Find(strings.Join(bodyNoise, ", ")).Remove()

	paragraphs := []string{}
	body.Find(`p, article, section, main, [role="main"]`).Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); utf8.RuneCountInString(t) > minParagraphLength {
			paragraphs = append(paragraphs, t)
		}
	})

	return collapseSpace(body.Text()), paragraphs
}

func extractLinks(doc *goquery.Document, base *url.URL) pagegrade.LinkStats {
	anchors := doc.Find("a[href]")
	stats := pagegrade.LinkStats{
		Total:  anchors.Length(),
		Broken: []string{},
	}

	anchors.Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if isSkippedLink(href) {
			return
		}
		if resolved, ok := resolveURL(base, href); !ok {
			stats.Broken = append(stats.Broken, href)
		} else if resolved.Hostname() == base.Hostname() {
			stats.Internal++
		} else {
			stats.External++
		}
		if strings.Contains(sel.AttrOr("rel", ""), "nofollow") {
			stats.Nofollow++
		}
	})

	return stats
}

// isSkippedLink reports whether href is a same-page or script link.
func isSkippedLink(href string) bool {
	return strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:")
}

// resolveURL resolves href against the page URL.
func resolveURL(base *url.URL, href string) (*url.URL, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, false
	}
	return base.ResolveReference(ref), true
}

func extractImages(doc *goquery.Document) pagegrade.ImageStats {
	imgs := doc.Find("img")
	stats := pagegrade.ImageStats{
		Total:       imgs.Length(),
		MissingAlt:  []string{},
		AltCoverage: 100,
	}

	imgs.Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.AttrOr("alt", "")) != "" {
			stats.WithAlt++
			return
		}
		stats.WithoutAlt++
		if len(stats.MissingAlt) < maxMissingAlt {
			src := sel.AttrOr("src", "")
			if src == "" {
				src = "(no src)"
			}
			stats.MissingAlt = append(stats.MissingAlt, src)
		}
	})

	if stats.Total > 0 {
		stats.AltCoverage = (stats.WithAlt*200 + stats.Total) / (stats.Total * 2)
	}
	return stats
}

// extractStructuredData decodes JSON-LD blocks, skipping malformed ones.
func extractStructuredData(doc *goquery.Document) []any {
	data := []any{}
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var v any
		if err := json.Unmarshal([]byte(sel.Text()), &v); err != nil {
			return
		}
		data = append(data, v)
	})
	return data
}

// collapseSpace replaces whitespace runs with a single space and trims.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
