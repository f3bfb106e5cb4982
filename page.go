package pagegrade

import (
	"context"
	"time"
	"unicode/utf8"
)

// Page is the parsed content model of a single web page.
// Absent features default to empty strings, empty slices and zero counts.
type Page struct {
	URL            string     `json:"url"`
	Timestamp      time.Time  `json:"timestamp"`
	Meta           Meta       `json:"meta"`
	Headings       Headings   `json:"headings"`
	Outline        []Heading  `json:"outline,omitempty"` // Headings in document order
	BodyText       string     `json:"bodyText"`
	Paragraphs     []string   `json:"paragraphs"`
	Sections       []Section  `json:"sections"`
	Links          LinkStats  `json:"links"`
	Images         ImageStats `json:"images"`
	StructuredData []any      `json:"structuredData"`
}

// Meta holds the page's head metadata.
type Meta struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    string            `json:"keywords"`
	Canonical   string            `json:"canonical"`
	Robots      string            `json:"robots"`
	OG          map[string]string `json:"og"`      // Keyed by property, e.g. "og:title"
	Twitter     map[string]string `json:"twitter"` // Keyed by name, e.g. "twitter:card"
	Lang        string            `json:"lang"`
	Charset     string            `json:"charset"`
	Viewport    string            `json:"viewport"`
}

// TitleLength returns the title length in characters.
func (m Meta) TitleLength() int {
	return utf8.RuneCountInString(m.Title)
}

// DescriptionLength returns the description length in characters.
func (m Meta) DescriptionLength() int {
	return utf8.RuneCountInString(m.Description)
}

// Headings holds heading texts grouped by level.
type Headings struct {
	H1 []string `json:"h1"`
	H2 []string `json:"h2"`
	H3 []string `json:"h3"`
	H4 []string `json:"h4"`
	H5 []string `json:"h5"`
	H6 []string `json:"h6"`
}

// Level returns the headings at the given level (1-6).
// Returns nil for levels outside that range.
func (h Headings) Level(level int) []string {
	switch level {
	case 1:
		return h.H1
	case 2:
		return h.H2
	case 3:
		return h.H3
	case 4:
		return h.H4
	case 5:
		return h.H5
	case 6:
		return h.H6
	}
	return nil
}

// Add appends a heading text at the given level. Levels outside 1-6 are ignored.
func (h *Headings) Add(level int, text string) {
	switch level {
	case 1:
		h.H1 = append(h.H1, text)
	case 2:
		h.H2 = append(h.H2, text)
	case 3:
		h.H3 = append(h.H3, text)
	case 4:
		h.H4 = append(h.H4, text)
	case 5:
		h.H5 = append(h.H5, text)
	case 6:
		h.H6 = append(h.H6, text)
	}
}

// Total returns the number of headings across all levels.
func (h Headings) Total() int {
	return len(h.H1) + len(h.H2) + len(h.H3) + len(h.H4) + len(h.H5) + len(h.H6)
}

// Flatten returns all headings ordered by level, then by position within a level.
func (h Headings) Flatten() []Heading {
	out := make([]Heading, 0, h.Total())
	for level := 1; level <= 6; level++ {
		for _, text := range h.Level(level) {
			out = append(out, Heading{Level: level, Text: text})
		}
	}
	return out
}

// Heading is a single heading with its level.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// LinkStats summarizes the anchors on a page.
type LinkStats struct {
	Total    int      `json:"total"`
	Internal int      `json:"internal"`
	External int      `json:"external"`
	Nofollow int      `json:"nofollow"`
	Broken   []string `json:"broken"`
}

// ImageStats summarizes image alt-text coverage.
type ImageStats struct {
	Total       int      `json:"total"`
	WithAlt     int      `json:"withAlt"`
	WithoutAlt  int      `json:"withoutAlt"`
	MissingAlt  []string `json:"missingAlt"`  // Sources of images without alt, capped at 20
	AltCoverage int      `json:"altCoverage"` // Percent; 100 when there are no images
}

// PageExtractor builds the page content model from raw HTML.
type PageExtractor interface {
	// Extract parses HTML fetched from pageURL into a Page.
	// Returns EINVALID if the HTML is empty.
	Extract(ctx context.Context, html string, pageURL string) (*Page, error)
}
