package analyze

import "github.com/fwojciec/pagegrade"

// Structure audits the heading hierarchy and markup of page.
func Structure(page *pagegrade.Page) *pagegrade.StructureSummary {
	h := page.Headings
	h1Count := len(h.H1)

	outline := page.Outline
	if len(outline) == 0 {
		outline = h.Flatten()
	}
	skipped := HasSkippedLevel(outline)

	h1Text := h.H1
	if h1Text == nil {
		h1Text = []string{}
	}

	return &pagegrade.StructureSummary{
		H1Count:       h1Count,
		H1Status:      pagegrade.H1StatusOf(h1Count),
		H1Text:        h1Text,
		TotalHeadings: h.Total(),
		HeadingBreakdown: pagegrade.HeadingBreakdown{
			H1: len(h.H1),
			H2: len(h.H2),
			H3: len(h.H3),
			H4: len(h.H4),
			H5: len(h.H5),
			H6: len(h.H6),
		},
		HasSkippedLevel:     skipped,
		HasProperHierarchy:  !skipped && h1Count == 1,
		ParagraphCount:      len(page.Paragraphs),
		Links:               page.Links,
		Images:              page.Images,
		HasStructuredData:   len(page.StructuredData) > 0,
		StructuredDataCount: len(page.StructuredData),
	}
}

// HasSkippedLevel reports whether any heading is more than one level
// deeper than the heading before it. The first heading never counts.
func HasSkippedLevel(headings []pagegrade.Heading) bool {
	for i := 1; i < len(headings); i++ {
		if headings[i].Level-headings[i-1].Level > 1 {
			return true
		}
	}
	return false
}
