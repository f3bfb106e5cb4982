package pagegrade

import (
	"strconv"
	"strings"
	"unicode"
)

// Placeholder headings for sections without a heading of their own.
const (
	IntroductionHeading = "(Introduction)"
	NoHeading           = "(No heading)"
)

// Section is the contiguous span of page text between successive headings.
type Section struct {
	Heading   string `json:"heading"`
	Level     int    `json:"level"` // 0 for the introduction or a heading-less page
	Anchor    string `json:"anchor,omitempty"`
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`

	// HTML is the section's source fragment, kept for previews.
	HTML string `json:"-"`
}

// HasRealHeading reports whether the section has a heading that is not a placeholder.
func (s Section) HasRealHeading() bool {
	return HasRealHeading(s.Heading)
}

// HasRealHeading reports whether heading is non-empty and not a placeholder.
func HasRealHeading(heading string) bool {
	return heading != "" && heading != IntroductionHeading && heading != NoHeading
}

// AssignAnchors sets a URL-safe anchor on every section with a real heading.
// Duplicate anchors get numeric suffixes in document order.
func AssignAnchors(sections []Section) {
	anchorCounts := make(map[string]int)

	for i := range sections {
		if !sections[i].HasRealHeading() {
			continue
		}
		baseAnchor := GenerateAnchor(sections[i].Heading)
		if baseAnchor == "" {
			continue
		}

		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}
		sections[i].Anchor = anchor
	}
}

// GenerateAnchor creates a URL-safe anchor from a heading.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func GenerateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
