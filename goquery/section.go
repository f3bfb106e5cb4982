package goquery

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagegrade"
	"golang.org/x/net/html"
)

const (
	headingSelector = "h1, h2, h3, h4, h5, h6"

	// minIntroLength is the length intro or heading-less text must exceed
	// to form a section.
	minIntroLength = 30

	// minSectionLength is the length a heading's text must exceed to form
	// a section.
	minSectionLength = 15
)

// sectionNoise are elements removed before splitting content into sections.
var sectionNoise = []string{"script", "style", "noscript", "iframe", "svg", "nav", "footer"}

// extractSections splits the page's main content into sections at headings.
// Text before the first heading becomes the introduction; a page without
// headings yields at most one heading-less section.
func extractSections(doc *goquery.Document) []pagegrade.Section {
	container := doc.Find(`main, article, [role="main"]`).First()
	if container.Length() == 0 {
		container = doc.Find("body").First()
	}
	container = container.Clone()
	container.Find(strings.Join(sectionNoise, ", ")).Remove()

	sections := []pagegrade.Section{}
	root := container.Get(0)
	if root == nil {
		return sections
	}

	headings := container.Find(headingSelector).Nodes
	if len(headings) == 0 {
		var sb fragment
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			sb.add(c)
		}
		if text := sb.text(); utf8.RuneCountInString(text) > minIntroLength {
			sections = append(sections, newSection("", 0, text, sb.html.String()))
		}
		return sections
	}

	var intro fragment
	intro.addBefore(root, headings[0])
	if text := intro.text(); utf8.RuneCountInString(text) > minIntroLength {
		sections = append(sections, newSection(pagegrade.IntroductionHeading, 0, text, intro.html.String()))
	}

	for _, h := range headings {
		var body fragment
		body.addHTML(h)
		for n := h.NextSibling; n != nil; n = n.NextSibling {
			if isHeading(n) {
				break
			}
			if inner := firstHeading(n); inner != nil {
				body.addBefore(n, inner)
				break
			}
			body.add(n)
		}
		if text := body.text(); utf8.RuneCountInString(text) > minSectionLength {
			heading := collapseSpace(nodeText(h))
			sections = append(sections, newSection(heading, headingLevel(h.Data), text, body.html.String()))
		}
	}

	return sections
}

func newSection(heading string, level int, text, fragment string) pagegrade.Section {
	return pagegrade.Section{
		Heading:   heading,
		Level:     level,
		Text:      text,
		WordCount: pagegrade.CountWords(text),
		HTML:      fragment,
	}
}

// fragment accumulates the text and HTML of a run of nodes.
type fragment struct {
	raw  strings.Builder
	html strings.Builder
}

// add appends a whole node.
func (f *fragment) add(n *html.Node) {
	f.raw.WriteString(nodeText(n))
	f.addHTML(n)
}

// addHTML appends the node's markup only.
func (f *fragment) addHTML(n *html.Node) {
	_ = html.Render(&f.html, n)
}

// addBefore appends the children of n that precede stop in document order,
// descending into the child that contains stop.
func (f *fragment) addBefore(n, stop *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c == stop {
			return
		}
		if contains(c, stop) {
			f.addBefore(c, stop)
			return
		}
		f.add(c)
	}
}

// text returns the accumulated text with whitespace collapsed.
func (f *fragment) text() string {
	return collapseSpace(f.raw.String())
}

// nodeText returns the concatenated text content of n.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

func contains(n, target *html.Node) bool {
	for p := target.Parent; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// firstHeading returns the first heading element below n in document order.
func firstHeading(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isHeading(c) {
			return c
		}
		if h := firstHeading(c); h != nil {
			return h
		}
	}
	return nil
}

func isHeading(n *html.Node) bool {
	return n.Type == html.ElementNode && headingLevel(n.Data) > 0
}

// headingLevel returns 1-6 for heading tag names and 0 otherwise.
func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}

func headingTag(level int) string {
	return "h" + strconv.Itoa(level)
}
