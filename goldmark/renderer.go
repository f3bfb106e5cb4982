// Package goldmark renders Markdown with goldmark: Markdown input files
// become HTML pages and Markdown reports become HTML documents.
package goldmark

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/fwojciec/pagegrade"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Ensure the renderers implement their interfaces at compile time.
var (
	_ pagegrade.MarkdownRenderer = (*Renderer)(nil)
	_ pagegrade.ReportEncoder    = (*HTMLEncoder)(nil)
)

// Renderer converts GitHub-flavored Markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM tables and heading IDs enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts a Markdown document into an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", pagegrade.Errorf(pagegrade.EINTERNAL, "render markdown: %v", err)
	}
	return buf.String(), nil
}

// Page renders a Markdown document as a complete HTML page. The first
// level-one heading becomes the page title.
func (r *Renderer) Page(markdown string) (string, error) {
	src := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var body bytes.Buffer
	if err := r.md.Renderer().Render(&body, src, doc); err != nil {
		return "", pagegrade.Errorf(pagegrade.EINTERNAL, "render markdown: %v", err)
	}

	var buf bytes.Buffer
	_ = writeDocument(&buf, firstTitle(doc, src), body.String())
	return buf.String(), nil
}

// firstTitle returns the text of the first level-one heading.
func firstTitle(doc ast.Node, src []byte) string {
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = string(h.Text(src))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// writeDocument wraps an HTML fragment in a minimal HTML5 page.
func writeDocument(w io.Writer, title, body string) error {
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), body)
	return err
}

// HTMLEncoder writes reports as standalone HTML documents.
type HTMLEncoder struct {
	renderer pagegrade.MarkdownRenderer
}

// NewHTMLEncoder creates an HTMLEncoder that renders with r.
func NewHTMLEncoder(r pagegrade.MarkdownRenderer) *HTMLEncoder {
	return &HTMLEncoder{renderer: r}
}

// EncodeReport renders the report's Markdown summary as an HTML page.
func (e *HTMLEncoder) EncodeReport(w io.Writer, r *pagegrade.Report) error {
	if r == nil {
		return pagegrade.Errorf(pagegrade.EINVALID, "report required")
	}
	body, err := e.renderer.Render(pagegrade.FormatReport(r))
	if err != nil {
		return err
	}
	return writeDocument(w, "Content report: "+r.URL, body)
}
