package pagegrade

import (
	"context"
	"io"
)

// Format is a report output format.
type Format string

// Supported output formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// Formats lists every supported output format.
var Formats = []Format{FormatJSON, FormatYAML, FormatMarkdown, FormatHTML, FormatPDF}

// ParseFormat returns the format named s. An empty name selects JSON.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatJSON, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	if s == "md" {
		return FormatMarkdown, nil
	}
	return "", Errorf(EINVALID, "unknown format %q (want json, yaml, markdown, html or pdf)", s)
}

// Ext returns the file extension used for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatPDF:
		return ".pdf"
	default:
		return ".json"
	}
}

// Binary reports whether the format cannot be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatPDF
}

// ReportEncoder writes a report in one output format.
type ReportEncoder interface {
	EncodeReport(w io.Writer, r *Report) error
}

// MarkdownRenderer renders Markdown to HTML.
type MarkdownRenderer interface {
	// Render converts a Markdown document into an HTML fragment.
	Render(markdown string) (string, error)
}

// ReportStore persists encoded reports with all-or-nothing semantics.
// Saved reports become visible only after Commit.
type ReportStore interface {
	// Save stores an encoded report under a path derived from the report URL.
	Save(ctx context.Context, r *Report, format Format, data []byte) error

	// Commit publishes every saved report.
	Commit() error

	// Abort discards every saved report.
	Abort() error
}
