package main

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/gofpdf"
	"github.com/fwojciec/pagegrade/goldmark"
	"github.com/fwojciec/pagegrade/yaml"
)

// newEncoder returns the report encoder for format.
func newEncoder(format pagegrade.Format, markdown *goldmark.Renderer) pagegrade.ReportEncoder {
	switch format {
	case pagegrade.FormatYAML:
		return yaml.NewEncoder()
	case pagegrade.FormatMarkdown:
		return markdownEncoder{}
	case pagegrade.FormatHTML:
		return goldmark.NewHTMLEncoder(markdown)
	case pagegrade.FormatPDF:
		return gofpdf.NewEncoder()
	default:
		return jsonEncoder{}
	}
}

// jsonEncoder writes indented JSON.
type jsonEncoder struct{}

func (jsonEncoder) EncodeReport(w io.Writer, r *pagegrade.Report) error {
	return writeJSON(w, r)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// markdownEncoder writes the Markdown summary.
type markdownEncoder struct{}

func (markdownEncoder) EncodeReport(w io.Writer, r *pagegrade.Report) error {
	_, err := io.WriteString(w, pagegrade.FormatReport(r))
	return err
}
