// Package gofpdf renders reports as PDF documents with gofpdf.
package gofpdf

import (
	"bufio"
	"io"
	"strings"

	"github.com/fwojciec/pagegrade"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Encoder implements pagegrade.ReportEncoder at compile time.
var _ pagegrade.ReportEncoder = (*Encoder)(nil)

const (
	fontFamily = "Helvetica"
	bodySize   = 11.0
	lineHeight = 5.0
)

// Encoder lays out a report's Markdown summary on A4 pages. It handles
// the subset of Markdown the summary uses: headings, bullets, tables and
// bold markers.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeReport writes the report as a PDF document to w.
func (e *Encoder) EncodeReport(w io.Writer, r *pagegrade.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Content report: "+r.URL, true)
	pdf.SetFont(fontFamily, "", bodySize)
	pdf.AddPage()

	// Core fonts are cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	scanner := bufio.NewScanner(strings.NewReader(pagegrade.FormatReport(r)))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		writeLine(pdf, tr, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return pagegrade.Errorf(pagegrade.EINTERNAL, "read report: %v", err)
	}

	if err := pdf.Output(w); err != nil {
		return pagegrade.Errorf(pagegrade.EINTERNAL, "write pdf: %v", err)
	}
	return nil
}

func writeLine(pdf *gofpdf.Fpdf, tr func(string) string, line string) {
	switch {
	case line == "":
		pdf.Ln(lineHeight)

	case strings.HasPrefix(line, "#"):
		level := len(line) - len(strings.TrimLeft(line, "#"))
		size := 16.0
		if level >= 2 {
			size = 13.0
		}
		pdf.SetFont(fontFamily, "B", size)
		pdf.MultiCell(0, 8, tr(strings.TrimSpace(line[level:])), "", "L", false)
		pdf.SetFont(fontFamily, "", bodySize)

	case strings.HasPrefix(line, "|"):
		cells := tableCells(line)
		if cells == nil {
			return
		}
		pdf.MultiCell(0, lineHeight, tr(strings.Join(cells, "    ")), "", "L", false)

	case strings.HasPrefix(line, "- "):
		pdf.MultiCell(0, lineHeight, tr("• "+stripEmphasis(line[2:])), "", "L", false)

	default:
		pdf.MultiCell(0, lineHeight, tr(stripEmphasis(line)), "", "L", false)
	}
}

// tableCells splits a Markdown table row. Returns nil for separator rows.
func tableCells(line string) []string {
	line = strings.Trim(line, "|")
	if strings.Trim(line, "-|: ") == "" {
		return nil
	}
	line = strings.ReplaceAll(line, `\|`, "\x00")
	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(c, "\x00", "|"))
	}
	return cells
}

// stripEmphasis removes bold markers.
func stripEmphasis(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
