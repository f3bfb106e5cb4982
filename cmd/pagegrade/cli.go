package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/goldmark"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Markdown  *goldmark.Renderer
	Extractor pagegrade.PageExtractor
	Analyzer  pagegrade.PageAnalyzer
	Texts     TextAnalyzer

	// Converter returns a Markdown converter resolving links against pageURL.
	Converter func(pageURL string) pagegrade.Converter
}

// TextAnalyzer runs the quick analysis of arbitrary text.
type TextAnalyzer interface {
	AnalyzeText(ctx context.Context, text string) (*pagegrade.TextStats, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" help:"YAML file with default options (default: PAGEGRADE_CONFIG or ./pagegrade.yaml)"`
	Verbose bool   `short:"v" help:"Log every pipeline step"`

	Analyze AnalyzeCmd `cmd:"" help:"Grade HTML or Markdown pages"`
	Text    TextCmd    `cmd:"" help:"Quick analysis of plain text"`
	Chunks  ChunksCmd  `cmd:"" help:"Show how each section scores as a standalone snippet"`
}

// Main content extractors selectable with --extractor.
const (
	ExtractorNone        = "none"
	ExtractorTrafilatura = "trafilatura"
	ExtractorReadability = "readability"
)

// PipelineFlags are the extraction and analysis options shared by the
// commands that grade pages.
type PipelineFlags struct {
	Extractor   string `short:"e" help:"Main content extractor: none, trafilatura or readability"`
	URL         string `name:"url" help:"Page URL used to classify links (default: file:// URL of the input)"`
	Concurrency int    `short:"c" help:"Sections and inputs processed at once (default 4)"`
	CountTokens bool   `help:"Count Gemini tokens per section (downloads the tokenizer model)"`
	TokenModel  string `help:"Model whose tokenizer counts tokens (default gemini-2.0-flash)"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Paths  []string `arg:"" help:"HTML (.html, .htm) or Markdown (.md) files; - reads HTML from stdin"`
	Format string   `short:"f" help:"Output format: json, yaml, markdown, html or pdf"`
	Out    string   `short:"o" type:"path" help:"Write one report file per input into this directory"`

	PipelineFlags `embed:""`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Path   string `arg:"" help:"Text file to analyze; - reads stdin"`
	Format string `short:"f" default:"json" enum:"json,yaml" help:"Output format: json or yaml"`
}

// ChunksCmd is the "chunks" subcommand.
type ChunksCmd struct {
	Path string `arg:"" help:"HTML (.html, .htm) or Markdown (.md) file; - reads HTML from stdin"`

	PipelineFlags `embed:""`
}
