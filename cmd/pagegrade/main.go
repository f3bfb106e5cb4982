package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/analyze"
	"github.com/fwojciec/pagegrade/gemini"
	"github.com/fwojciec/pagegrade/goldmark"
	"github.com/fwojciec/pagegrade/goquery"
	"github.com/fwojciec/pagegrade/htmltomarkdown"
	"github.com/fwojciec/pagegrade/lingua"
	"github.com/fwojciec/pagegrade/prose"
	"github.com/fwojciec/pagegrade/readability"
	pgslog "github.com/fwojciec/pagegrade/slog"
	"github.com/fwojciec/pagegrade/trafilatura"
	linguago "github.com/pemistahl/lingua-go"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default config file path. A missing file at this path is ignored;
	// a path given with --config must exist.
	ConfigPath string

	// Stdin is read for the "-" input.
	Stdin io.Reader

	// Services for end-to-end testing. Nil fields get their defaults.
	Annotator pagegrade.Annotator
	Languages pagegrade.LanguageDetector
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagegrade"),
		kong.Description("Grade the content quality and search readiness of web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagegrade --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Markdown = goldmark.NewRenderer()

	// Wire the pipeline with the options of the selected command.
	var opts PipelineFlags
	switch command := strings.Fields(kongCtx.Command())[0]; command {
	case "analyze":
		cli.Analyze.applyConfig(cfg)
		opts = cli.Analyze.PipelineFlags
	case "chunks":
		cli.Chunks.PipelineFlags.applyConfig(cfg)
		opts = cli.Chunks.PipelineFlags
	}
	if err := m.wire(deps, opts); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the extraction and analysis services into deps.
func (m *Main) wire(deps *Dependencies, opts PipelineFlags) error {
	logger := deps.Logger

	annotator := m.Annotator
	if annotator == nil {
		annotator = prose.NewAnnotator()
	}
	languages := m.Languages
	if languages == nil {
		languages = lingua.NewDetector(defaultLanguages...)
	}

	pages := goquery.NewPageExtractor()
	switch opts.Extractor {
	case "", ExtractorNone:
	case ExtractorTrafilatura:
		pages.Content = pgslog.NewLoggingExtractor(trafilatura.NewExtractor(), logger)
	case ExtractorReadability:
		pages.Content = pgslog.NewLoggingExtractor(readability.NewExtractor(), logger)
	default:
		return pagegrade.Errorf(pagegrade.EINVALID, "unknown extractor %q (want none, trafilatura or readability)", opts.Extractor)
	}

	analyzer := analyze.NewAnalyzer(pgslog.NewLoggingAnnotator(annotator, logger))
	analyzer.Languages = languages
	analyzer.Concurrency = opts.Concurrency

	if opts.CountTokens {
		fmt.Fprintln(deps.Stderr, "Loading tokenizer model (first use downloads it)...")
		counter, err := gemini.NewTokenCounter(opts.TokenModel)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: set --token-model to a model the Gemini tokenizer supports")
			return err
		}
		analyzer.Tokens = counter
	}

	deps.Extractor = pgslog.NewLoggingPageExtractor(pages, logger)
	deps.Analyzer = pgslog.NewLoggingAnalyzer(analyzer, logger)
	deps.Texts = analyzer
	deps.Converter = func(pageURL string) pagegrade.Converter {
		if u, err := url.Parse(pageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			pageURL = ""
		}
		return htmltomarkdown.NewConverter(pageURL)
	}
	return nil
}

// defaultLanguages are the candidates for report language detection.
// Restricting the set keeps lingua's model memory small.
var defaultLanguages = []linguago.Language{
	linguago.English,
	linguago.German,
	linguago.French,
	linguago.Spanish,
	linguago.Italian,
	linguago.Portuguese,
	linguago.Dutch,
	linguago.Polish,
}
