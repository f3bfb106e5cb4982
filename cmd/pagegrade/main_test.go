package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagegrade"
	main "github.com/fwojciec/pagegrade/cmd/pagegrade"
	"github.com/fwojciec/pagegrade/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gardenPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Growing tomatoes at home</title>
<meta name="description" content="A practical guide to growing tomatoes in a small garden, from seedlings to harvest, with watering and pruning tips.">
</head>
<body>
<main>
<h1>Growing tomatoes</h1>
<p>Tomatoes need plenty of sun and steady water. Plant tomatoes in rich soil after the last frost. Young tomato plants grow quickly in warm weather.</p>
<h2>Watering tomatoes</h2>
<p>Water tomatoes deeply twice a week. Even watering keeps tomato fruit from cracking. Mulch helps the soil hold water during hot summer days.</p>
<h2>Pruning tomatoes</h2>
<p>Remove the small suckers that grow between the stem and branches. Pruning lets light reach the fruit and keeps tomato plants healthy.</p>
</main>
</body>
</html>`

// newMain returns a Main that ignores any config file in the working
// directory and detects every page as English.
func newMain(stdin string) *main.Main {
	m := main.NewMain()
	m.ConfigPath = ""
	m.Stdin = strings.NewReader(stdin)
	m.Languages = &mock.LanguageDetector{
		DetectLanguageFn: func(text string) (string, bool) {
			return "en", true
		},
	}
	return m
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"analyze", "text", "chunks"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows help and succeeds for --help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "Flags:")
		assert.Contains(t, stdout.String(), "analyze")
	})

	t.Run("shows help and fails without a command", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("rejects an unknown extractor", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		stderr := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"analyze", "--extractor", "magic", path}, &bytes.Buffer{}, stderr)

		assert.Equal(t, pagegrade.EINVALID, pagegrade.ErrorCode(err))
		assert.Contains(t, stderr.String(), `unknown extractor "magic"`)
	})

	t.Run("fails when an explicit config file is missing", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		missing := filepath.Join(t.TempDir(), "nope.yaml")

		err := newMain("").Run(context.Background(), []string{"--config", missing, "analyze", path}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Equal(t, pagegrade.ENOTFOUND, pagegrade.ErrorCode(err))
	})

	t.Run("logs pipeline steps with --verbose", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		stderr := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"-v", "analyze", path}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "extract page")
		assert.Contains(t, stderr.String(), "annotate")
		assert.Contains(t, stderr.String(), "analyze page")
	})
}

func TestCmdAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("prints a JSON report for an HTML file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "tomatoes.html", gardenPage)
		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"analyze", path}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		var report pagegrade.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		assert.True(t, strings.HasPrefix(report.URL, "file://"))
		assert.True(t, strings.HasSuffix(report.URL, "/tomatoes.html"))
		assert.Equal(t, "en", report.Language)
		require.NotNil(t, report.Score)
		assert.Equal(t, pagegrade.Grade(report.Score.Total), report.Score.Grade)
		assert.NotEmpty(t, report.ID)
		require.NotNil(t, report.Chunks)
		assert.NotEmpty(t, report.Chunks.Items)
	})

	t.Run("uses --url to classify links", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"analyze", "--url", "https://example.com/tomatoes", path}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		var report pagegrade.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		assert.Equal(t, "https://example.com/tomatoes", report.URL)
	})

	t.Run("reads HTML from stdin", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newMain(gardenPage).Run(context.Background(), []string{"analyze", "-f", "markdown", "-"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Content report: file:///stdin.html")
	})

	t.Run("renders Markdown inputs before analysis", func(t *testing.T) {
		t.Parallel()

		md := "# Tomato notes\n\nTomatoes like warm soil and full sun all summer long.\n\n## Harvest\n\nPick tomatoes when they are fully red and slightly soft.\n"
		path := writeFile(t, "notes.md", md)
		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"analyze", path}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		var report pagegrade.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		require.NotNil(t, report.Meta)
		assert.Equal(t, "Tomato notes", report.Meta.Title)
		require.NotNil(t, report.Structure)
		assert.Equal(t, 1, report.Structure.H1Count)
	})

	t.Run("writes one file per input with --out", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "first.html", gardenPage)
		second := writeFile(t, "second.html", gardenPage)
		out := filepath.Join(t.TempDir(), "reports")
		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"analyze", "-f", "yaml", "-o", out, first, second}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 2 reports")
		data, err := os.ReadFile(filepath.Join(out, "first.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "\nurl: file://")
		assert.FileExists(t, filepath.Join(out, "second.yaml"))
		assert.NoDirExists(t, out+".tmp")
	})

	t.Run("writes PDF reports", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		out := filepath.Join(t.TempDir(), "pdf")

		err := newMain("").Run(context.Background(), []string{"analyze", "-f", "pdf", "-o", out, path}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(out, "page.pdf"))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run("requires --out for PDF", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		stderr := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"analyze", "-f", "pdf", path}, &bytes.Buffer{}, stderr)

		assert.Equal(t, pagegrade.EINVALID, pagegrade.ErrorCode(err))
		assert.Contains(t, stderr.String(), "requires --out")
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)

		err := newMain("").Run(context.Background(), []string{"analyze", "-f", "docx", path}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Equal(t, pagegrade.EINVALID, pagegrade.ErrorCode(err))
	})

	t.Run("reports missing input files", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.html")

		err := newMain("").Run(context.Background(), []string{"analyze", missing}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Equal(t, pagegrade.ENOTFOUND, pagegrade.ErrorCode(err))
	})

	t.Run("prints every report and fails after an insufficient page", func(t *testing.T) {
		t.Parallel()

		good := writeFile(t, "good.html", gardenPage)
		thin := writeFile(t, "thin.html", `<html><body><p>Hi</p></body></html>`)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"analyze", "-f", "markdown", thin, good}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 inputs")
		assert.Contains(t, stderr.String(), pagegrade.ErrInsufficientContent)
		assert.Contains(t, stdout.String(), "**Error:** "+pagegrade.ErrInsufficientContent)
		assert.Equal(t, 2, strings.Count(stdout.String(), "# Content report: file://"))
	})

	t.Run("takes defaults from the config file and lets flags win", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		cfg := writeFile(t, "pagegrade.yaml", "format: markdown\nconcurrency: 2\n")

		m := newMain("")
		m.ConfigPath = cfg

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"analyze", path}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "# Content report:"))

		stdout.Reset()
		err = m.Run(context.Background(), []string{"analyze", "-f", "json", path}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "{"))
	})
}

func TestCmdText(t *testing.T) {
	t.Parallel()

	t.Run("prints text statistics as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newMain("Tomatoes grow well in warm soil. Water them often.").Run(context.Background(), []string{"text", "-"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		var stats pagegrade.TextStats
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &stats))
		assert.Equal(t, 2, stats.Sentences)
		assert.Positive(t, stats.WordCount)
		require.NotNil(t, stats.Readability)
	})

	t.Run("prints text statistics as YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "note.txt", "Tomatoes grow well in warm soil.")
		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"text", "-f", "yaml", path}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "wordCount: ")
		assert.Contains(t, stdout.String(), "topKeywords:")
	})

	t.Run("rejects blank text", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		err := newMain("   ").Run(context.Background(), []string{"text", "-"}, &bytes.Buffer{}, stderr)

		assert.Equal(t, pagegrade.EINVALID, pagegrade.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: text required")
	})
}

func TestCmdChunks(t *testing.T) {
	t.Parallel()

	t.Run("prints each section with its snippet score and Markdown", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", gardenPage)
		stdout := &bytes.Buffer{}

		err := newMain("").Run(context.Background(), []string{"chunks", path}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "## Watering tomatoes")
		assert.Contains(t, out, "## Pruning tomatoes")
		assert.Contains(t, out, "Snippet score: ")
		assert.Contains(t, out, "Water tomatoes deeply twice a week.")
	})

	t.Run("fails for pages with too little content", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		err := newMain(`<html><body>Hi</body></html>`).Run(context.Background(), []string{"chunks", "-"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), pagegrade.ErrInsufficientContent)
	})
}
