package main

import (
	"fmt"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/analyze"
)

// Run executes the chunks command.
func (c *ChunksCmd) Run(deps *Dependencies) error {
	in, err := readInput(c.Path, deps.Stdin, deps.Markdown)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}
	if c.URL != "" {
		in.URL = c.URL
	}

	page, err := deps.Extractor.Extract(deps.Ctx, in.HTML, in.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}

	report, err := deps.Analyzer.Analyze(deps.Ctx, page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}
	if report.Failed() {
		fmt.Fprintf(deps.Stderr, "error: %s\n", report.Error)
		return pagegrade.Errorf(pagegrade.EINVALID, "%s", report.Error)
	}

	if len(report.Chunks.Items) == 0 {
		fmt.Fprintln(deps.Stdout, "No sections found")
		return nil
	}

	converter := deps.Converter(in.URL)
	if s := report.Chunks.Summary; s != nil {
		fmt.Fprintf(deps.Stdout, "%d chunks, average snippet score %d (grade %s)\n\n", s.TotalChunks, s.AvgSnippetScore, s.AvgGrade)
	}

	for _, item := range report.Chunks.Items {
		heading := item.Heading
		if heading == "" {
			heading = "(no heading)"
		}
		fmt.Fprintf(deps.Stdout, "## %s\n\n", heading)
		fmt.Fprintf(deps.Stdout, "Snippet score: %d (grade %s), %d words, topic alignment %d%%", item.SnippetScore, item.SnippetGrade, item.WordCount, item.TopicAlignment)
		if item.Tokens > 0 {
			fmt.Fprintf(deps.Stdout, ", %s", analyze.FormatTokens(item.Tokens))
		}
		fmt.Fprint(deps.Stdout, "\n\n")

		preview := page.Sections[item.Index].Text
		if html := page.Sections[item.Index].HTML; html != "" {
			if md, err := converter.Convert(html); err == nil {
				preview = md
			} else {
				deps.Logger.Debug("markdown preview failed", "heading", item.Heading, "err", err)
			}
		}
		fmt.Fprintf(deps.Stdout, "%s\n\n---\n\n", preview)
	}

	return nil
}
