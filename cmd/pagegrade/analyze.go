package main

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/analyze"
	"github.com/fwojciec/pagegrade/fs"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	format, err := pagegrade.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}
	if format.Binary() && c.Out == "" {
		err := pagegrade.Errorf(pagegrade.EINVALID, "%s output requires --out", format)
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}
	if c.URL != "" && len(c.Paths) > 1 {
		err := pagegrade.Errorf(pagegrade.EINVALID, "--url applies to a single input, got %d", len(c.Paths))
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}

	inputs := make([]analyze.Input, 0, len(c.Paths))
	for _, path := range c.Paths {
		in, err := readInput(path, deps.Stdin, deps.Markdown)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
			return err
		}
		if c.URL != "" {
			in.URL = c.URL
		}
		inputs = append(inputs, in)
	}

	batch := &analyze.Batch{
		Extractor:   deps.Extractor,
		Analyzer:    deps.Analyzer,
		Concurrency: c.Concurrency,
	}

	// Progress goes to stderr only for multi-input runs writing files.
	var progress analyze.ProgressFunc
	if c.Out != "" && len(inputs) > 1 {
		progress = func(p analyze.ProgressEvent) {
			switch p.Type {
			case analyze.ProgressCompleted, analyze.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", p.Completed, p.Total, analyze.TruncateName(p.Name, 40))
			case analyze.ProgressFinished:
				fmt.Fprintf(deps.Stderr, "\r%80s\r", "")
			}
		}
	}

	results := batch.Run(deps.Ctx, inputs, progress)

	if c.Out != "" {
		return c.save(deps, format, results)
	}
	return c.print(deps, format, results)
}

// print writes every report to stdout, in input order.
func (c *AnalyzeCmd) print(deps *Dependencies, format pagegrade.Format, results []analyze.Result) error {
	encoder := newEncoder(format, deps.Markdown)

	written := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if written > 0 {
			fmt.Fprint(deps.Stdout, separator(format))
		}
		if err := encoder.EncodeReport(deps.Stdout, r.Report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Input.Name, pagegrade.ErrorMessage(err))
			return err
		}
		written++
	}

	return reportFailures(deps, results)
}

// save writes one report file per input into the output directory. Files
// appear only when every report was written.
func (c *AnalyzeCmd) save(deps *Dependencies, format pagegrade.Format, results []analyze.Result) error {
	encoder := newEncoder(format, deps.Markdown)
	files := fs.NewFileStoreForDir(c.Out)
	var store pagegrade.ReportStore = files

	saved := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		var buf bytes.Buffer
		if err := encoder.EncodeReport(&buf, r.Report); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Input.Name, pagegrade.ErrorMessage(err))
			return err
		}
		if err := store.Save(deps.Ctx, r.Report, format, buf.Bytes()); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", r.Input.Name, err)
			return err
		}
		saved++
	}

	if saved > 0 {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d reports to %s\n", saved, files.Dir())
	} else {
		_ = store.Abort()
		fmt.Fprintln(deps.Stdout, "No reports saved")
	}

	return reportFailures(deps, results)
}

// reportFailures prints every failed input and returns an error when
// there was at least one.
func reportFailures(deps *Dependencies, results []analyze.Result) error {
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Input.Name, pagegrade.ErrorMessage(r.Err))
		case r.Report.Failed():
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Input.Name, r.Report.Error)
		default:
			continue
		}
		failed++
	}
	if failed > 0 {
		return pagegrade.Errorf(pagegrade.EINVALID, "%d of %d inputs could not be analyzed", failed, len(results))
	}
	return nil
}

// separator returns the text written between consecutive reports on stdout.
func separator(format pagegrade.Format) string {
	switch format {
	case pagegrade.FormatYAML:
		return "---\n"
	case pagegrade.FormatMarkdown:
		return "\n---\n\n"
	default:
		return ""
	}
}
