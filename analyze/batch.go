package analyze

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/pagegrade"
	"golang.org/x/sync/errgroup"
)

// Batch extracts and analyzes many HTML documents concurrently.
type Batch struct {
	Extractor   pagegrade.PageExtractor
	Analyzer    pagegrade.PageAnalyzer
	Concurrency int
}

// Input is one HTML document to analyze.
type Input struct {
	Name string // Display name, e.g. the file path
	URL  string // Page URL used for link classification
	HTML string
}

// Result holds the outcome of analyzing one input.
type Result struct {
	Input  Input
	Report *pagegrade.Report
	Err    error
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type batchResult struct {
	position int
	result   Result
}

// Run analyzes all inputs and returns one result per input, in input order.
// A failing input does not stop the others. Error reports (insufficient
// content) count as failures for progress purposes.
func (b *Batch) Run(ctx context.Context, inputs []Input, progress ProgressFunc) []Result {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan batchResult, len(inputs))
	var completed atomic.Int64
	total := len(inputs)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, in := range inputs {
			g.Go(func() error {
				resultCh <- batchResult{position: i, result: b.process(gctx, in)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result, len(inputs))
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r.result
		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Name:      r.result.Input.Name,
		}
		if err := r.result.failure(); err != nil {
			event.Type = ProgressFailed
			event.Error = err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results
}

func (b *Batch) process(ctx context.Context, in Input) Result {
	result := Result{Input: in}

	page, err := b.Extractor.Extract(ctx, in.HTML, in.URL)
	if err != nil {
		result.Err = err
		return result
	}
	report, err := b.Analyzer.Analyze(ctx, page)
	if err != nil {
		result.Err = err
		return result
	}
	result.Report = report
	return result
}

// failure returns the error of a failed result, including error reports.
func (r Result) failure() error {
	if r.Err != nil {
		return r.Err
	}
	if r.Report != nil && r.Report.Failed() {
		return pagegrade.Errorf(pagegrade.EINVALID, "%s", r.Report.Error)
	}
	return nil
}

// Failed reports whether the input could not be analyzed.
func (r Result) Failed() bool {
	return r.failure() != nil
}
