package analysis

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/avesong/perch-go/internal/detection"
)

// Run processes the given files in order and returns the aggregate ordered
// detection collection. A failing file contributes zero records and is
// logged, the batch always continues; the returned error is non-nil only
// when the context is cancelled. The result is never nil.
func (a *Analyzer) Run(ctx context.Context, files []string) ([]detection.Detection, error) {
	results := make([]detection.Detection, 0)
	if len(files) == 0 {
		return results, nil
	}

	if a.settings.Perch.Threads > 1 {
		return a.runParallel(ctx, files)
	}

	total := len(files)
	failed := 0
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		detections, err := a.analyzeFile(file)
		if err != nil {
			failed++
			a.log.Error("file analysis failed, continuing batch", "file", file, "error", err)
		} else {
			results = append(results, detections...)
		}

		a.log.Info("analysis progress", "completed", i+1, "total", total)
	}

	a.log.Info("batch completed", "files", total, "failed", failed, "detections", len(results))
	return results, nil
}

// runParallel processes files with a bounded worker group. Results land in
// per-file slots and are concatenated in input order, so the aggregate
// ordering is identical to the sequential path regardless of completion
// order.
func (a *Analyzer) runParallel(ctx context.Context, files []string) ([]detection.Detection, error) {
	total := len(files)
	slots := make([][]detection.Detection, total)

	var completed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.settings.Perch.Threads)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			detections, err := a.analyzeFile(file)
			if err != nil {
				failed.Add(1)
				a.log.Error("file analysis failed, continuing batch", "file", file, "error", err)
			} else {
				slots[i] = detections
			}

			a.log.Info("analysis progress", "completed", completed.Add(1), "total", total)
			return nil
		})
	}
	err := g.Wait()

	results := make([]detection.Detection, 0)
	for _, slot := range slots {
		results = append(results, slot...)
	}

	if err != nil {
		return results, err
	}

	a.log.Info("batch completed", "files", total, "failed", failed.Load(), "detections", len(results))
	return results, nil
}
