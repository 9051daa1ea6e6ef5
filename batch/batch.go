// Package batch minifies many documents concurrently.
package batch

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/fwojciec/htminl"
	"golang.org/x/sync/errgroup"
)

// Runner minifies a list of documents with a bounded pool of workers.
type Runner struct {
	Minifier htminl.Minifier

	// Jobs is the number of documents processed at once. Zero or less
	// means one per CPU.
	Jobs int
}

// Summary totals the outcome of a run.
type Summary struct {
	Documents int
	Minified  int
	Unchanged int
	Cached    int
	Failed    int

	// Skipped counts documents left alone because the run was canceled,
	// whether or not they had been started.
	Skipped int

	// Before and After total the sizes of every document that was
	// processed successfully.
	Before uint64
	After  uint64
}

// Saved returns the number of bytes saved.
func (s *Summary) Saved() uint64 {
	if s.After >= s.Before {
		return 0
	}
	return s.Before - s.After
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Result    *htminl.Result
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress. It is never called
// concurrently.
type ProgressFunc func(event ProgressEvent)

// outcome holds what happened to a single document.
type outcome struct {
	path   string
	result *htminl.Result
	err    error
}

// Run minifies every path. A document that fails does not stop the others;
// it is counted in Summary.Failed and reported through progress. When ctx is
// canceled, documents not yet started, and those that gave up because of the
// cancellation, are counted in Summary.Skipped and ctx.Err() is returned along
// with the summary of what finished.
func (r *Runner) Run(ctx context.Context, paths []string, progress ProgressFunc) (*Summary, error) {
	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	var before, after atomic.Uint64
	outcomes := make(chan outcome, jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	go func() {
		for _, path := range paths {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				res, err := r.Minifier.Minify(gctx, path)
				if err == nil {
					before.Add(res.Before)
					after.Add(res.After)
				}
				outcomes <- outcome{path: path, result: res, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	sum := &Summary{Documents: total}
	var completed int
	for o := range outcomes {
		completed++
		if canceled(o.err) {
			sum.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: completed,
					Total:     total,
					Path:      o.path,
					Error:     o.err,
				})
			}
			continue
		}
		if o.err != nil {
			sum.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					Path:      o.path,
					Error:     o.err,
				})
			}
			continue
		}

		switch {
		case o.result.Cached:
			sum.Cached++
		case o.result.Changed():
			sum.Minified++
		default:
			sum.Unchanged++
		}
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				Path:      o.path,
				Result:    o.result,
			})
		}
	}

	sum.Skipped += total - completed
	sum.Before = before.Load()
	sum.After = after.Load()

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: completed,
			Total:     total,
		})
	}

	if err := ctx.Err(); err != nil {
		return sum, err
	}
	return sum, nil
}

// canceled reports whether err comes from the run's context ending.
func canceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
