package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/htminl"
	"github.com/fwojciec/htminl/batch"
	"github.com/fwojciec/htminl/fs"
)

// Run executes the minify command.
func (c *MinifyCmd) Run(deps *Dependencies) error {
	paths, err := fs.Discover(c.Paths, c.List)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return htminl.Errorf(htminl.ENOTFOUND, "no documents were found")
	}

	var progress batch.ProgressFunc
	if c.Progress {
		progress = func(e batch.ProgressEvent) {
			switch e.Type {
			case batch.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "\rskip %s: %s\n", e.Path, htminl.ErrorMessage(e.Error))
			case batch.ProgressCompleted:
				fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, truncatePath(e.Path, 40))
			case batch.ProgressFinished:
				// Clear progress line
				fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
			}
		}
	}

	runner := &batch.Runner{
		Minifier: deps.Minifier,
		Jobs:     deps.Jobs,
	}

	started := time.Now()
	sum, runErr := runner.Run(deps.Ctx, paths, progress)
	finished := time.Now()

	if deps.Runs != nil {
		run := &htminl.Run{
			Documents:  sum.Documents,
			Minified:   sum.Minified,
			Unchanged:  sum.Unchanged,
			Cached:     sum.Cached,
			Failed:     sum.Failed,
			Skipped:    sum.Skipped,
			Before:     sum.Before,
			After:      sum.After,
			StartedAt:  started,
			FinishedAt: finished,
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: unable to record run: %s\n", htminl.ErrorMessage(err))
		}
	}

	if c.Progress {
		fmt.Fprintln(deps.Stdout, summaryLine(sum, finished.Sub(started)))
	}
	return runErr
}

// summaryLine describes a finished run.
func summaryLine(sum *batch.Summary, elapsed time.Duration) string {
	noun := "documents"
	if sum.Documents == 1 {
		noun = "document"
	}
	done := fmt.Sprintf("Crunched %s %s in %s", humanize.Comma(int64(sum.Documents)), noun, elapsed.Round(time.Millisecond))

	saved := sum.Saved()
	if saved == 0 {
		return done + ", but no savings were possible."
	}
	pct := float64(saved) / float64(sum.Before) * 100
	return fmt.Sprintf("%s, saving %s (%.2f%%).", done, humanize.Bytes(saved), pct)
}

// truncatePath shortens a path for display, keeping the end which is more
// informative.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
