package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/htminl"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Runs == nil {
		return htminl.Errorf(htminl.EINVALID, "--history requires a cache database (--cache or HTMINL_CACHE)")
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, c.Limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded yet.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d documents (%d minified, %d cached, %d failed, %d skipped), saved %s\n",
			r.ID,
			humanize.Time(r.StartedAt),
			r.Documents, r.Minified, r.Cached, r.Failed, r.Skipped,
			humanize.Bytes(r.Saved()),
		)
	}

	return nil
}
