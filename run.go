package htminl

import (
	"context"
	"time"
)

// Run is the record of one invocation over a set of documents.
type Run struct {
	ID string `json:"id"`

	// Documents counts the paths handed to the run.
	Documents int `json:"documents"`

	Minified  int `json:"minified"`
	Unchanged int `json:"unchanged"`
	Cached    int `json:"cached"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`

	// Before and After total the document sizes in bytes.
	Before uint64 `json:"before"`
	After  uint64 `json:"after"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "run start time required")
	}
	if r.FinishedAt.Before(r.StartedAt) {
		return Errorf(EINVALID, "run cannot finish before it starts")
	}
	if r.After > r.Before {
		return Errorf(EINVALID, "run cannot grow documents")
	}
	return nil
}

// Saved returns the number of bytes the run saved.
func (r *Run) Saved() uint64 {
	return r.Before - r.After
}

// RunService records runs.
type RunService interface {
	// CreateRun stores a finished run, assigning its ID if empty.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns returns up to limit runs, most recent first.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)
}
