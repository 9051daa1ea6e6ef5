package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/htminl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ htminl.RunService = (*RunService)(nil)

// RunService implements htminl.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a finished run.
func (s *RunService) CreateRun(ctx context.Context, run *htminl.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, documents, minified, unchanged, cached, failed, skipped, before_bytes, after_bytes, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Documents, run.Minified, run.Unchanged, run.Cached, run.Failed, run.Skipped,
		int64(run.Before), int64(run.After),
		run.StartedAt.UTC().Format(timestampFormat), run.FinishedAt.UTC().Format(timestampFormat))

	return err
}

// FindRuns returns up to limit runs, most recent first. A limit of zero
// returns every run.
func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*htminl.Run, error) {
	if limit < 0 {
		return nil, htminl.Errorf(htminl.EINVALID, "limit must not be negative")
	}

	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, documents, minified, unchanged, cached, failed, skipped, before_bytes, after_bytes, started_at, finished_at FROM runs ORDER BY started_at DESC")
	appendPagination(&query, &args, limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*htminl.Run
	for rows.Next() {
		var run htminl.Run
		var before, after int64
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.Documents, &run.Minified, &run.Unchanged, &run.Cached,
			&run.Failed, &run.Skipped, &before, &after, &startedAt, &finishedAt); err != nil {
			return nil, err
		}

		run.Before, run.After = uint64(before), uint64(after)
		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
