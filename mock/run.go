package mock

import (
	"context"

	"github.com/fwojciec/htminl"
)

var _ htminl.RunService = (*RunService)(nil)

// RunService is a mock implementation of htminl.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *htminl.Run) error
	FindRunsFn  func(ctx context.Context, limit int) ([]*htminl.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *htminl.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*htminl.Run, error) {
	return s.FindRunsFn(ctx, limit)
}
