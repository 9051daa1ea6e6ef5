package mock

import (
	"context"

	"github.com/fwojciec/htminl"
)

var _ htminl.Minifier = (*Minifier)(nil)

// Minifier is a mock implementation of htminl.Minifier.
type Minifier struct {
	MinifyFn func(ctx context.Context, path string) (*htminl.Result, error)
}

func (m *Minifier) Minify(ctx context.Context, path string) (*htminl.Result, error) {
	return m.MinifyFn(ctx, path)
}
