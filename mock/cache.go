package mock

import (
	"context"

	"github.com/fwojciec/htminl"
)

var _ htminl.Cache = (*Cache)(nil)

// Cache is a mock implementation of htminl.Cache.
type Cache struct {
	KnownFn    func(ctx context.Context, path string, hash uint64) (bool, error)
	RememberFn func(ctx context.Context, path string, hash uint64, size uint64) error
}

func (c *Cache) Known(ctx context.Context, path string, hash uint64) (bool, error) {
	return c.KnownFn(ctx, path, hash)
}

func (c *Cache) Remember(ctx context.Context, path string, hash uint64, size uint64) error {
	return c.RememberFn(ctx, path, hash, size)
}

var _ htminl.Verifier = (*Verifier)(nil)

// Verifier is a mock implementation of htminl.Verifier.
type Verifier struct {
	VerifyFn func(before, after []byte) error
}

func (v *Verifier) Verify(before, after []byte) error {
	return v.VerifyFn(before, after)
}
