package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htminl"
)

// Ensure LoggingCache implements htminl.Cache.
var _ htminl.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with debug logging.
type LoggingCache struct {
	next   htminl.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next htminl.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Known delegates to the wrapped cache and logs the lookup.
func (c *LoggingCache) Known(ctx context.Context, path string, hash uint64) (known bool, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache lookup",
			"path", path,
			"hash", hash,
			"known", known,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Known(ctx, path, hash)
}

// Remember delegates to the wrapped cache and logs the write.
func (c *LoggingCache) Remember(ctx context.Context, path string, hash uint64, size uint64) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache remember",
			"path", path,
			"hash", hash,
			"size", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Remember(ctx, path, hash, size)
}
