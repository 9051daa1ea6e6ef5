// Package slog provides log/slog decorators for htminl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htminl"
)

// Ensure LoggingMinifier implements htminl.Minifier.
var _ htminl.Minifier = (*LoggingMinifier)(nil)

// LoggingMinifier wraps a Minifier with per-document logging.
type LoggingMinifier struct {
	next   htminl.Minifier
	logger *slog.Logger
}

// NewLoggingMinifier creates a new LoggingMinifier.
func NewLoggingMinifier(next htminl.Minifier, logger *slog.Logger) *LoggingMinifier {
	return &LoggingMinifier{next: next, logger: logger}
}

// Minify delegates to the wrapped minifier and logs the outcome.
func (m *LoggingMinifier) Minify(ctx context.Context, path string) (res *htminl.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", path}
		if res != nil {
			attrs = append(attrs,
				"before", res.Before,
				"after", res.After,
				"cached", res.Cached,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin))
		if err != nil {
			attrs = append(attrs, "code", htminl.ErrorCode(err), "err", err)
		}
		m.logger.Info("minify", attrs...)
	}(time.Now())
	return m.next.Minify(ctx, path)
}
