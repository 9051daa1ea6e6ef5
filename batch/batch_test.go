package batch_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/htminl"
	"github.com/fwojciec/htminl/batch"
	"github.com/fwojciec/htminl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// results maps each path to the outcome the mock minifier reports for it.
func results(outcomes map[string]*htminl.Result, failures map[string]error) *mock.Minifier {
	return &mock.Minifier{
		MinifyFn: func(_ context.Context, path string) (*htminl.Result, error) {
			if err, ok := failures[path]; ok {
				return nil, err
			}
			return outcomes[path], nil
		},
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("totals every outcome", func(t *testing.T) {
		t.Parallel()

		// Given
		m := results(map[string]*htminl.Result{
			"a.html": {Path: "a.html", Before: 100, After: 60},
			"b.html": {Path: "b.html", Before: 50, After: 50},
			"c.html": {Path: "c.html", Before: 30, After: 30, Cached: true},
		}, map[string]error{
			"d.html": htminl.Errorf(htminl.EEMPTY, "d.html is empty"),
		})
		r := &batch.Runner{Minifier: m, Jobs: 2}

		// When
		sum, err := r.Run(context.Background(), []string{"a.html", "b.html", "c.html", "d.html"}, nil)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 4, sum.Documents)
		assert.Equal(t, 1, sum.Minified)
		assert.Equal(t, 1, sum.Unchanged)
		assert.Equal(t, 1, sum.Cached)
		assert.Equal(t, 1, sum.Failed)
		assert.Equal(t, uint64(180), sum.Before)
		assert.Equal(t, uint64(140), sum.After)
		assert.Equal(t, uint64(40), sum.Saved())
	})

	t.Run("reports progress in order", func(t *testing.T) {
		t.Parallel()

		m := results(map[string]*htminl.Result{
			"a.html": {Path: "a.html", Before: 10, After: 5},
			"b.html": {Path: "b.html", Before: 10, After: 10},
		}, map[string]error{
			"c.html": htminl.Errorf(htminl.EPARSE, "broken"),
		})
		r := &batch.Runner{Minifier: m, Jobs: 3}

		var events []batch.ProgressEvent
		_, err := r.Run(context.Background(), []string{"a.html", "b.html", "c.html"}, func(e batch.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 5)
		assert.Equal(t, batch.ProgressStarted, events[0].Type)
		assert.Equal(t, 3, events[0].Total)

		var completed, failed int
		for i, e := range events[1:4] {
			assert.Equal(t, i+1, e.Completed)
			assert.Equal(t, 3, e.Total)
			switch e.Type {
			case batch.ProgressCompleted:
				completed++
				assert.NotNil(t, e.Result)
			case batch.ProgressFailed:
				failed++
				assert.Equal(t, "c.html", e.Path)
				assert.Equal(t, htminl.EPARSE, htminl.ErrorCode(e.Error))
			}
		}
		assert.Equal(t, 2, completed)
		assert.Equal(t, 1, failed)

		assert.Equal(t, batch.ProgressFinished, events[4].Type)
		assert.Equal(t, 3, events[4].Completed)
	})

	t.Run("processes every path exactly once", func(t *testing.T) {
		t.Parallel()

		paths := make([]string, 50)
		for i := range paths {
			paths[i] = string(rune('a'+i%26)) + string(rune('a'+i/26)) + ".html"
		}

		var mu sync.Mutex
		seen := make(map[string]int)
		m := &mock.Minifier{
			MinifyFn: func(_ context.Context, path string) (*htminl.Result, error) {
				mu.Lock()
				seen[path]++
				mu.Unlock()
				return &htminl.Result{Path: path, Before: 2, After: 1}, nil
			},
		}
		r := &batch.Runner{Minifier: m, Jobs: 4}

		sum, err := r.Run(context.Background(), paths, nil)

		require.NoError(t, err)
		assert.Equal(t, 50, sum.Minified)
		assert.Equal(t, uint64(50), sum.Saved())
		assert.Len(t, seen, 50)
		for path, n := range seen {
			assert.Equal(t, 1, n, path)
		}
	})

	t.Run("never exceeds the job limit", func(t *testing.T) {
		t.Parallel()

		var running, peak atomic.Int32
		m := &mock.Minifier{
			MinifyFn: func(_ context.Context, path string) (*htminl.Result, error) {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				running.Add(-1)
				return &htminl.Result{Path: path, Before: 1, After: 1}, nil
			},
		}
		r := &batch.Runner{Minifier: m, Jobs: 2}

		paths := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		_, err := r.Run(context.Background(), paths, nil)

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("handles an empty list", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{Minifier: &mock.Minifier{}}

		sum, err := r.Run(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, sum.Documents)
	})

	t.Run("stops starting documents once canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var calls atomic.Int32
		m := &mock.Minifier{
			MinifyFn: func(_ context.Context, path string) (*htminl.Result, error) {
				calls.Add(1)
				return &htminl.Result{Path: path, Before: 1, After: 1}, nil
			},
		}
		r := &batch.Runner{Minifier: m, Jobs: 1}

		sum, err := r.Run(ctx, []string{"a", "b", "c"}, nil)

		require.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, sum)
		assert.Equal(t, int32(0), calls.Load())
		assert.Equal(t, 3, sum.Documents)
		assert.Equal(t, 3, sum.Skipped)
		assert.Equal(t, 0, sum.Failed)
	})

	t.Run("counts documents interrupted by cancellation as skipped", func(t *testing.T) {
		t.Parallel()

		// Given a minifier that sees the run canceled while it works
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		m := &mock.Minifier{
			MinifyFn: func(ctx context.Context, _ string) (*htminl.Result, error) {
				cancel()
				return nil, ctx.Err()
			},
		}
		r := &batch.Runner{Minifier: m, Jobs: 1}

		var types []batch.ProgressType
		// When
		sum, err := r.Run(ctx, []string{"a", "b", "c"}, func(e batch.ProgressEvent) {
			types = append(types, e.Type)
		})

		// Then
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, sum.Failed)
		assert.Equal(t, 3, sum.Skipped)
		assert.Equal(t, []batch.ProgressType{
			batch.ProgressStarted,
			batch.ProgressSkipped,
			batch.ProgressFinished,
		}, types)
	})
}
