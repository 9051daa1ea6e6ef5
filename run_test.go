package htminl_test

import (
	"testing"
	"time"

	"github.com/fwojciec/htminl"
	"github.com/stretchr/testify/assert"
)

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		run   htminl.Run
		valid bool
	}{
		{
			name:  "finished run",
			run:   htminl.Run{StartedAt: start, FinishedAt: start.Add(time.Second), Before: 10, After: 8},
			valid: true,
		},
		{
			name:  "instant run",
			run:   htminl.Run{StartedAt: start, FinishedAt: start},
			valid: true,
		},
		{
			name: "missing start",
			run:  htminl.Run{FinishedAt: start},
		},
		{
			name: "finished before start",
			run:  htminl.Run{StartedAt: start, FinishedAt: start.Add(-time.Second)},
		},
		{
			name: "grew documents",
			run:  htminl.Run{StartedAt: start, FinishedAt: start, Before: 1, After: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.run.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, htminl.EINVALID, htminl.ErrorCode(err))
		})
	}
}

func TestRun_Saved(t *testing.T) {
	t.Parallel()

	r := &htminl.Run{Before: 1200, After: 900}

	assert.Equal(t, uint64(300), r.Saved())
}

func TestResult(t *testing.T) {
	t.Parallel()

	changed := &htminl.Result{Before: 10, After: 7}
	same := &htminl.Result{Before: 10, After: 10}

	assert.True(t, changed.Changed())
	assert.Equal(t, uint64(3), changed.Saved())
	assert.False(t, same.Changed())
	assert.Equal(t, uint64(0), same.Saved())
}
