package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/htminl"
	"github.com/fwojciec/htminl/bloom"
)

// Compile-time interface verification.
var _ htminl.Cache = (*CacheService)(nil)

// Bloom filter sizing for the cache front.
const (
	// cacheMinExpected is the smallest number of keys the filter is sized for.
	cacheMinExpected = 10000
	// cacheFalsePositiveRate is the acceptable rate of lookups reaching SQLite
	// for unknown documents.
	cacheFalsePositiveRate = 0.01
)

// CacheService implements htminl.Cache using SQLite. Lookups for documents
// the cache has never seen are answered by a Bloom filter without touching
// the database.
type CacheService struct {
	db     *DB
	filter *bloom.Filter
}

// NewCacheService creates a new CacheService, loading every stored entry
// into its Bloom filter.
func NewCacheService(ctx context.Context, db *DB) (*CacheService, error) {
	var n uint
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return nil, fmt.Errorf("failed to count cache entries: %w", err)
	}

	filter := bloom.NewFilter(max(2*n, cacheMinExpected), cacheFalsePositiveRate)

	rows, err := db.QueryContext(ctx, "SELECT path, hash FROM entries")
	if err != nil {
		return nil, fmt.Errorf("failed to load cache entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path, hash string
		if err := rows.Scan(&path, &hash); err != nil {
			return nil, err
		}
		filter.Add(cacheKey(path, hash))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &CacheService{db: db, filter: filter}, nil
}

// Known reports whether path was last remembered with the given hash.
func (s *CacheService) Known(ctx context.Context, path string, hash uint64) (bool, error) {
	h := formatHash(hash)
	if !s.filter.Test(cacheKey(path, h)) {
		return false, nil
	}

	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM entries WHERE path = ? AND hash = ?
	`, path, h).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remember records hash as the minimal content of path, replacing any
// previous entry.
func (s *CacheService) Remember(ctx context.Context, path string, hash uint64, size uint64) error {
	if path == "" {
		return htminl.Errorf(htminl.EINVALID, "cache entry path required")
	}

	h := formatHash(hash)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (path, hash, size, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			hash = excluded.hash,
			size = excluded.size,
			updated_at = excluded.updated_at
	`, path, h, int64(size), time.Now().UTC().Format(timestampFormat))
	if err != nil {
		return err
	}

	s.filter.Add(cacheKey(path, h))
	return nil
}
