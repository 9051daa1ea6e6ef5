// Package htminl minifies HTML documents in place. It parses markup into a
// tree, prunes and compacts that tree under element-aware whitespace and
// attribute rules, and serializes it back into smaller, semantically
// equivalent markup.
//
// This package contains domain types, interfaces and the core tree
// algorithms following Ben Johnson's Standard Package Layout.
// Implementations that wrap a dependency live in subdirectories named after
// it (e.g., html/, sqlite/, goquery/).
package htminl

import "context"

// Result describes the outcome of minifying a single document.
type Result struct {
	// Path is the file that was processed.
	Path string

	// Before is the original size in bytes.
	Before uint64

	// After is the size in bytes once processing finished. It equals
	// Before when nothing was written.
	After uint64

	// Cached is true when the document was skipped because the cache
	// already knew it to be minimal.
	Cached bool
}

// Changed reports whether the document was rewritten.
func (r *Result) Changed() bool {
	return r.After < r.Before
}

// Saved returns the number of bytes saved.
func (r *Result) Saved() uint64 {
	if r.After >= r.Before {
		return 0
	}
	return r.Before - r.After
}

// Minifier minifies one document identified by path.
type Minifier interface {
	// Minify reads, minifies and (if smaller) rewrites the document.
	// A document that could not be made smaller is a success with
	// Before == After. The context is only consulted before work starts;
	// a document in flight is always completed or left untouched.
	Minify(ctx context.Context, path string) (*Result, error)
}
