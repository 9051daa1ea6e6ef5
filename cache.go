package htminl

import "context"

// Cache remembers documents that are already as small as they can get, keyed
// by path and content hash, so later runs can skip them without parsing.
type Cache interface {
	// Known reports whether the document at path with the given content
	// hash is already minimal.
	Known(ctx context.Context, path string, hash uint64) (bool, error)

	// Remember records that the document at path with the given content
	// hash and size is minimal.
	Remember(ctx context.Context, path string, hash uint64, size uint64) error
}

// Verifier checks that minified markup still says the same thing as the
// original.
type Verifier interface {
	// Verify returns an ESAVE error when after differs from before in a way
	// minification must not cause.
	Verify(before, after []byte) error
}
