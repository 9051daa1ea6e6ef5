package fs

import (
	"context"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htminl"
)

// Ensure Minifier implements htminl.Minifier at compile time.
var _ htminl.Minifier = (*Minifier)(nil)

// Minifier minifies HTML files in place.
type Minifier struct {
	parser htminl.Parser

	// Cache, if set, lets documents already known to be minimal skip
	// parsing.
	Cache htminl.Cache

	// Verifier, if set, must accept the minified markup before it is
	// written.
	Verifier htminl.Verifier
}

// NewMinifier creates a new Minifier parsing with p.
func NewMinifier(p htminl.Parser) *Minifier {
	return &Minifier{parser: p}
}

// Minify reads the file at path, minifies it and writes the result back when
// it is smaller. Returns EREAD, EEMPTY, EPARSE or ESAVE on failure; on any
// failure the file is left untouched.
func (m *Minifier) Minify(ctx context.Context, path string) (*htminl.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, htminl.Errorf(htminl.EREAD, "unable to read %s: %v", path, err)
	}
	if len(raw) == 0 {
		return nil, htminl.Errorf(htminl.EEMPTY, "%s is empty", path)
	}

	size := uint64(len(raw))
	res := &htminl.Result{Path: path, Before: size, After: size}

	var hash uint64
	if m.Cache != nil {
		hash = xxhash.Sum64(raw)
		known, err := m.Cache.Known(ctx, path, hash)
		if err != nil {
			return nil, err
		}
		if known {
			res.Cached = true
			return res, nil
		}
	}

	out, err := htminl.MinifyDocument(raw, m.parser)
	if err != nil {
		return nil, err
	}

	if len(out) > 0 && len(out) < len(raw) {
		if m.Verifier != nil {
			if err := m.Verifier.Verify(raw, out); err != nil {
				return nil, err
			}
		}
		if err := WriteFileAtomic(path, out); err != nil {
			return nil, htminl.Errorf(htminl.ESAVE, "unable to save %s: %v", path, err)
		}
		res.After = uint64(len(out))
		if m.Cache != nil {
			hash = xxhash.Sum64(out)
		}
	}

	if m.Cache != nil {
		if err := m.Cache.Remember(ctx, path, hash, res.After); err != nil {
			return nil, err
		}
	}
	return res, nil
}
