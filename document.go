package htminl

import (
	"bytes"
	"errors"
)

// MinifyDocument runs the full pipeline over one document: line endings are
// normalized, fragments are wrapped, the markup is parsed through p into a
// Tree, minified, serialized and, for fragments, unwrapped again.
//
// The returned markup may be larger than raw; callers decide whether to keep
// it.
func MinifyDocument(raw []byte, p Parser) ([]byte, error) {
	normalized := NormalizeNewlines(raw)

	src := normalized
	fragment := IsFragment(src)
	if fragment {
		src = WrapFragment(src)
	}

	b := NewTreeBuilder()
	if err := p.Parse(bytes.NewReader(src), b); err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, Errorf(EPARSE, "%v", err)
	}
	tree, err := b.Finish()
	if err != nil {
		return nil, err
	}

	Minify(tree)

	opts := []SerializeOption{WithSizeHint(len(raw))}
	if fragment {
		opts = append(opts, WithoutNewlines())
	}
	out, err := Serialize(tree, opts...)
	if err != nil {
		return nil, err
	}

	if !fragment {
		return out, nil
	}
	out, err = UnwrapFragment(out)
	if err != nil {
		return nil, err
	}
	if swallowedScaffold(normalized, out) {
		return nil, Errorf(EPARSE, "fragment ends inside an unclosed element")
	}
	return out, nil
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF. raw is
// returned as-is when it holds no carriage returns.
func NormalizeNewlines(raw []byte) []byte {
	if bytes.IndexByte(raw, '\r') < 0 {
		return raw
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			c = '\n'
		}
		out = append(out, c)
	}
	return out
}
