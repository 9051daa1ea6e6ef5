package htminl

import "bytes"

// Scaffold wrapped around fragments before parsing, and the exact bytes it
// serializes to once minified.
const (
	fragmentOpen  = "<html><head></head><body>"
	fragmentClose = "</body></html>"

	serializedOpen  = Doctype + fragmentOpen
	serializedClose = fragmentClose

	// escapedClose is fragmentClose as written inside escaped text.
	escapedClose = "&lt;/body&gt;&lt;/html&gt;"
)

// documentMarkers are the tags whose presence makes input a whole document.
var documentMarkers = [][]byte{
	[]byte("<html"),
	[]byte("<body"),
	[]byte("</body>"),
	[]byte("</html>"),
}

// IsFragment reports whether raw lacks every one of <html, <body, </body>
// and </html>, compared case-insensitively.
func IsFragment(raw []byte) bool {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '<' {
			continue
		}
		for _, m := range documentMarkers {
			if hasPrefixFold(raw[i:], m) {
				return false
			}
		}
	}
	return true
}

func hasPrefixFold(s, prefix []byte) bool {
	return len(s) >= len(prefix) && bytes.EqualFold(s[:len(prefix)], prefix)
}

// WrapFragment returns raw enclosed in a minimal html/head/body scaffold.
func WrapFragment(raw []byte) []byte {
	out := make([]byte, 0, len(fragmentOpen)+len(raw)+len(fragmentClose))
	out = append(out, fragmentOpen...)
	out = append(out, raw...)
	return append(out, fragmentClose...)
}

// UnwrapFragment strips the serialized scaffold from out. The serializer
// must have been run with WithoutNewlines. A missing prefix or suffix means
// the parser restructured the fragment and is reported as EPARSE.
func UnwrapFragment(out []byte) ([]byte, error) {
	if !bytes.HasPrefix(out, []byte(serializedOpen)) || !bytes.HasSuffix(out[len(serializedOpen):], []byte(serializedClose)) {
		return nil, Errorf(EPARSE, "fragment scaffold did not survive parsing")
	}
	return out[len(serializedOpen) : len(out)-len(serializedClose)], nil
}

// swallowedScaffold reports whether the closing scaffold was read as content
// of an unclosed raw text or RCDATA element, so that unwrapped holds it
// although src, the fragment as given, does not.
func swallowedScaffold(src, unwrapped []byte) bool {
	for _, marker := range []string{fragmentClose, escapedClose} {
		if bytes.Contains(unwrapped, []byte(marker)) && !bytes.Contains(src, []byte(marker)) {
			return true
		}
	}
	return false
}
