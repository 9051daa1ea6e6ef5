package htminl

// isSpace reports whether c is HTML whitespace. Carriage returns are
// normalized away before parsing and U+00A0 is never whitespace.
func isSpace(c byte) bool {
	switch c {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

// IsWhitespace reports whether txt is empty or holds only whitespace.
func IsWhitespace(txt []byte) bool {
	for _, c := range txt {
		if !isSpace(c) {
			return false
		}
	}
	return true
}

// TrimLeft returns txt without leading whitespace.
func TrimLeft(txt []byte) []byte {
	i := 0
	for i < len(txt) && isSpace(txt[i]) {
		i++
	}
	return txt[i:]
}

// TrimRight returns txt without trailing whitespace.
func TrimRight(txt []byte) []byte {
	i := len(txt)
	for i > 0 && isSpace(txt[i-1]) {
		i--
	}
	return txt[:i]
}

// Trim returns txt without leading or trailing whitespace.
func Trim(txt []byte) []byte {
	return TrimRight(TrimLeft(txt))
}

// Collapse replaces every run of whitespace in txt with a single space.
// The second return value is false, and txt is returned as-is, when nothing
// needed changing.
func Collapse(txt []byte) ([]byte, bool) {
	// Find the first whitespace that is not a lone space.
	pos := -1
	for i, c := range txt {
		if !isSpace(c) {
			continue
		}
		if c != ' ' || (i+1 < len(txt) && isSpace(txt[i+1])) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return txt, false
	}

	out := make([]byte, pos, len(txt))
	copy(out, txt[:pos])
	inSpace := false
	for _, c := range txt[pos:] {
		if isSpace(c) {
			if !inSpace {
				out = append(out, ' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		out = append(out, c)
	}
	return out, true
}
