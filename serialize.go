package htminl

import "bytes"

// Doctype is written once at the top of every serialized document.
const Doctype = "<!DOCTYPE html>\n"

// nbsp is the UTF-8 encoding of U+00A0.
const nbsp = "\u00a0"

// SerializeOption configures Serialize.
type SerializeOption func(*serializer)

// WithSizeHint preallocates n bytes for the output.
func WithSizeHint(n int) SerializeOption {
	return func(s *serializer) {
		if n > 0 {
			s.buf.Grow(n)
		}
	}
}

// WithoutNewlines disables the cosmetic line breaks around the children of
// html and body.
func WithoutNewlines() SerializeOption {
	return func(s *serializer) {
		s.newlines = false
	}
}

// Serialize writes the tree as minimal HTML. It walks the tree with an
// explicit stack so deeply nested documents cannot exhaust the goroutine
// stack.
func Serialize(t *Tree, opts ...SerializeOption) ([]byte, error) {
	s := &serializer{
		newlines: true,
		parents:  []frame{{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buf.WriteString(Doctype)

	type step struct {
		id    NodeID
		close bool
	}

	root := t.nodes[t.Root()].Children
	work := make([]step, 0, len(root))
	for i := len(root) - 1; i >= 0; i-- {
		work = append(work, step{id: root[i]})
	}

	for len(work) > 0 {
		st := work[len(work)-1]
		work = work[:len(work)-1]

		n := &t.nodes[st.id]
		if st.close {
			if err := s.endElem(n); err != nil {
				return nil, err
			}
			continue
		}

		switch n.Kind {
		case ElementNode:
			if err := s.startElem(n); err != nil {
				return nil, err
			}
			work = append(work, step{id: st.id, close: true})
			for i := len(n.Children) - 1; i >= 0; i-- {
				work = append(work, step{id: n.Children[i]})
			}
		case TextNode:
			if err := s.writeText(n.Text); err != nil {
				return nil, err
			}
		}
	}

	if len(s.parents) != 1 {
		return nil, Errorf(ESAVE, "unbalanced serializer stack: %d open elements", len(s.parents)-1)
	}
	return s.buf.Bytes(), nil
}

// frame describes an open element for the benefit of its children.
type frame struct {
	// newlines puts each child element on a fresh line.
	newlines bool

	// rawText writes child text unescaped.
	rawText bool

	// void means the element was closed as soon as it was opened.
	void bool

	// leadingNewline means a first child text starting with a newline
	// needs one more to survive reparsing.
	leadingNewline bool

	// written counts the children written so far.
	written int

	// afterText is set while the last child written was text. A line break
	// there would become part of that text on the next parse.
	afterText bool
}

type serializer struct {
	buf      bytes.Buffer
	newlines bool
	parents  []frame
}

func (s *serializer) parent() (*frame, error) {
	if len(s.parents) == 0 {
		return nil, Errorf(ESAVE, "no parent element")
	}
	return &s.parents[len(s.parents)-1], nil
}

func (s *serializer) startElem(n *Node) error {
	parent, err := s.parent()
	if err != nil {
		return err
	}
	parent.written++
	afterText := parent.afterText
	parent.afterText = false
	if parent.void {
		s.parents = append(s.parents, frame{void: true})
		return nil
	}

	if parent.newlines && s.newlines && !afterText {
		s.buf.WriteByte('\n')
	}

	s.buf.WriteByte('<')
	s.buf.WriteString(n.Name.Local)
	for _, a := range n.Attrs {
		if err := s.writeAttr(n.Name, a); err != nil {
			return err
		}
	}

	var void bool
	if len(n.Children) == 0 && n.Name.Space == NamespaceSVG && n.Name.Local != "svg" {
		// XML needs the slash.
		s.buf.WriteString("/>")
		void = true
	} else {
		s.buf.WriteByte('>')
		void = n.Traits.Has(TraitVoid)
	}

	s.parents = append(s.parents, frame{
		newlines:       n.Traits.Has(TraitNewlines),
		rawText:        n.Traits.Has(TraitRawText),
		leadingNewline: n.Traits.Has(TraitLeadingNewline),
		void:           void,
	})
	return nil
}

func (s *serializer) endElem(n *Node) error {
	if len(s.parents) < 2 {
		return Errorf(ESAVE, "closing <%s> with no open element", n.Name.Local)
	}
	f := s.parents[len(s.parents)-1]
	s.parents = s.parents[:len(s.parents)-1]
	if f.void {
		return nil
	}

	if f.newlines && s.newlines {
		s.buf.WriteByte('\n')
	}
	s.buf.WriteString("</")
	s.buf.WriteString(n.Name.Local)
	s.buf.WriteByte('>')
	return nil
}

func (s *serializer) writeAttr(tag QualName, a Attr) error {
	if isDefaultType(tag, a.Name, a.Value) {
		return nil
	}

	prefix, ok := attrPrefix(a.Name)
	if !ok {
		return Errorf(ESAVE, "unsupported namespace for attribute %q", a.Name.Local)
	}
	s.buf.WriteString(prefix)
	s.buf.WriteString(a.Name.Local)

	value := attrValue(tag, a.Name, a.Value)
	if value == "" {
		if tag.Space != NamespaceHTML {
			s.buf.WriteString(`=""`)
		}
		return nil
	}

	q := quoteFor(value)
	s.buf.WriteByte('=')
	s.buf.WriteByte(q)
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c == '&':
			s.buf.WriteString("&amp;")
		case c == '"' && q == '"':
			s.buf.WriteString("&#34;")
		case c == '\'' && q == '\'':
			s.buf.WriteString("&#39;")
		case c == nbsp[0] && i+1 < len(value) && value[i+1] == nbsp[1]:
			s.buf.WriteString("&nbsp;")
			i++
		default:
			s.buf.WriteByte(c)
		}
	}
	s.buf.WriteByte(q)
	return nil
}

func (s *serializer) writeText(txt []byte) error {
	parent, err := s.parent()
	if err != nil {
		return err
	}
	first := parent.written == 0
	parent.written++
	parent.afterText = true
	if parent.void {
		return nil
	}

	if parent.rawText {
		s.buf.Write(txt)
		return nil
	}

	if first && parent.leadingNewline && len(txt) > 0 && txt[0] == '\n' {
		s.buf.WriteByte('\n')
	}
	for i := 0; i < len(txt); i++ {
		switch c := txt[i]; {
		case c == '&':
			s.buf.WriteString("&amp;")
		case c == '<':
			s.buf.WriteString("&lt;")
		case c == '>':
			s.buf.WriteString("&gt;")
		case c == nbsp[0] && i+1 < len(txt) && txt[i+1] == nbsp[1]:
			s.buf.WriteString("&nbsp;")
			i++
		default:
			s.buf.WriteByte(c)
		}
	}
	return nil
}
