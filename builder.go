package htminl

import "io"

// Parser drives a Sink with the tree-construction steps for an HTML
// document read from r.
type Parser interface {
	Parse(r io.Reader, sink Sink) error
}

// ElementFlags carries parser hints for a newly created element.
type ElementFlags struct {
	// Template is set for the HTML template element, whose content is held
	// by a separate document until the tree is finished.
	Template bool

	// MathMLAnnotationXMLIntegrationPoint is reported by the parser for
	// annotation-xml elements that accept HTML content. The tree does not
	// use it.
	MathMLAnnotationXMLIntegrationPoint bool
}

// Child is either a node or a run of text handed to one of the Sink's
// append methods.
type Child struct {
	Node NodeID
	Text string

	text bool
}

// NodeChild wraps a node for appending.
func NodeChild(id NodeID) Child {
	return Child{Node: id}
}

// TextChild wraps text for appending.
func TextChild(s string) Child {
	return Child{Node: InvalidNode, Text: s, text: true}
}

// IsText reports whether c carries text rather than a node.
func (c Child) IsText() bool {
	return c.text
}

// Sink is the interface a parser uses to materialize a document tree.
// Handles are NodeIDs; methods given a handle that cannot be resolved record
// a deferred error instead of failing immediately.
type Sink interface {
	// Document returns the root document.
	Document() NodeID

	// CreateElement creates a detached element.
	CreateElement(name QualName, attrs []Attr, flags ElementFlags) NodeID

	// CreateComment creates a placeholder that is never attached or written.
	CreateComment(text string) NodeID

	// CreatePI creates a placeholder for a processing instruction.
	CreatePI(target, data string) NodeID

	// AppendDoctype is called for the document type declaration.
	AppendDoctype(name, publicID, systemID string)

	// Append adds child as the last child of parent, merging adjacent text.
	Append(parent NodeID, child Child)

	// AppendBeforeSibling inserts child immediately before sibling.
	AppendBeforeSibling(sibling NodeID, child Child)

	// AppendBasedOnParentNode inserts child before sibling when sibling is
	// attached to the tree, otherwise appends it to lastParent.
	AppendBasedOnParentNode(sibling, lastParent NodeID, child Child)

	// RemoveFromParent detaches target from its parent.
	RemoveFromParent(target NodeID)

	// ReparentChildren moves every child of oldParent to the end of
	// newParent.
	ReparentChildren(oldParent, newParent NodeID)

	// SameNode reports whether x and y are the same node.
	SameNode(x, y NodeID) bool

	// TemplateContents returns the content document of a template element.
	TemplateContents(target NodeID) NodeID

	// AddAttrsIfMissing adds each attribute whose name target lacks.
	AddAttrsIfMissing(target NodeID, attrs []Attr)

	// ElemName returns the qualified name of an element.
	ElemName(target NodeID) QualName
}

// Ensure TreeBuilder implements Sink at compile time.
var _ Sink = (*TreeBuilder)(nil)

// TreeBuilder builds a Tree from parser callbacks.
type TreeBuilder struct {
	tree *Tree
	err  *Error
}

// NewTreeBuilder returns a builder holding an empty document.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{tree: NewTree()}
}

// fail records the first unresolved inconsistency.
func (b *TreeBuilder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = Errorf(EPARSE, format, args...)
	}
}

// Err returns the deferred error, if any.
func (b *TreeBuilder) Err() error {
	if b.err == nil {
		return nil
	}
	return b.err
}

// Finish checks for deferred errors, post-processes the tree and returns
// it. The builder must not be used afterwards.
func (b *TreeBuilder) Finish() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}
	postProcess(b.tree)
	return b.tree, nil
}

func (b *TreeBuilder) Document() NodeID {
	return b.tree.Root()
}

func (b *TreeBuilder) CreateElement(name QualName, attrs []Attr, flags ElementFlags) NodeID {
	id := b.tree.NewElement(name, attrs)
	if flags.Template {
		content := b.tree.add(Node{Kind: DocumentNode})
		b.tree.AppendChild(id, content)
	}
	return id
}

func (b *TreeBuilder) CreateComment(string) NodeID {
	return b.tree.add(Node{Kind: IgnoredNode})
}

func (b *TreeBuilder) CreatePI(string, string) NodeID {
	return b.tree.add(Node{Kind: IgnoredNode})
}

func (b *TreeBuilder) AppendDoctype(string, string, string) {}

func (b *TreeBuilder) Append(parent NodeID, child Child) {
	p := b.tree.Node(parent)
	if p == nil {
		b.fail("append to unknown node %d", parent)
		return
	}

	if child.IsText() {
		if n := len(p.Children); n > 0 {
			if last := &b.tree.nodes[p.Children[n-1]]; last.Kind == TextNode {
				last.Text = append(last.Text, child.Text...)
				return
			}
		}
		id := b.tree.NewText(child.Text)
		p = b.tree.Node(parent)
		p.Children = append(p.Children, id)
		return
	}

	c := b.tree.Node(child.Node)
	if c == nil {
		b.fail("append of unknown node %d", child.Node)
		return
	}
	if c.Kind == ElementNode {
		p.Children = append(p.Children, child.Node)
	}
}

func (b *TreeBuilder) AppendBeforeSibling(sibling NodeID, child Child) {
	parent, pos, ok := b.tree.findParent(sibling)
	if !ok {
		b.fail("sibling %d is not in the tree", sibling)
		return
	}

	if child.IsText() {
		children := b.tree.nodes[parent].Children
		if pos > 0 {
			if prev := &b.tree.nodes[children[pos-1]]; prev.Kind == TextNode {
				prev.Text = append(prev.Text, child.Text...)
				return
			}
		}
		b.insert(parent, pos, b.tree.NewText(child.Text))
		return
	}

	c := b.tree.Node(child.Node)
	if c == nil {
		b.fail("insert of unknown node %d", child.Node)
		return
	}
	if c.Kind == ElementNode {
		b.insert(parent, pos, child.Node)
	}
}

func (b *TreeBuilder) insert(parent NodeID, pos int, id NodeID) {
	p := &b.tree.nodes[parent]
	p.Children = append(p.Children, InvalidNode)
	copy(p.Children[pos+1:], p.Children[pos:])
	p.Children[pos] = id
}

func (b *TreeBuilder) AppendBasedOnParentNode(sibling, lastParent NodeID, child Child) {
	if _, _, ok := b.tree.findParent(sibling); ok {
		b.AppendBeforeSibling(sibling, child)
		return
	}
	b.Append(lastParent, child)
}

func (b *TreeBuilder) RemoveFromParent(target NodeID) {
	if !b.tree.valid(target) {
		b.fail("remove of unknown node %d", target)
		return
	}
	parent, pos, ok := b.tree.findParent(target)
	if !ok {
		return
	}
	p := &b.tree.nodes[parent]
	p.Children = append(p.Children[:pos], p.Children[pos+1:]...)
}

func (b *TreeBuilder) ReparentChildren(oldParent, newParent NodeID) {
	from, to := b.tree.Node(oldParent), b.tree.Node(newParent)
	if from == nil || to == nil {
		b.fail("reparent between unknown nodes %d and %d", oldParent, newParent)
		return
	}
	to.Children = append(to.Children, from.Children...)
	from.Children = nil
}

func (b *TreeBuilder) SameNode(x, y NodeID) bool {
	return x == y
}

func (b *TreeBuilder) TemplateContents(target NodeID) NodeID {
	n := b.tree.Node(target)
	if n != nil && n.Kind == ElementNode && n.Traits.Has(TraitTemplate) && len(n.Children) > 0 {
		if content := n.Children[0]; b.tree.nodes[content].Kind == DocumentNode {
			return content
		}
	}
	b.fail("node %d has no template contents", target)
	return InvalidNode
}

func (b *TreeBuilder) AddAttrsIfMissing(target NodeID, attrs []Attr) {
	n := b.tree.Node(target)
	if n == nil {
		b.fail("add attributes to unknown node %d", target)
		return
	}
	if n.Kind != ElementNode {
		return
	}
	for _, a := range attrs {
		if !hasAttr(n.Attrs, a.Name) {
			n.Attrs = append(n.Attrs, a)
		}
	}
}

func (b *TreeBuilder) ElemName(target NodeID) QualName {
	n := b.tree.Node(target)
	if n == nil || n.Kind != ElementNode {
		b.fail("node %d is not an element", target)
		return QualName{}
	}
	return n.Name
}

// postProcess empties void elements and promotes template content into the
// template element itself.
func postProcess(t *Tree) {
	stack := []NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[id]
		if n.Kind == ElementNode {
			if n.Traits.Has(TraitVoid) {
				n.Children = nil
				continue
			}
			if n.Traits.Has(TraitTemplate) {
				n.Children = templateChildren(t, n.Children)
			}
		}
		stack = append(stack, n.Children...)
	}
}

// templateChildren returns the children of the content document found
// among children, or nothing if there is none.
func templateChildren(t *Tree, children []NodeID) []NodeID {
	for _, c := range children {
		if t.nodes[c].Kind == DocumentNode {
			return t.nodes[c].Children
		}
	}
	return nil
}
