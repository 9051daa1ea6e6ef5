package htminl

// Namespace identifies the namespace of an element or attribute name.
type Namespace uint8

// Namespaces recognized by the tree. Attributes without a prefix use
// NamespaceNone.
const (
	NamespaceNone Namespace = iota
	NamespaceHTML
	NamespaceSVG
	NamespaceMathML
	NamespaceXML
	NamespaceXMLNS
	NamespaceXLink
)

// QualName is a namespace plus local name.
type QualName struct {
	Space Namespace
	Local string
}

// HTMLName returns the qualified name of an HTML element.
func HTMLName(local string) QualName {
	return QualName{Space: NamespaceHTML, Local: local}
}

// AttrName returns the qualified name of an unprefixed attribute.
func AttrName(local string) QualName {
	return QualName{Space: NamespaceNone, Local: local}
}

// Attr is a single element attribute.
type Attr struct {
	Name  QualName
	Value string
}

// NodeKind tags the variant held by a Node.
type NodeKind uint8

const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
	IgnoredNode
)

// NodeID addresses a node within its Tree.
type NodeID int

// InvalidNode is returned where no node can be produced.
const InvalidNode NodeID = -1

// Node is one entry of the tree arena.
type Node struct {
	Kind NodeKind

	// Element fields.
	Name   QualName
	Attrs  []Attr
	Traits Trait

	// Text holds the contents of a TextNode.
	Text []byte

	Children []NodeID
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name QualName) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Tree is an arena of nodes. Node 0 is the document root. Nodes hold no
// parent references; child lists are slices of IDs.
type Tree struct {
	nodes []Node
}

// NewTree returns a tree holding only the document root.
func NewTree() *Tree {
	return &Tree{nodes: []Node{{Kind: DocumentNode}}}
}

// Root returns the ID of the document root.
func (t *Tree) Root() NodeID {
	return 0
}

// Node returns the node with the given ID, or nil if id is out of range.
func (t *Tree) Node(id NodeID) *Node {
	if !t.valid(id) {
		return nil
	}
	return &t.nodes[id]
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// NewElement adds a detached element to the arena.
func (t *Tree) NewElement(name QualName, attrs []Attr) NodeID {
	return t.add(Node{
		Kind:   ElementNode,
		Name:   name,
		Attrs:  dedupeAttrs(attrs),
		Traits: TraitsOf(name),
	})
}

// NewText adds a detached text node to the arena.
func (t *Tree) NewText(text string) NodeID {
	return t.add(Node{Kind: TextNode, Text: []byte(text)})
}

// AppendChild attaches child as the last child of parent without any
// merging.
func (t *Tree) AppendChild(parent, child NodeID) {
	p := t.Node(parent)
	p.Children = append(p.Children, child)
}

// findParent walks the tree from the root looking for the node that owns
// target, returning it and target's index in its child list.
func (t *Tree) findParent(target NodeID) (NodeID, int, bool) {
	stack := []NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := t.nodes[id].Children
		for i, c := range children {
			if c == target {
				return id, i, true
			}
		}
		stack = append(stack, children...)
	}
	return InvalidNode, 0, false
}

// dedupeAttrs keeps the first occurrence of each attribute name.
func dedupeAttrs(attrs []Attr) []Attr {
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if !hasAttr(out, a.Name) {
			out = append(out, a)
		}
	}
	return out
}

func hasAttr(attrs []Attr, name QualName) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}
