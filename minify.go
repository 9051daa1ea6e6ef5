package htminl

// nonce is the Content-Security-Policy attribute that pins a script or style
// to its exact bytes.
var nonce = AttrName("nonce")

// Minify rewrites the tree in place, trimming, collapsing and dropping text
// according to each element's whitespace policy and removing placeholder
// nodes.
func Minify(t *Tree) {
	minifyNode(t, t.Root(), RootPolicy)
}

func minifyNode(t *Tree, id NodeID, policy Trait) {
	if policy.Has(TraitTrim) {
		trimEdges(t, id)
	}

	children := t.nodes[id].Children
	kept := children[:0]
	for _, c := range children {
		child := &t.nodes[c]
		switch child.Kind {
		case TextNode:
			if !minifyText(child, policy) {
				continue
			}
		case ElementNode:
			if !preserved(child) {
				minifyNode(t, c, child.Traits.Policy())
			}
		case DocumentNode:
			minifyNode(t, c, RootPolicy)
		case IgnoredNode:
			continue
		}
		kept = append(kept, c)
	}
	t.nodes[id].Children = kept
}

// trimEdges trims leading whitespace from the first child and trailing
// whitespace from the last child of id when they are text.
func trimEdges(t *Tree, id NodeID) {
	children := t.nodes[id].Children
	if len(children) == 0 {
		return
	}
	if first := &t.nodes[children[0]]; first.Kind == TextNode {
		first.Text = TrimLeft(first.Text)
	}
	if last := &t.nodes[children[len(children)-1]]; last.Kind == TextNode {
		last.Text = TrimRight(last.Text)
	}
}

// minifyText applies policy to a text node, reporting whether it should be
// kept.
func minifyText(n *Node, policy Trait) bool {
	switch {
	case len(n.Text) == 0:
		return false
	case policy.Has(TraitDropAny):
		return false
	case policy.Has(TraitDropBlank) && IsWhitespace(n.Text):
		return false
	case policy.Has(TraitCollapse):
		if text, changed := Collapse(n.Text); changed {
			n.Text = text
		}
		return len(n.Text) > 0
	}
	return true
}

// preserved reports whether an element's subtree must be left exactly as
// parsed.
func preserved(n *Node) bool {
	if !n.Traits.Has(TraitNonceable) {
		return false
	}
	_, ok := n.Attr(nonce)
	return ok
}
