// Package html feeds documents parsed by golang.org/x/net/html into an
// htminl.Sink.
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/htminl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Parser implements htminl.Parser at compile time.
var _ htminl.Parser = (*Parser)(nil)

// Parser runs the HTML5 tree-construction algorithm from x/net/html and
// replays the resulting tree into a sink.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML document from r and drives sink with it. Scripting is
// enabled, so noscript content is raw text.
func (p *Parser) Parse(r io.Reader, sink htminl.Sink) error {
	doc, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(true))
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}
	return replay(doc, sink)
}

// pending is a parsed node waiting to be attached to parent.
type pending struct {
	node   *html.Node
	parent htminl.NodeID
}

// replay walks the parsed tree depth first with an explicit stack, creating
// every node through sink.
func replay(doc *html.Node, sink htminl.Sink) error {
	var stack []pending
	push := func(n *html.Node, parent htminl.NodeID) {
		start := len(stack)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			stack = append(stack, pending{node: c, parent: parent})
		}
		// Children must come off the stack in document order.
		for i, j := start, len(stack)-1; i < j; i, j = i+1, j-1 {
			stack[i], stack[j] = stack[j], stack[i]
		}
	}
	push(doc, sink.Document())

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := p.node
		switch n.Type {
		case html.ElementNode:
			name, err := elementName(n)
			if err != nil {
				return err
			}
			attrs, err := attributes(n.Attr)
			if err != nil {
				return err
			}
			template := n.DataAtom == atom.Template && n.Namespace == ""
			id := sink.CreateElement(name, attrs, htminl.ElementFlags{
				Template: template,
				MathMLAnnotationXMLIntegrationPoint: n.Namespace == "math" &&
					n.Data == "annotation-xml" && htmlIntegration(n),
			})
			sink.Append(p.parent, htminl.NodeChild(id))
			if template {
				push(n, sink.TemplateContents(id))
			} else {
				push(n, id)
			}
		case html.TextNode:
			sink.Append(p.parent, htminl.TextChild(n.Data))
		case html.CommentNode:
			sink.Append(p.parent, htminl.NodeChild(sink.CreateComment(n.Data)))
		case html.DoctypeNode:
			public, system := doctypeIDs(n)
			sink.AppendDoctype(n.Data, public, system)
		}
	}
	return nil
}

// elementName maps the parser's namespace strings onto htminl namespaces.
func elementName(n *html.Node) (htminl.QualName, error) {
	switch n.Namespace {
	case "":
		return htminl.QualName{Space: htminl.NamespaceHTML, Local: n.Data}, nil
	case "svg":
		return htminl.QualName{Space: htminl.NamespaceSVG, Local: n.Data}, nil
	case "math":
		return htminl.QualName{Space: htminl.NamespaceMathML, Local: n.Data}, nil
	}
	return htminl.QualName{}, htminl.Errorf(htminl.EPARSE, "unknown element namespace %q", n.Namespace)
}

func attributes(in []html.Attribute) ([]htminl.Attr, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]htminl.Attr, 0, len(in))
	for _, a := range in {
		var space htminl.Namespace
		switch a.Namespace {
		case "":
			space = htminl.NamespaceNone
		case "xml":
			space = htminl.NamespaceXML
		case "xmlns":
			space = htminl.NamespaceXMLNS
		case "xlink":
			space = htminl.NamespaceXLink
		default:
			return nil, htminl.Errorf(htminl.EPARSE, "unknown attribute namespace %q", a.Namespace)
		}
		out = append(out, htminl.Attr{
			Name:  htminl.QualName{Space: space, Local: a.Key},
			Value: a.Val,
		})
	}
	return out, nil
}

// htmlIntegration reports whether a MathML annotation-xml element accepts
// HTML content.
func htmlIntegration(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "encoding" {
			return strings.EqualFold(a.Val, "text/html") ||
				strings.EqualFold(a.Val, "application/xhtml+xml")
		}
	}
	return false
}

// doctypeIDs returns the public and system identifiers the parser stores as
// attributes of a doctype node.
func doctypeIDs(n *html.Node) (public, system string) {
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			public = a.Val
		case "system":
			system = a.Val
		}
	}
	return public, system
}
