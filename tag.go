package htminl

// Trait is a set of element properties derived from the element's qualified
// name. It is computed once when the element is created.
type Trait uint16

const (
	// TraitCollapse collapses runs of whitespace in child text to a single
	// space.
	TraitCollapse Trait = 1 << iota

	// TraitDropAny drops every child text node.
	TraitDropAny

	// TraitDropBlank drops child text nodes that hold only whitespace.
	TraitDropBlank

	// TraitTrim trims leading whitespace from the first child and trailing
	// whitespace from the last child when they are text.
	TraitTrim

	// TraitVoid marks HTML elements that can have neither children nor a
	// closing tag.
	TraitVoid

	// TraitRawText marks elements whose text is written unescaped.
	TraitRawText

	// TraitNewlines puts direct element children, and the closing tag, on a
	// fresh line.
	TraitNewlines

	// TraitTemplate marks the HTML template element.
	TraitTemplate

	// TraitNonceable marks script and style elements, which are left alone
	// when they carry a nonce.
	TraitNonceable

	// TraitLeadingNewline marks elements whose first newline is eaten by the
	// parser (pre, listing, textarea).
	TraitLeadingNewline
)

// Has reports whether every bit of flag is set.
func (t Trait) Has(flag Trait) bool {
	return t&flag == flag
}

// whitespaceTraits masks the bits that make up a whitespace policy.
const whitespaceTraits = TraitCollapse | TraitDropAny | TraitDropBlank | TraitTrim

// RootPolicy is the whitespace policy applied to the children of the
// document itself.
const RootPolicy = TraitCollapse | TraitDropBlank | TraitTrim

// Policy returns the whitespace bits of t.
func (t Trait) Policy() Trait {
	return t & whitespaceTraits
}

// HTML elements in which contiguous whitespace has no effect.
var htmlCollapse = []string{
	"a", "abbr", "acronym", "address", "applet", "area", "article", "aside",
	"audio", "b", "base", "basefont", "bdi", "bdo", "big", "blink",
	"blockquote", "body", "br", "button", "canvas", "caption", "center",
	"cite", "col", "colgroup", "content", "data", "datalist", "dd", "del",
	"details", "dfn", "dialog", "dir", "div", "dl", "dt", "em", "embed",
	"fieldset", "figcaption", "figure", "font", "footer", "form", "frame",
	"frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header",
	"hgroup", "hr", "html", "i", "iframe", "img", "input", "ins", "isindex",
	"kbd", "label", "legend", "li", "link", "main", "map", "mark",
	"menu", "menuitem", "meta", "meter", "nav", "nobr", "noframes",
	"noscript", "object", "ol", "optgroup", "option", "output", "p", "param",
	"picture", "progress", "q", "rb", "rp", "rt", "rtc", "ruby", "s", "samp",
	"section", "select", "slot", "small", "source", "span", "strike",
	"strong", "sub", "summary", "sup", "table", "tbody", "td", "tfoot", "th",
	"thead", "time", "title", "tr", "tt", "u", "ul", "var", "video", "wbr",
}

// HTML elements which should not hold any text at all.
var htmlDropAny = []string{
	"audio", "head", "html", "optgroup", "picture", "select", "table",
	"tbody", "tfoot", "tr", "video",
}

// HTML elements whose whitespace-only text serves no purpose.
var htmlDropBlank = []string{"body", "option", "template"}

// HTML elements whose first and last text children can be trimmed, in
// addition to everything in htmlDropAny and htmlDropBlank.
var htmlTrim = []string{"script", "style", "title"}

// Void HTML elements, including obsolete ones the parser still recognizes.
var htmlVoid = []string{
	"area", "base", "basefont", "bgsound", "br", "col", "embed", "frame",
	"hr", "img", "input", "keygen", "link", "meta", "param", "source",
	"track", "wbr",
}

// HTML elements the parser reads as raw text; their text is written back
// byte for byte.
var htmlRawText = []string{
	"iframe", "noembed", "noframes", "noscript", "plaintext", "script",
	"style", "xmp",
}

var svgDropBlank = []string{"defs", "g", "svg", "symbol"}

var svgTrim = []string{"desc", "script", "style", "title"}

var (
	htmlTraits = buildTraits(
		traitRow{htmlCollapse, TraitCollapse},
		traitRow{htmlDropAny, TraitDropAny | TraitTrim},
		traitRow{htmlDropBlank, TraitDropBlank | TraitTrim},
		traitRow{htmlTrim, TraitTrim},
		traitRow{htmlVoid, TraitVoid},
		traitRow{htmlRawText, TraitRawText},
		traitRow{[]string{"html", "body"}, TraitNewlines},
		traitRow{[]string{"template"}, TraitTemplate},
		traitRow{[]string{"script", "style"}, TraitNonceable},
		traitRow{[]string{"pre", "listing", "textarea"}, TraitLeadingNewline},
	)
	svgTraits = buildTraits(
		traitRow{svgDropBlank, TraitDropBlank},
		traitRow{svgTrim, TraitTrim},
		traitRow{[]string{"script", "style"}, TraitNonceable},
	)
)

type traitRow struct {
	tags  []string
	trait Trait
}

func buildTraits(rows ...traitRow) map[string]Trait {
	m := make(map[string]Trait)
	for _, row := range rows {
		for _, tag := range row.tags {
			m[tag] |= row.trait
		}
	}
	return m
}

// TraitsOf classifies an element by namespace and local name.
func TraitsOf(name QualName) Trait {
	switch name.Space {
	case NamespaceHTML:
		return htmlTraits[name.Local]
	case NamespaceSVG:
		return svgTraits[name.Local]
	}
	return 0
}

// IsVoid reports whether name is a void HTML element.
func IsVoid(name QualName) bool {
	return TraitsOf(name).Has(TraitVoid)
}
