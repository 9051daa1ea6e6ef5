package htminl

import "strings"

// booleanAttrs maps boolean HTML attributes to the elements they are
// boolean on. A nil entry means every HTML element.
var booleanAttrs = map[string][]string{
	"allowfullscreen":          {"iframe"},
	"async":                    {"script"},
	"autofocus":                nil,
	"autoplay":                 {"audio", "video"},
	"checked":                  {"input"},
	"controls":                 {"audio", "video"},
	"default":                  {"track"},
	"defer":                    {"script"},
	"disabled":                 {"button", "fieldset", "input", "optgroup", "option", "select", "textarea"},
	"formnovalidate":           {"button", "input"},
	"inert":                    nil,
	"ismap":                    {"img"},
	"itemscope":                nil,
	"loop":                     {"audio", "video"},
	"multiple":                 {"input", "select"},
	"muted":                    {"audio", "video"},
	"nomodule":                 {"script"},
	"novalidate":               {"form"},
	"open":                     {"details", "dialog"},
	"playsinline":              {"video"},
	"readonly":                 {"input", "textarea"},
	"required":                 {"input", "select", "textarea"},
	"reversed":                 {"ol"},
	"selected":                 {"option"},
	"shadowrootclonable":       {"template"},
	"shadowrootdelegatesfocus": {"template"},
	"shadowrootserializable":   {"template"},
}

// defaultTypes maps elements to the type attribute value they assume when
// none is given.
var defaultTypes = map[string]string{
	"script": "text/javascript",
	"style":  "text/css",
}

// isBooleanAttr reports whether key is a boolean attribute of the HTML
// element tag.
func isBooleanAttr(tag, key QualName, value string) bool {
	if tag.Space != NamespaceHTML || key.Space != NamespaceNone {
		return false
	}
	if key.Local == "hidden" {
		return !strings.EqualFold(value, "until-found")
	}
	tags, ok := booleanAttrs[key.Local]
	if !ok {
		return false
	}
	if tags == nil {
		return true
	}
	for _, t := range tags {
		if t == tag.Local {
			return true
		}
	}
	return false
}

// isDefaultType reports whether the attribute is a type attribute restating
// the element's default.
func isDefaultType(tag, key QualName, value string) bool {
	if key != AttrName("type") {
		return false
	}
	if tag.Space != NamespaceHTML && tag.Space != NamespaceSVG {
		return false
	}
	def, ok := defaultTypes[tag.Local]
	return ok && strings.EqualFold(value, def)
}

// attrValue returns the value to write for an attribute after minification.
// Empty values on HTML elements are written as bare names.
func attrValue(tag, key QualName, value string) string {
	if isBooleanAttr(tag, key, value) {
		v := strings.TrimSpace(value)
		if v == "" || strings.EqualFold(v, "true") || strings.EqualFold(v, key.Local) {
			return ""
		}
		return value
	}
	if key == AttrName("class") {
		v, _ := Collapse(Trim([]byte(value)))
		return string(v)
	}
	return value
}

// attrPrefix returns what is written between the preceding byte and the
// attribute's local name.
func attrPrefix(key QualName) (string, bool) {
	switch key.Space {
	case NamespaceNone:
		return " ", true
	case NamespaceXML:
		return " xml:", true
	case NamespaceXMLNS:
		if key.Local == "xmlns" {
			return " ", true
		}
		return " xmlns:", true
	case NamespaceXLink:
		return " xlink:", true
	}
	return "", false
}

// quoteFor picks the quote character yielding the shorter escaped value,
// preferring double quotes.
func quoteFor(value string) byte {
	double := strings.Count(value, `"`)
	single := strings.Count(value, `'`)
	if single < double {
		return '\''
	}
	return '"'
}
