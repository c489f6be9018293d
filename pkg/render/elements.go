package render

import "github.com/vango-dev/dataviewer/pkg/vdom"

// isVoidElement returns true if the tag has no closing tag.
func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// inlineElements stay on one line in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"b":      true,
	"code":   true,
	"em":     true,
	"i":      true,
	"label":  true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"td":     true,
	"th":     true,
	"title":  true,
	"pre":    true,
	"button": true,
	"script": true,
	"style":  true,
	"h1":     true,
	"h2":     true,
	"h3":     true,
	"h4":     true,
	"h5":     true,
	"h6":     true,
}

// isInlineElement returns true if the tag is rendered without inner newlines.
func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"async":       true,
	"autofocus":   true,
	"autoplay":    true,
	"checked":     true,
	"controls":    true,
	"defer":       true,
	"disabled":    true,
	"hidden":      true,
	"loop":        true,
	"muted":       true,
	"open":        true,
	"playsinline": true,
	"readonly":    true,
	"required":    true,
	"selected":    true,
}

// isBooleanAttr returns true if the attribute is a boolean attribute.
func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
