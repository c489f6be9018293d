package vdom

import (
	"fmt"
	"sort"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// A_ creates an arbitrary attribute.
func A_(key string, value any) Attr { return attr(key, value) }

// Attrs converts a string map into attributes, sorted by key for
// deterministic output.
func Attrs(m map[string]string) []Attr {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Attr, 0, len(keys))
	for _, k := range keys {
		out = append(out, attr(k, m[k]))
	}
	return out
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Empty entries are dropped.
func Class(classes ...string) Attr { return attr("class", CN(classes...)) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Scope sets the scope attribute on table headers.
func Scope(scope string) Attr { return attr("scope", scope) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute. Unlike most attributes, an empty value
// is still rendered.
func Value(value string) Attr { return attr("value", keepEmpty(value)) }

// Placeholder sets the placeholder attribute. Empty placeholders are rendered.
func Placeholder(text string) Attr { return attr("placeholder", keepEmpty(text)) }

// For sets the for attribute on labels.
func For(id string) Attr { return attr("for", id) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Media attributes

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute. An empty alt is rendered, marking decorative images.
func Alt(alt string) Attr { return attr("alt", keepEmpty(alt)) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Loading sets the loading attribute ("lazy" or "eager").
func Loading(mode string) Attr { return attr("loading", mode) }

// Controls sets the controls attribute.
func Controls() Attr { return attr("controls", true) }

// Preload sets the preload attribute.
func Preload(mode string) Attr { return attr("preload", mode) }

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Inline script attributes

// OnClick sets an inline onclick script snippet.
func OnClick(script string) Attr { return attr("onclick", script) }

// EmptyString is an attribute value that renders as key="" instead of being
// dropped.
type EmptyString struct{}

func keepEmpty(s string) any {
	if s == "" {
		return EmptyString{}
	}
	return s
}

// CN joins class names, dropping empties and collapsing whitespace.
func CN(classes ...string) string {
	var parts []string
	for _, c := range classes {
		parts = append(parts, strings.Fields(c)...)
	}
	return strings.Join(parts, " ")
}

// Stylef builds a style declaration list from key/value pairs, skipping
// pairs whose value is empty.
func Stylef(pairs ...string) string {
	var decls []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		decls = append(decls, fmt.Sprintf("%s: %s", pairs[i], pairs[i+1]))
	}
	return strings.Join(decls, "; ")
}
