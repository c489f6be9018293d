package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Inline elements (and everything inside them) are never reflowed.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer converts VNode trees to HTML.
// A Renderer holds no per-render state and may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
// A nil node renders to the empty string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0, !r.config.Pretty)
}

// renderNode dispatches rendering based on node kind. flat disables
// pretty-printing for the subtree.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int, flat bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth, flat)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth, flat); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int, flat bool) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("element node without tag")
	}

	if !flat && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node.Props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if !flat {
			io.WriteString(w, "\n")
		}
		return nil
	}

	childFlat := flat || isInlineElement(tag)
	hasBlockChildren := !childFlat && hasElementChild(node)
	if hasBlockChildren {
		io.WriteString(w, "\n")
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1, childFlat || !hasBlockChildren); err != nil {
			return err
		}
	}

	if hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if !flat {
		io.WriteString(w, "\n")
	}

	return nil
}

// renderAttributes renders all attributes, sorted by key for deterministic output.
func (r *Renderer) renderAttributes(w io.Writer, props vdom.Props) error {
	if len(props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if _, ok := value.(vdom.EmptyString); ok {
			if _, err := fmt.Fprintf(w, ` %s=""`, key); err != nil {
				return err
			}
			continue
		}

		strValue := attrToString(value)
		if strValue == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
			return err
		}
	}

	return nil
}

// hasElementChild reports whether any direct child (through fragments) is an element.
func hasElementChild(node *vdom.VNode) bool {
	for _, c := range node.Children {
		switch c.Kind {
		case vdom.KindElement:
			return true
		case vdom.KindFragment:
			if hasElementChild(c) {
				return true
			}
		}
	}
	return false
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
