package ui

import (
	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/render"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// Component is a node of the document that produces one HTML fragment.
type Component interface {
	// ID returns the session-unique identifier.
	ID() string

	// Type returns the lowercase component type used for auto ids.
	Type() string

	// Node builds the markup. A nil node renders as empty output.
	Node() (*vdom.VNode, error)
}

// Common holds the props shared by every component.
type Common struct {
	// ID is the component id. Nil means generated as "{type}-{n}"; a
	// supplied id, including "", must satisfy ValidID.
	ID *string

	// Attrs are extra HTML attributes for the root element. A "class" entry
	// is appended to the component's own classes; "id" is ignored.
	Attrs map[string]string
}

// String returns a pointer to v, for optional string props such as
// Common.ID.
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional int props such as
// HeaderProps.Level.
func Int(v int) *int { return &v }

// Base carries identity and extra attributes. Concrete components embed it
// and provide Node.
type Base struct {
	id      string
	typ     string
	attrs   map[string]string
	session *Session
}

// newBase validates or generates the id for a component of type typ.
func newBase(s *Session, typ string, c Common) (Base, error) {
	var id string
	if c.ID == nil {
		id = s.nextID(typ)
	} else if id = *c.ID; !ValidID(id) {
		return Base{}, errors.New("DV001").WithDetailf("%q", id)
	}

	var attrs map[string]string
	if len(c.Attrs) > 0 {
		attrs = make(map[string]string, len(c.Attrs))
		for k, v := range c.Attrs {
			attrs[k] = v
		}
	}
	return Base{id: id, typ: typ, attrs: attrs, session: s}, nil
}

func (b *Base) ID() string        { return b.id }
func (b *Base) Type() string      { return b.typ }
func (b *Base) Session() *Session { return b.session }

// Attrs returns a copy of the extra attributes.
func (b *Base) Attrs() map[string]string {
	out := make(map[string]string, len(b.attrs))
	for k, v := range b.attrs {
		out[k] = v
	}
	return out
}

// Node fails: the bare base has nothing to render.
func (b *Base) Node() (*vdom.VNode, error) {
	return nil, errors.New("DV030").WithDetailf("%s %q", b.typ, b.id)
}

// decorate applies the extra attributes to the root element.
func (b *Base) decorate(node *vdom.VNode) *vdom.VNode {
	if node == nil || node.Kind != vdom.KindElement {
		return node
	}
	for _, a := range vdom.Attrs(b.attrs) {
		switch a.Key {
		case "id":
		case "class":
			existing, _ := node.Get("class").(string)
			node.Set("class", vdom.CN(existing, a.Value.(string)))
		default:
			node.Set(a.Key, a.Value)
		}
	}
	return node
}

// NewComponent creates and registers a bare component. It is useful as a
// placeholder; rendering it fails with ErrNotImplemented.
func NewComponent(s *Session, c Common) (*Base, error) {
	b, err := newBase(s, "component", c)
	if err != nil {
		return nil, err
	}
	comp := &b
	if err := s.adopt(comp); err != nil {
		return nil, err
	}
	return comp, nil
}

// Render builds c and renders it to HTML.
func Render(c Component) (string, error) {
	node, err := c.Node()
	if err != nil {
		return "", err
	}
	return render.NewRenderer(render.RendererConfig{}).RenderToString(node)
}

// nodes builds every component, skipping nil nodes.
func nodes(components []Component) ([]*vdom.VNode, error) {
	out := make([]*vdom.VNode, 0, len(components))
	for _, c := range components {
		n, err := c.Node()
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}
