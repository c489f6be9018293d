package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <table>, etc.
	KindText                  // Plain text node, escaped on render
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (trusted content only)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node of the markup tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Get returns the attribute value for key, or nil.
func (v *VNode) Get(key string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props[key]
}

// Set sets an attribute on an element node. It is a no-op on other kinds.
func (v *VNode) Set(key string, value any) *VNode {
	if v == nil || v.Kind != KindElement {
		return v
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
	return v
}

// Append adds children to an element or fragment node, skipping nils.
func (v *VNode) Append(children ...*VNode) *VNode {
	if v == nil {
		return nil
	}
	for _, c := range children {
		if c != nil {
			v.Children = append(v.Children, c)
		}
	}
	return v
}

// Walk visits the node and its descendants depth-first.
// Returning false from fn skips the node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	for _, c := range v.Children {
		c.Walk(fn)
	}
}
