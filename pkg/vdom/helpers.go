package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// Join returns a fragment with sep inserted between the non-nil nodes.
func Join(nodes []*VNode, sep string) *VNode {
	frag := &VNode{Kind: KindFragment}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if len(frag.Children) > 0 && sep != "" {
			frag.Children = append(frag.Children, Text(sep))
		}
		frag.Children = append(frag.Children, n)
	}
	return frag
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfAttr returns the attribute if condition is true, an empty Attr otherwise.
func IfAttr(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}
