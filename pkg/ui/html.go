package ui

import "github.com/vango-dev/dataviewer/pkg/vdom"

// HTMLProps configures an HTML block.
type HTMLProps struct {
	Common

	// HTML is trusted markup written verbatim.
	HTML string
}

// HTML is a block of trusted, pre-rendered markup wrapped in a div.
type HTML struct {
	Base
	Markup string
}

// NewHTML creates an HTML block.
func NewHTML(s *Session, p HTMLProps) (*HTML, error) {
	base, err := newBase(s, "html", p.Common)
	if err != nil {
		return nil, err
	}
	h := &HTML{Base: base, Markup: p.HTML}
	if err := s.adopt(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Node implements Component. Empty markup renders nothing.
func (h *HTML) Node() (*vdom.VNode, error) {
	if h.Markup == "" {
		return nil, nil
	}
	return h.decorate(vdom.Div(vdom.ID(h.id), vdom.Raw(h.Markup))), nil
}
