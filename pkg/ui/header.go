package ui

import (
	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

var headerSizes = [...]string{
	1: "text-4xl font-bold tracking-tight mb-8",
	2: "text-3xl font-semibold tracking-tight mb-6",
	3: "text-2xl font-semibold mb-5",
	4: "text-xl font-medium mb-4",
	5: "text-lg font-medium mb-3",
	6: "text-base font-medium mb-2",
}

var headerColors = map[string]string{
	"gray":   "text-gray-900",
	"blue":   "text-blue-600",
	"green":  "text-green-600",
	"red":    "text-red-600",
	"yellow": "text-yellow-600",
	"purple": "text-purple-600",
}

var textAligns = map[string]string{
	"left":   "text-left",
	"center": "text-center",
	"right":  "text-right",
}

// HeaderProps configures a Header.
type HeaderProps struct {
	Common
	Text string

	// Level is the heading level 1..6. Nil means 1.
	Level *int

	// Align is left, center or right. Unknown values mean left.
	Align string

	// Color is gray, blue, green, red, yellow or purple. Empty means gray.
	Color string
}

// Header is an <h1>..<h6> heading.
type Header struct {
	Base
	Text  string
	Level int
	Align string
	Color string
}

// NewHeader creates a header. An out-of-range level or an unknown color
// fails with ErrInvalidArgument.
func NewHeader(s *Session, p HeaderProps) (*Header, error) {
	level := 1
	if p.Level != nil {
		level = *p.Level
	}
	if level < 1 || level > 6 {
		return nil, errors.New("DV002").WithDetailf("got %d", level)
	}
	color := p.Color
	if color == "" {
		color = "gray"
	}
	if _, ok := headerColors[color]; !ok {
		return nil, errors.New("DV003").WithDetailf("got %q", p.Color)
	}

	base, err := newBase(s, "header", p.Common)
	if err != nil {
		return nil, err
	}
	h := &Header{Base: base, Text: p.Text, Level: level, Align: p.Align, Color: color}
	if err := s.adopt(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Node implements Component.
func (h *Header) Node() (*vdom.VNode, error) {
	align, ok := textAligns[h.Align]
	if !ok {
		align = "text-left"
	}
	node := vdom.H(h.Level,
		vdom.ID(h.id),
		vdom.Class(align, headerSizes[h.Level], headerColors[h.Color], "font-sans"),
		h.Text,
	)
	return h.decorate(node), nil
}

var tagColors = map[string]string{
	"blue":   "bg-blue-100 text-blue-800",
	"red":    "bg-red-100 text-red-800",
	"green":  "bg-green-100 text-green-800",
	"yellow": "bg-yellow-100 text-yellow-800",
	"gray":   "bg-gray-100 text-gray-800",
}

var tagSizes = map[string]string{
	"sm": "text-xs px-2 py-1",
	"md": "text-sm px-3 py-1.5",
	"lg": "text-base px-4 py-2",
}

// TagProps configures a Tag.
type TagProps struct {
	Common
	Text string

	// Color is blue, red, green, yellow or gray. Unknown values mean gray.
	Color string

	// Size is sm, md or lg. Unknown values mean md.
	Size string
}

// Tag is a small rounded label.
type Tag struct {
	Base
	Text  string
	Color string
	Size  string
}

// NewTag creates a tag.
func NewTag(s *Session, p TagProps) (*Tag, error) {
	base, err := newBase(s, "tag", p.Common)
	if err != nil {
		return nil, err
	}
	t := &Tag{Base: base, Text: p.Text, Color: p.Color, Size: p.Size}
	if err := s.adopt(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Node implements Component.
func (t *Tag) Node() (*vdom.VNode, error) {
	color, ok := tagColors[t.Color]
	if !ok {
		color = tagColors["gray"]
	}
	size, ok := tagSizes[t.Size]
	if !ok {
		size = tagSizes["md"]
	}
	node := vdom.Span(
		vdom.ID(t.id),
		vdom.Class("inline-flex items-center rounded-full font-medium", color, size),
		t.Text,
	)
	return t.decorate(node), nil
}
