package ui

import (
	"strconv"

	"github.com/vango-dev/dataviewer/pkg/vdom"
)

var justifyClasses = map[string]string{
	"start":   "justify-start",
	"end":     "justify-end",
	"center":  "justify-center",
	"between": "justify-between",
	"around":  "justify-around",
}

var alignClasses = map[string]string{
	"start":   "items-start",
	"end":     "items-end",
	"center":  "items-center",
	"stretch": "items-stretch",
}

func justifyClass(v string) string {
	if c, ok := justifyClasses[v]; ok {
		return c
	}
	return "justify-start"
}

func alignClass(v string) string {
	if c, ok := alignClasses[v]; ok {
		return c
	}
	return "items-start"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Spacing holds the utility spacing steps of a container.
type Spacing struct {
	Gap     string // default "4"
	Padding string // default "0"
	Margin  string // default "0"
}

func (sp Spacing) withDefaults() Spacing {
	return Spacing{
		Gap:     orDefault(sp.Gap, "4"),
		Padding: orDefault(sp.Padding, "0"),
		Margin:  orDefault(sp.Margin, "0"),
	}
}

// box is the child list and wrapper rendering shared by every container.
type box struct {
	Base
	Spacing
	children []Component
}

// Add appends child unless it is already present.
func (b *box) Add(child Component) {
	if child == nil || child.ID() == b.id {
		return
	}
	for _, existing := range b.children {
		if existing == child {
			return
		}
	}
	b.children = append(b.children, child)
}

// Children returns the children in insertion order.
func (b *box) Children() []Component {
	out := make([]Component, len(b.children))
	copy(out, b.children)
	return out
}

// Len returns the number of children.
func (b *box) Len() int { return len(b.children) }

// wrap renders the children inside a div with the given classes. No
// children renders nothing.
func (b *box) wrap(classes ...string) (*vdom.VNode, error) {
	if len(b.children) == 0 {
		return nil, nil
	}
	kids, err := nodes(b.children)
	if err != nil {
		return nil, err
	}
	div := vdom.Div(vdom.ID(b.id), vdom.Class(classes...), vdom.Join(kids, "\n"))
	return b.decorate(div), nil
}

func newBox(s *Session, typ string, c Common, sp Spacing, children []Component) (box, error) {
	base, err := newBase(s, typ, c)
	if err != nil {
		return box{}, err
	}
	b := box{Base: base, Spacing: sp.withDefaults()}
	for _, child := range children {
		b.Add(child)
	}
	return b, nil
}

// ContainerProps configures a Container.
type ContainerProps struct {
	Common
	Spacing
	Children []Component
}

// Container stacks its children vertically with uniform spacing.
type Container struct {
	box
}

// NewContainer creates a container.
func NewContainer(s *Session, p ContainerProps) (*Container, error) {
	b, err := newBox(s, "container", p.Common, p.Spacing, p.Children)
	if err != nil {
		return nil, err
	}
	c := &Container{box: b}
	if err := s.adopt(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Node implements Component.
func (c *Container) Node() (*vdom.VNode, error) {
	return c.wrap("space-y-"+c.Gap, "p-"+c.Padding, "m-"+c.Margin)
}

// RowProps configures a Row.
type RowProps struct {
	Common
	Spacing

	// Justify is start, end, center, between or around.
	Justify string

	// Align is start, end, center or stretch.
	Align string

	// Wrap lets items flow onto multiple lines.
	Wrap bool

	Children []Component
}

// Row lays its children out horizontally.
type Row struct {
	box
	Justify string
	Align   string
	Wrap    bool
}

// NewRow creates a row.
func NewRow(s *Session, p RowProps) (*Row, error) {
	b, err := newBox(s, "row", p.Common, p.Spacing, p.Children)
	if err != nil {
		return nil, err
	}
	r := &Row{box: b, Justify: p.Justify, Align: p.Align, Wrap: p.Wrap}
	if err := s.adopt(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Node implements Component.
func (r *Row) Node() (*vdom.VNode, error) {
	wrap := ""
	if r.Wrap {
		wrap = "flex-wrap"
	}
	return r.wrap("flex", justifyClass(r.Justify), alignClass(r.Align),
		"gap-"+r.Gap, "p-"+r.Padding, "m-"+r.Margin, wrap)
}

// ColumnProps configures a Column.
type ColumnProps struct {
	Common
	Spacing
	Justify  string
	Align    string
	Children []Component
}

// Column lays its children out vertically with flexbox alignment.
type Column struct {
	box
	Justify string
	Align   string
}

// NewColumn creates a column.
func NewColumn(s *Session, p ColumnProps) (*Column, error) {
	b, err := newBox(s, "column", p.Common, p.Spacing, p.Children)
	if err != nil {
		return nil, err
	}
	c := &Column{box: b, Justify: p.Justify, Align: p.Align}
	if err := s.adopt(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Node implements Component.
func (c *Column) Node() (*vdom.VNode, error) {
	return c.wrap("flex", "flex-col", justifyClass(c.Justify), alignClass(c.Align),
		"gap-"+c.Gap, "p-"+c.Padding, "m-"+c.Margin)
}

// GridProps configures a Grid.
type GridProps struct {
	Common
	Spacing

	// Cols is the column count. Defaults to 2.
	Cols int

	// Rows is the row count. Zero leaves rows implicit.
	Rows int

	Children []Component
}

// Grid places its children on a CSS grid.
type Grid struct {
	box
	Cols int
	Rows int
}

// NewGrid creates a grid.
func NewGrid(s *Session, p GridProps) (*Grid, error) {
	b, err := newBox(s, "grid", p.Common, p.Spacing, p.Children)
	if err != nil {
		return nil, err
	}
	cols := p.Cols
	if cols <= 0 {
		cols = 2
	}
	g := &Grid{box: b, Cols: cols, Rows: p.Rows}
	if err := s.adopt(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Node implements Component.
func (g *Grid) Node() (*vdom.VNode, error) {
	rows := ""
	if g.Rows > 0 {
		rows = "grid-rows-" + strconv.Itoa(g.Rows)
	}
	return g.wrap("grid", "grid-cols-"+strconv.Itoa(g.Cols),
		"gap-"+g.Gap, "p-"+g.Padding, "m-"+g.Margin, rows)
}
