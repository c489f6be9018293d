package ui

import "github.com/vango-dev/dataviewer/pkg/vdom"

const (
	labelClass  = "block text-sm font-medium text-gray-700"
	inputClass  = "block w-full rounded-md border-gray-300 shadow-sm focus:border-indigo-500 focus:ring-indigo-500 sm:text-sm"
	buttonClass = "inline-flex items-center rounded-md border border-transparent bg-indigo-600 px-4 py-2 text-sm font-medium text-white shadow-sm hover:bg-indigo-700 focus:outline-none focus:ring-2 focus:ring-indigo-500 focus:ring-offset-2"
)

// TextInputProps configures a TextInput.
type TextInputProps struct {
	Common
	Label       string
	Placeholder string
	Value       string
}

// TextInput is a labelled single-line text field.
type TextInput struct {
	Base
	Label       string
	Placeholder string
	Value       string
}

// NewTextInput creates a text input.
func NewTextInput(s *Session, p TextInputProps) (*TextInput, error) {
	base, err := newBase(s, "textinput", p.Common)
	if err != nil {
		return nil, err
	}
	in := &TextInput{Base: base, Label: p.Label, Placeholder: p.Placeholder, Value: p.Value}
	if err := s.adopt(in); err != nil {
		return nil, err
	}
	return in, nil
}

// Node implements Component. Extra attributes go on the <input>.
func (in *TextInput) Node() (*vdom.VNode, error) {
	var label *vdom.VNode
	if in.Label != "" {
		label = vdom.Label(vdom.For(in.id), vdom.Class(labelClass), in.Label)
	}
	input := in.decorate(vdom.Input(
		vdom.Type("text"),
		vdom.ID(in.id),
		vdom.Name(in.id),
		vdom.Value(in.Value),
		vdom.Placeholder(in.Placeholder),
		vdom.Class(inputClass),
	))
	return vdom.Div(vdom.Class("mt-1"), label, input), nil
}

// ButtonProps configures a Button.
type ButtonProps struct {
	Common

	// Text is the caption. Defaults to "Button".
	Text string

	// Label is an accessible label (aria-label).
	Label string

	// OnClick is an inline script run on click.
	OnClick string
}

// Button is a push button.
type Button struct {
	Base
	Text    string
	Label   string
	OnClick string
}

// NewButton creates a button.
func NewButton(s *Session, p ButtonProps) (*Button, error) {
	base, err := newBase(s, "button", p.Common)
	if err != nil {
		return nil, err
	}
	text := p.Text
	if text == "" {
		text = "Button"
	}
	b := &Button{Base: base, Text: text, Label: p.Label, OnClick: p.OnClick}
	if err := s.adopt(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Node implements Component.
func (b *Button) Node() (*vdom.VNode, error) {
	node := vdom.Button(
		vdom.Type("button"),
		vdom.ID(b.id),
		vdom.A_("aria-label", b.Label),
		vdom.OnClick(b.OnClick),
		vdom.Class(buttonClass),
		b.Text,
	)
	return b.decorate(node), nil
}
