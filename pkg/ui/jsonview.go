package ui

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/assets"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// DefaultExpandLevel is the nesting depth a JSONView shows expanded.
const DefaultExpandLevel = 2

// JSONViewProps configures a JSONView.
type JSONViewProps struct {
	Common

	// Data is any JSON-encodable value.
	Data any

	// Theme is dark or light. Unknown values mean dark.
	Theme string

	// ExpandLevel is the initially expanded depth. Zero means
	// DefaultExpandLevel; negative collapses everything.
	ExpandLevel int
}

// JSONView is a collapsible tree view of structured data.
type JSONView struct {
	Base
	Theme       string
	ExpandLevel int

	data any
}

// NewJSONView creates a JSON view and injects its stylesheet. Data that
// cannot be encoded as JSON fails with ErrInvalidArgument.
func NewJSONView(s *Session, p JSONViewProps) (*JSONView, error) {
	data, err := normalizeJSON(p.Data)
	if err != nil {
		return nil, errors.New("DV007").Wrap(err)
	}
	base, err := newBase(s, "jsonview", p.Common)
	if err != nil {
		return nil, err
	}

	theme := p.Theme
	if theme != "light" {
		theme = "dark"
	}
	level := p.ExpandLevel
	switch {
	case level == 0:
		level = DefaultExpandLevel
	case level < 0:
		level = 0
	}

	v := &JSONView{Base: base, Theme: theme, ExpandLevel: level, data: data}
	if err := s.adopt(v); err != nil {
		return nil, err
	}
	s.InjectHead(assets.KeyJSONView, assets.MustHead(assets.KeyJSONView))
	return v, nil
}

// Data returns the normalized data: maps, slices, strings, json.Number,
// bools and nil.
func (v *JSONView) Data() any { return v.data }

// Node implements Component.
func (v *JSONView) Node() (*vdom.VNode, error) {
	script, err := assets.JSONViewScript(v.id, v.ExpandLevel)
	if err != nil {
		return nil, err
	}

	button := func(suffix, label string) *vdom.VNode {
		return vdom.Button(vdom.Type("button"), vdom.ID(v.id+suffix), label)
	}
	node := vdom.Div(
		vdom.ID(v.id),
		vdom.Class("json-view", "theme-"+v.Theme),
		vdom.Div(vdom.Class("json-toolbar"),
			button("-expand-all", "Expand all"),
			button("-expand-one", "Expand one level"),
			button("-collapse-one", "Collapse one level"),
			button("-collapse-all", "Collapse all"),
		),
		vdom.Div(vdom.Class("json-content"), jsonValue(v.data, nil)),
		vdom.Script(vdom.Raw(script)),
	)
	return v.decorate(node), nil
}

// normalizeJSON round-trips v through encoding/json so the tree only sees
// generic JSON values.
func normalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func bracket(s string) *vdom.VNode {
	return vdom.Span(vdom.Class("json-bracket"), s)
}

// jsonKey returns the `"key": ` prefix, or nil for array items and the root.
func jsonKey(key *string) *vdom.VNode {
	if key == nil {
		return nil
	}
	return vdom.Fragment(vdom.Span(vdom.Class("json-key"), strconv.Quote(*key)), ": ")
}

func jsonValue(v any, key *string) *vdom.VNode {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]*vdom.VNode, 0, len(keys))
		for _, k := range keys {
			items = append(items, jsonValue(val[k], &k))
		}
		return jsonBranch(key, "{", "}", strconv.Itoa(len(val))+" fields", items)

	case []any:
		items := make([]*vdom.VNode, 0, len(val))
		for _, item := range val {
			items = append(items, jsonValue(item, nil))
		}
		return jsonBranch(key, "[", "]", strconv.Itoa(len(val))+" items", items)
	}
	return vdom.Div(jsonKey(key), jsonLeaf(v))
}

func jsonBranch(key *string, open, closing, count string, items []*vdom.VNode) *vdom.VNode {
	if len(items) == 0 {
		if key == nil {
			return bracket(open + closing)
		}
		return vdom.Div(jsonKey(key), bracket(open+closing))
	}
	return vdom.Div(
		vdom.Span(vdom.Class("json-toggle"), "-"),
		jsonKey(key),
		bracket(open),
		vdom.Span(vdom.Class("json-preview"), open+" "+count+" "+closing),
		vdom.Div(vdom.Class("json-item"), items),
		bracket(closing),
	)
}

func jsonLeaf(v any) *vdom.VNode {
	switch val := v.(type) {
	case nil:
		return vdom.Span(vdom.Class("json-null"), "null")
	case bool:
		return vdom.Span(vdom.Class("json-boolean"), strconv.FormatBool(val))
	case json.Number:
		return vdom.Span(vdom.Class("json-number"), val.String())
	case string:
		return vdom.Span(vdom.Class("json-string"), strconv.Quote(val))
	}
	return vdom.Span(vdom.Class("json-string"), strconv.Quote(jsonText(v)))
}

func jsonText(v any) string {
	data, _ := json.Marshal(v)
	return string(data)
}
