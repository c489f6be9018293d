package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestJSONViewRender(t *testing.T) {
	s := newTestSession()

	v, err := NewJSONView(s, JSONViewProps{
		Common: Common{ID: String("cfg")},
		Data: map[string]any{
			"zeta":  []int{1, 2},
			"alpha": map[string]any{"on": true, "off": nil},
			"name":  "<x>",
			"empty": map[string]any{},
		},
		Theme: "light",
	})
	if err != nil {
		t.Fatalf("NewJSONView: %v", err)
	}
	html := mustRender(t, v)

	for _, want := range []string{
		`<div class="json-view theme-light" id="cfg">`,
		`id="cfg-expand-all"`,
		`id="cfg-collapse-all"`,
		`<span class="json-preview">{ 4 fields }</span>`,
		`<span class="json-preview">[ 2 items ]</span>`,
		`<span class="json-key">&quot;empty&quot;</span>: <span class="json-bracket">{}</span>`,
		`<span class="json-string">&quot;&lt;x&gt;&quot;</span>`,
		`<span class="json-boolean">true</span>`,
		`<span class="json-null">null</span>`,
		`<span class="json-number">2</span>`,
		`expandLevel(2);`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}

	if strings.Index(html, `&quot;alpha&quot;`) > strings.Index(html, `&quot;zeta&quot;`) {
		t.Error("keys should be sorted")
	}
}

func TestJSONViewDefaults(t *testing.T) {
	s := newTestSession()

	v, err := NewJSONView(s, JSONViewProps{Data: []any{}, Theme: "neon", ExpandLevel: -3})
	if err != nil {
		t.Fatalf("NewJSONView: %v", err)
	}
	if v.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", v.Theme)
	}
	if v.ExpandLevel != 0 {
		t.Errorf("ExpandLevel = %d, want 0", v.ExpandLevel)
	}
	html := mustRender(t, v)
	if !strings.Contains(html, `<div class="json-content"><span class="json-bracket">[]</span></div>`) {
		t.Errorf("empty root array: %s", html)
	}

	if _, err := NewJSONView(s, JSONViewProps{Data: func() {}}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want invalid argument", err)
	}
}

func TestJSONViewInjectsStylesOnce(t *testing.T) {
	s := newTestSession()

	for i := 0; i < 2; i++ {
		if _, err := NewJSONView(s, JSONViewProps{Data: 1}); err != nil {
			t.Fatalf("NewJSONView: %v", err)
		}
	}
	if !s.HasHead("json_view") || len(s.HeadContent()) != 1 {
		t.Errorf("head = %d snippets", len(s.HeadContent()))
	}
}
