package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/dataviewer/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderNilIsEmpty(t *testing.T) {
	html, err := NewRenderer(RendererConfig{}).RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("got %q, want empty", html)
	}
}

func TestRenderEscaping(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "text",
			node: vdom.Text("<script>alert('x')</script>"),
			want: "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;",
		},
		{
			name: "attribute",
			node: vdom.Div(vdom.TitleAttr("a \"b\"\nc")),
			want: `<div title="a &quot;b&quot;&#10;c"></div>`,
		},
		{
			name: "raw passes through",
			node: vdom.Raw("<b>ok</b>"),
			want: "<b>ok</b>",
		},
		{
			name: "unicode preserved",
			node: vdom.Text("数据 🌍 & co"),
			want: "数据 🌍 &amp; co",
		},
	}

	renderer := NewRenderer(RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderElementAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "sorted attributes",
			node: vdom.Div(vdom.ID("x"), vdom.Class("b", "a")),
			want: `<div class="b a" id="x"></div>`,
		},
		{
			name: "void element",
			node: vdom.Img(vdom.Src("a.png"), vdom.Alt("")),
			want: `<img alt="" src="a.png">`,
		},
		{
			name: "boolean attribute",
			node: vdom.Video(vdom.Controls(), vdom.Width(400)),
			want: `<video controls width="400"></video>`,
		},
		{
			name: "false boolean omitted",
			node: vdom.Input(vdom.A_("disabled", false), vdom.Type("text")),
			want: `<input type="text">`,
		},
		{
			name: "empty string dropped",
			node: vdom.Span(vdom.A_("title", ""), "x"),
			want: `<span>x</span>`,
		},
		{
			name: "empty marker kept",
			node: vdom.Input(vdom.Value("")),
			want: `<input value="">`,
		},
		{
			name: "fragment",
			node: vdom.Fragment(vdom.Span("a"), "b", nil),
			want: `<span>a</span>b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(99)})
	if err == nil {
		t.Fatal("expected error for unknown node kind")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.Class("outer"),
		vdom.Div(vdom.Span("inline ", vdom.Code("x"))),
		vdom.Pre("a\n  b"),
	)
	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<div class=\"outer\">\n" +
		"  <div>\n" +
		"    <span>inline <code>x</code></span>\n" +
		"  </div>\n" +
		"  <pre>a\n  b</pre>\n" +
		"</div>\n"
	if got != want {
		t.Errorf("pretty output mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderDocument(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderDocumentString(Document{
		Title:   "Report <1>",
		Padding: "4",
		Head:    []string{"<style>.x{}</style>"},
		Body:    []*vdom.VNode{vdom.Div("one"), nil, vdom.Div("two")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Report &lt;1&gt;</title>",
		`<meta charset="UTF-8">`,
		`<meta name="viewport"`,
		`<script src="` + DefaultCSSRuntime + `"></script>`,
		"word-break: break-word",
		"<style>.x{}</style>",
		`<div class="p-4">`,
		"<div>one</div>\n<div>two</div>",
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q\n%s", want, html)
		}
	}
	if strings.Index(html, "<style>.x{}</style>") > strings.Index(html, "</head>") {
		t.Error("head content should be inside <head>")
	}
}

func TestRenderDocumentInlineCSS(t *testing.T) {
	html, err := NewRenderer(RendererConfig{}).RenderDocumentString(Document{
		Title:     "t",
		InlineCSS: ".p-4{padding:1rem}",
		Lang:      "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "cdn.tailwindcss.com") {
		t.Error("inline CSS should replace the runtime script")
	}
	if !strings.Contains(html, "<style>.p-4{padding:1rem}</style>") {
		t.Error("inline CSS missing")
	}
	if got := attrValue(t, html, "lang"); got != "en" {
		t.Errorf("lang = %q", got)
	}
	if !strings.Contains(html, `<div class="p-0">`) {
		t.Error("empty padding should default to p-0")
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}

	sr := &StreamingRenderer{
		Renderer: NewRenderer(RendererConfig{}),
		flusher:  fw,
		w:        fw,
	}

	if err := sr.RenderDocument(Document{Title: "s", Body: []*vdom.VNode{vdom.Div("body")}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fw.FlushCount != 2 {
		t.Errorf("FlushCount = %d, want 2", fw.FlushCount)
	}
	if !strings.Contains(buf.String(), "<div>body</div>") {
		t.Errorf("missing body: %s", buf.String())
	}
}

func TestStreamingRendererResponseWriter(t *testing.T) {
	w := httptest.NewRecorder()
	sr := NewStreamingRenderer(w, RendererConfig{})

	if err := sr.RenderDocument(Document{Title: "Streaming"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Flushed {
		t.Error("recorder should have been flushed")
	}
	if !strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>") {
		t.Error("should start with DOCTYPE")
	}
}

func TestEscapeExports(t *testing.T) {
	if got := EscapeHTML(`a<b>&"c'`); got != "a&lt;b&gt;&amp;&quot;c&#39;" {
		t.Errorf("EscapeHTML = %q", got)
	}
	if got := EscapeAttr("a\tb"); got != "a&#9;b" {
		t.Errorf("EscapeAttr = %q", got)
	}
}
