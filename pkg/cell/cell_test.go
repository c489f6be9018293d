package cell

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/dataviewer/pkg/assets"
	"github.com/vango-dev/dataviewer/pkg/render"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

type fakeInjector struct {
	keys map[string]int
}

func (f *fakeInjector) InjectHead(key, content string) bool {
	if f.keys == nil {
		f.keys = make(map[string]int)
	}
	f.keys[key]++
	return f.keys[key] == 1
}

func renderHTML(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRegistryOrdering(t *testing.T) {
	reg := NewDefaultRegistry(nil, quietLogger())

	got := reg.Renderers()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantLevels := []int{2, 1, -1}
	for i, r := range got {
		if r.Level() != wantLevels[i] {
			t.Errorf("renderer %d level = %d, want %d", i, r.Level(), wantLevels[i])
		}
	}
}

func TestRegistryDispatch(t *testing.T) {
	reg := NewDefaultRegistry(nil, quietLogger())

	tests := []struct {
		name      string
		value     any
		wantFirst string
		matches   []string
	}{
		{"png", "photo.png", "ImageRenderer", []string{"ImageRenderer", "DefaultRenderer"}},
		{"mp4", "example.mp4", "VideoRenderer", []string{"VideoRenderer", "DefaultRenderer"}},
		{"int", 42, "DefaultRenderer", []string{"DefaultRenderer"}},
		{"query string", "https://cdn.example.com/a.JPG?w=100", "ImageRenderer", []string{"ImageRenderer", "DefaultRenderer"}},
		{"image list", []any{"a.png", "b.gif"}, "ImageRenderer", []string{"ImageRenderer", "DefaultRenderer"}},
		{"mixed list", []any{"a.png", 3}, "DefaultRenderer", []string{"DefaultRenderer"}},
		{"empty list", []string{}, "DefaultRenderer", []string{"DefaultRenderer"}},
		{"img scheme", "img://thumb", "ImageRenderer", []string{"ImageRenderer", "DefaultRenderer"}},
		{"base64 png", "iVBORw0KGgoAAAANSUhEUg", "ImageRenderer", []string{"ImageRenderer", "DefaultRenderer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, ok := reg.Match(tt.value)
			if !ok {
				t.Fatal("expected a match")
			}
			if Name(first) != tt.wantFirst {
				t.Errorf("first match = %s, want %s", Name(first), tt.wantFirst)
			}

			var matched []string
			for _, r := range reg.Renderers() {
				if r.CanRender(tt.value) {
					matched = append(matched, Name(r))
				}
			}
			if strings.Join(matched, ",") != strings.Join(tt.matches, ",") {
				t.Errorf("matches = %v, want %v", matched, tt.matches)
			}
		})
	}
}

func TestRegistryRenderDefault(t *testing.T) {
	reg := NewDefaultRegistry(nil, quietLogger())

	node, ok := reg.Render(42)
	if !ok {
		t.Fatal("expected default renderer to handle 42")
	}
	if got := renderHTML(t, node); got != "42" {
		t.Errorf("got %q, want 42", got)
	}
}

func TestRegistryNoMatch(t *testing.T) {
	reg := NewRegistry(quietLogger())
	reg.Register(NewVideoRenderer())

	node, ok := reg.Render(42)
	if ok || node != nil {
		t.Errorf("Render(42) = %v, %v; want nil, false", node, ok)
	}
}

func TestRegistryUnregisterAndClear(t *testing.T) {
	reg := NewRegistry(quietLogger())
	img := NewImageRenderer(nil)
	vid := NewVideoRenderer()
	reg.Register(img)
	reg.Register(vid)
	reg.Register(nil)

	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}
	if !reg.Unregister(vid) {
		t.Error("Unregister should report removal")
	}
	if reg.Unregister(vid) {
		t.Error("second Unregister should report absence")
	}
	if _, ok := reg.Match("clip.mp4"); ok {
		t.Error("video should no longer match")
	}

	reg.Clear()
	if reg.Len() != 0 {
		t.Errorf("Len after Clear = %d", reg.Len())
	}
}

func TestRegistryStableForEqualLevels(t *testing.T) {
	reg := NewRegistry(quietLogger())
	a := NewImageRenderer(nil)
	b := NewImageRenderer(nil)
	reg.Register(a)
	reg.Register(b)

	got := reg.Renderers()
	if got[0] != Renderer(a) || got[1] != Renderer(b) {
		t.Error("equal levels should keep registration order")
	}
}

func TestImageRender(t *testing.T) {
	inj := &fakeInjector{}
	r := NewImageRenderer(inj)

	html := renderHTML(t, r.Render("photo.png"))
	for _, want := range []string{
		`src="photo.png"`,
		`class="cell-image"`,
		`onclick="openImagePreview(this)"`,
		`loading="lazy"`,
		`style="width: 100px"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}

	r.Render("other.jpg")
	if inj.keys[assets.KeyLightbox] != 2 {
		t.Errorf("injector calls = %d, want 2", inj.keys[assets.KeyLightbox])
	}
}

func TestImageRenderSources(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"img://cdn/x", "cdn/x"},
		{"/9j/4AAQ", "data:image/jpeg;base64,/9j/4AAQ"},
		{"R0lGODlh", "data:image/gif;base64,R0lGODlh"},
		{"data:image/png;base64,AAA", "data:image/png;base64,AAA"},
		{"https://x/y.png", "https://x/y.png"},
	}
	for _, tt := range tests {
		if got := ImageSource(tt.in); got != tt.want {
			t.Errorf("ImageSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImageRenderList(t *testing.T) {
	r := NewImageRenderer(nil)

	html := renderHTML(t, r.Render([]string{"1.png", "2.png", "3.png", "4.png", "5.png", "6.png", "7.png"}))
	if !strings.HasPrefix(html, `<div class="grid grid-cols-5 gap-1">`) {
		t.Errorf("list should be wrapped in a 5-column grid: %s", html)
	}
	if n := strings.Count(html, "<img "); n != 7 {
		t.Errorf("img count = %d, want 7", n)
	}

	html = renderHTML(t, r.Render([]any{"1.png", "2.png"}))
	if !strings.Contains(html, "grid-cols-2") {
		t.Errorf("short list should use its length as column count: %s", html)
	}
}

func TestVideoRender(t *testing.T) {
	r := NewVideoRenderer()

	html := renderHTML(t, r.Render("clips/example.webm"))
	want := `<video controls preload="metadata" width="400"><source src="clips/example.webm" type="video/webm"></video>`
	if html != want {
		t.Errorf("got %s\nwant %s", html, want)
	}

	if r.CanRender("notes.txt") || r.CanRender(3) {
		t.Error("video renderer should reject non-video values")
	}
	if !r.CanRender("MOVIE.MOV") {
		t.Error("extension match should be case-insensitive")
	}
}

func TestVideoMIME(t *testing.T) {
	tests := map[string]string{
		"a.mp4":           "video/mp4",
		"a.MOV":           "video/quicktime",
		"a.mkv?x=1":       "video/x-matroska",
		"a.unknown":       "video/mp4",
		"https://x/a.avi": "video/x-msvideo",
	}
	for in, want := range tests {
		if got := VideoMIME(in); got != want {
			t.Errorf("VideoMIME(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"true", true, "Yes"},
		{"false", false, "No"},
		{"string", "<b>", "<b>"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"list", []any{1, "a"}, "[\n  1,\n  \"a\"\n]"},
		{"map", map[string]any{"b": 1, "a": "<x>"}, "{\n  \"a\": \"<x>\",\n  \"b\": 1\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultRenderEscapes(t *testing.T) {
	html := renderHTML(t, DefaultRenderer{}.Render(map[string]any{"k": "<v>"}))
	if !strings.Contains(html, "&lt;v&gt;") || strings.Contains(html, "<v>") {
		t.Errorf("structured value should be escaped: %s", html)
	}
}

func TestMediaOf(t *testing.T) {
	if MediaOf(NewImageRenderer(nil)) != MediaImage {
		t.Error("image renderer should advertise image media")
	}
	if MediaOf(NewVideoRenderer()) != MediaVideo {
		t.Error("video renderer should advertise video media")
	}
	if MediaOf(DefaultRenderer{}) != MediaNone {
		t.Error("default renderer has no media")
	}
	if MediaImage.String() != "image" {
		t.Errorf("String = %q", MediaImage.String())
	}
}
