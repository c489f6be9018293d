package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/dataviewer/pkg/render"
	"github.com/vango-dev/dataviewer/pkg/ui"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// NewSession creates a session that logs nowhere.
//
// Example:
//
//	s := vtest.NewSession()
//	hdr, err := ui.NewHeader(s, ui.HeaderProps{Text: "Hi"})
func NewSession(opts ...ui.SessionOption) *ui.Session {
	base := []ui.SessionOption{ui.WithLogger(QuietLogger())}
	return ui.NewSession(append(base, opts...)...)
}

// QuietLogger discards everything.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RenderToString renders a VNode and returns the HTML string, or "" when
// rendering fails.
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// Render renders c and fails the test on error.
//
// Example:
//
//	html := vtest.Render(t, table)
func Render(t testing.TB, c ui.Component) string {
	t.Helper()
	html, err := ui.Render(c)
	if err != nil {
		t.Fatalf("render %s %q: %v", c.Type(), c.ID(), err)
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, header, ">Welcome</h1>")
func ExpectContains(t testing.TB, c ui.Component, expected string) {
	t.Helper()
	html := Render(t, c)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, c ui.Component, unexpected string) {
	t.Helper()
	html := Render(t, c)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, table, "thead")
func ExpectElement(t testing.TB, c ui.Component, tag string) {
	t.Helper()
	html := Render(t, c)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that the first attr attribute in the rendered
// output has value.
//
// Example:
//
//	vtest.ExpectAttribute(t, img, "loading", "lazy")
func ExpectAttribute(t testing.TB, c ui.Component, attr, value string) {
	t.Helper()
	html := Render(t, c)
	got, ok := Attr(html, attr)
	if !ok {
		t.Errorf("attribute %s not found, got:\n%s", attr, truncate(html, 500))
		return
	}
	if got != value {
		t.Errorf("attribute %s = %q, want %q", attr, got, value)
	}
}

// Attr returns the raw value of the first name="..." attribute in html.
func Attr(html, name string) (string, bool) {
	needle := " " + name + `="`
	i := strings.Index(html, needle)
	if i < 0 {
		return "", false
	}
	rest := html[i+len(needle):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
