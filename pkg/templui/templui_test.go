package templui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/vango-dev/dataviewer/pkg/ui"
	"github.com/vango-dev/dataviewer/pkg/vtest"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func TestComponent(t *testing.T) {
	s := vtest.NewSession()
	tag, err := ui.NewTag(s, ui.TagProps{Text: "new", Color: "green"})
	if err != nil {
		t.Fatal(err)
	}

	got := renderString(t, Component(tag))
	want, _ := ui.Render(tag)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	bare, _ := ui.NewComponent(s, ui.Common{})
	if err := Component(bare).Render(context.Background(), io.Discard); !errors.Is(err, ui.ErrNotImplemented) {
		t.Errorf("err = %v, want not implemented", err)
	}
}

func TestHeadAndPage(t *testing.T) {
	s := vtest.NewSession()
	page := ui.NewPage(s, ui.PageProps{Title: "templ"})
	img, _ := ui.NewImage(s, ui.ImageProps{Src: "https://example.com/a.png"})
	page.Add(img)

	if head := renderString(t, Head(s)); !strings.Contains(head, "openImagePreview") {
		t.Errorf("head = %q", head)
	}
	if html := renderString(t, Page(page)); !strings.Contains(html, "<title>templ</title>") {
		t.Errorf("page = %q", html)
	}
}

func TestEmbed(t *testing.T) {
	s := vtest.NewSession()
	page := ui.NewPage(s, ui.PageProps{})

	hello := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<em>hello</em>")
		return err
	})

	page.Enter()
	block, err := Embed(context.Background(), s, ui.Common{ID: ui.String("greeting")}, hello)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if err := page.Exit(); err != nil {
		t.Fatal(err)
	}

	if got := page.Components(); len(got) != 1 || got[0] != ui.Component(block) {
		t.Fatalf("embedded block should join the open scope, got %v", got)
	}
	if html := renderString(t, Component(block)); html != `<div id="greeting"><em>hello</em></div>` {
		t.Errorf("html = %q", html)
	}

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })
	if _, err := Embed(context.Background(), s, ui.Common{}, failing); err == nil {
		t.Error("render errors should propagate")
	}
}

func TestHandler(t *testing.T) {
	h := Handler(func(ctx context.Context) (*ui.Page, error) {
		s := vtest.NewSession()
		page := ui.NewPage(s, ui.PageProps{Title: "served"})
		hdr, err := ui.NewHeader(s, ui.HeaderProps{Text: "Hi"})
		if err != nil {
			return nil, err
		}
		page.Add(hdr)
		return page, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), ">Hi</h1>") {
		t.Errorf("body = %s", rec.Body.String())
	}

	failing := Handler(func(context.Context) (*ui.Page, error) { return nil, errors.New("broken") })
	rec = httptest.NewRecorder()
	failing.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRender(t *testing.T) {
	rec := httptest.NewRecorder()
	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	})
	if err := Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), c); err != nil {
		t.Fatal(err)
	}
	if rec.Body.String() != "ok" || rec.Header().Get("Content-Type") != ui.ContentType {
		t.Errorf("unexpected response %q %q", rec.Body.String(), rec.Header().Get("Content-Type"))
	}
}
