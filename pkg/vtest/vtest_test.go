package vtest_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/vango-dev/dataviewer/pkg/ui"
	"github.com/vango-dev/dataviewer/pkg/vdom"
	"github.com/vango-dev/dataviewer/pkg/vtest"
)

func TestRenderToString(t *testing.T) {
	if got := vtest.RenderToString(vdom.Span("x")); got != "<span>x</span>" {
		t.Errorf("got %q", got)
	}
	if got := vtest.RenderToString(&vdom.VNode{Kind: vdom.VKind(99)}); got != "" {
		t.Errorf("failed render should be empty, got %q", got)
	}
}

func TestExpectations(t *testing.T) {
	s := vtest.NewSession()
	tag, err := ui.NewTag(s, ui.TagProps{Text: "new", Color: "green"})
	if err != nil {
		t.Fatal(err)
	}

	vtest.ExpectContains(t, tag, ">new</span>")
	vtest.ExpectNotContains(t, tag, "bg-red-100")
	vtest.ExpectElement(t, tag, "span")
	vtest.ExpectAttribute(t, tag, "id", "tag-1")
}

func TestAttr(t *testing.T) {
	html := `<img alt="" class="a b" src="x.png">`

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"class", "a b", true},
		{"alt", "", true},
		{"src", "x.png", true},
		{"loading", "", false},
	}
	for _, tt := range tests {
		got, ok := vtest.Attr(html, tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Attr(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRecorder(t *testing.T) {
	rec := vtest.NewRecorder()
	s := vtest.NewSession(ui.WithObserver(rec))
	page := ui.NewPage(s, ui.PageProps{Title: "r"})

	err := page.Build(func() error {
		if _, err := ui.NewHeader(s, ui.HeaderProps{Text: "h"}); err != nil {
			return err
		}
		_, err := ui.NewTable(s, ui.TableProps{Data: []map[string]any{
			{"pic": "a.png", "n": 1},
			{"pic": "b.png", "n": 2},
		}})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := page.RenderContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := rec.Types(); !reflect.DeepEqual(got, []string{"header", "table"}) {
		t.Errorf("Types() = %v", got)
	}
	if rec.Created("header") != 1 {
		t.Errorf("Created(header) = %d", rec.Created("header"))
	}
	if rec.Cells("ImageRenderer") != 2 || rec.Cells("DefaultRenderer") != 2 {
		t.Errorf("cells image=%d default=%d", rec.Cells("ImageRenderer"), rec.Cells("DefaultRenderer"))
	}
	if head := rec.Head(); len(head) != 1 || head[0] != "image_preview" {
		t.Errorf("Head() = %v", head)
	}
	if n, size := rec.Pages(); n != 1 || size == 0 {
		t.Errorf("Pages() = %d, %d", n, size)
	}

	s.Enter(page)
	if err := s.Exit(ui.NewPage(s, ui.PageProps{})); err == nil {
		t.Fatal("mismatched exit should fail")
	}
	if rec.Mismatches() != 1 {
		t.Errorf("Mismatches() = %d", rec.Mismatches())
	}
}
