package ui

import (
	"errors"
	"fmt"
	"testing"
)

func TestAutoIDsIncreasePerType(t *testing.T) {
	s := newTestSession()

	for i := 1; i <= 3; i++ {
		h, err := NewHeader(s, HeaderProps{Text: "x"})
		if err != nil {
			t.Fatalf("NewHeader: %v", err)
		}
		if want := fmt.Sprintf("header-%d", i); h.ID() != want {
			t.Errorf("id = %q, want %q", h.ID(), want)
		}
	}

	tag, err := NewTag(s, TagProps{Text: "x"})
	if err != nil {
		t.Fatalf("NewTag: %v", err)
	}
	if tag.ID() != "tag-1" {
		t.Errorf("tag id = %q, want tag-1", tag.ID())
	}
}

func TestAutoIDsSkipClaimedIDs(t *testing.T) {
	s := newTestSession()

	if _, err := NewHeader(s, HeaderProps{Common: Common{ID: String("header-1")}}); err != nil {
		t.Fatalf("NewHeader: %v", err)
	}
	h, err := NewHeader(s, HeaderProps{})
	if err != nil {
		t.Fatalf("NewHeader: %v", err)
	}
	if h.ID() != "header-2" {
		t.Errorf("id = %q, want header-2", h.ID())
	}
}

func TestInvalidIDs(t *testing.T) {
	s := newTestSession()

	for _, id := range []string{"has space", "dot.ted", "ümlaut", "a/b", "<x>"} {
		t.Run(id, func(t *testing.T) {
			_, err := NewTag(s, TagProps{Common: Common{ID: String(id)}})
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want invalid argument", err)
			}
			if _, ok := s.Lookup(id); ok {
				t.Error("invalid component must not be registered")
			}
		})
	}

	for _, id := range []string{"", " "} {
		if _, err := NewHeader(s, HeaderProps{Common: Common{ID: String(id)}}); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewHeader(id %q) err = %v, want invalid argument", id, err)
		}
		if ValidID(id) {
			t.Errorf("ValidID(%q) = true", id)
		}
	}
	if !ValidID("Row_1-a") {
		t.Error("ValidID(Row_1-a) = false")
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	s := newTestSession()

	first, err := NewTag(s, TagProps{Common: Common{ID: String("dup")}})
	if err != nil {
		t.Fatalf("NewTag: %v", err)
	}
	_, err = NewButton(s, ButtonProps{Common: Common{ID: String("dup")}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want duplicate id", err)
	}

	got, ok := s.Lookup("dup")
	if !ok || got != Component(first) {
		t.Error("first registration must be kept")
	}
}

func TestSessionRegistry(t *testing.T) {
	s := newTestSession()

	a, _ := NewTag(s, TagProps{Common: Common{ID: String("b")}})
	_, _ = NewTag(s, TagProps{Common: Common{ID: String("a")}})

	if got := s.IDs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("IDs() = %v", got)
	}
	if !s.Unregister(a.ID()) {
		t.Error("Unregister should report removal")
	}
	if s.Unregister(a.ID()) {
		t.Error("second Unregister should report nothing removed")
	}
	if _, err := NewTag(s, TagProps{Common: Common{ID: String("b")}}); err != nil {
		t.Errorf("id should be free after Unregister: %v", err)
	}

	s.Reset()
	if len(s.IDs()) != 0 || len(s.HeadContent()) != 0 || s.Depth() != 0 {
		t.Error("Reset should clear registry, head and scope")
	}
	tag, _ := NewTag(s, TagProps{})
	if tag.ID() != "tag-1" {
		t.Errorf("counters should restart after Reset, got %q", tag.ID())
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	s1, s2 := newTestSession(), newTestSession()

	a, _ := NewTag(s1, TagProps{})
	b, _ := NewTag(s2, TagProps{})
	if a.ID() != b.ID() {
		t.Errorf("ids %q and %q should both start at 1", a.ID(), b.ID())
	}

	if _, err := NewImage(s1, ImageProps{Src: "https://x/y.png"}); err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if !s1.HasHead("image_preview") || s2.HasHead("image_preview") {
		t.Error("head content must be per session")
	}
}

func TestInjectHeadDedupes(t *testing.T) {
	obs := newRecordingObserver()
	s := newTestSession(WithObserver(obs))

	if !s.InjectHead("k", "<style></style>") {
		t.Error("first injection should report true")
	}
	if s.InjectHead("k", "<style>other</style>") {
		t.Error("second injection should report false")
	}
	if got := s.HeadContent(); len(got) != 1 || got[0] != "<style></style>" {
		t.Errorf("HeadContent() = %v", got)
	}
	if len(obs.head) != 1 {
		t.Errorf("observer saw %d injections, want 1", len(obs.head))
	}
}

func TestBareComponent(t *testing.T) {
	s := newTestSession()

	c, err := NewComponent(s, Common{})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if c.ID() != "component-1" {
		t.Errorf("id = %q", c.ID())
	}
	if _, err := Render(c); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("err = %v, want not implemented", err)
	}
}

func TestExtraAttrs(t *testing.T) {
	s := newTestSession()

	tag, err := NewTag(s, TagProps{
		Common: Common{Attrs: map[string]string{"class": "ml-2", "data-x": "1", "id": "ignored"}},
		Text:   "t",
	})
	if err != nil {
		t.Fatalf("NewTag: %v", err)
	}
	html := mustRender(t, tag)

	if got := attrValue(t, html, "class"); got != "inline-flex items-center rounded-full font-medium bg-gray-100 text-gray-800 text-sm px-3 py-1.5 ml-2" {
		t.Errorf("class = %q", got)
	}
	if got := attrValue(t, html, "data-x"); got != "1" {
		t.Errorf("data-x = %q", got)
	}
	if got := attrValue(t, html, "id"); got != "tag-1" {
		t.Errorf("id = %q", got)
	}
}
