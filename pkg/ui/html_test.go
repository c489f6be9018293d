package ui

import "testing"

func TestHTMLBlock(t *testing.T) {
	s := newTestSession()

	h, err := NewHTML(s, HTMLProps{Common: Common{ID: String("raw")}, HTML: "<b>trusted</b>"})
	if err != nil {
		t.Fatal(err)
	}
	if got := mustRender(t, h); got != `<div id="raw"><b>trusted</b></div>` {
		t.Errorf("got %q", got)
	}

	empty, _ := NewHTML(s, HTMLProps{})
	if got := mustRender(t, empty); got != "" {
		t.Errorf("empty markup should render nothing, got %q", got)
	}
}
