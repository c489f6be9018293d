// Package vtest provides testing helpers for dataviewer components.
//
// # Quick Start
//
//	func TestBadge(t *testing.T) {
//	    s := vtest.NewSession()
//	    tag, err := ui.NewTag(s, ui.TagProps{Text: "new", Color: "green"})
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    vtest.ExpectContains(t, tag, ">new</span>")
//	    vtest.ExpectAttribute(t, tag, "id", "tag-1")
//	}
//
// # Observing a Session
//
// Recorder implements ui.Observer and keeps every event:
//
//	rec := vtest.NewRecorder()
//	s := vtest.NewSession(ui.WithObserver(rec))
//	// build and render a page
//	if n, _ := rec.Pages(); n != 1 {
//	    t.Errorf("pages = %d", n)
//	}
package vtest
