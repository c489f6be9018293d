// Package ui builds data-viewing documents from typed components.
//
// Every build runs against a Session, which owns id counters, the component
// registry, shared head content (lightbox and JSON view styles), the cell
// renderer registry and the scope stack. Sessions share nothing, so
// independent documents can be built concurrently.
//
// # Building a page
//
//	s := ui.NewSession()
//	page := ui.NewPage(s, ui.PageProps{Title: "Report"})
//	err := page.Build(func() error {
//	    if _, err := ui.NewHeader(s, ui.HeaderProps{Text: "Sales", Level: ui.Int(1)}); err != nil {
//	        return err
//	    }
//	    _, err := ui.NewTable(s, ui.TableProps{Data: rows, SortBy: "id"})
//	    return err
//	})
//	html, err := page.Render()
//
// Components created while a container or page is the open scope are added
// to it. Containers also accept children explicitly through their props or
// Add.
//
// # Errors
//
// Constructors validate their props and return errors that match
// ErrInvalidArgument, ErrDuplicateID and the other kinds with errors.Is.
// Unusable local images do not fail the build; they render a visible error
// in place of the picture.
package ui
