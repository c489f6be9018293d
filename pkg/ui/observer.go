package ui

import "time"

// Observer receives build and render events from a Session.
// Implementations must be safe for concurrent use when shared between
// sessions.
type Observer interface {
	// ComponentCreated is called once per successfully constructed component.
	ComponentCreated(typ string)

	// CellRendered is called for every table cell, with the name of the
	// renderer that produced it ("fallback" when none matched).
	CellRendered(renderer string)

	// HeadInjected is called the first time a head snippet is added.
	HeadInjected(key string)

	// ScopeMismatch is called when a scope exit does not match the top.
	ScopeMismatch()

	// PageRendered is called after a page document was produced.
	PageRendered(components, bytes int, elapsed time.Duration)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) ComponentCreated(string)              {}
func (NopObserver) CellRendered(string)                  {}
func (NopObserver) HeadInjected(string)                  {}
func (NopObserver) ScopeMismatch()                       {}
func (NopObserver) PageRendered(int, int, time.Duration) {}
