package ui

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestSession(opts ...SessionOption) *Session {
	opts = append([]SessionOption{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return NewSession(opts...)
}

func mustRender(t *testing.T, c Component) string {
	t.Helper()
	html, err := Render(c)
	if err != nil {
		t.Fatalf("Render(%s) error: %v", c.ID(), err)
	}
	return html
}

// attrValue returns the value of the first attr="..." occurrence in s.
func attrValue(t *testing.T, s, attr string) string {
	t.Helper()

	needle := " " + attr + `="`
	idx := strings.Index(s, needle)
	if idx == -1 {
		t.Fatalf("expected %s attribute in %q", attr, s)
	}
	start := idx + len(needle)
	end := strings.IndexByte(s[start:], '"')
	if end == -1 {
		t.Fatalf("unterminated attribute %q in %q", attr, s)
	}
	return s[start : start+end]
}

// recordingObserver counts observer events.
type recordingObserver struct {
	mu         sync.Mutex
	created    map[string]int
	cells      map[string]int
	head       []string
	mismatches int
	pages      int
	lastBytes  int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{created: map[string]int{}, cells: map[string]int{}}
}

func (o *recordingObserver) ComponentCreated(typ string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created[typ]++
}

func (o *recordingObserver) CellRendered(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cells[name]++
}

func (o *recordingObserver) HeadInjected(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.head = append(o.head, key)
}

func (o *recordingObserver) ScopeMismatch() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mismatches++
}

func (o *recordingObserver) PageRendered(components, bytes int, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pages++
	o.lastBytes = bytes
}
