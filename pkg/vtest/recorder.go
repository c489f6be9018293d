package vtest

import (
	"sort"
	"sync"
	"time"

	"github.com/vango-dev/dataviewer/pkg/ui"
)

// Recorder is a ui.Observer that keeps every event for later assertions.
//
// Example:
//
//	rec := vtest.NewRecorder()
//	s := vtest.NewSession(ui.WithObserver(rec))
//	...
//	if rec.Cells("ImageRenderer") != 2 { ... }
type Recorder struct {
	mu         sync.Mutex
	created    map[string]int
	cells      map[string]int
	head       []string
	mismatches int
	pages      int
	lastBytes  int
}

var _ ui.Observer = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{created: map[string]int{}, cells: map[string]int{}}
}

func (r *Recorder) ComponentCreated(typ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[typ]++
}

func (r *Recorder) CellRendered(renderer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cells[renderer]++
}

func (r *Recorder) HeadInjected(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = append(r.head, key)
}

func (r *Recorder) ScopeMismatch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mismatches++
}

func (r *Recorder) PageRendered(components, bytes int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages++
	r.lastBytes = bytes
}

// Created returns how many components of typ were created.
func (r *Recorder) Created(typ string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created[typ]
}

// Types returns the created component types, sorted.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.created))
	for typ := range r.created {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}

// Cells returns how many cells the named renderer produced.
func (r *Recorder) Cells(renderer string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cells[renderer]
}

// Head returns the injected head keys in order.
func (r *Recorder) Head() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.head...)
}

// Mismatches returns the number of failed scope exits.
func (r *Recorder) Mismatches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mismatches
}

// Pages returns the number of rendered pages and the size of the last one.
func (r *Recorder) Pages() (count, lastBytes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pages, r.lastBytes
}
