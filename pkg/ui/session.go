package ui

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/cell"
)

// Session is the build context of one document. It owns the id counters,
// the component registry, the shared head content, the cell renderer
// registry and the scope stack. Sessions share nothing with each other.
//
// A Session is meant to be driven by a single goroutine. Registry and head
// reads are guarded so they may be inspected from other goroutines.
type Session struct {
	mu         sync.RWMutex
	counters   map[string]int
	components map[string]Component
	headKeys   map[string]bool
	head       []string

	scope []ChildAcceptor

	cells    *cell.Registry
	logger   *slog.Logger
	observer Observer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver sets the event observer.
func WithObserver(o Observer) SessionOption {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithCellRegistry replaces the default cell renderer registry.
func WithCellRegistry(r *cell.Registry) SessionOption {
	return func(s *Session) {
		s.cells = r
	}
}

// NewSession creates an empty session. Unless WithCellRegistry is given, it
// owns a default cell registry whose image renderer injects into this
// session's head content.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		counters:   make(map[string]int),
		components: make(map[string]Component),
		headKeys:   make(map[string]bool),
		logger:     slog.Default(),
		observer:   NopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cells == nil {
		s.cells = cell.NewDefaultRegistry(s, s.logger)
	}
	return s
}

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Observer returns the session observer.
func (s *Session) Observer() Observer { return s.observer }

// Cells returns the cell renderer registry used by tables.
func (s *Session) Cells() *cell.Registry { return s.cells }

// InjectHead appends content to the document head unless key was already
// injected. It reports whether content was added.
func (s *Session) InjectHead(key, content string) bool {
	s.mu.Lock()
	if s.headKeys[key] {
		s.mu.Unlock()
		return false
	}
	s.headKeys[key] = true
	s.head = append(s.head, content)
	s.mu.Unlock()

	s.logger.Debug("head content injected", "key", key)
	s.observer.HeadInjected(key)
	return true
}

// HasHead reports whether key was injected.
func (s *Session) HasHead(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.headKeys[key]
}

// HeadContent returns the injected head snippets in injection order.
func (s *Session) HeadContent() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.head))
	copy(out, s.head)
	return out
}

// Lookup returns the component registered under id.
func (s *Session) Lookup(id string) (Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.components[id]
	return c, ok
}

// Unregister removes id from the registry so it may be reused.
func (s *Session) Unregister(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.components[id]; !ok {
		return false
	}
	delete(s.components, id)
	return true
}

// IDs returns the registered component ids, sorted.
func (s *Session) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.components))
	for id := range s.components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset clears counters, registry, head content and scope. The cell
// registry is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	s.counters = make(map[string]int)
	s.components = make(map[string]Component)
	s.headKeys = make(map[string]bool)
	s.head = nil
	s.mu.Unlock()

	s.ClearScope()
}

// nextID returns the next free "{type}-{n}" id. Counters never go back, and
// ids claimed by callers are skipped.
func (s *Session) nextID(typ string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := strings.ToLower(typ) + "-"
	for {
		s.counters[typ]++
		id := prefix + strconv.Itoa(s.counters[typ])
		if _, taken := s.components[id]; !taken {
			return id
		}
	}
}

// register claims c's id.
func (s *Session) register(c Component) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.components[c.ID()]; ok {
		return errors.New("DV021").
			WithDetailf("id %q is already used by a %s", c.ID(), existing.Type())
	}
	s.components[c.ID()] = c
	return nil
}

// adopt registers c and attaches it to the open scope, if any.
func (s *Session) adopt(c Component) error {
	if err := s.register(c); err != nil {
		return err
	}
	if parent := s.Current(); parent != nil {
		parent.Add(c)
	}
	s.observer.ComponentCreated(c.Type())
	return nil
}

// ValidID reports whether id is non-empty and uses only ASCII letters,
// digits, '_' and '-'.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
