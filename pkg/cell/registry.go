package cell

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// Registry dispatches values to the highest-level renderer that accepts them.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers []Renderer
	logger    *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger uses slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// NewDefaultRegistry creates a registry holding the image, video and
// default renderers. The image renderer injects its lightbox through injector.
func NewDefaultRegistry(injector HeadInjector, logger *slog.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(NewImageRenderer(injector))
	r.Register(NewVideoRenderer())
	r.Register(DefaultRenderer{})
	return r
}

// Register adds a renderer and re-sorts the dispatch list by descending
// level. Renderers with equal levels keep registration order.
func (r *Registry) Register(renderer Renderer) {
	if renderer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.renderers = append(r.renderers, renderer)
	sort.SliceStable(r.renderers, func(i, j int) bool {
		return r.renderers[i].Level() > r.renderers[j].Level()
	})
	r.logger.Info("cell renderer registered", "renderer", Name(renderer), "level", renderer.Level())
}

// Unregister removes renderer by identity. It reports whether it was present.
func (r *Registry) Unregister(renderer Renderer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.renderers {
		if existing == renderer {
			r.renderers = append(r.renderers[:i], r.renderers[i+1:]...)
			r.logger.Info("cell renderer unregistered", "renderer", Name(renderer))
			return true
		}
	}
	return false
}

// Clear removes every renderer.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.renderers = nil
	r.logger.Info("cell renderers cleared")
}

// Renderers returns the renderers in dispatch order.
func (r *Registry) Renderers() []Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Renderer, len(r.renderers))
	copy(out, r.renderers)
	return out
}

// Len returns the number of registered renderers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.renderers)
}

// Match returns the first renderer, in dispatch order, that accepts v.
func (r *Registry) Match(v any) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, renderer := range r.renderers {
		if renderer.CanRender(v) {
			return renderer, true
		}
	}
	return nil, false
}

// Render renders v with the first matching renderer. It returns
// (nil, false) when no renderer accepts v.
func (r *Registry) Render(v any) (*vdom.VNode, bool) {
	renderer, ok := r.Match(v)
	if !ok {
		return nil, false
	}
	return renderer.Render(v), true
}

// Name returns a short display name for a renderer.
func Name(r Renderer) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", r)
}
