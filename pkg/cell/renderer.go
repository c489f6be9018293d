package cell

import "github.com/vango-dev/dataviewer/pkg/vdom"

// Renderer converts a table-cell value into markup.
type Renderer interface {
	// Level is the dispatch priority. Higher levels are tried first.
	Level() int

	// CanRender reports whether the renderer handles v.
	CanRender(v any) bool

	// Render converts v into a node. It is only called when CanRender(v)
	// returned true.
	Render(v any) *vdom.VNode
}

// Media identifies the kind of media a renderer produces.
type Media int

const (
	MediaNone Media = iota
	MediaImage
	MediaVideo
)

// String returns the lowercase media name.
func (m Media) String() string {
	switch m {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	default:
		return "none"
	}
}

// MediaRenderer is implemented by renderers that emit media elements.
// Tables use it to classify columns.
type MediaRenderer interface {
	Renderer
	Media() Media
}

// MediaOf returns the media advertised by r, or MediaNone.
func MediaOf(r Renderer) Media {
	if m, ok := r.(MediaRenderer); ok {
		return m.Media()
	}
	return MediaNone
}

// HeadInjector receives shared head markup. InjectHead returns false when
// content under key was already injected.
type HeadInjector interface {
	InjectHead(key, content string) bool
}
