package cell

import (
	"regexp"

	"github.com/vango-dev/dataviewer/pkg/vdom"
)

var videoPattern = regexp.MustCompile(`(?i)\.(mp4|avi|mov|mkv|webm)$`)

// VideoRenderer renders video file references as a <video> element.
type VideoRenderer struct {
	// Patterns match video references. Query strings are ignored.
	Patterns []*regexp.Regexp

	// Width in pixels. Zero omits the attribute.
	Width int

	// Height in pixels. Zero omits the attribute.
	Height int
}

// NewVideoRenderer creates a video renderer with the default pattern and a
// 400px width.
func NewVideoRenderer() *VideoRenderer {
	return &VideoRenderer{
		Patterns: []*regexp.Regexp{videoPattern},
		Width:    400,
	}
}

func (r *VideoRenderer) Level() int     { return 2 }
func (r *VideoRenderer) Media() Media   { return MediaVideo }
func (r *VideoRenderer) String() string { return "VideoRenderer" }

// CanRender accepts strings matching one of the patterns.
func (r *VideoRenderer) CanRender(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	s = stripQuery(s)
	for _, p := range r.Patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Render emits a <video> element with a single <source>.
func (r *VideoRenderer) Render(v any) *vdom.VNode {
	src, _ := v.(string)
	return vdom.Video(
		vdom.IfAttr(r.Width > 0, vdom.Width(r.Width)),
		vdom.IfAttr(r.Height > 0, vdom.Height(r.Height)),
		vdom.Controls(),
		vdom.Preload("metadata"),
		vdom.Source(vdom.Src(src), vdom.Type(VideoMIME(src))),
	)
}
