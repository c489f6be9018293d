package cell

import (
	"strconv"
	"strings"

	"github.com/vango-dev/dataviewer/pkg/assets"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// ImageScheme marks a string as an image reference regardless of extension.
const ImageScheme = "img://"

// DefaultImagePatterns are the file extensions recognized as images.
var DefaultImagePatterns = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg", ".ico", ".tif", ".tiff", ".avif",
}

// base64Headers maps the leading bytes of base64-encoded photos to MIME types.
var base64Headers = []struct {
	prefix string
	mime   string
}{
	{"/9j/", "image/jpeg"},
	{"iVBORw0KGgo", "image/png"},
	{"R0lGOD", "image/gif"},
	{"UklGR", "image/webp"},
}

// maxGridCols caps the number of columns of an image list grid.
const maxGridCols = 5

// ImageRenderer renders image references and lists of them.
type ImageRenderer struct {
	// Patterns are the recognized extensions, lowercase with a leading dot.
	Patterns []string

	// Width and Height are CSS lengths applied inline. Empty values are omitted.
	Width  string
	Height string

	// Eager disables lazy loading.
	Eager bool

	// Injector receives the lightbox markup on first render. May be nil.
	Injector HeadInjector
}

// NewImageRenderer creates an image renderer with the default patterns.
func NewImageRenderer(injector HeadInjector) *ImageRenderer {
	return &ImageRenderer{
		Patterns: DefaultImagePatterns,
		Width:    "100px",
		Injector: injector,
	}
}

func (r *ImageRenderer) Level() int   { return 1 }
func (r *ImageRenderer) Media() Media { return MediaImage }

func (r *ImageRenderer) String() string { return "ImageRenderer" }

// CanRender accepts an image reference or a non-empty list whose every
// element is an image reference.
func (r *ImageRenderer) CanRender(v any) bool {
	switch val := v.(type) {
	case string:
		return r.IsImage(val)
	case []string:
		if len(val) == 0 {
			return false
		}
		for _, s := range val {
			if !r.IsImage(s) {
				return false
			}
		}
		return true
	case []any:
		if len(val) == 0 {
			return false
		}
		for _, item := range val {
			s, ok := item.(string)
			if !ok || !r.IsImage(s) {
				return false
			}
		}
		return true
	}
	return false
}

// IsImage reports whether s references an image.
func (r *ImageRenderer) IsImage(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, ImageScheme) || strings.HasPrefix(s, "data:image/") {
		return true
	}
	if _, ok := base64MIME(s); ok {
		return true
	}
	lower := strings.ToLower(stripQuery(s))
	for _, p := range r.Patterns {
		if strings.HasSuffix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// Render emits one <img> for a single reference, or a grid of them for a list.
func (r *ImageRenderer) Render(v any) *vdom.VNode {
	if r.Injector != nil {
		r.Injector.InjectHead(assets.KeyLightbox, assets.MustHead(assets.KeyLightbox))
	}

	srcs := imageList(v)
	if srcs == nil {
		s, _ := v.(string)
		return r.image(s)
	}

	cols := len(srcs)
	if cols > maxGridCols {
		cols = maxGridCols
	}
	grid := vdom.Div(vdom.Class("grid", "grid-cols-"+strconv.Itoa(cols), "gap-1"))
	for _, src := range srcs {
		grid.Append(r.image(src))
	}
	return grid
}

func (r *ImageRenderer) image(src string) *vdom.VNode {
	return vdom.Img(
		vdom.Src(ImageSource(src)),
		vdom.StyleAttr(vdom.Stylef("width", r.Width, "height", r.Height)),
		vdom.Class("cell-image"),
		vdom.OnClick("openImagePreview(this)"),
		vdom.IfAttr(!r.Eager, vdom.Loading("lazy")),
		vdom.Alt("image"),
	)
}

// ImageSource converts an image reference into a usable src: the img://
// scheme is stripped and bare base64 photos become data URIs.
func ImageSource(s string) string {
	if strings.HasPrefix(s, ImageScheme) {
		return strings.TrimPrefix(s, ImageScheme)
	}
	if mime, ok := base64MIME(s); ok {
		return "data:" + mime + ";base64," + s
	}
	return s
}

func base64MIME(s string) (string, bool) {
	for _, h := range base64Headers {
		if strings.HasPrefix(s, h.prefix) {
			return h.mime, true
		}
	}
	return "", false
}

// imageList returns the elements of a list value, or nil for a single value.
func imageList(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, _ := item.(string)
			out = append(out, s)
		}
		return out
	}
	return nil
}
