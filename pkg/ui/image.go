package ui

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/assets"
	"github.com/vango-dev/dataviewer/pkg/cell"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// imageExtMIME maps recognized local image extensions to MIME types. It is
// also the fallback when the file content cannot be decoded.
var imageExtMIME = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".avif": "image/avif",
}

// formatMIME maps image.DecodeConfig format names to MIME types.
var formatMIME = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// ImageProps configures an Image.
type ImageProps struct {
	Common

	// Src is a URL, a data: URI, an img:// reference or a local path.
	Src string

	// Width and Height in pixels. Zero omits the dimension.
	Width  int
	Height int

	Alt   string
	Class string

	// Eager disables lazy loading.
	Eager bool
}

// Image is a zoomable <img>. Local files are embedded as data URIs; a
// missing or unsupported local file renders a visible error instead.
type Image struct {
	Base
	Src    string
	Width  int
	Height int
	Alt    string
	Class  string
	Eager  bool
}

// NewImage creates an image and injects the lightbox head content.
func NewImage(s *Session, p ImageProps) (*Image, error) {
	base, err := newBase(s, "image", p.Common)
	if err != nil {
		return nil, err
	}
	img := &Image{
		Base:   base,
		Src:    p.Src,
		Width:  p.Width,
		Height: p.Height,
		Alt:    p.Alt,
		Class:  p.Class,
		Eager:  p.Eager,
	}
	if err := s.adopt(img); err != nil {
		return nil, err
	}
	s.InjectHead(assets.KeyLightbox, assets.MustHead(assets.KeyLightbox))
	return img, nil
}

// Node implements Component.
func (img *Image) Node() (*vdom.VNode, error) {
	src, err := resolveImageSource(img.Src)
	if err != nil {
		img.session.Logger().Warn("image not rendered", "id", img.id, "src", img.Src, "error", err)
		return imageError(img.id, err), nil
	}

	style := vdom.Stylef("width", pixels(img.Width), "height", pixels(img.Height))
	node := vdom.Img(
		vdom.ID(img.id),
		vdom.Src(src),
		vdom.Class(img.Class, "zoomable-image", "cell-image"),
		vdom.OnClick("openImagePreview(this)"),
		vdom.Alt(img.Alt),
		vdom.StyleAttr(style),
		vdom.IfAttr(!img.Eager, vdom.Loading("lazy")),
	)
	return img.decorate(node), nil
}

func pixels(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n) + "px"
}

// imageError is the inline fragment shown in place of an unusable image.
func imageError(id string, err error) *vdom.VNode {
	return vdom.Div(
		vdom.ID(id),
		vdom.Class("image-error inline-block rounded border border-red-300 bg-red-50 px-3 py-2 text-sm text-red-700"),
		err.Error(),
	)
}

// IsRemoteImage reports whether src is used as-is: URLs and data: URIs.
func IsRemoteImage(src string) bool {
	for _, prefix := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}

// resolveImageSource turns src into a usable <img> src. Local files are
// validated and embedded.
func resolveImageSource(src string) (string, error) {
	src = strings.TrimPrefix(src, cell.ImageScheme)
	if IsRemoteImage(src) {
		return src, nil
	}

	ext := strings.ToLower(filepath.Ext(src))
	fallback, ok := imageExtMIME[ext]
	if !ok {
		return "", errors.New("DV013").WithDetail(src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", errors.New("DV012").WithDetail(src).Wrap(err)
	}
	return "data:" + SniffImageMIME(data, fallback) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// SniffImageMIME returns the MIME type of encoded image data, or fallback
// when the format is not recognized.
func SniffImageMIME(data []byte, fallback string) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fallback
	}
	if mime, ok := formatMIME[format]; ok {
		return mime
	}
	return fallback
}
