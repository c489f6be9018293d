package ui

import (
	"github.com/vango-dev/dataviewer/pkg/cell"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// VideoProps configures a Video.
type VideoProps struct {
	Common
	Src string

	// Width in pixels. Defaults to 400.
	Width  int
	Height int
	Class  string
}

// Video is a <video> player with one source.
type Video struct {
	Base
	Src    string
	Width  int
	Height int
	Class  string
}

// NewVideo creates a video.
func NewVideo(s *Session, p VideoProps) (*Video, error) {
	base, err := newBase(s, "video", p.Common)
	if err != nil {
		return nil, err
	}
	width := p.Width
	if width == 0 {
		width = 400
	}
	v := &Video{Base: base, Src: p.Src, Width: width, Height: p.Height, Class: p.Class}
	if err := s.adopt(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Node implements Component.
func (v *Video) Node() (*vdom.VNode, error) {
	node := vdom.Video(
		vdom.ID(v.id),
		vdom.Class(v.Class),
		vdom.IfAttr(v.Width > 0, vdom.Width(v.Width)),
		vdom.IfAttr(v.Height > 0, vdom.Height(v.Height)),
		vdom.Controls(),
		vdom.Preload("metadata"),
		vdom.Source(vdom.Src(v.Src), vdom.Type(cell.VideoMIME(v.Src))),
	)
	return v.decorate(node), nil
}
