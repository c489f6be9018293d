// Package templui connects dataviewer documents with templ.
//
// Components and pages can be rendered from templ layouts:
//
//	@templui.Head(session)
//	@templui.Component(table)
//
// and templ components can be placed inside a dataviewer page with Embed.
package templui

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/vango-dev/dataviewer/pkg/render"
	"github.com/vango-dev/dataviewer/pkg/ui"
)

// Component renders a dataviewer component as a templ component.
func Component(c ui.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		node, err := c.Node()
		if err != nil {
			return err
		}
		return render.NewRenderer(render.RendererConfig{}).RenderToWriter(w, node)
	})
}

// Head renders the shared head content a session collected, for layouts
// that provide their own document shell.
func Head(s *ui.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, h := range s.HeadContent() {
			if _, err := io.WriteString(w, h+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// Page renders a complete dataviewer document.
func Page(p *ui.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := p.RenderContext(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	})
}

// Embed renders tc and adds the result to s as an HTML block, attached to
// the open scope like any other component.
func Embed(ctx context.Context, s *ui.Session, common ui.Common, tc templ.Component) (*ui.HTML, error) {
	var b strings.Builder
	if err := tc.Render(ctx, &b); err != nil {
		return nil, err
	}
	return ui.NewHTML(s, ui.HTMLProps{Common: common, HTML: b.String()})
}

// Render writes a templ component to the HTTP response.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", ui.ContentType)
	return component.Render(r.Context(), w)
}

// Handler serves the page returned by build, building a fresh one for
// every request.
func Handler(build func(ctx context.Context) (*ui.Page, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := build(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var b strings.Builder
		if err := Page(page).Render(r.Context(), &b); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ui.ContentType)
		io.WriteString(w, b.String())
	})
}
