package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// DefaultCSSRuntime is the utility-CSS runtime referenced by documents
// that do not inline their stylesheet.
const DefaultCSSRuntime = "https://cdn.tailwindcss.com/3.4.16"

// DefaultBaseStyle is the inline stylesheet every document carries.
const DefaultBaseStyle = `
        body {
            width: 100%;
            min-height: 100vh;
            margin: 0;
        }
        .container {
            width: 100%;
            margin: 0 auto;
        }
        th, td, pre {
            word-break: break-word;
            overflow-wrap: break-word;
            white-space: break-spaces;
        }
    `

// Document contains everything needed to render a complete HTML page.
type Document struct {
	// Title is the page title.
	Title string

	// Lang is the html lang attribute. Omitted when empty.
	Lang string

	// Padding is the utility spacing step of the body wrapper (p-{Padding}).
	Padding string

	// CSSRuntime is the src of the utility-CSS runtime script.
	// Defaults to DefaultCSSRuntime. Ignored when InlineCSS is set.
	CSSRuntime string

	// InlineCSS is a precompiled stylesheet emitted instead of the runtime script.
	InlineCSS string

	// BaseStyle overrides DefaultBaseStyle when non-empty.
	BaseStyle string

	// Head holds trusted markup appended to the head, in order.
	Head []string

	// Body holds the top-level nodes, joined with newlines inside the wrapper.
	Body []*vdom.VNode
}

// RenderDocument renders a complete HTML document to the given writer.
func (r *Renderer) RenderDocument(w io.Writer, doc Document) error {
	if err := r.renderDocumentHead(w, doc); err != nil {
		return err
	}
	if err := r.renderDocumentBody(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</html>\n")
	return err
}

// RenderDocumentString renders doc to a string.
func (r *Renderer) RenderDocumentString(doc Document) (string, error) {
	var b strings.Builder
	if err := r.RenderDocument(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderDocumentHead writes the doctype, the html open tag and the head section.
func (r *Renderer) renderDocumentHead(w io.Writer, doc Document) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}

	if doc.Lang != "" {
		if _, err := fmt.Fprintf(w, "<html lang=\"%s\">\n", escapeAttr(doc.Lang)); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, "<html>\n"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<head>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "    <title>%s</title>\n", escapeHTML(doc.Title)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "    <meta charset=\"UTF-8\">\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n"); err != nil {
		return err
	}

	if doc.InlineCSS != "" {
		if _, err := fmt.Fprintf(w, "    <style>%s</style>\n", doc.InlineCSS); err != nil {
			return err
		}
	} else {
		src := doc.CSSRuntime
		if src == "" {
			src = DefaultCSSRuntime
		}
		if _, err := fmt.Fprintf(w, "    <script src=\"%s\"></script>\n", escapeAttr(src)); err != nil {
			return err
		}
	}

	base := doc.BaseStyle
	if base == "" {
		base = DefaultBaseStyle
	}
	if _, err := fmt.Fprintf(w, "    <style>%s</style>\n", base); err != nil {
		return err
	}

	for _, h := range doc.Head {
		if _, err := io.WriteString(w, h); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

// renderDocumentBody writes the body with its padding wrapper.
func (r *Renderer) renderDocumentBody(w io.Writer, doc Document) error {
	padding := doc.Padding
	if padding == "" {
		padding = "0"
	}
	if _, err := fmt.Fprintf(w, "<body>\n    <div class=\"p-%s\">\n", escapeAttr(padding)); err != nil {
		return err
	}

	first := true
	for _, node := range doc.Body {
		if node == nil {
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := r.RenderToWriter(w, node); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n    </div>\n</body>\n")
	return err
}
