// Package render converts vdom trees into HTML.
//
// It handles text and attribute escaping, void elements, boolean attributes
// and deterministic (sorted) attribute order, so the same tree always yields
// the same bytes.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Documents
//
// RenderDocument wraps top-level nodes in a minimal HTML document that loads
// a utility-CSS runtime (or an inlined stylesheet) and any shared head
// content collected while the components were built:
//
//	err := renderer.RenderDocument(w, render.Document{
//	    Title:   "Report",
//	    Padding: "4",
//	    Head:    headSnippets,
//	    Body:    nodes,
//	})
//
// StreamingRenderer flushes the head before the body when writing to an
// http.ResponseWriter.
//
// # Security
//
// Text content and attribute values are escaped. Raw nodes are written
// verbatim and must only carry trusted markup.
package render
