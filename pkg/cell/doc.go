// Package cell decides how table-cell values are rendered.
//
// A Registry holds Renderer strategies ordered by descending Level. For each
// value the first renderer whose CanRender accepts it produces the markup:
//
//	reg := cell.NewDefaultRegistry(session, logger)
//	node, ok := reg.Render("photo.png") // image renderer
//	node, ok = reg.Render(42)           // default renderer, "42"
//
// The default set is ImageRenderer (level 1), VideoRenderer (level 2) and
// DefaultRenderer (level -1, matches everything).
package cell
