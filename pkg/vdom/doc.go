// Package vdom provides the markup node tree used by dataviewer components.
//
// VNode is the fundamental building block representing elements, text,
// fragments and raw HTML. Props holds attributes; Attr values are used to
// build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("flex", "gap-4"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Class names are normalized with CN, which drops empty entries so optional
// utility classes can be passed without conditionals.
package vdom
