// Package errors provides coded, categorized errors for dataviewer.
//
// Every error carries a code (e.g. "DV001") that maps to a registered
// template with a category, a short message and an optional fix hint.
// Categories double as kinds: errors.Is(err, KindInvalidArgument) matches
// every invalid-argument error regardless of code.
//
// # Codes
//
//   - DV001-DV009: invalid arguments (ids, header level/color, table options)
//   - DV010-DV019: missing resources (documents, data files, images)
//   - DV020: scope exit mismatch
//   - DV021: duplicate component id
//   - DV030: rendering not implemented
//   - DV100+: configuration and CLI
//
// # Usage
//
//	err := errors.New("DV005").
//	    WithLocation("report.yaml", 12, 5).
//	    WithDetail(`unknown node kind "heder"`)
//
//	errors.PrintError(err)
//	// ERROR DV005: Invalid document node
//	//
//	//   report.yaml:12:5
//	//
//	//     10 │ body:
//	//     11 │   - header: {text: Hi}
//	//   → 12 │   - heder: {text: Oops}
//	//        │     ^
//	//
//	//   unknown node kind "heder"
package errors
