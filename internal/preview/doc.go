// Package preview serves a document over HTTP while it is being edited.
//
// Every request to / loads and builds the document in a fresh session, so
// edits show up on the next refresh. With reload enabled the server also
// polls the document and the data files it reads, and tells connected
// browsers to reload over a websocket at /_dataviewer/reload. Build errors
// are shown in an overlay until the document is fixed.
//
// Routes:
//
//	GET /                    the rendered document
//	GET /_dataviewer/reload  live reload websocket
//	GET /metrics             Prometheus metrics
//	GET /healthz             liveness
package preview
