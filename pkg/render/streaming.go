package render

import (
	"io"
	"net/http"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes the head before rendering the body so browsers can start
// fetching the CSS runtime early.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to
// an http.ResponseWriter. If the writer implements http.Flusher,
// content will be flushed after each section.
func NewStreamingRenderer(w http.ResponseWriter, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderDocument renders a complete HTML document with incremental flushing.
func (s *StreamingRenderer) RenderDocument(doc Document) error {
	if err := s.renderDocumentHead(s.w, doc); err != nil {
		return err
	}
	s.flush()

	if err := s.renderDocumentBody(s.w, doc); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, "</html>\n"); err != nil {
		return err
	}
	s.flush()

	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with a flush counter.
// This is useful for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
