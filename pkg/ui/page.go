package ui

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/render"
)

const tracerName = "dataviewer"

// ContentType is the media type of a rendered page.
const ContentType = "text/html; charset=utf-8"

// Target receives published documents. It is implemented by the save
// targets in pkg/store.
type Target interface {
	// Put stores body under name and returns its location.
	Put(ctx context.Context, name string, body io.Reader, contentType string) (string, error)
}

// PageProps configures a Page.
type PageProps struct {
	Title string

	// Padding is the utility spacing step of the body wrapper. Default "4".
	Padding string
}

// PageOption customizes how a page is rendered.
type PageOption func(*pageConfig)

type pageConfig struct {
	cssRuntime string
	inlineCSS  string
	extraHead  []string
	pretty     bool
	lang       string
}

// WithCSSRuntime sets the src of the utility-CSS runtime script.
func WithCSSRuntime(url string) PageOption {
	return func(c *pageConfig) {
		c.cssRuntime = url
	}
}

// WithInlineCSS embeds a precompiled stylesheet instead of the runtime script.
func WithInlineCSS(css string) PageOption {
	return func(c *pageConfig) {
		c.inlineCSS = css
	}
}

// WithExtraHead appends trusted markup to the head after the session's
// shared content.
func WithExtraHead(html string) PageOption {
	return func(c *pageConfig) {
		c.extraHead = append(c.extraHead, html)
	}
}

// WithPretty indents the rendered body.
func WithPretty() PageOption {
	return func(c *pageConfig) {
		c.pretty = true
	}
}

// WithLang sets the html lang attribute.
func WithLang(lang string) PageOption {
	return func(c *pageConfig) {
		c.lang = lang
	}
}

// Page is the top-level document. It collects components and emits a
// complete HTML file carrying the session's shared head content.
type Page struct {
	Title   string
	Padding string

	session    *Session
	components []Component
	config     pageConfig
	tracer     trace.Tracer
}

// NewPage creates a page bound to s.
func NewPage(s *Session, p PageProps, opts ...PageOption) *Page {
	page := &Page{
		Title:   p.Title,
		Padding: orDefault(p.Padding, "4"),
		session: s,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&page.config)
	}
	return page
}

// Session returns the session the page was created with.
func (p *Page) Session() *Session { return p.session }

// Add appends a top-level component unless it is already present.
func (p *Page) Add(c Component) {
	if c == nil {
		return
	}
	for _, existing := range p.components {
		if existing == c {
			return
		}
	}
	p.components = append(p.components, c)
}

// Components returns the top-level components in insertion order.
func (p *Page) Components() []Component {
	out := make([]Component, len(p.components))
	copy(out, p.components)
	return out
}

// Enter makes the page the only open scope.
func (p *Page) Enter() {
	p.session.ClearScope()
	p.session.Enter(p)
}

// Exit closes the page scope.
func (p *Page) Exit() error {
	return p.session.Exit(p)
}

// Build runs fn with the page as the open scope.
func (p *Page) Build(fn func() error) error {
	p.session.ClearScope()
	return p.session.Within(p, fn)
}

// Render renders the full HTML document.
func (p *Page) Render() (string, error) {
	return p.RenderContext(context.Background())
}

// RenderContext is Render with tracing attached to ctx.
func (p *Page) RenderContext(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := p.render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo implements io.WriterTo.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := p.render(context.Background(), &buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Save writes the document to path as UTF-8, creating parent directories.
func (p *Page) Save(path string) error {
	html, err := p.Render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("DV106").WithDetail(path).Wrap(err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return errors.New("DV106").WithDetail(path).Wrap(err)
	}
	p.session.Logger().Info("page saved", "path", path, "bytes", len(html))
	return nil
}

// Publish renders the document and stores it in target under name.
func (p *Page) Publish(ctx context.Context, target Target, name string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "dataviewer.page.publish",
		trace.WithAttributes(attribute.String("dataviewer.name", name)))
	defer span.End()

	var buf bytes.Buffer
	if err := p.render(ctx, &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	location, err := target.Put(ctx, name, &buf, ContentType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", errors.New("DV103").WithDetail(name).Wrap(err)
	}
	span.SetAttributes(attribute.String("dataviewer.location", location))
	p.session.Logger().Info("page published", "name", name, "location", location)
	return location, nil
}

func (p *Page) document() (render.Document, error) {
	body, err := nodes(p.components)
	if err != nil {
		return render.Document{}, err
	}
	head := append(p.session.HeadContent(), p.config.extraHead...)
	return render.Document{
		Title:      p.Title,
		Lang:       p.config.lang,
		Padding:    p.Padding,
		CSSRuntime: p.config.cssRuntime,
		InlineCSS:  p.config.inlineCSS,
		Head:       head,
		Body:       body,
	}, nil
}

func (p *Page) render(ctx context.Context, w *bytes.Buffer) error {
	_, span := p.tracer.Start(ctx, "dataviewer.page.render",
		trace.WithAttributes(
			attribute.String("dataviewer.title", p.Title),
			attribute.Int("dataviewer.components", len(p.components)),
		))
	defer span.End()

	start := time.Now()
	doc, err := p.document()
	if err == nil {
		renderer := render.NewRenderer(render.RendererConfig{Pretty: p.config.pretty})
		err = renderer.RenderDocument(w, doc)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	elapsed := time.Since(start)
	span.SetAttributes(attribute.Int("dataviewer.bytes", w.Len()))
	p.session.Observer().PageRendered(len(p.components), w.Len(), elapsed)
	p.session.Logger().Debug("page rendered",
		"title", p.Title,
		"components", len(p.components),
		"bytes", w.Len(),
		"elapsed", elapsed,
	)
	return nil
}
