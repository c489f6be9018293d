package preview

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/dataviewer/internal/document"
	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/metrics"
	"github.com/vango-dev/dataviewer/pkg/middleware"
	"github.com/vango-dev/dataviewer/pkg/render"
	"github.com/vango-dev/dataviewer/pkg/templui"
	"github.com/vango-dev/dataviewer/pkg/ui"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// Options configures the preview server.
type Options struct {
	// Document is the YAML document to serve.
	Document string

	// Addr is the listen address.
	Addr string

	// Reload enables live reload when the document or its data files change.
	Reload bool

	// Interval is the file polling interval.
	Interval time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics, when set, observes every build and counts reloads.
	Metrics *metrics.Collector

	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Registerer, when set, receives the HTTP request metrics.
	Registerer prometheus.Registerer

	// PageOptions are applied to every built page.
	PageOptions []ui.PageOption
}

// Server renders a document fresh on every request.
type Server struct {
	opts    Options
	logger  *slog.Logger
	reload  *ReloadServer
	watcher *Watcher
}

// New creates a preview server.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		opts:    opts,
		logger:  opts.Logger,
		watcher: NewWatcher(opts.Interval),
	}
	if opts.Reload {
		s.reload = NewReloadServer(opts.Logger)
	}
	s.watcher.SetPaths([]string{opts.Document})
	return s
}

// Handler returns the router serving the preview.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.OpenTelemetry(middleware.WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
	})))
	if s.opts.Registerer != nil {
		r.Use(middleware.Prometheus(middleware.WithRegistry(s.opts.Registerer)))
	}

	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	if s.reload != nil {
		r.Get(ReloadPath, s.reload.HandleWebSocket)
	}
	return r
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if _, err := s.build(ctx); err != nil {
		s.logger.Warn("document has errors", "error", err)
	}

	if s.reload != nil {
		s.watcher.OnChange(s.handleChanges)
		go s.watcher.Run(ctx)
	}

	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	s.logger.Info("preview server running", "addr", s.opts.Addr, "document", s.opts.Document, "reload", s.reload != nil)

	select {
	case <-ctx.Done():
		if s.reload != nil {
			s.reload.Close()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			return errors.New("DV105").WithDetail(s.opts.Addr).Wrap(err)
		}
		return nil
	}
}

// build loads the document and builds it in a fresh session. The watched
// files follow the data files the document reads.
func (s *Server) build(ctx context.Context) (*ui.Page, error) {
	opts := []ui.SessionOption{ui.WithLogger(s.logger)}
	if s.opts.Metrics != nil {
		opts = append(opts, ui.WithObserver(s.opts.Metrics))
	}
	session := ui.NewSession(opts...)

	doc, err := document.Load(s.opts.Document)
	if err != nil {
		return nil, err
	}
	pageOpts := s.opts.PageOptions
	if s.reload != nil {
		pageOpts = append(pageOpts[:len(pageOpts):len(pageOpts)], ui.WithExtraHead(ClientScript))
	}
	page, err := doc.Build(session, pageOpts...)
	s.watcher.SetPaths(append([]string{s.opts.Document}, doc.Files()...))
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.build(r.Context())
	if err != nil {
		s.logger.Warn("document build failed", "error", err)
		s.writeError(w, err)
		return
	}
	if err := templui.Render(w, r, templui.Page(page)); err != nil {
		s.logger.Error("render failed", "error", err)
	}
}

// writeError serves a page showing err. It keeps the reload script so the
// page recovers once the document is fixed.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	doc := render.Document{
		Title:   "Document error",
		Padding: "4",
		Body: []*vdom.VNode{
			vdom.H(2, vdom.Class("text-xl font-semibold text-red-600 mb-4"), "Document error"),
			vdom.Pre(vdom.Class("text-sm rounded bg-red-50 p-4 text-red-800"), err.Error()),
		},
	}
	if s.reload != nil {
		doc.Head = []string{ClientScript}
	}
	w.Header().Set("Content-Type", ui.ContentType)
	w.WriteHeader(http.StatusInternalServerError)
	render.NewRenderer(render.RendererConfig{}).RenderDocument(w, doc)
}

// handleChanges rebuilds after a file change and tells the browsers.
func (s *Server) handleChanges(paths []string) {
	s.logger.Info("document changed", "files", paths)

	if _, err := s.build(context.Background()); err != nil {
		s.logger.Warn("document has errors", "error", err)
		s.reload.NotifyError(err.Error())
		return
	}
	n := s.reload.NotifyReload()
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordReload(n)
	}
	s.logger.Debug("reloaded browsers", "clients", n)
}
