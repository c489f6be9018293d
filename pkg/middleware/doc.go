// Package middleware provides net/http middleware for the preview server.
//
// This package includes:
//   - OpenTelemetry request tracing
//   - Prometheus request metrics
//   - Structured request logging
//
// # OpenTelemetry Middleware
//
// Every request gets a server span. Handlers that pass r.Context() on to
// page builds get the build spans as children.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
// Requests are labeled by the matched chi route pattern, never the raw
// path:
//
//	reg := prometheus.NewRegistry()
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
