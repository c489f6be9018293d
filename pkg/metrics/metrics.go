// Package metrics exports document build and render events as Prometheus
// metrics. A *Collector implements ui.Observer and can be shared by any
// number of sessions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/dataviewer/pkg/ui"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "dataviewer").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the render duration buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "dataviewer",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records session events.
//
// Metrics:
//   - dataviewer_components_created_total: components by type
//   - dataviewer_cells_rendered_total: table cells by renderer
//   - dataviewer_head_injections_total: shared head snippets by key
//   - dataviewer_scope_mismatches_total: failed scope exits
//   - dataviewer_pages_rendered_total: rendered documents
//   - dataviewer_page_render_duration_seconds: document render time
//   - dataviewer_page_size_bytes: document size
//   - dataviewer_page_components: top-level components per document
//   - dataviewer_reloads_total: live reload notifications sent
type Collector struct {
	componentsCreated *prometheus.CounterVec
	cellsRendered     *prometheus.CounterVec
	headInjections    *prometheus.CounterVec
	scopeMismatches   prometheus.Counter
	pagesRendered     prometheus.Counter
	renderDuration    prometheus.Histogram
	pageSize          prometheus.Histogram
	pageComponents    prometheus.Histogram
	reloads           prometheus.Counter
}

var _ ui.Observer = (*Collector)(nil)

// New creates a collector and registers its metrics.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		componentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "components_created_total",
			Help:        "Total number of components created, by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		cellsRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cells_rendered_total",
			Help:        "Total number of table cells rendered, by renderer",
			ConstLabels: config.ConstLabels,
		}, []string{"renderer"}),

		headInjections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "head_injections_total",
			Help:        "Total number of shared head snippets injected, by key",
			ConstLabels: config.ConstLabels,
		}, []string{"key"}),

		scopeMismatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scope_mismatches_total",
			Help:        "Total number of scope exits that did not match the open scope",
			ConstLabels: config.ConstLabels,
		}),

		pagesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pages_rendered_total",
			Help:        "Total number of documents rendered",
			ConstLabels: config.ConstLabels,
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "page_render_duration_seconds",
			Help:        "Document render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		pageSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "page_size_bytes",
			Help:        "Rendered document size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1024, 10240, 102400, 1048576, 10485760}, // 1KB to 10MB
		}),

		pageComponents: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "page_components",
			Help:        "Top-level components per rendered document",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.LinearBuckets(0, 5, 10),
		}),

		reloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reloads_total",
			Help:        "Total number of live reload notifications sent to browsers",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (c *Collector) ComponentCreated(typ string) {
	c.componentsCreated.WithLabelValues(typ).Inc()
}

func (c *Collector) CellRendered(renderer string) {
	c.cellsRendered.WithLabelValues(renderer).Inc()
}

func (c *Collector) HeadInjected(key string) {
	c.headInjections.WithLabelValues(key).Inc()
}

func (c *Collector) ScopeMismatch() {
	c.scopeMismatches.Inc()
}

func (c *Collector) PageRendered(components, bytes int, elapsed time.Duration) {
	c.pagesRendered.Inc()
	c.renderDuration.Observe(elapsed.Seconds())
	c.pageSize.Observe(float64(bytes))
	c.pageComponents.Observe(float64(components))
}

// RecordReload counts live reload notifications sent to n clients.
func (c *Collector) RecordReload(n int) {
	c.reloads.Add(float64(n))
}
