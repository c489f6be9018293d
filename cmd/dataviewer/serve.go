package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/internal/preview"
	"github.com/vango-dev/dataviewer/pkg/metrics"
	"github.com/vango-dev/dataviewer/pkg/ui"
)

func serveCmd(a *app) *cobra.Command {
	var (
		host     string
		port     int
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve DOCUMENT.yaml",
		Short: "Preview a document in the browser",
		Long: `Serve a document over HTTP, rebuilding it on every request.

The document and the data files it reads are watched; connected
browsers reload when they change and show an overlay while the
document has errors. Prometheus metrics are served at /metrics.

Examples:
  dataviewer serve report.yaml
  dataviewer serve report.yaml --port=8080
  dataviewer serve report.yaml --host=0.0.0.0 --no-reload`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if host != "" {
				cfg.Preview.Host = host
			}
			if port > 0 {
				cfg.Preview.Port = port
			}
			if noReload {
				cfg.Preview.Reload = false
			}
			if _, err := os.Stat(args[0]); err != nil {
				return errors.New("DV010").WithDetail(args[0])
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv := preview.New(preview.Options{
				Document:    args[0],
				Addr:        cfg.PreviewAddress(),
				Reload:      cfg.Preview.Reload,
				Logger:      a.logger,
				Metrics:     metrics.New(metrics.WithRegistry(reg)),
				Gatherer:    reg,
				Registerer:  reg,
				PageOptions: []ui.PageOption{ui.WithCSSRuntime(cfg.CSSRuntimeURL())},
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success("Serving %s at %s", args[0], styleName.Render(cfg.PreviewURL()))
			if cfg.Preview.Reload {
				info("live reload on")
			}
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}
