package metrics

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/dataviewer/pkg/ui"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestCollectorRecordsSessionEvents(t *testing.T) {
	c := New(WithRegistry(prometheus.NewRegistry()))
	s := ui.NewSession(
		ui.WithObserver(c),
		ui.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	page := ui.NewPage(s, ui.PageProps{Title: "m"})
	err := page.Build(func() error {
		if _, err := ui.NewHeader(s, ui.HeaderProps{Text: "h"}); err != nil {
			return err
		}
		_, err := ui.NewTable(s, ui.TableProps{Data: []map[string]any{
			{"pic": "a.png", "n": 1},
			{"pic": "b.png", "n": 2},
		}})
		return err
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := page.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := counterValue(t, c.componentsCreated.WithLabelValues("header")); got != 1 {
		t.Errorf("components_created_total(header) = %v, want 1", got)
	}
	if got := counterValue(t, c.cellsRendered.WithLabelValues("ImageRenderer")); got != 2 {
		t.Errorf("cells_rendered_total(ImageRenderer) = %v, want 2", got)
	}
	if got := counterValue(t, c.cellsRendered.WithLabelValues("DefaultRenderer")); got != 2 {
		t.Errorf("cells_rendered_total(DefaultRenderer) = %v, want 2", got)
	}
	if got := counterValue(t, c.headInjections.WithLabelValues("image_preview")); got != 1 {
		t.Errorf("head_injections_total(image_preview) = %v, want 1", got)
	}
	if got := counterValue(t, c.pagesRendered); got != 1 {
		t.Errorf("pages_rendered_total = %v, want 1", got)
	}
	if got := histogramCount(t, c.pageSize); got != 1 {
		t.Errorf("page_size_bytes count = %v, want 1", got)
	}
}

func TestCollectorDirectCalls(t *testing.T) {
	c := New(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	c.ScopeMismatch()
	c.ScopeMismatch()
	c.RecordReload(3)
	c.PageRendered(4, 2048, 5*time.Millisecond)

	if got := counterValue(t, c.scopeMismatches); got != 2 {
		t.Errorf("scope_mismatches_total = %v, want 2", got)
	}
	if got := counterValue(t, c.reloads); got != 3 {
		t.Errorf("reloads_total = %v, want 3", got)
	}
	if got := histogramCount(t, c.renderDuration); got != 1 {
		t.Errorf("render duration count = %v, want 1", got)
	}
	if got := histogramCount(t, c.pageComponents); got != 1 {
		t.Errorf("page components count = %v, want 1", got)
	}
}

func TestCollectorRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Error("registering the same metrics twice should panic")
		}
	}()
	New(WithRegistry(reg))
}
