package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"
)

// NewExporter installs a prometheus-backed global meter provider. The returned
// exporter serves the scrape endpoint.
func NewExporter() (*prometheus.Exporter, error) {
	config := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)

	exporter, err := prometheus.New(config, c)
	if err != nil {
		return nil, errors.Wrap(err, "initialize prometheus exporter")
	}
	global.SetMeterProvider(exporter.MeterProvider())

	return exporter, nil
}

type HTTP struct {
	completed metric.Int64Counter
	duration  metric.Float64ValueRecorder
}

// NewHTTP creates the request instruments on meter.
func NewHTTP(meter metric.Meter) *HTTP {
	m := metric.Must(meter)

	return &HTTP{
		completed: m.NewInt64Counter(
			"http/server/completed_count",
			metric.WithDescription("Count of completed requests, by HTTP method, route and response status"),
		),
		duration: m.NewFloat64ValueRecorder(
			"http/server/duration_ms",
			metric.WithDescription("Request duration in milliseconds, by HTTP method and route"),
		),
	}
}

// Middleware records every request once it has been served.
func (h *HTTP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		labels := []attribute.KeyValue{
			attribute.String("method", r.Method),
			attribute.String("route", route),
		}
		h.duration.Record(r.Context(), float64(time.Since(start))/float64(time.Millisecond), labels...)
		h.completed.Add(r.Context(), 1, append(labels, attribute.String("status", strconv.Itoa(status)))...)
	})
}
