// Package metrics exposes the Prometheus collectors of the pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cascadia"

type Metrics struct {
	registry *prometheus.Registry

	importRuns     *prometheus.CounterVec
	importDuration prometheus.Histogram
	importRows     *prometheus.CounterVec
	importRecords  *prometheus.CounterVec
	lastSuccess    prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		importRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "budget_import",
			Name:      "runs_total",
			Help:      "Import runs by outcome.",
		}, []string{"outcome"}),
		importDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "budget_import",
			Name:      "duration_seconds",
			Help:      "Wall time of an import run.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		importRows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "budget_import",
			Name:      "rows_total",
			Help:      "Data rows scanned, by result or skip reason.",
		}, []string{"result"}),
		importRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "budget_import",
			Name:      "records_total",
			Help:      "Records per stream and persistence result.",
		}, []string{"stream", "result"}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "budget_import",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful import.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ImportRun records the result of one import.
type ImportRun struct {
	Success         bool
	Duration        time.Duration
	RowsAccepted    int
	SkippedByReason map[string]int
	Historical      StreamResult
	Forecast        StreamResult
}

type StreamResult struct {
	Extracted int
	Accepted  int
	Rejected  int
}

func (m *Metrics) ObserveImport(run ImportRun) {
	outcome := "failure"
	if run.Success {
		outcome = "success"
		m.lastSuccess.SetToCurrentTime()
	}
	m.importRuns.WithLabelValues(outcome).Inc()
	m.importDuration.Observe(run.Duration.Seconds())

	m.importRows.WithLabelValues("accepted").Add(float64(run.RowsAccepted))
	for reason, n := range run.SkippedByReason {
		m.importRows.WithLabelValues(reason).Add(float64(n))
	}

	m.observeStream("historical", run.Historical)
	m.observeStream("forecast", run.Forecast)
}

func (m *Metrics) observeStream(stream string, r StreamResult) {
	m.importRecords.WithLabelValues(stream, "extracted").Add(float64(r.Extracted))
	m.importRecords.WithLabelValues(stream, "accepted").Add(float64(r.Accepted))
	m.importRecords.WithLabelValues(stream, "rejected").Add(float64(r.Rejected))
}

func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
