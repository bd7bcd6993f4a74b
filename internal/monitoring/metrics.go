package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Codec metrics
	DecodesTotal *prometheus.CounterVec
	EncodesTotal *prometheus.CounterVec

	// Analysis metrics
	StringsAnalyzed prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// New creates a metrics collector registered with the default registry.
func New() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bpeditor_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bpeditor_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		DecodesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bpeditor_decodes_total",
				Help: "Exchange string decodes by document kind and status",
			},
			[]string{"kind", "status"},
		),
		EncodesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bpeditor_encodes_total",
				Help: "Exchange string encodes by document kind and status",
			},
			[]string{"kind", "status"},
		),
		StringsAnalyzed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bpeditor_strings_analyzed_total",
				Help: "Exchange strings run through the analyzer",
			},
		),
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bpeditor_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordDecode records a decode attempt.
func (m *Metrics) RecordDecode(kind string, err error) {
	m.DecodesTotal.WithLabelValues(orUnknown(kind), statusLabel(err)).Inc()
}

// RecordEncode records an encode attempt.
func (m *Metrics) RecordEncode(kind string, err error) {
	m.EncodesTotal.WithLabelValues(orUnknown(kind), statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func orUnknown(kind string) string {
	if kind == "" {
		return "unknown"
	}
	return kind
}
