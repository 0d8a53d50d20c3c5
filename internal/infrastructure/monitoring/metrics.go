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

	// Generation metrics
	SectionsGenerated *prometheus.CounterVec
	SectionsSkipped   prometheus.Counter
	GenerateDuration  *prometheus.HistogramVec
	MarkupBytes       prometheus.Histogram

	// Theme metrics
	ThemeBuilds prometheus.Counter

	// Blueprint metrics
	BlueprintCompiles *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a metrics collector with all series registered.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockforge_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blockforge_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),

		SectionsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockforge_sections_generated_total",
				Help: "Sections generated, by type and variant",
			},
			[]string{"section", "variant"},
		),
		SectionsSkipped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "blockforge_sections_skipped_total",
				Help: "Sections skipped for unknown types",
			},
		),
		GenerateDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blockforge_generate_duration_seconds",
				Help:    "Section generation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"section"},
		),
		MarkupBytes: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "blockforge_markup_bytes",
				Help:    "Size of serialized markup documents in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
		),

		ThemeBuilds: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "blockforge_theme_builds_total",
				Help: "Theme descriptors built",
			},
		),

		BlueprintCompiles: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockforge_blueprint_compiles_total",
				Help: "Blueprint compilations, by status",
			},
			[]string{"status"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "blockforge_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records one handled request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordGeneration records one section generation.
func (m *Metrics) RecordGeneration(section, variant string, duration time.Duration) {
	if variant == "" {
		variant = "default"
	}
	m.SectionsGenerated.WithLabelValues(section, variant).Inc()
	m.GenerateDuration.WithLabelValues(section).Observe(duration.Seconds())
}

// RecordMarkup records the size of a serialized document.
func (m *Metrics) RecordMarkup(size int) {
	m.MarkupBytes.Observe(float64(size))
}

// RecordCompile records a blueprint compilation outcome.
func (m *Metrics) RecordCompile(status string) {
	m.BlueprintCompiles.WithLabelValues(status).Inc()
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// UptimeSeconds returns the uptime for health reporting.
func (m *Metrics) UptimeSeconds() float64 {
	return time.Since(m.startTime).Seconds()
}
