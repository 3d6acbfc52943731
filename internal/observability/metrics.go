package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "skydial"

// Metrics holds the Prometheus counters, histograms, and gauges for the display driver.
type Metrics struct {
	Ticks             prometheus.Counter
	ReadingsPublished *prometheus.CounterVec // labels: sink
	SinkErrors        *prometheus.CounterVec // labels: sink
	EntriesTracked    prometheus.Gauge
	DriverRunning     prometheus.Gauge
	TickDuration      prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Total display refresh ticks computed.",
		}),
		ReadingsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_published_total",
			Help:      "Readings handed to each sink.",
		}, []string{"sink"}),
		SinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_errors_total",
			Help:      "Failed publishes by sink.",
		}, []string{"sink"}),
		EntriesTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries_tracked",
			Help:      "Catalog entries in the most recent tick.",
		}),
		DriverRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "driver_running",
			Help:      "1 when the display driver is active, 0 when stopped.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time spent computing and publishing one tick.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// NewMetrics creates and registers all driver metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Ticks,
		m.ReadingsPublished,
		m.SinkErrors,
		m.EntriesTracked,
		m.DriverRunning,
		m.TickDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
