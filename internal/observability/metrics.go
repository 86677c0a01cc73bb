package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus gauges and histograms for one analysis run.
// Each Metrics carries its own registry: the analyzer is a run-to-completion
// batch job, so results are pushed to a Pushgateway rather than scraped.
type Metrics struct {
	registry *prometheus.Registry

	RecordsAnalyzed   prometheus.Gauge
	MissingValues     prometheus.Gauge
	AnomaliesDetected prometheus.Gauge
	LocationsSkipped  prometheus.Gauge

	LoadDuration             prometheus.Histogram
	AnomalyDetectionDuration prometheus.Histogram
}

// NewMetrics creates all analyzer metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RecordsAnalyzed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_analyzer",
			Name:      "records_analyzed",
			Help:      "Number of readings loaded from the source CSV.",
		}),
		MissingValues: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_analyzer",
			Name:      "missing_values",
			Help:      "Number of readings with an unparseable or blank temperature.",
		}),
		AnomaliesDetected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_analyzer",
			Name:      "anomalies_detected",
			Help:      "Number of readings flagged as anomalous in the last detection pass.",
		}),
		LocationsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_analyzer",
			Name:      "locations_skipped",
			Help:      "Locations excluded from anomaly detection for lack of a defined standard deviation.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "temp_analyzer",
			Name:      "load_duration_seconds",
			Help:      "Duration of CSV load and sort.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		AnomalyDetectionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "temp_analyzer",
			Name:      "anomaly_detection_duration_seconds",
			Help:      "Duration of one full anomaly detection pass.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}

	m.registry.MustRegister(
		m.RecordsAnalyzed,
		m.MissingValues,
		m.AnomaliesDetected,
		m.LocationsSkipped,
		m.LoadDuration,
		m.AnomalyDetectionDuration,
	)

	return m
}

// Push sends the collected metrics to a Pushgateway under the given job name.
func (m *Metrics) Push(url, job string) error {
	return push.New(url, job).Gatherer(m.registry).Push()
}
