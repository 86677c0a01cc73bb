// Package analyzer orchestrates statistics and anomaly queries over one
// loaded temperature dataset, adding logging and metrics around the pure
// domain computations.
package analyzer

import (
	"log/slog"
	"time"

	"github.com/couchcryptid/temperature-analyzer/internal/domain"
	"github.com/couchcryptid/temperature-analyzer/internal/observability"
)

// Analyzer answers descriptive-statistics and anomaly queries against a
// dataset loaded once at construction. Every query is a pure function of the
// dataset and its arguments; nothing is cached between calls.
type Analyzer struct {
	dataset domain.Dataset
	source  string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates an Analyzer over a loaded dataset. source is the path the
// dataset was loaded from, used for report provenance.
func New(dataset domain.Dataset, source string, logger *slog.Logger, metrics *observability.Metrics) *Analyzer {
	metrics.RecordsAnalyzed.Set(float64(len(dataset)))
	metrics.MissingValues.Set(float64(dataset.MissingCount()))

	return &Analyzer{
		dataset: dataset,
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Dataset returns the loaded dataset.
func (a *Analyzer) Dataset() domain.Dataset {
	return a.dataset
}

// Source returns the path the dataset was loaded from.
func (a *Analyzer) Source() string {
	return a.source
}

// OverallStats computes min/max/mean/median over non-missing temperatures
// and the count of missing values.
func (a *Analyzer) OverallStats() domain.OverallStats {
	return domain.Summarize(a.dataset)
}

// ByLocation computes per-location temperature statistics.
func (a *Analyzer) ByLocation() map[string]domain.LocationStats {
	return domain.SummarizeByLocation(a.dataset)
}

// DetectAnomalies flags readings more than threshold standard deviations
// from their location's mean. When the dataset has no temperature data at
// all it logs and returns empty without computing per-location statistics.
func (a *Analyzer) DetectAnomalies(threshold float64) []domain.Reading {
	if len(a.dataset.Temperatures()) == 0 {
		a.logger.Info("no temperature data available for anomaly detection")
		return nil
	}

	start := time.Now()
	anomalies := domain.DetectAnomalies(a.dataset, threshold)
	skipped := domain.SkippedLocations(a.dataset)

	a.metrics.AnomalyDetectionDuration.Observe(time.Since(start).Seconds())
	a.metrics.AnomaliesDetected.Set(float64(len(anomalies)))
	a.metrics.LocationsSkipped.Set(float64(len(skipped)))

	if len(skipped) > 0 {
		a.logger.Debug("locations skipped for undefined deviation", "locations", skipped)
	}
	a.logger.Info("anomaly detection complete", "threshold", threshold, "anomalies", len(anomalies))
	return anomalies
}
