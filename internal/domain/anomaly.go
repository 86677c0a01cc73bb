package domain

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// DefaultAnomalyThreshold is the number of standard deviations beyond which
// a reading counts as anomalous.
const DefaultAnomalyThreshold = 2.0

// DetectAnomalies returns the readings whose temperature deviates from
// their location's mean by more than threshold sample standard deviations.
//
// Locations are processed in first-encounter order and each location's
// anomalies keep their timestamp order, so the result is stable for a given
// dataset. Locations with fewer than two non-missing readings, or with zero
// or undefined standard deviation, are skipped. Missing temperatures are
// never flagged. Returns nil when nothing is anomalous.
func DetectAnomalies(d Dataset, threshold float64) []Reading {
	groups := d.GroupByLocation()

	var anomalies []Reading
	for _, loc := range d.Locations() {
		group := groups[loc]
		mean, stddev, ok := locationDeviation(group)
		if !ok {
			continue
		}

		for _, r := range group {
			if !r.HasTemperature() {
				continue
			}
			if math.Abs(*r.Temperature-mean) > threshold*stddev {
				anomalies = append(anomalies, r)
			}
		}
	}
	return anomalies
}

// SkippedLocations returns the locations excluded from anomaly detection
// because their standard deviation is undefined or zero, in first-encounter
// order.
func SkippedLocations(d Dataset) []string {
	groups := d.GroupByLocation()

	var skipped []string
	for _, loc := range d.Locations() {
		if _, _, ok := locationDeviation(groups[loc]); !ok {
			skipped = append(skipped, loc)
		}
	}
	return skipped
}

// locationDeviation computes the sample mean and standard deviation of a
// location's non-missing temperatures. ok is false when the deviation is
// undefined: fewer than two values, zero variance, or a NaN result.
func locationDeviation(group Dataset) (mean, stddev float64, ok bool) {
	xs := group.Temperatures()
	if len(xs) < 2 {
		return 0, 0, false
	}

	s := stats.Sample{Xs: xs}
	mean = s.Mean()
	stddev = s.StdDev()
	if stddev == 0 || math.IsNaN(stddev) {
		return 0, 0, false
	}
	return mean, stddev, true
}
