package domain

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// OverallStats summarizes the temperature column across the whole dataset.
// The four aggregates are NaN when no non-missing temperatures exist;
// MissingValues always reports the count of rows with a missing temperature.
type OverallStats struct {
	Min           float64
	Max           float64
	Mean          float64
	Median        float64
	MissingValues int
}

// LocationStats summarizes the non-missing temperatures at one location.
type LocationStats struct {
	Mean  float64
	Min   float64
	Max   float64
	Count int
}

// Summarize computes overall temperature statistics, skipping missing values.
func Summarize(d Dataset) OverallStats {
	xs := d.Temperatures()
	if len(xs) == 0 {
		nan := math.NaN()
		return OverallStats{Min: nan, Max: nan, Mean: nan, Median: nan, MissingValues: d.MissingCount()}
	}

	s := stats.Sample{Xs: xs}
	s.Sort()
	return OverallStats{
		Min:           s.Quantile(0),
		Max:           s.Quantile(1),
		Mean:          s.Mean(),
		Median:        s.Quantile(0.5),
		MissingValues: d.MissingCount(),
	}
}

// SummarizeByLocation computes per-location statistics over non-missing
// temperatures. Locations whose readings are all missing appear with a zero
// Count and NaN aggregates.
func SummarizeByLocation(d Dataset) map[string]LocationStats {
	result := make(map[string]LocationStats, 8)
	for loc, group := range d.GroupByLocation() {
		xs := group.Temperatures()
		if len(xs) == 0 {
			nan := math.NaN()
			result[loc] = LocationStats{Mean: nan, Min: nan, Max: nan}
			continue
		}
		s := stats.Sample{Xs: xs}
		s.Sort()
		result[loc] = LocationStats{
			Mean:  s.Mean(),
			Min:   s.Quantile(0),
			Max:   s.Quantile(1),
			Count: len(xs),
		}
	}
	return result
}
