package domain

import (
	"sort"
	"time"
)

// Reading is one timestamped temperature observation at a location.
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	Temperature *float64  `json:"temperature_c"` // nil when the source cell was blank or non-numeric
}

// HasTemperature reports whether the reading carries a usable temperature.
func (r Reading) HasTemperature() bool {
	return r.Temperature != nil
}

// Dataset is an ordered sequence of readings. After SortByTimestamp it is
// ascending by timestamp and treated as immutable; all statistics are
// recomputed from it on demand.
type Dataset []Reading

// SortByTimestamp sorts the dataset ascending by timestamp, keeping the
// original order of readings that share a timestamp.
func (d Dataset) SortByTimestamp() {
	sort.SliceStable(d, func(i, j int) bool {
		return d[i].Timestamp.Before(d[j].Timestamp)
	})
}

// MissingCount returns the number of readings without a temperature.
func (d Dataset) MissingCount() int {
	n := 0
	for _, r := range d {
		if !r.HasTemperature() {
			n++
		}
	}
	return n
}

// Temperatures returns the non-missing temperature values in dataset order.
func (d Dataset) Temperatures() []float64 {
	xs := make([]float64, 0, len(d))
	for _, r := range d {
		if r.HasTemperature() {
			xs = append(xs, *r.Temperature)
		}
	}
	return xs
}

// Locations returns the distinct locations in first-encounter order.
func (d Dataset) Locations() []string {
	seen := make(map[string]bool, 8)
	var order []string
	for _, r := range d {
		if !seen[r.Location] {
			seen[r.Location] = true
			order = append(order, r.Location)
		}
	}
	return order
}

// GroupByLocation splits the dataset into per-location groups, preserving
// dataset order within each group. Missing-temperature readings are included.
func (d Dataset) GroupByLocation() map[string]Dataset {
	groups := make(map[string]Dataset, 8)
	for _, r := range d {
		groups[r.Location] = append(groups[r.Location], r)
	}
	return groups
}
