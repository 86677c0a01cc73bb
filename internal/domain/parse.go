package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the reference layout for the CSV timestamp column,
// matching the loggers' "YYYY/MM/DD HH:MM" export format.
const TimestampLayout = "2006/01/02 15:04"

// Columns holds the resolved indices of the required CSV columns.
type Columns struct {
	Timestamp   int
	Location    int
	Temperature int
}

// ResolveColumns locates the required columns in a CSV header row.
// Header names are matched after trimming surrounding whitespace; any
// additional columns are ignored.
func ResolveColumns(header []string) (Columns, error) {
	cols := Columns{Timestamp: -1, Location: -1, Temperature: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "timestamp":
			cols.Timestamp = i
		case "location":
			cols.Location = i
		case "temperature_c":
			cols.Temperature = i
		}
	}

	switch {
	case cols.Timestamp < 0:
		return Columns{}, fmt.Errorf("column %q not found in header", "timestamp")
	case cols.Location < 0:
		return Columns{}, fmt.Errorf("column %q not found in header", "location")
	case cols.Temperature < 0:
		return Columns{}, fmt.Errorf("column %q not found in header", "temperature_c")
	}
	return cols, nil
}

// ParseRecord converts one CSV record into a Reading. An unparseable
// timestamp is an error; an unparseable temperature becomes missing.
func ParseRecord(record []string, cols Columns) (Reading, error) {
	if n := len(record); cols.Timestamp >= n || cols.Location >= n || cols.Temperature >= n {
		return Reading{}, fmt.Errorf("record has %d fields, need at least %d", len(record), maxIndex(cols)+1)
	}

	ts, err := time.Parse(TimestampLayout, strings.TrimSpace(record[cols.Timestamp]))
	if err != nil {
		return Reading{}, fmt.Errorf("parse timestamp: %w", err)
	}

	return Reading{
		Timestamp:   ts,
		Location:    strings.TrimSpace(record[cols.Location]),
		Temperature: parseTemperature(record[cols.Temperature]),
	}, nil
}

// parseTemperature coerces a temperature cell to a float, returning nil for
// blank or non-numeric values.
func parseTemperature(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func maxIndex(cols Columns) int {
	m := cols.Timestamp
	if cols.Location > m {
		m = cols.Location
	}
	if cols.Temperature > m {
		m = cols.Temperature
	}
	return m
}
