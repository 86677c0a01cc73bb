package analyzer_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/temperature-analyzer/internal/analyzer"
	"github.com/couchcryptid/temperature-analyzer/internal/domain"
	"github.com/couchcryptid/temperature-analyzer/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr(v float64) *float64 { return &v }

func testDataset() domain.Dataset {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.Dataset{
		{Timestamp: base, Location: "RoomA", Temperature: ptr(20)},
		{Timestamp: base.Add(time.Hour), Location: "RoomA", Temperature: ptr(21)},
		{Timestamp: base.Add(2 * time.Hour), Location: "RoomA", Temperature: ptr(90)},
		{Timestamp: base.Add(3 * time.Hour), Location: "RoomB", Temperature: nil},
	}
}

func TestAnalyzerQueries(t *testing.T) {
	a := analyzer.New(testDataset(), "test.csv", discardLogger(), observability.NewMetrics())

	t.Run("source and dataset", func(t *testing.T) {
		assert.Equal(t, "test.csv", a.Source())
		assert.Len(t, a.Dataset(), 4)
	})

	t.Run("overall stats", func(t *testing.T) {
		s := a.OverallStats()

		assert.Equal(t, 20.0, s.Min)
		assert.Equal(t, 90.0, s.Max)
		assert.Equal(t, 1, s.MissingValues)
	})

	t.Run("by location", func(t *testing.T) {
		byLoc := a.ByLocation()

		require.Len(t, byLoc, 2)
		assert.Equal(t, 3, byLoc["RoomA"].Count)
		assert.Zero(t, byLoc["RoomB"].Count)
	})

	t.Run("detect anomalies", func(t *testing.T) {
		anomalies := a.DetectAnomalies(1.0)

		require.Len(t, anomalies, 1)
		assert.Equal(t, 90.0, *anomalies[0].Temperature)
	})
}

func TestAnalyzer_AllMissingShortCircuits(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := domain.Dataset{
		{Timestamp: base, Location: "RoomA"},
		{Timestamp: base.Add(time.Hour), Location: "RoomB"},
	}

	a := analyzer.New(ds, "test.csv", discardLogger(), observability.NewMetrics())

	assert.Empty(t, a.DetectAnomalies(2.0))
	assert.Equal(t, 2, a.OverallStats().MissingValues)
}

func TestAnalyzer_EmptyDataset(t *testing.T) {
	a := analyzer.New(domain.Dataset{}, "empty.csv", discardLogger(), observability.NewMetrics())

	assert.Empty(t, a.DetectAnomalies(2.0))
	assert.Empty(t, a.ByLocation())
}
