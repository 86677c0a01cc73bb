package report

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/temperature-analyzer/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr(v float64) *float64 { return &v }

func testData() Data {
	return Data{
		SourcePath:  "../data/temperature_logs.csv",
		RecordCount: 5,
		Overall: domain.OverallStats{
			Min: 18, Max: 24, Mean: 21, Median: 21, MissingValues: 1,
		},
		ByLocation: map[string]domain.LocationStats{
			"Office": {Mean: 21, Min: 18, Max: 24, Count: 2},
			"Lobby":  {Mean: 21, Min: 20, Max: 22, Count: 2},
		},
	}
}

func TestRender(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 15, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	t.Run("header block", func(t *testing.T) {
		text := Render(testData())

		lines := strings.Split(text, "\n")
		require.GreaterOrEqual(t, len(lines), 6)
		assert.Equal(t, strings.Repeat("=", 50), lines[0])
		assert.Equal(t, "OFFICE TEMPERATURE MONITORING REPORT", lines[1])
		assert.Equal(t, strings.Repeat("=", 50), lines[2])
		assert.Equal(t, "Report generated on: 2024-04-26 15:00:00", lines[3])
		assert.Equal(t, "Data source: ../data/temperature_logs.csv", lines[4])
		assert.Equal(t, "Records analyzed: 5", lines[5])
	})

	t.Run("overall stats title-cased", func(t *testing.T) {
		text := Render(testData())

		assert.Contains(t, text, "OVERALL TEMPERATURE STATISTICS")
		assert.Contains(t, text, "Min Temp: 18.00")
		assert.Contains(t, text, "Max Temp: 24.00")
		assert.Contains(t, text, "Avg Temp: 21.00")
		assert.Contains(t, text, "Median Temp: 21.00")
		assert.Contains(t, text, "Missing Values: 1")
	})

	t.Run("locations sorted in table", func(t *testing.T) {
		text := Render(testData())

		assert.Contains(t, text, "TEMPERATURE BY LOCATION")
		lobby := strings.Index(text, "Lobby")
		office := strings.Index(text, "Office")
		require.Positive(t, lobby)
		assert.Less(t, lobby, office)
	})

	t.Run("no anomalies literal", func(t *testing.T) {
		text := Render(testData())

		assert.Contains(t, text, "TEMPERATURE ANOMALIES")
		assert.Contains(t, text, "No anomalies detected.\n")
	})

	t.Run("anomaly rows", func(t *testing.T) {
		data := testData()
		data.Anomalies = []domain.Reading{
			{
				Timestamp:   time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC),
				Location:    "Office",
				Temperature: ptr(90),
			},
		}

		text := Render(data)

		assert.NotContains(t, text, "No anomalies detected.")
		assert.Contains(t, text, "2024/01/01 02:00")
		assert.Contains(t, text, "90.00")
	})

	t.Run("all-missing stats render as NaN", func(t *testing.T) {
		data := testData()
		nan := math.NaN()
		data.Overall = domain.OverallStats{Min: nan, Max: nan, Mean: nan, Median: nan, MissingValues: 5}

		text := Render(data)

		assert.Contains(t, text, "Min Temp: NaN")
		assert.Contains(t, text, "Missing Values: 5")
	})
}

func TestWrite(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 15, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	t.Run("creates directory and writes file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "reports", "temperature_report.txt")

		err := NewWriter(discardLogger()).Write(testData(), out)

		require.NoError(t, err)
		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, Render(testData()), string(content))
	})

	t.Run("overwrites an existing report", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "temperature_report.txt")
		require.NoError(t, os.WriteFile(out, []byte("old report"), 0o644))

		err := NewWriter(discardLogger()).Write(testData(), out)

		require.NoError(t, err)
		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "old report")
	})
}
