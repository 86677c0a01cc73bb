// Package chart renders temperature trend charts to PNG files.
package chart

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/temperature-analyzer/internal/domain"
)

// Plotter draws one line-with-markers series per location over time.
type Plotter struct {
	logger *slog.Logger
}

// NewPlotter creates a Plotter.
func NewPlotter(logger *slog.Logger) *Plotter {
	return &Plotter{logger: logger}
}

// PlotTrends renders the dataset's non-missing readings to a PNG at
// outputPath, creating the output directory if needed and overwriting any
// existing file. When no valid readings exist it logs and returns without
// producing a file.
func (p *Plotter) PlotTrends(ds domain.Dataset, outputPath string) error {
	series := buildSeries(ds)
	if len(series) == 0 {
		p.logger.Info("no valid temperature data available for plotting")
		return nil
	}

	ch := chart.Chart{
		Title:  "Temperature Trends by Location",
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 60},
		},
		XAxis: chart.XAxis{
			Name:           "Date and Time",
			Style:          chart.Style{TextRotationDegrees: 45.0},
			ValueFormatter: chart.TimeValueFormatterWithFormat(domain.TimestampLayout),
		},
		YAxis: chart.YAxis{
			Name: "Temperature (°C)",
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create plot directory: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render trend chart: %w", err)
	}

	p.logger.Info("temperature trend plot saved", "path", outputPath)
	return nil
}

// buildSeries constructs one time series per location in first-encounter
// order, dropping missing-temperature readings. Locations left with a single
// point are padded with a duplicate so the renderer has a usable x-range.
func buildSeries(ds domain.Dataset) []chart.Series {
	groups := ds.GroupByLocation()

	var series []chart.Series
	for i, loc := range ds.Locations() {
		var xs []time.Time
		var ys []float64
		for _, r := range groups[loc] {
			if !r.HasTemperature() {
				continue
			}
			xs = append(xs, r.Timestamp)
			ys = append(ys, *r.Temperature)
		}
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(time.Minute))
			ys = append(ys, ys[0])
		}

		series = append(series, chart.TimeSeries{
			Name:    loc,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(chart.GetDefaultColor(i)),
		})
	}
	return series
}

// lineStyle returns a connected-line style with visible point markers.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}
