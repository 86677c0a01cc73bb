// Package report assembles and writes the plain-text monitoring report.
package report

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/couchcryptid/temperature-analyzer/internal/domain"
)

// generatedAtLayout matches the human-readable generation timestamp used in
// the report header.
const generatedAtLayout = "2006-01-02 15:04:05"

// Data holds everything the report renders. The caller computes it once
// from the analyzer so the report and any downstream sinks agree on the
// same anomaly set.
type Data struct {
	SourcePath  string
	RecordCount int
	Overall     domain.OverallStats
	ByLocation  map[string]domain.LocationStats
	Anomalies   []domain.Reading
}

// Writer renders monitoring reports to UTF-8 text files.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a report Writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write renders the report and writes it to outputPath, creating the
// directory if needed and overwriting any existing file.
func (w *Writer) Write(data Data, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(Render(data)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	w.logger.Info("report saved", "path", outputPath)
	return nil
}

// Render produces the full report text.
func Render(data Data) string {
	var b strings.Builder

	banner := strings.Repeat("=", 50)
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "OFFICE TEMPERATURE MONITORING REPORT")
	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "Report generated on: %s\n", clock.Now().Format(generatedAtLayout))
	fmt.Fprintf(&b, "Data source: %s\n", data.SourcePath)
	fmt.Fprintf(&b, "Records analyzed: %d\n", data.RecordCount)
	fmt.Fprintln(&b)

	writeSection(&b, "OVERALL TEMPERATURE STATISTICS")
	fmt.Fprintf(&b, "Min Temp: %s\n", formatTemp(data.Overall.Min))
	fmt.Fprintf(&b, "Max Temp: %s\n", formatTemp(data.Overall.Max))
	fmt.Fprintf(&b, "Avg Temp: %s\n", formatTemp(data.Overall.Mean))
	fmt.Fprintf(&b, "Median Temp: %s\n", formatTemp(data.Overall.Median))
	fmt.Fprintf(&b, "Missing Values: %d\n", data.Overall.MissingValues)
	fmt.Fprintln(&b)

	writeSection(&b, "TEMPERATURE BY LOCATION")
	writeLocationTable(&b, data.ByLocation)
	fmt.Fprintln(&b)

	writeSection(&b, "TEMPERATURE ANOMALIES")
	if len(data.Anomalies) == 0 {
		fmt.Fprintln(&b, "No anomalies detected.")
	} else {
		writeAnomalyTable(&b, data.Anomalies)
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string) {
	fmt.Fprintln(b, title)
	fmt.Fprintln(b, strings.Repeat("-", 30))
}

func writeLocationTable(b *strings.Builder, byLocation map[string]domain.LocationStats) {
	locations := make([]string, 0, len(byLocation))
	for loc := range byLocation {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Location\tMean\tMin\tMax\tCount")
	for _, loc := range locations {
		s := byLocation[loc]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			loc, formatTemp(s.Mean), formatTemp(s.Min), formatTemp(s.Max), s.Count)
	}
	tw.Flush()
}

func writeAnomalyTable(b *strings.Builder, anomalies []domain.Reading) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Timestamp\tLocation\tTemperature (°C)")
	for _, r := range anomalies {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			r.Timestamp.Format(domain.TimestampLayout), r.Location, formatTemp(*r.Temperature))
	}
	tw.Flush()
}

// formatTemp renders a temperature with two decimals, or "NaN" when the
// statistic is undefined.
func formatTemp(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}
