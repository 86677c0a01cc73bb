// Command gendata generates a synthetic temperature log CSV for local runs
// and test fixtures. Each location gets a base temperature with a daily
// cycle and noise, plus a configurable share of missing cells and injected
// outliers, so the output exercises every branch of the analyzer.
//
// Usage:
//
//	go run ./cmd/gendata -out data/temperature_logs.csv -days 7 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output CSV path")
	locations := flag.String("locations", "Lobby,Server Room,Office A,Office B", "comma-separated location names")
	days := flag.Int("days", 7, "number of days to generate")
	interval := flag.Duration("interval", time.Hour, "spacing between readings per location")
	missingRate := flag.Float64("missing-rate", 0.05, "fraction of readings with a missing temperature")
	outlierRate := flag.Float64("outlier-rate", 0.01, "fraction of readings spiked far outside the normal band")
	seed := flag.Int64("seed", 1, "random seed for reproducible fixtures")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	if dir := filepath.Dir(*out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))
	w := csv.NewWriter(f)

	if err := w.Write([]string{"timestamp", "location", "temperature_c"}); err != nil {
		return err
	}

	locs := strings.Split(*locations, ",")
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, *days)
	rows := 0

	for ts := start; ts.Before(end); ts = ts.Add(*interval) {
		for i, loc := range locs {
			cell := temperatureCell(rng, ts, i, *missingRate, *outlierRate)
			if err := w.Write([]string{ts.Format("2006/01/02 15:04"), strings.TrimSpace(loc), cell}); err != nil {
				return err
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	log.Printf("%s: %d rows, %d locations", *out, rows, len(locs))
	return nil
}

// temperatureCell produces one CSV temperature value: usually a plausible
// reading, sometimes a missing-value sentinel, occasionally an outlier.
func temperatureCell(rng *rand.Rand, ts time.Time, locIndex int, missingRate, outlierRate float64) string {
	switch roll := rng.Float64(); {
	case roll < missingRate/2:
		return ""
	case roll < missingRate:
		return "N/A"
	}

	base := 18.0 + float64(locIndex)*2.0
	hour := float64(ts.Hour()) + float64(ts.Minute())/60.0
	daily := 3.0 * math.Sin((hour-9.0)/24.0*2.0*math.Pi)
	noise := rng.NormFloat64() * 0.4

	temp := base + daily + noise
	if rng.Float64() < outlierRate {
		temp += 30.0 + rng.Float64()*20.0
	}
	return strconv.FormatFloat(temp, 'f', 1, 64)
}
