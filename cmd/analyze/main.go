// Command analyze runs one batch analysis of a temperature log CSV: it
// loads the readings, renders the trend chart, writes the text report, and
// optionally publishes detected anomalies to Kafka and pushes run metrics
// to a Pushgateway.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/couchcryptid/temperature-analyzer/internal/adapter/chart"
	"github.com/couchcryptid/temperature-analyzer/internal/adapter/csvfile"
	kafkaadapter "github.com/couchcryptid/temperature-analyzer/internal/adapter/kafka"
	"github.com/couchcryptid/temperature-analyzer/internal/adapter/report"
	"github.com/couchcryptid/temperature-analyzer/internal/analyzer"
	"github.com/couchcryptid/temperature-analyzer/internal/config"
	"github.com/couchcryptid/temperature-analyzer/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	metrics := observability.NewMetrics()

	loadStart := time.Now()
	dataset, err := csvfile.Load(cfg.DataPath, logger)
	if err != nil {
		return err
	}
	metrics.LoadDuration.Observe(time.Since(loadStart).Seconds())

	a := analyzer.New(dataset, cfg.DataPath, logger, metrics)

	plotter := chart.NewPlotter(logger)
	if err := plotter.PlotTrends(a.Dataset(), cfg.PlotPath); err != nil {
		return err
	}

	anomalies := a.DetectAnomalies(cfg.AnomalyThreshold)

	writer := report.NewWriter(logger)
	err = writer.Write(report.Data{
		SourcePath:  a.Source(),
		RecordCount: len(a.Dataset()),
		Overall:     a.OverallStats(),
		ByLocation:  a.ByLocation(),
		Anomalies:   anomalies,
	}, cfg.ReportPath)
	if err != nil {
		return err
	}

	if cfg.KafkaEnabled {
		sink := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := sink.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		if err := sink.PublishAnomalies(ctx, anomalies, cfg.AnomalyThreshold); err != nil {
			return err
		}
	} else {
		logger.Debug("kafka anomaly sink disabled")
	}

	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL, cfg.PushJobName); err != nil {
			// Metrics are best-effort; the artifacts are already on disk.
			logger.Warn("metrics push failed", "error", err, "url", cfg.PushgatewayURL)
		}
	}

	return nil
}
