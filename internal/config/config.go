package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/temperature-analyzer/internal/domain"
)

// Config holds all analyzer settings, populated from environment variables.
type Config struct {
	DataPath   string
	PlotPath   string
	ReportPath string

	AnomalyThreshold float64

	LogLevel  string
	LogFormat string

	// Kafka anomaly sink configuration. Disabled unless brokers are set.
	KafkaBrokers      []string
	KafkaAnomalyTopic string
	KafkaEnabled      bool

	// Pushgateway configuration. Disabled unless a URL is set.
	PushgatewayURL string
	PushJobName    string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	threshold, err := parseAnomalyThreshold()
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))

	cfg := &Config{
		DataPath:   envOrDefault("DATA_PATH", "../data/temperature_logs.csv"),
		PlotPath:   envOrDefault("PLOT_PATH", "../reports/temperature_trends.png"),
		ReportPath: envOrDefault("REPORT_PATH", "../reports/temperature_report.txt"),

		AnomalyThreshold: threshold,

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),

		KafkaBrokers:      brokers,
		KafkaAnomalyTopic: envOrDefault("KAFKA_ANOMALY_TOPIC", "temperature-anomalies"),
		KafkaEnabled:      len(brokers) > 0,

		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
		PushJobName:    envOrDefault("PUSH_JOB_NAME", "temperature-analyzer"),
	}

	if cfg.DataPath == "" {
		return nil, errors.New("DATA_PATH is required")
	}
	if cfg.PlotPath == "" {
		return nil, errors.New("PLOT_PATH is required")
	}
	if cfg.ReportPath == "" {
		return nil, errors.New("REPORT_PATH is required")
	}
	if cfg.KafkaEnabled && cfg.KafkaAnomalyTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_ANOMALY_TOPIC is empty")
	}
	if cfg.PushgatewayURL != "" && cfg.PushJobName == "" {
		return nil, errors.New("PUSHGATEWAY_URL is set but PUSH_JOB_NAME is empty")
	}

	return cfg, nil
}

// envOrDefault returns the environment variable's value, or def when unset.
// An explicitly empty variable overrides the default.
func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func parseAnomalyThreshold() (float64, error) {
	s := envOrDefault("ANOMALY_THRESHOLD", strconv.FormatFloat(domain.DefaultAnomalyThreshold, 'g', -1, 64))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errors.New("invalid ANOMALY_THRESHOLD")
	}
	return v, nil
}
