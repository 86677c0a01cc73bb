// Package kafka publishes detected anomalies to a Kafka topic for
// downstream alerting.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/temperature-analyzer/internal/config"
	"github.com/couchcryptid/temperature-analyzer/internal/domain"
)

// Writer produces anomaly messages to the configured topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured anomaly topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAnomalyTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishAnomalies serializes and publishes the anomalous readings in a
// single WriteMessages call. Publishing nothing is a no-op.
func (w *Writer) PublishAnomalies(ctx context.Context, anomalies []domain.Reading, threshold float64) error {
	if len(anomalies) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, len(anomalies))
	for i := range anomalies {
		msg, err := serializeToMessage(anomalies[i], threshold)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish anomalies: %w", err)
	}
	w.logger.Info("anomalies published", "count", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// anomalyMessage is the wire form of one anomalous reading.
type anomalyMessage struct {
	Timestamp    time.Time `json:"timestamp"`
	Location     string    `json:"location"`
	TemperatureC float64   `json:"temperature_c"`
	Threshold    float64   `json:"threshold"`
}

// serializeToMessage marshals an anomalous reading into a Kafka message
// keyed by location, so one location's anomalies stay in partition order.
func serializeToMessage(r domain.Reading, threshold float64) (kafkago.Message, error) {
	data, err := json.Marshal(anomalyMessage{
		Timestamp:    r.Timestamp,
		Location:     r.Location,
		TemperatureC: *r.Temperature,
		Threshold:    threshold,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize anomaly: %w", err)
	}

	return kafkago.Message{
		Key:   []byte(r.Location),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "threshold", Value: []byte(strconv.FormatFloat(threshold, 'g', -1, 64))},
			{Key: "observed_at", Value: []byte(r.Timestamp.Format(time.RFC3339))},
		},
	}, nil
}
