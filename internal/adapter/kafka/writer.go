package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jask/skydial/internal/config"
	"github.com/jask/skydial/internal/tracker"
)

// messageWriter is the subset of *kafkago.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes readings to a Kafka topic. It implements tracker.Sink.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

var _ tracker.Sink = (*Writer)(nil)

// NewWriter creates a Kafka producer for the configured reading topic.
func NewWriter(cfg config.KafkaConfig, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Writer{writer: w, logger: logger}
}

func (w *Writer) Name() string { return "kafka" }

// Publish sends one message per reading in a single WriteMessages call.
func (w *Writer) Publish(ctx context.Context, readings []tracker.Reading) error {
	if len(readings) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(readings))
	for i := range readings {
		msg, err := serializeToMessage(readings[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write readings: %w", err)
	}
	w.logger.Debug("readings published", "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage keys by entry ID so one entry's readings stay ordered on a partition.
func serializeToMessage(r tracker.Reading) (kafkago.Message, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize reading: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(r.EntryID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "entry_name", Value: []byte(r.Name)},
			{Key: "computed_at", Value: []byte(r.At.UTC().Format(time.RFC3339))},
		},
	}, nil
}
