package tracker

import (
	"context"
	"log/slog"
)

// LogSink writes every reading as a structured log record.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
}

func NewLogSink(logger *slog.Logger, level slog.Level) *LogSink {
	return &LogSink{logger: logger, level: level}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Publish(ctx context.Context, readings []Reading) error {
	for _, r := range readings {
		s.logger.Log(ctx, s.level, "reading",
			"entry", r.EntryID,
			"name", r.Name,
			"hour_angle", r.HourAngle.String(),
			"dec_rotation", r.DeclinationRotation,
			"ha_rotation", r.HourAngleRotation,
		)
	}
	return nil
}
