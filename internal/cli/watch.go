package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/jask/skydial/internal/adapter/http"
	kafkaadapter "github.com/jask/skydial/internal/adapter/kafka"
	"github.com/jask/skydial/internal/database"
	"github.com/jask/skydial/internal/observability"
	"github.com/jask/skydial/internal/tracker"
)

const shutdownTimeout = 10 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the display driver headless",
	Long: `Recomputes every object's dial reading on the configured refresh interval and
publishes it to the log and, when sink.kafka.enabled is set, to Kafka. Health,
readiness, Prometheus metrics and the latest readings are served on http.addr.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := setup(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()
	logger := e.logger

	sinks := []tracker.Sink{tracker.NewLogSink(logger, slog.LevelDebug)}
	if e.cfg.Sink.Kafka.Enabled {
		writer := kafkaadapter.NewWriter(e.cfg.Sink.Kafka, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		sinks = append(sinks, writer)
		logger.Info("kafka sink enabled", "brokers", e.cfg.Sink.Kafka.Brokers, "topic", e.cfg.Sink.Kafka.Topic)
	}

	driver := tracker.NewDriver(e.catalog, sinks, tracker.Options{
		Mount:    e.mount(),
		Interval: e.cfg.Display.RefreshInterval,
		Clock:    clock,
		Logger:   logger,
		Metrics:  observability.NewMetrics(),
	})
	ready := httpadapter.ReadinessChecks{driver, database.Readiness{DB: e.db}}
	srv := httpadapter.NewServer(e.cfg.HTTP.Addr, ready, driver, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	if err := driver.Run(ctx); err != nil {
		logger.Error("driver error", "error", err)
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
	return nil
}
