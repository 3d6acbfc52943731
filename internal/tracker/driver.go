package tracker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jask/skydial/internal/astro"
	"github.com/jask/skydial/internal/catalog"
	"github.com/jask/skydial/internal/observability"
)

// Source supplies the latest catalog snapshot on every tick.
type Source interface {
	Entries() []catalog.Entry
}

// Sink receives the readings computed on each tick.
type Sink interface {
	Name() string
	Publish(ctx context.Context, readings []Reading) error
}

// Options configure a Driver. Zero values fall back to sensible defaults.
type Options struct {
	Mount    astro.Mount
	Interval time.Duration
	Clock    clockwork.Clock
	Logger   *slog.Logger
	Metrics  *observability.Metrics
}

// Driver recomputes readings for every entry on a fixed interval and fans them out to sinks.
type Driver struct {
	source   Source
	sinks    []Sink
	mount    astro.Mount
	interval time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool

	mu     sync.RWMutex
	latest []Reading
}

func NewDriver(source Source, sinks []Sink, opts Options) *Driver {
	if opts.Mount.Direction == 0 {
		opts.Mount.Direction = astro.DefaultMount.Direction
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetricsForTesting()
	}
	return &Driver{
		source:   source,
		sinks:    sinks,
		mount:    opts.Mount,
		interval: opts.Interval,
		clock:    opts.Clock,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
}

// CheckReadiness returns nil once the first tick has completed.
func (d *Driver) CheckReadiness(_ context.Context) error {
	if !d.ready.Load() {
		return errors.New("driver has not completed a tick yet")
	}
	return nil
}

// Latest returns the readings from the most recent tick.
func (d *Driver) Latest() []Reading {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Reading, len(d.latest))
	copy(out, d.latest)
	return out
}

// Run ticks once immediately and then every interval until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("driver started", "interval", d.interval, "sinks", len(d.sinks))
	d.metrics.DriverRunning.Set(1)
	defer d.metrics.DriverRunning.Set(0)

	d.Tick(ctx)

	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("driver stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			d.Tick(ctx)
		}
	}
}

// Tick computes one round of readings at the clock's current time and publishes it.
func (d *Driver) Tick(ctx context.Context) []Reading {
	start := time.Now()
	readings := ComputeAll(d.source.Entries(), d.clock.Now(), d.mount)

	d.mu.Lock()
	d.latest = readings
	d.mu.Unlock()

	for _, s := range d.sinks {
		if err := s.Publish(ctx, readings); err != nil {
			d.metrics.SinkErrors.WithLabelValues(s.Name()).Inc()
			d.logger.Error("sink publish failed", "sink", s.Name(), "error", err)
			continue
		}
		d.metrics.ReadingsPublished.WithLabelValues(s.Name()).Add(float64(len(readings)))
	}

	d.metrics.Ticks.Inc()
	d.metrics.EntriesTracked.Set(float64(len(readings)))
	d.metrics.TickDuration.Observe(time.Since(start).Seconds())
	d.ready.Store(true)
	return readings
}
