package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/astro"
	"github.com/jask/skydial/internal/catalog"
	"github.com/jask/skydial/internal/config"
	"github.com/jask/skydial/internal/database"
	"github.com/jask/skydial/internal/observability"
	"github.com/jask/skydial/internal/service"
)

// Version is set at build time via ldflags.
var Version = "dev"

// clock is the time source for every command; tests swap in a fake.
var clock clockwork.Clock = clockwork.NewRealClock()

var configPath string

var rootCmd = &cobra.Command{
	Use:   "skydial",
	Short: "Track celestial objects on equatorial-mount style dials",
	Long: `skydial keeps a catalog of named objects with a declination and an hour angle,
advances each hour angle with the wall clock and shows where the declination and
hour-angle dials of a mount should point.

Run without a subcommand to open the interactive display.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("skydial version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $SKYDIAL_CONFIG or ~/.config/skydial/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// env is what most commands need: config, a logger and the open catalog.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sql.DB
	catalog *catalog.Controller
	closers []func() error
}

func (e *env) mount() astro.Mount {
	return astro.Mount{DialOffset: e.cfg.Mount.DialOffset, Direction: astro.Direction(e.cfg.Mount.Direction)}
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.logger.Warn("close failed", "error", err)
		}
	}
}

// setup loads config, migrates and opens the database and loads the catalog.
// Logs go to logOut; interactive commands pass nil to use the configured log file.
func setup(ctx context.Context, logOut io.Writer) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}
	if logOut == nil {
		w, closeLog, err := observability.OpenLogFile(cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = w
		e.closers = append(e.closers, closeLog)
	}
	e.logger = observability.NewLogger(cfg.Log, logOut)

	if err := database.Migrate(cfg.Database.Path); err != nil {
		e.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	e.db = db
	e.closers = append(e.closers, db.Close)

	c, err := service.OpenCatalog(ctx, db, e.logger)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.catalog = c
	return e, nil
}
