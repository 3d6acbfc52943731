package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SKYDIAL_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "skydial", "skydial.db"), cfg.Database.Path)
	assert.Equal(t, -1, cfg.Mount.Direction)
	assert.Zero(t, cfg.Mount.DialOffset)
	assert.Equal(t, time.Second, cfg.Display.RefreshInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.Sink.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Sink.Kafka.Brokers)
	assert.Equal(t, "dial-readings", cfg.Sink.Kafka.Topic)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "sky.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mount]
dial_offset = 12.5
direction = 1

[display]
refresh_interval = "250ms"
`), 0o600))

	t.Setenv("SKYDIAL_LOG_LEVEL", "debug")
	t.Setenv("SKYDIAL_SINK_KAFKA_BROKERS", "a:9092,b:9092")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.5, cfg.Mount.DialOffset)
	assert.Equal(t, 1, cfg.Mount.Direction)
	assert.Equal(t, 250*time.Millisecond, cfg.Display.RefreshInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Sink.Kafka.Brokers)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	home := isolate(t)
	_, err := Load(filepath.Join(home, "absent.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("SKYDIAL_MOUNT_DIRECTION", "2")

	_, err := Load("")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "mount.direction", verr.Field)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)

	cases := map[string]func(c *Config){
		"database.path":            func(c *Config) { c.Database.Path = " " },
		"display.refresh_interval": func(c *Config) { c.Display.RefreshInterval = 0 },
		"log.level":                func(c *Config) { c.Log.Level = "loud" },
		"log.format":               func(c *Config) { c.Log.Format = "xml" },
		"sink.kafka.brokers":       func(c *Config) { c.Sink.Kafka.Enabled = true; c.Sink.Kafka.Brokers = nil },
		"sink.kafka.topic":         func(c *Config) { c.Sink.Kafka.Enabled = true; c.Sink.Kafka.Topic = "" },
	}
	for field, mutate := range cases {
		c := base
		mutate(&c)
		var verr *ValidationError
		require.True(t, errors.As(c.Validate(), &verr), field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Mount.DialOffset = 30
	cfg.Mount.Direction = 1
	cfg.Display.RefreshInterval = 2 * time.Second
	cfg.Sink.Kafka.Enabled = true

	path := filepath.Join(home, "out", "config.toml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaultsIgnoresConfigFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", "skydial", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[mount]\ndirection = 1\n"), 0o644))
	t.Setenv("SKYDIAL_HTTP_ADDR", ":9999")

	cfg, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Mount.Direction)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
}
