package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Mount    MountConfig    `mapstructure:"mount"`
	Display  DisplayConfig  `mapstructure:"display"`
	Log      LogConfig      `mapstructure:"log"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Sink     SinkConfig     `mapstructure:"sink"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// MountConfig describes how the physical dials are mounted.
type MountConfig struct {
	DialOffset float64 `mapstructure:"dial_offset"`
	Direction  int     `mapstructure:"direction"`
}

type DisplayConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type SinkConfig struct {
	Kafka KafkaConfig `mapstructure:"kafka"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// ValidationError reports a single invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// DefaultPath returns the config file location used when no override is set.
func DefaultPath() string {
	if p := os.Getenv("SKYDIAL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "skydial", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "skydial", "skydial.db"))
	v.SetDefault("mount.dial_offset", 0.0)
	v.SetDefault("mount.direction", -1)
	v.SetDefault("display.refresh_interval", time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("sink.kafka.enabled", false)
	v.SetDefault("sink.kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("sink.kafka.topic", "dial-readings")
}

// Load reads configuration from file and env. Env var overrides use prefix SKYDIAL_.
// An empty path falls back to SKYDIAL_CONFIG, then ~/.config/skydial/config.toml.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := newViper()

	explicit := path != "" || os.Getenv("SKYDIAL_CONFIG") != ""
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); explicit || !os.IsNotExist(statErr) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return decode(v)
}

// Defaults returns the built-in settings with SKYDIAL_ env overrides applied,
// ignoring any config file.
func Defaults() (Config, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix("SKYDIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return &ValidationError{Field: "database.path", Message: "must not be empty"}
	}
	if math.IsNaN(c.Mount.DialOffset) || math.IsInf(c.Mount.DialOffset, 0) {
		return &ValidationError{Field: "mount.dial_offset", Message: "must be a finite number"}
	}
	if c.Mount.Direction != 1 && c.Mount.Direction != -1 {
		return &ValidationError{Field: "mount.direction", Message: fmt.Sprintf("must be 1 or -1, got %d", c.Mount.Direction)}
	}
	if c.Display.RefreshInterval <= 0 {
		return &ValidationError{Field: "display.refresh_interval", Message: "must be positive"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return &ValidationError{Field: "log.format", Message: fmt.Sprintf("unknown format %q", c.Log.Format)}
	}
	if c.Sink.Kafka.Enabled {
		if len(c.Sink.Kafka.Brokers) == 0 {
			return &ValidationError{Field: "sink.kafka.brokers", Message: "required when kafka is enabled"}
		}
		if strings.TrimSpace(c.Sink.Kafka.Topic) == "" {
			return &ValidationError{Field: "sink.kafka.topic", Message: "required when kafka is enabled"}
		}
	}
	return nil
}

// Save writes the provided config to path as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("mount.dial_offset", cfg.Mount.DialOffset)
	v.Set("mount.direction", cfg.Mount.Direction)
	v.Set("display.refresh_interval", cfg.Display.RefreshInterval.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.file", cfg.Log.File)
	v.Set("http.addr", cfg.HTTP.Addr)
	v.Set("sink.kafka.enabled", cfg.Sink.Kafka.Enabled)
	v.Set("sink.kafka.brokers", cfg.Sink.Kafka.Brokers)
	v.Set("sink.kafka.topic", cfg.Sink.Kafka.Topic)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
