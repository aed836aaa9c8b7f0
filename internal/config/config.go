// Package config loads railnorm configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultWorkers is the default ingest construction parallelism.
const DefaultWorkers = 4

// Config holds all configuration for railnorm.
type Config struct {
	Repository RepositoryConfig `mapstructure:"repository"`
	Ingest     IngestConfig     `mapstructure:"ingest"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// RepositoryConfig holds element persistence settings.
type RepositoryConfig struct {
	Path string `mapstructure:"path"`
}

// IngestConfig holds batch ingest settings.
type IngestConfig struct {
	Workers int `mapstructure:"workers"`
	// MappingDir holds per-client field mapping files; a source without
	// one falls back to the generic converter.
	MappingDir string `mapstructure:"mapping_dir"`
}

// PostgresConfig holds connection settings for reading client databases.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds the prometheus endpoint settings.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("repository.path", filepath.Join(homeDir(), ".railnorm", "elements.json"))
	v.SetDefault("ingest.workers", DefaultWorkers)
	v.SetDefault("ingest.mapping_dir", filepath.Join(homeDir(), ".railnorm", "mappings"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen_addr", ":9090")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".railnorm"))
	v.AddConfigPath(".")

	v.SetEnvPrefix("RAILNORM")
	v.AutomaticEnv()

	_ = v.BindEnv("repository.path", "RAILNORM_REPOSITORY_PATH")
	_ = v.BindEnv("ingest.workers", "RAILNORM_INGEST_WORKERS")
	_ = v.BindEnv("postgres.dsn", "RAILNORM_POSTGRES_DSN")
	_ = v.BindEnv("metrics.listen_addr", "RAILNORM_METRICS_LISTEN_ADDR")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	if c.Repository.Path == "" {
		return fmt.Errorf("repository.path must not be empty")
	}
	if c.Ingest.Workers <= 0 {
		return fmt.Errorf("ingest.workers must be greater than 0")
	}
	if c.Metrics.Enabled && c.Metrics.ListenAddr == "" {
		return fmt.Errorf("metrics.listen_addr must not be empty when metrics are enabled")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
