// Package config loads the application configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/ravico/dinefinder/internal/constants"
)

// Config holds the application configuration
type Config struct {
	Service ServiceConfig `koanf:"service"`
	Catalog CatalogConfig `koanf:"catalog"`
	Query   QueryConfig   `koanf:"query"`
	Hours   HoursConfig   `koanf:"hours"`
}

// ServiceConfig holds the HTTP service configuration
type ServiceConfig struct {
	Port     int    `koanf:"port"`
	LogLevel string `koanf:"log_level"`
}

// CatalogConfig holds the restaurant catalog source and state locations
type CatalogConfig struct {
	// SourceFile is the static JSON file with raw restaurant hours
	SourceFile string `koanf:"source_file"`
	// StateFile is the sqlite database the catalog is seeded into
	StateFile string `koanf:"state_file"`
}

// QueryConfig holds the layouts accepted for user supplied dates and times
type QueryConfig struct {
	DateLayouts []string `koanf:"date_layouts"`
	TimeLayouts []string `koanf:"time_layouts"`
}

// HoursConfig holds the clock layouts recognized inside raw hour clauses
type HoursConfig struct {
	ClockLayouts []string `koanf:"clock_layouts"`
}

// defaults applied before the file and environment are read
var defaults = map[string]interface{}{
	"service.port":        8080,
	"service.log_level":   "info",
	"catalog.source_file": "data/rest_hours.json",
	"catalog.state_file":  "data/dinefinder.db",
	"query.date_layouts":  []string{"2006-01-02", "1/2/2006"},
	"query.time_layouts":  []string{"3:04 pm", "3 pm", "15:04"},
	"hours.clock_layouts": []string{"3:04 pm", "3 pm", "15:04"},
}

// Load reads the configuration file, applies DINEFINDER_* environment
// overrides and validates the result. Paths are resolved relative to the
// config file's directory.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	// DINEFINDER_SERVICE__LOG_LEVEL=debug -> service.log_level. A double
	// underscore separates sections so key names may keep single ones.
	if err := k.Load(env.Provider(constants.EnvPrefix, ".", func(key string) string {
		key = strings.TrimPrefix(key, constants.EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Resolve relative paths against the config file location
	configDir := filepath.Dir(path)
	if !filepath.IsAbs(cfg.Catalog.SourceFile) {
		cfg.Catalog.SourceFile = filepath.Join(configDir, cfg.Catalog.SourceFile)
	}
	if !filepath.IsAbs(cfg.Catalog.StateFile) {
		cfg.Catalog.StateFile = filepath.Join(configDir, cfg.Catalog.StateFile)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Service.Port < 1 || cfg.Service.Port > 65535 {
		return fmt.Errorf("service port must be between 1 and 65535, got %d", cfg.Service.Port)
	}

	if _, err := zerolog.ParseLevel(cfg.Service.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Service.LogLevel, err)
	}

	if cfg.Catalog.SourceFile == "" {
		return fmt.Errorf("catalog source file is required")
	}

	if cfg.Catalog.StateFile == "" {
		return fmt.Errorf("catalog state file is required")
	}

	if len(cfg.Query.DateLayouts) == 0 {
		return fmt.Errorf("at least one query date layout is required")
	}

	if len(cfg.Query.TimeLayouts) == 0 {
		return fmt.Errorf("at least one query time layout is required")
	}

	if len(cfg.Hours.ClockLayouts) == 0 {
		return fmt.Errorf("at least one hours clock layout is required")
	}

	return nil
}
