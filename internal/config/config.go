// Package config holds the process-wide settings of the mapper CLI.
// Values come from defaults, then the environment (optionally seeded from
// a .env file), then command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvStore     = "UGCMAP_STORE"
	EnvLogLevel  = "UGCMAP_LOG_LEVEL"
	EnvLogFormat = "UGCMAP_LOG_FORMAT"
	EnvOutputDir = "UGCMAP_OUTPUT_DIR"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{FormatText, FormatJSON}
)

// Config is the resolved configuration.
type Config struct {
	// StorePath is the SQLite workspace database.
	StorePath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// OutputDir receives generated documents.
	OutputDir string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StorePath: DefaultStorePath(),
		LogLevel:  "info",
		LogFormat: FormatText,
		OutputDir: ".",
	}
}

// DefaultStorePath returns the default workspace database path.
func DefaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ugc-mapper.db"
	}

	return filepath.Join(dir, "ugc-mapper", "workspace.db")
}

// FromEnv loads .env from the working directory when present and overlays
// the UGCMAP_* variables on the defaults.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	overlay(&cfg.StorePath, EnvStore)
	overlay(&cfg.LogLevel, EnvLogLevel)
	overlay(&cfg.LogFormat, EnvLogFormat)
	overlay(&cfg.OutputDir, EnvOutputDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading configuration from environment: %w", err)
	}

	return cfg, nil
}

func overlay(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

// Validate checks every setting and normalizes the case of enumerations.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	if !slices.Contains(logLevels, c.LogLevel) {
		return NewConfigErrorWithField(ConfigValidationFailed, "log-level",
			fmt.Sprintf("unknown level %q (expected one of %s)", c.LogLevel, strings.Join(logLevels, ", ")))
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if !slices.Contains(logFormats, c.LogFormat) {
		return NewConfigErrorWithField(ConfigValidationFailed, "log-format",
			fmt.Sprintf("unknown format %q (expected one of %s)", c.LogFormat, strings.Join(logFormats, ", ")))
	}

	if strings.TrimSpace(c.StorePath) == "" {
		return NewConfigErrorWithField(ConfigInvalid, "store", "store path is empty")
	}

	return nil
}
