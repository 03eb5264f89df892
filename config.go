package cramdata

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvDataset    = "CRAMDATA_DATASET"
	EnvCategories = "CRAMDATA_CATEGORIES"
	EnvLogLevel   = "CRAMDATA_LOG_LEVEL"
)

// Config holds the settings for the cramdata tooling.
type Config struct {
	// DatasetPath is the JSON file of question/answer records.
	DatasetPath string `json:"dataset_path" yaml:"dataset_path"`

	// CategoriesPath is the YAML (or JSON) file of category configs used
	// by the sampling process.
	CategoriesPath string `json:"categories_path" yaml:"categories_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns a Config with no input files and info logging.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file over DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: config %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the CRAMDATA_* environment variables that
// are set and non-empty.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDataset); v != "" {
		c.DatasetPath = v
	}
	if v := getenv(EnvCategories); v != "" {
		c.CategoriesPath = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the config for values the tooling cannot act on.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level. An empty level means info.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
}
