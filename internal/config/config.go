package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"countryviz/internal/country"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for its config file.
var DefaultPath = filepath.Join(".countryviz", "config.yaml")

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all countryviz configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	View    ViewConfig    `yaml:"view"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// DataConfig locates the dataset.
type DataConfig struct {
	Source            string `yaml:"source"` // file path or http(s) URL
	MaxReportedErrors int    `yaml:"max_reported_errors"`
}

// ViewConfig holds the initial dashboard view.
type ViewConfig struct {
	Metric         string `yaml:"metric"`
	PageSize       string `yaml:"page_size"` // 25, 50, 100, 200 or all
	Chart          string `yaml:"chart"`     // bubble, treemap
	SearchDebounce string `yaml:"search_debounce"`
}

// ExportConfig configures the SQLite export.
type ExportConfig struct {
	Driver string `yaml:"driver"` // sqlite (pure Go), sqlite3 (cgo)
	Path   string `yaml:"path"`
}

// UIConfig configures the terminal dashboard.
type UIConfig struct {
	Theme string `yaml:"theme"` // auto, light, dark
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source:            country.DefaultSource,
			MaxReportedErrors: 20,
		},
		View: ViewConfig{
			Metric:         "population",
			PageSize:       "50",
			Chart:          "bubble",
			SearchDebounce: "150ms",
		},
		Export: ExportConfig{
			Driver: "sqlite",
			Path:   "countryviz.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if src := os.Getenv("COUNTRYVIZ_DATA"); src != "" {
		c.Data.Source = src
	}
	if path := os.Getenv("COUNTRYVIZ_DB"); path != "" {
		c.Export.Path = path
	}
	if level := os.Getenv("COUNTRYVIZ_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if theme := os.Getenv("COUNTRYVIZ_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// GetSearchDebounce returns the search debounce delay. Zero disables
// debouncing; an unparsable value falls back to 150ms.
func (c *Config) GetSearchDebounce() time.Duration {
	d, err := time.ParseDuration(c.View.SearchDebounce)
	if err != nil || d < 0 {
		return 150 * time.Millisecond
	}
	return d
}

var (
	// ValidLevels lists the accepted log levels.
	ValidLevels = []string{"debug", "info", "warn", "error"}
	// ValidFormats lists the accepted log formats.
	ValidFormats = []string{"text", "json"}
	// ValidDrivers lists the accepted export drivers.
	ValidDrivers = []string{"sqlite", "sqlite3"}
	// ValidThemes lists the accepted UI themes.
	ValidThemes = []string{"auto", "light", "dark"}
)

// Validate validates the configuration. View settings are never rejected;
// their consumers fall back to safe defaults.
func (c *Config) Validate() error {
	if c.Data.Source == "" {
		return fmt.Errorf("%w: data source is empty", ErrInvalidConfig)
	}
	if c.Data.MaxReportedErrors <= 0 {
		return fmt.Errorf("%w: max_reported_errors must be positive, got %d", ErrInvalidConfig, c.Data.MaxReportedErrors)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalidConfig, c.Logging.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("%w: log format %q (valid: %v)", ErrInvalidConfig, c.Logging.Format, ValidFormats)
	}
	if !slices.Contains(ValidDrivers, c.Export.Driver) {
		return fmt.Errorf("%w: export driver %q (valid: %v)", ErrInvalidConfig, c.Export.Driver, ValidDrivers)
	}
	if !slices.Contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("%w: theme %q (valid: %v)", ErrInvalidConfig, c.UI.Theme, ValidThemes)
	}
	if c.View.SearchDebounce != "" {
		if _, err := time.ParseDuration(c.View.SearchDebounce); err != nil {
			return fmt.Errorf("%w: search_debounce: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
