package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"logdeck/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging Logging `yaml:"logging" toml:"logging" mapstructure:"logging"`
	Sink    Sink    `yaml:"sink" toml:"sink" mapstructure:"sink"`
	View    View    `yaml:"view" toml:"view" mapstructure:"view"`
	Demo    Demo    `yaml:"demo" toml:"demo" mapstructure:"demo"`
	Version int     `yaml:"version" toml:"version" mapstructure:"version"`

	path string
}

// Logging configures the application's own zerolog logger
type Logging struct {
	Level    string `yaml:"level" toml:"level" mapstructure:"level"`
	Format   string `yaml:"format" toml:"format" mapstructure:"format"`
	Category string `yaml:"category" toml:"category" mapstructure:"category"`
}

// Sink configures which events reach the log store
type Sink struct {
	MaxLevel          string        `yaml:"max_level" toml:"max_level" mapstructure:"max_level"`
	ShowAllCategories bool          `yaml:"show_all_categories" toml:"show_all_categories" mapstructure:"show_all_categories"`
	DefaultBlacklist  bool          `yaml:"default_blacklist" toml:"default_blacklist" mapstructure:"default_blacklist"`
	Blacklist         []string      `yaml:"blacklist" toml:"blacklist" mapstructure:"blacklist"`
	LockTimeout       time.Duration `yaml:"lock_timeout" toml:"lock_timeout" mapstructure:"lock_timeout"`
}

// View configures a log viewer
type View struct {
	MaxLogLength       int           `yaml:"max_log_length" toml:"max_log_length" mapstructure:"max_log_length"`
	EnableCacheLayouts bool          `yaml:"enable_cache_layouts" toml:"enable_cache_layouts" mapstructure:"enable_cache_layouts"`
	EnableRegex        bool          `yaml:"enable_regex" toml:"enable_regex" mapstructure:"enable_regex"`
	Levels             []string      `yaml:"levels" toml:"levels" mapstructure:"levels"`
	CaseSensitive      bool          `yaml:"case_sensitive" toml:"case_sensitive" mapstructure:"case_sensitive"`
	UseRegex           bool          `yaml:"use_regex" toml:"use_regex" mapstructure:"use_regex"`
	LockTimeout        time.Duration `yaml:"lock_timeout" toml:"lock_timeout" mapstructure:"lock_timeout"`
	FrameInterval      time.Duration `yaml:"frame_interval" toml:"frame_interval" mapstructure:"frame_interval"`
	CategoryMaxWidth   int           `yaml:"category_max_width" toml:"category_max_width" mapstructure:"category_max_width"`
	TimeFormat         string        `yaml:"time_format" toml:"time_format" mapstructure:"time_format"`
}

// Demo configures the synthetic log producer
type Demo struct {
	Rate  int `yaml:"rate" toml:"rate" mapstructure:"rate"`
	Burst int `yaml:"burst" toml:"burst" mapstructure:"burst"`
}

// levelNames lists the accepted level names, most severe first
var levelNames = []string{"off", "error", "warn", "info", "debug", "trace"}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
		path:    FileName,
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	cfg.Logging.Category = DefaultCategory

	cfg.Sink.MaxLevel = DefaultMaxLevel
	cfg.Sink.ShowAllCategories = DefaultShowAllCategories
	cfg.Sink.DefaultBlacklist = true
	cfg.Sink.Blacklist = []string{}
	cfg.Sink.LockTimeout = DefaultSinkLockTimeout

	cfg.View.MaxLogLength = DefaultMaxLogLength
	cfg.View.EnableCacheLayouts = true
	cfg.View.EnableRegex = true
	cfg.View.Levels = append([]string(nil), DefaultLevels...)
	cfg.View.LockTimeout = DefaultViewLockTimeout
	cfg.View.FrameInterval = DefaultFrameInterval
	cfg.View.CategoryMaxWidth = DefaultCategoryMaxWidth
	cfg.View.TimeFormat = TimeFormatClock

	cfg.Demo.Rate = DefaultDemoRate
	cfg.Demo.Burst = DefaultDemoBurst

	return cfg
}

// Load reads the configuration file at path (logdeck.yaml when empty), applies
// LOGDECK_* environment overrides and validates the result
func Load(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	cfg := DefaultConfig()
	cfg.path = path

	v := newViper(cfg)

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance seeded with every default so env overrides resolve
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType(ConfigType(cfg.path))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", cfg.Version)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.category", cfg.Logging.Category)
	v.SetDefault("sink.max_level", cfg.Sink.MaxLevel)
	v.SetDefault("sink.show_all_categories", cfg.Sink.ShowAllCategories)
	v.SetDefault("sink.default_blacklist", cfg.Sink.DefaultBlacklist)
	v.SetDefault("sink.blacklist", cfg.Sink.Blacklist)
	v.SetDefault("sink.lock_timeout", cfg.Sink.LockTimeout)
	v.SetDefault("view.max_log_length", cfg.View.MaxLogLength)
	v.SetDefault("view.enable_cache_layouts", cfg.View.EnableCacheLayouts)
	v.SetDefault("view.enable_regex", cfg.View.EnableRegex)
	v.SetDefault("view.levels", cfg.View.Levels)
	v.SetDefault("view.case_sensitive", cfg.View.CaseSensitive)
	v.SetDefault("view.use_regex", cfg.View.UseRegex)
	v.SetDefault("view.lock_timeout", cfg.View.LockTimeout)
	v.SetDefault("view.frame_interval", cfg.View.FrameInterval)
	v.SetDefault("view.category_max_width", cfg.View.CategoryMaxWidth)
	v.SetDefault("view.time_format", cfg.View.TimeFormat)
	v.SetDefault("demo.rate", cfg.Demo.Rate)
	v.SetDefault("demo.burst", cfg.Demo.Burst)

	return v
}

// ConfigType returns the viper config type for path, TOML by extension and YAML otherwise
func ConfigType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}

	return "yaml"
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Blacklist returns the effective category blacklist
func (c *Config) Blacklist() []string {
	patterns := make([]string, 0, len(DefaultBlacklist)+len(c.Sink.Blacklist))

	if c.Sink.DefaultBlacklist {
		patterns = append(patterns, DefaultBlacklist...)
	}

	return append(patterns, c.Sink.Blacklist...)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateSink(); err != nil {
		return err
	}

	if err := c.validateView(); err != nil {
		return err
	}

	if c.Demo.Rate < 0 || c.Demo.Burst < 0 {
		return errors.ErrInvalidDemoRate
	}

	return nil
}

// validateSink validates sink settings
func (c *Config) validateSink() error {
	if !IsLevelName(c.Sink.MaxLevel) {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLevel, c.Sink.MaxLevel)
	}

	if c.Sink.LockTimeout < 0 {
		return errors.ErrInvalidLockTimeout
	}

	for _, pattern := range c.Blacklist() {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidBlacklistEntry, pattern)
		}
	}

	return nil
}

// validateView validates viewer settings
func (c *Config) validateView() error {
	if c.View.MaxLogLength <= 0 {
		return errors.ErrInvalidMaxLogLength
	}

	if c.View.LockTimeout < 0 {
		return errors.ErrInvalidLockTimeout
	}

	if c.View.FrameInterval <= 0 {
		return errors.ErrInvalidFrameInterval
	}

	for _, level := range c.View.Levels {
		if !IsLevelName(level) || normalizeLevel(level) == "off" {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidLevel, level)
		}
	}

	switch c.View.TimeFormat {
	case TimeFormatClock, TimeFormatElapsed:
	default:
		return fmt.Errorf("%w: '%s' (must be '%s' or '%s')", errors.ErrInvalidTimeFormat, c.View.TimeFormat, TimeFormatClock, TimeFormatElapsed)
	}

	return nil
}

// IsLevelName reports whether name is a recognized level name
func IsLevelName(name string) bool {
	name = normalizeLevel(name)

	for _, level := range levelNames {
		if level == name {
			return true
		}
	}

	return false
}

// normalizeLevel trims whitespace and lowercases a level name
func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
