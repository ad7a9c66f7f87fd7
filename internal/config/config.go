package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Library LibraryConfig `mapstructure:"library"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LibraryConfig locates the project document
type LibraryConfig struct {
	File string `mapstructure:"file"`
}

// HistoryConfig controls save snapshots
type HistoryConfig struct {
	File string `mapstructure:"file"`
	Keep int    `mapstructure:"keep"` // 0 disables snapshots
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Library: LibraryConfig{
			File: filepath.Join(DefaultConfigDir(), "projects.toml"),
		},
		History: HistoryConfig{
			File: filepath.Join(defaultDataDir(), "history.db"),
			Keep: 20,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataDir(), "projlib.log"),
			Level: "INFO",
		},
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "projlib")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "projlib")
	}
}

// defaultDataDir returns the directory for logs and history
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "projlib")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "projlib")
	}
}

// Load reads configuration from the given viper instance. configFile
// may be empty to search the default locations.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("library.file", defaults.Library.File)
	v.SetDefault("history.file", defaults.History.File)
	v.SetDefault("history.keep", defaults.History.Keep)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. PROJLIB_LIBRARY_FILE
	v.SetEnvPrefix("PROJLIB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Library.File = ExpandHome(cfg.Library.File)
	cfg.History.File = ExpandHome(cfg.History.File)
	cfg.Logging.File = ExpandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Library.Validate(); err != nil {
		return err
	}
	if err := c.History.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate validates the library configuration.
func (c *LibraryConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.File, validation.Required),
	)
}

// Validate validates the history configuration.
func (c *HistoryConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Keep, validation.Min(0)),
	)
}

// Validate validates the logging configuration.
func (c *LoggingConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.By(knownLevel)),
	)
}

// logLevels maps accepted logging.level values, upper-cased, to slog
// levels. An empty level means INFO.
var logLevels = map[string]slog.Level{
	"":        slog.LevelInfo,
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARN":    slog.LevelWarn,
	"WARNING": slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// SlogLevel returns the configured level, or INFO for a value that
// Validate would reject.
func (c *LoggingConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToUpper(c.Level)]; ok {
		return level
	}
	return slog.LevelInfo
}

func knownLevel(value interface{}) error {
	level, _ := value.(string)
	if _, ok := logLevels[strings.ToUpper(level)]; ok {
		return nil
	}
	return validation.NewError("validation_log_level", "must be one of DEBUG, INFO, WARN, ERROR")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
