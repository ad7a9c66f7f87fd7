package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Library.File, cfg.Library.File)
	assert.Equal(t, 20, cfg.History.Keep)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "projects.toml", filepath.Base(cfg.Library.File))
}

func TestLoad_ExplicitFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	file := filepath.Join(t.TempDir(), "projlib.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
library:
  file: ~/work/projects.toml
history:
  keep: 3
logging:
  level: debug
`), 0644))

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "work", "projects.toml"), cfg.Library.File)
	assert.Equal(t, 3, cfg.History.Keep)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROJLIB_LIBRARY_FILE", "/srv/projects.toml")
	t.Setenv("PROJLIB_HISTORY_KEEP", "0")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/srv/projects.toml", cfg.Library.File)
	assert.Equal(t, 0, cfg.History.Keep)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty library file", func(c *Config) { c.Library.File = "" }, true},
		{"negative keep", func(c *Config) { c.History.Keep = -1 }, true},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"lowercase level", func(c *Config) { c.Logging.Level = "warn" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggingConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Warn", slog.LevelWarn},
		{"Error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := LoggingConfig{Level: tt.level}
			require.NoError(t, c.Validate(), "every mapped level is accepted")
			assert.Equal(t, tt.want, c.SlogLevel())
		})
	}

	rejected := LoggingConfig{Level: "loud"}
	assert.Error(t, rejected.Validate())
	assert.Equal(t, slog.LevelInfo, rejected.SlogLevel())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "a", "b"), ExpandHome("~/a/b"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}
