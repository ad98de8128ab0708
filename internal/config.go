// Package internal provides configuration management and persistent storage for user preferences.
//
// This module handles:
//   - Loading display preferences (theme, animation settle time) at startup
//   - Persisting the auto-restart toggle across sessions
//   - Default configuration for new users
//
// Only preferences are persisted. Timer state (count, mode) is in-memory
// only and always starts fresh.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the user preferences read from config.yaml.
type Config struct {
	Theme       string `mapstructure:"theme"`
	AutoRestart bool   `mapstructure:"auto_restart"`
	TweenMillis int    `mapstructure:"tween_ms"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Theme:       DefaultTheme,
		AutoRestart: false,
		TweenMillis: 300,
	}
}

// DefaultConfigDir returns the preference directory for the current user,
// following the XDG layout: ~/.config/sweep/
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %v", err)
	}
	return filepath.Join(homeDir, ".config", "sweep"), nil
}

// newViper returns a viper instance bound to dir with defaults applied.
func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	defaults := DefaultConfig()
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("auto_restart", defaults.AutoRestart)
	v.SetDefault("tween_ms", defaults.TweenMillis)
	return v
}

// LoadConfig reads preferences from dir. A missing config file is not an
// error; defaults are returned. A malformed file or an unknown theme is.
func LoadConfig(dir string) (Config, error) {
	v := newViper(dir)
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("failed to read config: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %v", err)
	}
	if _, err := ThemeByName(cfg.Theme); err != nil {
		return Config{}, err
	}
	if cfg.TweenMillis < 0 {
		return Config{}, fmt.Errorf("tween_ms must be non-negative, got %d", cfg.TweenMillis)
	}
	return cfg, nil
}

// SaveConfig persists preferences to dir, creating it if needed. Called when
// the user toggles a persisted preference so it survives the session.
func SaveConfig(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	v := newViper(dir)
	v.Set("theme", cfg.Theme)
	v.Set("auto_restart", cfg.AutoRestart)
	v.Set("tween_ms", cfg.TweenMillis)

	if err := v.WriteConfigAs(filepath.Join(dir, "config.yaml")); err != nil {
		return fmt.Errorf("failed to save config: %v", err)
	}
	return nil
}
