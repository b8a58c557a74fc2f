// Package config provides configuration management for the journal CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	API           APIConfig          `mapstructure:"api"`
	Cache         CacheConfig        `mapstructure:"cache"`
	UI            UIConfig           `mapstructure:"ui"`
	Notifications NotificationConfig `mapstructure:"notifications"`
}

// APIConfig holds backend connection configuration.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds query-cache and snapshot-store configuration.
type CacheConfig struct {
	StaleAfter time.Duration `mapstructure:"stale_after"`
	DBPath     string        `mapstructure:"db_path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// NotificationConfig holds notification configuration.
type NotificationConfig struct {
	Terminal TerminalConfig `mapstructure:"terminal"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
}

// TerminalConfig holds terminal notification configuration.
type TerminalConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Color   bool `mapstructure:"color"`
}

// WebhookConfig holds webhook notification configuration.
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/tradelog"
	}
	return filepath.Join(home, ".config", "tradelog")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}
	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("cache.stale_after", time.Hour)
	v.SetDefault("notifications.terminal.enabled", true)
	v.SetDefault("notifications.terminal.color", true)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04:05")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			if tmplErr := createTemplateConfig(configDir); tmplErr != nil {
				return tmplErr
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func applyDefaults(cfg *Config) {
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 15 * time.Second
	}
	if cfg.Cache.StaleAfter <= 0 {
		cfg.Cache.StaleAfter = time.Hour
	}
	if cfg.Cache.DBPath == "" {
		cfg.Cache.DBPath = filepath.Join(DefaultConfigDir(), "tradelog.db")
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRADELOG_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("TRADELOG_DB_PATH"); v != "" {
		cfg.Cache.DBPath = v
	}
	if v := os.Getenv("TRADELOG_WEBHOOK_URL"); v != "" {
		cfg.Notifications.Webhook.Enabled = true
		cfg.Notifications.Webhook.URL = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must be set")
	}
	if c.API.Timeout < time.Second {
		return fmt.Errorf("api.timeout must be at least 1s")
	}
	if c.Cache.StaleAfter < time.Minute {
		return fmt.Errorf("cache.stale_after must be at least 1m")
	}
	if c.Notifications.Webhook.Enabled && c.Notifications.Webhook.URL == "" {
		return fmt.Errorf("notifications.webhook.url must be set when the webhook is enabled")
	}
	return nil
}
