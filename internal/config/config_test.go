package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("expected template config.toml to be created: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("Timeout = %s", cfg.API.Timeout)
	}
	if cfg.Cache.StaleAfter != time.Hour {
		t.Errorf("StaleAfter = %s", cfg.Cache.StaleAfter)
	}
	if cfg.Cache.DBPath == "" {
		t.Error("DBPath default not applied")
	}
	if !cfg.Notifications.Terminal.Enabled {
		t.Error("terminal notifications should default on")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[api]
base_url = "https://journal.example.com"
timeout = "30s"

[cache]
stale_after = "10m"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://journal.example.com" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s", cfg.API.Timeout)
	}
	if cfg.Cache.StaleAfter != 10*time.Minute {
		t.Errorf("StaleAfter = %s", cfg.Cache.StaleAfter)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRADELOG_API_URL", "https://override.example.com")
	t.Setenv("TRADELOG_DB_PATH", "/tmp/override.db")
	t.Setenv("TRADELOG_WEBHOOK_URL", "https://hooks.example.com/x")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://override.example.com" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.Cache.DBPath != "/tmp/override.db" {
		t.Errorf("DBPath = %s", cfg.Cache.DBPath)
	}
	if !cfg.Notifications.Webhook.Enabled || cfg.Notifications.Webhook.URL != "https://hooks.example.com/x" {
		t.Errorf("webhook = %+v", cfg.Notifications.Webhook)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			API:   APIConfig{BaseURL: "http://localhost:8000", Timeout: 15 * time.Second},
			Cache: CacheConfig{StaleAfter: time.Hour},
		}
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.API.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing base_url accepted")
	}

	cfg = base()
	cfg.API.Timeout = 100 * time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Error("sub-second timeout accepted")
	}

	cfg = base()
	cfg.Cache.StaleAfter = time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("sub-minute staleness accepted")
	}

	cfg = base()
	cfg.Notifications.Webhook.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Error("enabled webhook without URL accepted")
	}
}
