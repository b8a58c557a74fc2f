package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# TradeLog Configuration

[api]
# Base URL of the trade-journal backend
base_url = "http://localhost:8000"
# Per-request timeout
timeout = "15s"

[cache]
# How long a cached query result stays fresh
stale_after = "1h"
# Path of the local snapshot database (empty = default)
db_path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[notifications.terminal]
enabled = true
color = true

[notifications.webhook]
enabled = false
url = ""
`

// createTemplateConfig writes a commented config template so a first
// run leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
