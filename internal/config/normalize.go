package config

import (
	"os"
	"strings"
)

// Normalize trims string settings and applies NO_COLOR.
func Normalize(cfg *Config) {
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.GoodThreshold = strings.TrimSpace(cfg.GoodThreshold)
	cfg.PlayerName = strings.TrimSpace(cfg.PlayerName)
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}
