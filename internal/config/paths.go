package config

import (
	"os"
	"path/filepath"
)

// Config file and environment constants.
const (
	ConfigName   = "termquiz"
	EnvPrefix    = "TERMQUIZ"
	EnvFileName  = ".env"
	ConfigEnvVar = "TERMQUIZ_CONFIG"
)

// UserConfigDir returns the per-user directory searched for termquiz.yaml,
// or "" when it cannot be determined.
func UserConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigName)
}
