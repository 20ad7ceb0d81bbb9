package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads settings from termquiz.yaml in dir or the user config directory,
// a .env file in dir, and TERMQUIZ_* environment variables. Every source is
// optional; TERMQUIZ_CONFIG names an explicit file that must exist.
func Load(dir string) (Config, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := godotenv.Load(filepath.Join(dir, EnvFileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", EnvFileName, err)
	}

	defaults := Default()
	v := viper.New()
	v.SetDefault("shuffle", defaults.Shuffle)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("feedback_delay", defaults.FeedbackDelay.String())
	v.SetDefault("good_threshold", defaults.GoodThreshold)
	v.SetDefault("greet", defaults.Greet)
	v.SetDefault("player_name", defaults.PlayerName)
	v.SetDefault("ui", defaults.UI)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if explicit := strings.TrimSpace(os.Getenv(ConfigEnvVar)); explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", explicit, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(dir)
		if userDir := UserConfigDir(); userDir != "" {
			v.AddConfigPath(userDir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
