package config

import (
	"time"

	"termquiz/internal/session"
)

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// Config holds quiz settings loaded from a config file and the environment.
type Config struct {
	Shuffle       bool          `mapstructure:"shuffle"`        // shuffle displayed choices
	Seed          int64         `mapstructure:"seed"`           // shuffle seed, 0 picks one at random
	FeedbackDelay time.Duration `mapstructure:"feedback_delay"` // how long "Checking answer..." is shown
	GoodThreshold string        `mapstructure:"good_threshold"` // fraction of correct answers for the mid tier
	Greet         bool          `mapstructure:"greet"`          // ask for the player's name first
	PlayerName    string        `mapstructure:"player_name"`    // skips the greeting prompt when set
	UI            string        `mapstructure:"ui"`             // auto|live|plain
	NoColor       bool          `mapstructure:"no_color"`
	Verbose       bool          `mapstructure:"verbose"`

	// Threshold is GoodThreshold parsed during validation.
	Threshold session.Threshold `mapstructure:"-"`
	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		FeedbackDelay: time.Second,
		GoodThreshold: session.DefaultThreshold,
		UI:            UIAuto,
		Threshold:     session.MustParseThreshold(session.DefaultThreshold),
	}
}
