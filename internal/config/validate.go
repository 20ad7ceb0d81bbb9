package config

import (
	"fmt"
	"strings"

	"termquiz/internal/session"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors on a single line.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "config validation failed: " + strings.Join(parts, "; ")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks settings and parses the good threshold into cfg.Threshold.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		collector.add("ui", fmt.Sprintf("invalid ui mode %q (expected auto|live|plain)", cfg.UI))
	}
	if cfg.FeedbackDelay < 0 {
		collector.add("feedback_delay", "must not be negative")
	}
	if cfg.Seed < 0 {
		collector.add("seed", "must not be negative")
	}
	threshold, err := session.ParseThreshold(cfg.GoodThreshold)
	if err != nil {
		collector.add("good_threshold", err.Error())
	} else {
		cfg.Threshold = threshold
	}
	return collector.result()
}
