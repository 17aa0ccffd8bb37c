package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Normalize trims fields, applies defaults, and parses the time limit.
func Normalize(cfg *Config) error {
	cfg.Questions = strings.TrimSpace(cfg.Questions)
	cfg.History = strings.TrimSpace(cfg.History)
	cfg.TimeLimit = strings.TrimSpace(cfg.TimeLimit)
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = "auto"
	}
	if cfg.History == "" {
		cfg.History = DefaultHistoryPath()
	}
	if cfg.TimeLimit != "" {
		limit, err := time.ParseDuration(cfg.TimeLimit)
		if err != nil {
			return fmt.Errorf("parse time_limit: %w", err)
		}
		cfg.TimeLimitDuration = limit
	}
	return nil
}

// Validate rejects unusable settings after normalization.
func Validate(cfg *Config) error {
	switch cfg.UI {
	case "auto", "tui", "plain":
	default:
		return fmt.Errorf("invalid ui mode %q (expected auto|tui|plain)", cfg.UI)
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if cfg.TimeLimitDuration < 0 {
		return fmt.Errorf("time_limit must not be negative")
	}
	return nil
}

// DefaultHistoryPath places the history database under the user home,
// falling back to the working directory when home is unknown.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quizcli-history.db"
	}
	return filepath.Join(home, ".quizcli", "history.db")
}
