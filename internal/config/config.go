// Package config loads the optional .quizcli.yml file that supplies
// defaults for the start command. Command-line flags override every
// field.
package config

import "time"

// DefaultFileName is searched in the working directory when no explicit
// config path is given.
const DefaultFileName = ".quizcli.yml"

// Config holds quiz defaults from .quizcli.yml.
type Config struct {
	// Questions is the default question bank path.
	Questions string `yaml:"questions"`
	// History overrides the history database location.
	History string `yaml:"history"`
	// TimeLimit is a Go duration string; empty disables the limit.
	TimeLimit string `yaml:"time_limit"`
	// Retry defaults to true when omitted.
	Retry   *bool `yaml:"retry"`
	Shuffle bool  `yaml:"shuffle"`
	// Limit caps the number of questions per session; 0 means all.
	Limit int `yaml:"limit"`
	// UI selects the prompt surface: auto, tui, or plain.
	UI string `yaml:"ui"`

	// Parsed form of TimeLimit, populated by Normalize.
	TimeLimitDuration time.Duration `yaml:"-"`
}

// AllowRetry resolves the retry default.
func (c Config) AllowRetry() bool {
	if c.Retry == nil {
		return true
	}
	return *c.Retry
}
