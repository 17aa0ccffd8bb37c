package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".quizcli.yml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoadConfig verifies parsing, normalization, and defaults.
func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `questions: ./bank.json
time_limit: 5m
retry: false
shuffle: true
limit: 10
ui: TUI
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Questions != "./bank.json" {
		t.Fatalf("unexpected questions path %q", cfg.Questions)
	}
	if cfg.TimeLimitDuration != 5*time.Minute {
		t.Fatalf("expected 5m limit, got %v", cfg.TimeLimitDuration)
	}
	if cfg.AllowRetry() {
		t.Fatalf("expected retry disabled")
	}
	if !cfg.Shuffle || cfg.Limit != 10 {
		t.Fatalf("unexpected shuffle/limit: %v/%d", cfg.Shuffle, cfg.Limit)
	}
	if cfg.UI != "tui" {
		t.Fatalf("expected normalized ui tui, got %q", cfg.UI)
	}
	if cfg.History == "" {
		t.Fatalf("expected default history path")
	}
}

// TestLoadConfigMissingDefault verifies a missing default file yields
// defaults.
func TestLoadConfigMissingDefault(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.AllowRetry() {
		t.Fatalf("expected retry default true")
	}
	if cfg.UI != "auto" {
		t.Fatalf("expected ui default auto, got %q", cfg.UI)
	}
}

// TestLoadConfigMissingExplicit verifies an explicit missing path errors.
func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

// TestLoadConfigRejectsUnknownFields verifies strict decoding.
func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "surprise: true\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

// TestLoadConfigInvalidValues verifies validation failures.
func TestLoadConfigInvalidValues(t *testing.T) {
	cases := []string{
		"ui: fancy\n",
		"limit: -1\n",
		"time_limit: -1m\n",
		"time_limit: soon\n",
	}
	for _, payload := range cases {
		path := writeConfig(t, payload)
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error for %q", payload)
		}
	}
}
