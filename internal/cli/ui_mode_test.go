package cli

import (
	"io"
	"testing"
)

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	previous := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = previous })
}

// TestResolveUIModeAuto verifies auto follows TTY detection.
func TestResolveUIModeAuto(t *testing.T) {
	stubTerminal(t, true)
	decision, err := resolveUIMode("auto", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !decision.useTUI {
		t.Fatalf("expected TUI on a TTY")
	}

	stubTerminal(t, false)
	decision, err = resolveUIMode("", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useTUI {
		t.Fatalf("expected plain prompts off a TTY")
	}
}

// TestResolveUIModeTUIFallback verifies the non-TTY fallback warns.
func TestResolveUIModeTUIFallback(t *testing.T) {
	stubTerminal(t, false)
	decision, err := resolveUIMode("tui", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useTUI {
		t.Fatalf("expected fallback to plain prompts")
	}
	if decision.warning == "" {
		t.Fatalf("expected a fallback warning")
	}
}

// TestResolveUIModePlain verifies plain never uses the TUI.
func TestResolveUIModePlain(t *testing.T) {
	stubTerminal(t, true)
	decision, err := resolveUIMode("plain", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useTUI {
		t.Fatalf("expected plain prompts")
	}
}

// TestResolveUIModeInvalid verifies unknown modes error.
func TestResolveUIModeInvalid(t *testing.T) {
	if _, err := resolveUIMode("fancy", nil); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}
