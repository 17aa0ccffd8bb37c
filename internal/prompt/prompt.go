// Package prompt provides the interactive input primitives a quiz session
// suspends on: confirmations, single- and multi-select lists, and free
// text. Implementations are synchronous from the caller's point of view.
package prompt

import "errors"

// ErrAborted indicates the user abandoned a prompt (for example with
// ctrl+c in the TUI or EOF on stdin). The session treats this as fatal.
var ErrAborted = errors.New("prompt aborted")

// Prompter collects user input. MultiSelect enforces at least one
// selection and Input enforces non-blank text; invalid input is
// re-prompted and never returned to the caller.
type Prompter interface {
	Confirm(label string, defaultYes bool) (bool, error)
	Select(label string, options []string) (int, error)
	MultiSelect(label string, options []string) ([]int, error)
	Input(label string) (string, error)
}
