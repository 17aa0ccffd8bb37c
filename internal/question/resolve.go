package question

import "fmt"

// ResolveAnswerIndex maps a correct-answer reference to an option index.
// Numeric references are used directly; string references match the first
// option whose text or value equals the string. An unresolvable reference
// is an error, never a silent default.
func ResolveAnswerIndex(options []Option, ref AnswerRef) (int, error) {
	if ref.IsIndex {
		if ref.Index < 0 || ref.Index >= len(options) {
			return 0, fmt.Errorf("index %d out of range (0..%d)", ref.Index, len(options)-1)
		}
		return ref.Index, nil
	}
	for i, opt := range options {
		if opt.Text == ref.Value || (opt.Value != "" && opt.Value == ref.Value) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown answer %q", ref.Value)
}
