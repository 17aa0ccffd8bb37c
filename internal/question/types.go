package question

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type identifies how a question is asked and scored.
type Type string

const (
	TypeSingleChoice   Type = "single-choice"
	TypeMultipleChoice Type = "multiple-choice"
	TypeFreeForm       Type = "free-form"
)

// KnownType reports whether a question type is supported.
func KnownType(t Type) bool {
	switch t {
	case TypeSingleChoice, TypeMultipleChoice, TypeFreeForm:
		return true
	default:
		return false
	}
}

// Bank is the question bank document loaded from JSON or YAML.
type Bank struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question represents a single quiz item. Questions are validated at load
// time and treated as read-only for the lifetime of a session.
type Question struct {
	ID             string      `json:"id" yaml:"id"`
	Category       string      `json:"category,omitempty" yaml:"category,omitempty"`
	Type           Type        `json:"type" yaml:"type"`
	Prompt         string      `json:"question" yaml:"question"`
	Description    string      `json:"description,omitempty" yaml:"description,omitempty"`
	Options        []Option    `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswers []AnswerRef `json:"correctAnswers,omitempty" yaml:"correctAnswers,omitempty"`
	SampleAnswers  []string    `json:"sampleAnswers,omitempty" yaml:"sampleAnswers,omitempty"`
	Keywords       []string    `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Explanation    string      `json:"explanation,omitempty" yaml:"explanation,omitempty"`

	// CorrectIndexes holds the resolved option indices for choice
	// questions, sorted ascending. Populated by NormalizeBank.
	CorrectIndexes []int `json:"-" yaml:"-"`
}

// Option is one answer choice. Banks may spell options either as a plain
// string or as a {text, value} object.
type Option struct {
	Text  string
	Value string
}

// Label returns the text shown to the user for this option.
func (o Option) Label() string {
	if o.Text != "" {
		return o.Text
	}
	return o.Value
}

// UnmarshalJSON accepts either a bare string or a {text, value} object.
func (o *Option) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*o = Option{Text: plain}
		return nil
	}
	var obj struct {
		Text  string `json:"text"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("option must be a string or a {text, value} object")
	}
	*o = Option{Text: obj.Text, Value: obj.Value}
	return nil
}

// MarshalJSON writes the compact form when no value is attached.
func (o Option) MarshalJSON() ([]byte, error) {
	if o.Value == "" {
		return json.Marshal(o.Text)
	}
	return json.Marshal(struct {
		Text  string `json:"text"`
		Value string `json:"value"`
	}{Text: o.Text, Value: o.Value})
}

// UnmarshalYAML accepts either a bare string or a {text, value} mapping.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var plain string
		if err := node.Decode(&plain); err != nil {
			return err
		}
		*o = Option{Text: plain}
		return nil
	}
	var obj struct {
		Text  string `yaml:"text"`
		Value string `yaml:"value"`
	}
	if err := node.Decode(&obj); err != nil {
		return fmt.Errorf("option must be a string or a {text, value} mapping")
	}
	*o = Option{Text: obj.Text, Value: obj.Value}
	return nil
}

// AnswerRef references a correct answer either by option index or by the
// option's text or value.
type AnswerRef struct {
	Index   int
	Value   string
	IsIndex bool
}

// String renders the reference for error messages.
func (ref AnswerRef) String() string {
	if ref.IsIndex {
		return strconv.Itoa(ref.Index)
	}
	return strconv.Quote(ref.Value)
}

// UnmarshalJSON accepts a number (index) or a string (text/value match).
func (ref *AnswerRef) UnmarshalJSON(data []byte) error {
	var index int
	if err := json.Unmarshal(data, &index); err == nil {
		*ref = AnswerRef{Index: index, IsIndex: true}
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("correct answer must be an option index or a string")
	}
	*ref = AnswerRef{Value: value}
	return nil
}

// MarshalJSON writes the index or string form back out.
func (ref AnswerRef) MarshalJSON() ([]byte, error) {
	if ref.IsIndex {
		return json.Marshal(ref.Index)
	}
	return json.Marshal(ref.Value)
}

// UnmarshalYAML accepts an integer (index) or a string (text/value match).
func (ref *AnswerRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("correct answer must be an option index or a string")
	}
	if node.Tag == "!!int" {
		index, err := strconv.Atoi(strings.TrimSpace(node.Value))
		if err != nil {
			return err
		}
		*ref = AnswerRef{Index: index, IsIndex: true}
		return nil
	}
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	*ref = AnswerRef{Value: value}
	return nil
}
