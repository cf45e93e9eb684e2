package forms

import "vietkichban/internal/model"

const (
	FieldProvider   = "provider"
	FieldModel      = "model"
	FieldIdea       = "idea"
	FieldStyle      = "style"
	FieldLength     = "length"
	FieldNotes      = "notes"
	FieldTopic      = "topic"
	FieldCharacters = "characters"
	FieldText       = "text"
	FieldTone       = "tone"
	FieldTarget     = "target"
)

// Fields is the input side of a form: a named field resolves to its current
// raw value. Unknown names resolve to "".
type Fields interface {
	Value(name string) string
}

// Values is a fixed snapshot of field values.
type Values map[string]string

func (v Values) Value(name string) string {
	return v[name]
}

// Binding maps field names to live string variables, such as the targets of
// an interactive form. Values are read when the handler is triggered.
type Binding map[string]*string

func (b Binding) Value(name string) string {
	if p, ok := b[name]; ok && p != nil {
		return *p
	}
	return ""
}

func FieldNames(action model.Action) []string {
	switch action {
	case model.ActionCreate:
		return []string{FieldProvider, FieldModel, FieldIdea, FieldStyle, FieldLength, FieldNotes}
	case model.ActionPodcast:
		return []string{FieldProvider, FieldModel, FieldTopic, FieldStyle, FieldCharacters}
	case model.ActionRewrite:
		return []string{FieldProvider, FieldModel, FieldText, FieldTone, FieldTarget}
	}
	return nil
}
