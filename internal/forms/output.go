package forms

import "sync"

// Output is the area a handler renders its placeholder, result or error into.
type Output interface {
	SetText(text string)
}

type TextArea struct {
	mu       sync.Mutex
	text     string
	onChange func(string)
}

// NewTextArea returns an empty area. onChange, when set, is called with every
// new text while the area's lock is held, so calls are serialized.
func NewTextArea(onChange func(string)) *TextArea {
	return &TextArea{onChange: onChange}
}

func (a *TextArea) SetText(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.text = text
	if a.onChange != nil {
		a.onChange(text)
	}
}

func (a *TextArea) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}
