package model

import (
	"encoding/json"
	"fmt"
)

const (
	ActionCreate  Action = "create"
	ActionPodcast Action = "podcast"
	ActionRewrite Action = "rewrite"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const DefaultLengthWords = 800

type Action string

func (a Action) Route() string {
	return "/api/" + string(a)
}

func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionPodcast, ActionRewrite:
		return true
	}
	return false
}

func Actions() []Action {
	return []Action{ActionCreate, ActionPodcast, ActionRewrite}
}

func Providers() []string {
	return []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic}
}

type GenerationRequest struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Params   any    `json:"params"`
}

type CreateParams struct {
	Idea        string `json:"idea"`
	Style       string `json:"style"`
	LengthWords int    `json:"length_words"`
	Notes       string `json:"notes"`
}

type PodcastParams struct {
	Topic      string      `json:"topic"`
	Style      string      `json:"style"`
	Characters []Character `json:"characters"`
}

type RewriteParams struct {
	Text   string `json:"text"`
	Tone   string `json:"tone"`
	Target string `json:"target"`
}

// Character is encoded as a [name, line] pair, the shape the backend unpacks.
type Character struct {
	Name string
	Line string
}

func (c Character) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.Name, c.Line})
}

func (c *Character) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("character must have 2 elements, got %d", len(pair))
	}
	c.Name, c.Line = pair[0], pair[1]
	return nil
}

type GenerationResult struct {
	Text string `json:"text"`
}

type HealthStatus struct {
	OK     bool     `json:"ok"`
	Routes []string `json:"routes"`
}
