package forms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"vietkichban/internal/dialogue"
	"vietkichban/internal/model"
)

func Build(action model.Action, f Fields) (model.GenerationRequest, error) {
	switch action {
	case model.ActionCreate:
		return BuildCreate(f), nil
	case model.ActionPodcast:
		return BuildPodcast(f), nil
	case model.ActionRewrite:
		return BuildRewrite(f), nil
	}
	return model.GenerationRequest{}, fmt.Errorf("unknown action: %s", action)
}

func BuildCreate(f Fields) model.GenerationRequest {
	return model.GenerationRequest{
		Provider: f.Value(FieldProvider),
		Model:    trimmed(f, FieldModel),
		Params: model.CreateParams{
			Idea:        trimmed(f, FieldIdea),
			Style:       trimmed(f, FieldStyle),
			LengthWords: ParseLengthWords(f.Value(FieldLength)),
			Notes:       trimmed(f, FieldNotes),
		},
	}
}

func BuildPodcast(f Fields) model.GenerationRequest {
	return model.GenerationRequest{
		Provider: f.Value(FieldProvider),
		Model:    trimmed(f, FieldModel),
		Params: model.PodcastParams{
			Topic:      trimmed(f, FieldTopic),
			Style:      trimmed(f, FieldStyle),
			Characters: dialogue.ParseCharacters(f.Value(FieldCharacters)),
		},
	}
}

func BuildRewrite(f Fields) model.GenerationRequest {
	return model.GenerationRequest{
		Provider: f.Value(FieldProvider),
		Model:    trimmed(f, FieldModel),
		Params: model.RewriteParams{
			Text:   trimmed(f, FieldText),
			Tone:   trimmed(f, FieldTone),
			Target: trimmed(f, FieldTarget),
		},
	}
}

// ParseLengthWords reads the word-count field. Anything that does not parse
// to a positive number falls back to the default, including a literal 0.
func ParseLengthWords(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return model.DefaultLengthWords
	}

	if v > math.MaxInt32 {
		return math.MaxInt32
	}

	n := int(v)
	if n <= 0 {
		return model.DefaultLengthWords
	}
	return n
}

func trimmed(f Fields, name string) string {
	return strings.TrimSpace(f.Value(name))
}
