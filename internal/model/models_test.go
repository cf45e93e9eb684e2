package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionRoute(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionCreate, "/api/create"},
		{ActionPodcast, "/api/podcast"},
		{ActionRewrite, "/api/rewrite"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.Route())
			assert.True(t, tt.action.Valid())
		})
	}

	assert.False(t, Action("publish").Valid())
}

func TestCharacterJSON(t *testing.T) {
	params := PodcastParams{
		Topic: "AI",
		Style: "casual",
		Characters: []Character{
			{Name: "Alice", Line: "Hello there"},
			{Name: "Bob", Line: "Hi:there"},
		},
	}

	data, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"AI","style":"casual","characters":[["Alice","Hello there"],["Bob","Hi:there"]]}`, string(data))

	var decoded PodcastParams
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, params.Characters, decoded.Characters)
}

func TestCharacterUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "tooShort", input: `["Alice"]`},
		{name: "tooLong", input: `["Alice","a","b"]`},
		{name: "object", input: `{"name":"Alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Character
			assert.Error(t, json.Unmarshal([]byte(tt.input), &c))
		})
	}
}
