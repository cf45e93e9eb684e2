package dialogue

import (
	"strings"

	"vietkichban/internal/model"
)

const DefaultSpeaker = "Host"

// ParseCharacters reads one "name: description" entry per line. Blank lines
// are dropped, and only the first colon separates the name from the line.
// A line without a colon, or with an empty name, belongs to DefaultSpeaker.
func ParseCharacters(text string) []model.Character {
	characters := make([]model.Character, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) == 1 {
			characters = append(characters, model.Character{Name: DefaultSpeaker})
			continue
		}

		name := strings.TrimSpace(parts[0])
		if name == "" {
			name = DefaultSpeaker
		}

		characters = append(characters, model.Character{
			Name: name,
			Line: strings.TrimSpace(strings.Join(parts[1:], ":")),
		})
	}

	return characters
}

func Speakers(characters []model.Character) []string {
	seen := make(map[string]bool)
	speakers := make([]string, 0)

	for _, c := range characters {
		if !seen[c.Name] {
			seen[c.Name] = true
			speakers = append(speakers, c.Name)
		}
	}

	return speakers
}

// Format renders characters back into the "- name: line" list used in summaries.
func Format(characters []model.Character) string {
	var b strings.Builder
	for i, c := range characters {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(c.Name)
		if c.Line != "" {
			b.WriteString(": ")
			b.WriteString(c.Line)
		}
	}
	return b.String()
}
