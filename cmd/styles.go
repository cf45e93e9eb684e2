package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"vietkichban/internal/forms"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func renderMarkdown(text string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// printOutput writes the final content of an output area. Successful text is
// printed verbatim unless markdown rendering was requested.
func printOutput(w io.Writer, area *forms.TextArea, state forms.State, markdown bool, width int) {
	text := area.Text()

	switch {
	case state == forms.StateFailed:
		fmt.Fprintln(w, errorStyle.Render(text))
	case markdown:
		fmt.Fprintln(w, renderMarkdown(text, width))
	default:
		fmt.Fprintln(w, text)
	}
}
