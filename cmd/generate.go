package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vietkichban/internal/forms"
	"vietkichban/internal/model"
)

type fieldFlag struct {
	name  string
	short string
	usage string
}

type actionOptions struct {
	values   map[string]*string
	save     bool
	markdown bool
}

var providerUsage = "Provider (" + strings.Join(model.Providers(), ", ") + ")"

var actionFlags = map[model.Action][]fieldFlag{
	model.ActionCreate: {
		{name: forms.FieldProvider, short: "p", usage: providerUsage},
		{name: forms.FieldModel, short: "m", usage: "Model name"},
		{name: forms.FieldIdea, short: "i", usage: "Story idea (@file reads a file)"},
		{name: forms.FieldStyle, short: "s", usage: "Writing style"},
		{name: forms.FieldLength, short: "l", usage: "Approximate length in words"},
		{name: forms.FieldNotes, short: "n", usage: "Extra notes (@file reads a file)"},
	},
	model.ActionPodcast: {
		{name: forms.FieldProvider, short: "p", usage: providerUsage},
		{name: forms.FieldModel, short: "m", usage: "Model name"},
		{name: forms.FieldTopic, short: "t", usage: "Podcast topic"},
		{name: forms.FieldStyle, short: "s", usage: "Conversation style"},
		{name: forms.FieldCharacters, short: "C", usage: "Characters, one \"name: role\" per line (@file reads a file)"},
	},
	model.ActionRewrite: {
		{name: forms.FieldProvider, short: "p", usage: providerUsage},
		{name: forms.FieldModel, short: "m", usage: "Model name"},
		{name: forms.FieldText, short: "t", usage: "Text to rewrite (@file reads a file)"},
		{name: forms.FieldTone, short: "", usage: "Tone of voice"},
		{name: forms.FieldTarget, short: "", usage: "Rewrite goal"},
	},
}

func init() {
	rootCmd.AddCommand(
		newActionCmd(model.ActionCreate, "Write a script from an idea"),
		newActionCmd(model.ActionPodcast, "Write a podcast dialogue for a cast of characters"),
		newActionCmd(model.ActionRewrite, "Rewrite a text with a new tone"),
	)
}

func newActionCmd(action model.Action, short string) *cobra.Command {
	opts := &actionOptions{values: make(map[string]*string)}

	cmd := &cobra.Command{
		Use:   string(action),
		Short: short,
		Long: fmt.Sprintf(`%s.

Unset flags take their defaults from config.yaml. The request is sent to
%s on the configured API base.`, short, action.Route()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, action, opts)
		},
	}

	for _, f := range actionFlags[action] {
		opts.values[f.name] = cmd.Flags().StringP(f.name, f.short, "", f.usage)
	}
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save a successful result to the configured storage")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Render the result as markdown")

	return cmd
}

func runAction(cmd *cobra.Command, action model.Action, opts *actionOptions) error {
	ctx := cmd.Context()

	result, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = result.Close() }()

	svc := result.Service

	values := svc.Defaults(action)
	for name, v := range opts.values {
		if !cmd.Flags().Changed(name) {
			continue
		}
		value, err := readFlagValue(*v)
		if err != nil {
			return err
		}
		values[name] = value
	}

	area := forms.NewTextArea(nil)
	handler := svc.Handler(action, values, area)

	state, err := triggerWithSpinner(ctx, handler, svc.Prompts().Processing())
	if err != nil {
		return err
	}

	cfg := svc.Config()
	printOutput(cmd.OutOrStdout(), area, state, opts.markdown || cfg.Output.Markdown, cfg.Output.MarkdownWidth)

	if state != forms.StateSuccess {
		return errGenerationFailed
	}

	if opts.save {
		location, err := svc.Save(ctx, action, area.Text())
		if err != nil {
			return err
		}
		slog.Info("Script saved", "location", location)
	}

	return nil
}

var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd())) //nolint:gosec
}

// triggerWithSpinner starts the request and shows the processing placeholder as
// a spinner until it settles. Without a terminal it just waits.
func triggerWithSpinner(ctx context.Context, handler *forms.Handler, title string) (forms.State, error) {
	done := handler.Go(ctx)
	if !stderrIsTerminal() {
		return <-done, nil
	}

	var state forms.State
	err := spinner.New().
		Title(title).
		Action(func() { state = <-done }).
		Run()
	return state, err
}

// readFlagValue expands "@path" into the file's content.
func readFlagValue(v string) (string, error) {
	path, ok := strings.CutPrefix(v, "@")
	if !ok || path == "" {
		return v, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
