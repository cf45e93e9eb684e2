package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"vietkichban/internal/app"
	"vietkichban/internal/dialogue"
	"vietkichban/internal/forms"
	"vietkichban/internal/model"
)

var multilineFields = map[string]bool{
	forms.FieldIdea:       true,
	forms.FieldNotes:      true,
	forms.FieldCharacters: true,
	forms.FieldText:       true,
}

// confirm asks a yes/no question. Replaced in tests.
var confirm = func(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Value(&ok).
		Run()
	return ok, err
}

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Interactive form for all generation actions",
	Long:  `Pick an action, fill in its form and send it. The form can be resent as many times as needed.`,
	Args:  cobra.NoArgs,
	RunE:  runStudio,
}

func init() {
	rootCmd.AddCommand(studioCmd)
}

func runStudio(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	result, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = result.Close() }()

	svc := result.Service
	p := svc.Prompts()

	fmt.Println(titleStyle.Render("🎬 VietKichBan Studio"))

	var action model.Action
	options := make([]huh.Option[model.Action], 0, len(model.Actions()))
	for _, a := range model.Actions() {
		options = append(options, huh.NewOption(p.Action(string(a)), a))
	}
	if err := huh.NewSelect[model.Action]().
		Title(p.Studio.Action).
		Options(options...).
		Value(&action).
		Run(); err != nil {
		return ignoreAbort(err)
	}

	binding := newBinding(svc, action)
	form := buildStudioForm(svc, action, binding)
	area := forms.NewTextArea(nil)
	handler := svc.Handler(action, binding, area)
	cfg := svc.Config()

	for {
		if err := form.Run(); err != nil {
			return ignoreAbort(err)
		}

		if action == model.ActionPodcast {
			cast := dialogue.ParseCharacters(binding.Value(forms.FieldCharacters))
			fmt.Println(infoStyle.Render(fmt.Sprintf("%d speakers\n%s", len(dialogue.Speakers(cast)), dialogue.Format(cast))))
		}

		state, err := triggerWithSpinner(ctx, handler, p.Processing())
		if err != nil {
			return err
		}
		printOutput(cmd.OutOrStdout(), area, state, cfg.Output.Markdown, cfg.Output.MarkdownWidth)

		again, err := nextRound(cmd, svc, action, state, area.Text())
		if err != nil || !again {
			return err
		}

		form = buildStudioForm(svc, action, binding)
	}
}

func newBinding(svc *app.Service, action model.Action) forms.Binding {
	defaults := svc.Defaults(action)
	binding := make(forms.Binding)
	for _, name := range forms.FieldNames(action) {
		v := defaults.Value(name)
		binding[name] = &v
	}
	return binding
}

// buildStudioForm binds one huh field to each form field; huh writes into the
// binding's variables, which the handler reads when triggered.
func buildStudioForm(svc *app.Service, action model.Action, binding forms.Binding) *huh.Form {
	p := svc.Prompts()

	var fields []huh.Field
	for _, name := range forms.FieldNames(action) {
		f := p.Field(string(action), name)
		value := binding[name]

		switch {
		case name == forms.FieldProvider:
			providers := model.Providers()
			if *value != "" && !slices.Contains(providers, *value) {
				providers = append(providers, *value)
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(f.Title).
				Options(huh.NewOptions(providers...)...).
				Value(value))
		case multilineFields[name]:
			fields = append(fields, huh.NewText().
				Title(f.Title).
				Placeholder(f.Placeholder).
				Lines(5).
				Value(value))
		default:
			fields = append(fields, huh.NewInput().
				Title(f.Title).
				Placeholder(f.Placeholder).
				Value(value))
		}
	}

	return huh.NewForm(
		huh.NewGroup(fields...).Title(p.Action(string(action))),
	).WithTheme(huh.ThemeCharm())
}

// nextRound offers to save a successful result, then asks whether to run the
// form again. Cancelling either prompt ends the studio without an error.
func nextRound(cmd *cobra.Command, svc *app.Service, action model.Action, state forms.State, text string) (bool, error) {
	if state == forms.StateSuccess {
		if err := offerSave(cmd, svc, action, text); err != nil {
			return false, ignoreAbort(err)
		}
	}

	again, err := confirm(svc.Prompts().Studio.Again)
	if err != nil {
		return false, ignoreAbort(err)
	}
	return again, nil
}

// offerSave returns huh.ErrUserAborted when the prompt is cancelled so the
// studio loop stops instead of asking to run again.
func offerSave(cmd *cobra.Command, svc *app.Service, action model.Action, text string) error {
	save, err := confirm(svc.Prompts().Studio.Save)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	location, err := svc.Save(cmd.Context(), action, text)
	if err != nil {
		slog.Error("Failed to save script", "error", err)
		return nil
	}
	fmt.Println(successStyle.Render("✓ Saved " + location))
	return nil
}

func ignoreAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
