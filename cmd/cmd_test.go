package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietkichban/internal/api"
	"vietkichban/internal/app"
	"vietkichban/internal/forms"
	"vietkichban/internal/model"
	"vietkichban/internal/storage"
	"vietkichban/pkg/config"
	"vietkichban/pkg/prompts"
)

func TestReadFlagValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "idea.txt")
	require.NoError(t, os.WriteFile(path, []byte("một ý tưởng"), 0644))

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "loneAt", input: "@", want: "@"},
		{name: "fromFile", input: "@" + path, want: "một ý tưởng"},
		{name: "missingFile", input: "@" + filepath.Join(dir, "nope"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readFlagValue(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintOutput(t *testing.T) {
	area := forms.NewTextArea(nil)
	area.SetText("# Kịch bản")

	var buf bytes.Buffer
	printOutput(&buf, area, forms.StateSuccess, false, 80)
	assert.Equal(t, "# Kịch bản\n", buf.String())

	area.SetText("Lỗi: boom")
	buf.Reset()
	printOutput(&buf, area, forms.StateFailed, false, 80)
	assert.Contains(t, buf.String(), "Lỗi: boom")
}

func TestActionCommandsRegistered(t *testing.T) {
	for _, name := range []string{"create", "podcast", "rewrite", "studio", "health", "history"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestTriggerWithSpinnerWithoutTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"text":"Kịch bản xong"}`)
	}))
	defer server.Close()

	orig := stderrIsTerminal
	stderrIsTerminal = func() bool { return false }
	t.Cleanup(func() { stderrIsTerminal = orig })

	area := forms.NewTextArea(nil)
	handler := forms.NewHandler(forms.HandlerOptions{
		Action:   model.ActionRewrite,
		Client:   api.NewClient(api.Options{BaseURL: server.URL}),
		Fields:   forms.Values{forms.FieldText: "gốc"},
		Output:   area,
		Messages: prompts.Default(),
	})

	state, err := triggerWithSpinner(context.Background(), handler, "Đang xử lý...")
	require.NoError(t, err)
	assert.Equal(t, forms.StateSuccess, state)
	assert.Equal(t, "Kịch bản xong", area.Text())
}

type scriptedConfirm struct {
	answers []error
	saves   []bool
	asked   []string
}

func (s *scriptedConfirm) ask(title string) (bool, error) {
	i := len(s.asked)
	s.asked = append(s.asked, title)
	return s.saves[i], s.answers[i]
}

func TestNextRound(t *testing.T) {
	p := prompts.Default()

	tests := []struct {
		name      string
		state     forms.State
		answers   []error
		saves     []bool
		wantAgain bool
		wantAsked []string
		wantSaved int
	}{
		{
			name:      "saveThenAgain",
			state:     forms.StateSuccess,
			answers:   []error{nil, nil},
			saves:     []bool{true, true},
			wantAgain: true,
			wantAsked: []string{p.Studio.Save, p.Studio.Again},
			wantSaved: 1,
		},
		{
			name:      "abortAtSaveStops",
			state:     forms.StateSuccess,
			answers:   []error{huh.ErrUserAborted},
			saves:     []bool{false},
			wantAsked: []string{p.Studio.Save},
		},
		{
			name:      "failedSkipsSave",
			state:     forms.StateFailed,
			answers:   []error{nil},
			saves:     []bool{false},
			wantAsked: []string{p.Studio.Again},
		},
		{
			name:      "abortAtAgainStops",
			state:     forms.StateFailed,
			answers:   []error{huh.ErrUserAborted},
			saves:     []bool{false},
			wantAsked: []string{p.Studio.Again},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			svc := app.NewService(app.ServiceOptions{
				Config:  &config.Config{},
				Prompts: p,
				Saver:   storage.NewLocalStorage(dir),
			})

			scripted := &scriptedConfirm{answers: tt.answers, saves: tt.saves}
			orig := confirm
			confirm = scripted.ask
			t.Cleanup(func() { confirm = orig })

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())

			again, err := nextRound(cmd, svc, model.ActionCreate, tt.state, "Kịch bản")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAgain, again)
			assert.Equal(t, tt.wantAsked, scripted.asked)

			files, err := svc.Saver().List(context.Background())
			require.NoError(t, err)
			assert.Len(t, files, tt.wantSaved)
		})
	}
}
