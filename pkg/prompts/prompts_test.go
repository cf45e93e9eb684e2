package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrompts(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "Đang xử lý...", p.Processing())
	assert.Equal(t, "Lỗi: bad model", p.RenderError("bad model"))
	assert.Equal(t, "Ý tưởng", p.Field("create", "idea").Title)
	assert.Equal(t, "Host:dẫn dắt\nKhách:chia sẻ", p.Field("podcast", "characters").Placeholder)
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	writePrompts(t, filepath.Join(tmpDir, "prompts.yaml"), `
status:
  processing: "Processing..."
  error: "Error ({{.Message}})"
fields:
  create:
    idea:
      title: "Idea"
`)

	p, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Processing...", p.Processing())
	assert.Equal(t, "Error (timeout)", p.RenderError("timeout"))
	assert.Equal(t, "Idea", p.Field("create", "idea").Title)
	assert.Equal(t, "Ghi chú", p.Field("create", "notes").Title, "untouched fields keep defaults")
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Processing(), p.Processing())
}

func TestLoadFromMissing(t *testing.T) {
	_, err := LoadFrom("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromInvalidTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	writePrompts(t, path, `status: {error: "{{.Message"}`)

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestFieldFallback(t *testing.T) {
	p := Default()

	assert.Equal(t, "unknown", p.Field("create", "unknown").Title)
	assert.Equal(t, "publish", p.Action("publish"))
	assert.Equal(t, "🎙️ Podcast", p.Action("podcast"))
}

func TestRenderErrorWithoutTemplate(t *testing.T) {
	p := &Prompts{}
	assert.Equal(t, "Lỗi: x", p.RenderError("x"))
}

func TestStudioPromptsMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	writePrompts(t, path, "studio:\n  save: \"Save it?\"")

	p, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "Save it?", p.Studio.Save)
	assert.Equal(t, "Tạo tiếp?", p.Studio.Again)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
