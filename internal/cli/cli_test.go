package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONTENT_DIR", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("STAGE", "local")

	var out bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeSparseContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, l := range content.Supported {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, string(l)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, string(l), "messages.yaml"),
			[]byte("messages:\n  site:\n    title: Sparse\n"), 0o644))
	}
	return dir
}

func TestChaptersCmd(t *testing.T) {
	out, err := run(t, "chapters", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "2. Business Model [business-model]")
	assert.Contains(t, out, "   2.1 ")
	assert.Contains(t, out, "8. Funding [funding]")
}

func TestChaptersCmd_JSON(t *testing.T) {
	out, err := run(t, "chapters", "--json")
	require.NoError(t, err)

	var toc []render.TOCEntry
	require.NoError(t, json.Unmarshal([]byte(out), &toc))
	require.Len(t, toc, chapters.Default.Len())
	assert.Equal(t, "Geschäftsmodell", toc[1].Title)
}

func TestChaptersCmd_UnsupportedLocale(t *testing.T) {
	_, err := run(t, "chapters", "--locale", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestShowCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
		wantErr  string
	}{
		{"by index", []string{"show", "2", "--locale", "en", "--plain"}, "# 2. Business Model", ""},
		{"by slug", []string{"show", "finance", "--locale", "en", "--plain"}, "# 6. Financial Plan", ""},
		{"deck", []string{"show", "--deck", "--locale", "en", "--plain"}, "# Cyphera Business Plan", ""},
		{"out of range", []string{"show", "99", "--plain"}, "", "not found"},
		{"unknown slug", []string{"show", "pricing", "--plain"}, "", "not found"},
		{"missing argument", []string{"show"}, "", "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestShowCmd_Glamour(t *testing.T) {
	out, err := run(t, "show", "1", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Executive")
}

func TestExportCmd_HTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.html")
	_, err := run(t, "export", "--locale", "en", "--out", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(raw)
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, `href="#chapter-8"`)
	assert.Contains(t, html, `id="chapter-1"`)
}

func TestExportCmd_Markdown(t *testing.T) {
	out, err := run(t, "export", "--locale", "en", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Cyphera Business Plan")
	assert.Contains(t, out, "# 1. Executive Summary")
	assert.Contains(t, out, "# 8. Funding")
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	_, err := run(t, "export", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Content OK")
}

func TestValidateCmd_MissingContent(t *testing.T) {
	dir := writeSparseContent(t)

	out, err := run(t, "validate", "--content-dir", dir)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, out, "[error]")
	assert.Contains(t, out, "required by chapter")
}

func TestLoadStore_MissingDir(t *testing.T) {
	_, err := run(t, "chapters", "--content-dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load content")
}
