package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command. Flags keep their values between runs, so
// every test passes the flags it relies on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEvaluateCommand(t *testing.T) {
	dir := t.TempDir()
	settingsPath := writeFile(t, dir, "blocker_settings.yaml", `
tagBlacklist: Angst
minWords: "1,000"
hideCompletelyRules:
  tagBlacklist: true
`)
	worksPath := writeFile(t, dir, "works.json", `[
  {"workId": "1", "title": "Sad", "tags": ["Angst"], "wordCount": 5000},
  {"workId": "2", "title": "Short", "wordCount": 10},
  {"workId": "3", "title": "Fine", "wordCount": 2000}
]`)

	out, err := execute(t, "evaluate", "--config", settingsPath, "--works", worksPath,
		"--format", "json", "--summary=true", "--unique=false")
	require.NoError(t, err)

	var result struct {
		Works []struct {
			Title string `json:"title"`
			Mode  string `json:"presentationMode"`
		} `json:"works"`
		Summary struct {
			Total  int `json:"total"`
			Hidden int `json:"hidden"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Len(t, result.Works, 3)
	assert.Equal(t, "hidden", result.Works[0].Mode)
	assert.Equal(t, "placeholder", result.Works[1].Mode)
	assert.Equal(t, "visible", result.Works[2].Mode)
	assert.Equal(t, 3, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Hidden)
}

func TestEvaluateMissingSettingsFile(t *testing.T) {
	dir := t.TempDir()
	worksPath := writeFile(t, dir, "works.json", `[]`)

	_, err := execute(t, "evaluate", "--config", filepath.Join(dir, "missing.yaml"),
		"--works", worksPath, "--format", "text")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
}

func TestInitAndCheckCommands(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "nested", "blocker_settings.yaml")

	out, err := execute(t, "init", "--config", settingsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Created settings file")

	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# ao3-blocker settings")
	assert.Contains(t, string(data), "tagBlacklist: \"\"")
	assert.Contains(t, string(data), "primaryCharPad: 5")

	_, err = execute(t, "init", "--config", settingsPath)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	out, err = execute(t, "check", "--config", settingsPath, "--strict=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Active criteria: none")
	assert.Contains(t, out, "No problems found")
}

func TestCheckReportsEntryProblems(t *testing.T) {
	settingsPath := writeFile(t, t.TempDir(), "blocker_settings.yaml", `
tagBlacklist: "*, *Angst*"
authorBlacklist: Jane*
minWords: lots
`)

	out, err := execute(t, "check", "--config", settingsPath, "--strict=true")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.Contains(t, out, "- tagBlacklist")
	assert.Contains(t, out, "- authorBlacklist")
	assert.Contains(t, out, "invalid-number: 1")
	assert.Contains(t, out, `"*" matches everything`)
	assert.Contains(t, out, `(use "Angst")`)
	assert.Contains(t, out, `"Jane*" wildcard ignored`)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ao3-blocker version")
	assert.NotEmpty(t, getVersion())
}
