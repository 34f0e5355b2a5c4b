package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingEric/exceltool/internal/roster"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "roster.xlsx")

	_, err := run(t, "export", "--count", "5", "--capacity", "3", "--out", book, "--log-level", "error")
	require.NoError(t, err)

	out, err := run(t, "import", book, "--log-level", "error")
	require.NoError(t, err)
	var first []roster.Student
	require.NoError(t, json.Unmarshal([]byte(out), &first))
	assert.Len(t, first, 3)

	jsonPath := filepath.Join(dir, "second.json")
	_, err = run(t, "import", book, "--sheet", "1", "--pretty", "-o", jsonPath, "--log-level", "error")
	require.NoError(t, err)
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var second []roster.Student
	require.NoError(t, json.Unmarshal(data, &second))
	require.Len(t, second, 2)
	assert.Equal(t, "Student 4", second[0].Name)
	assert.Equal(t, "Female", second[0].Gender)
}

func TestExportMapping(t *testing.T) {
	dir := t.TempDir()
	mapping := filepath.Join(dir, "mapping.yaml")
	require.NoError(t, os.WriteFile(mapping, []byte("translations:\n  3:\n    M: boy\n    F: girl\n"), 0o644))
	book := filepath.Join(dir, "roster.xlsx")

	_, err := run(t, "export", "-n", "1", "-o", book, "--translations", mapping, "--log-level", "error")
	require.NoError(t, err)

	out, err := run(t, "import", book, "--log-level", "error")
	require.NoError(t, err)
	var got []roster.Student
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "boy", got[0].Gender)
}

func TestImportMissingFile(t *testing.T) {
	_, err := run(t, "import", filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.ErrorContains(t, err, "file not found")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "export", "--log-level", "loud", "-o", filepath.Join(t.TempDir(), "x.xlsx"))
	assert.ErrorContains(t, err, "EXCELTOOL_LOG_LEVEL")
}
