package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
	"github.com/lingEric/exceltool/pkg/exceltool/paging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogLevel, EnvLogFormat, EnvPageCapacity} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, paging.DefaultCapacity, cfg.PageCapacity)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvPageCapacity, "500")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 500, cfg.PageCapacity)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "error")
	// Unset so godotenv may fill it from the file.
	require.NoError(t, os.Unsetenv(EnvLogFormat))
	t.Cleanup(func() { os.Unsetenv(EnvLogFormat) })

	path := filepath.Join(t.TempDir(), "test.env")
	content := EnvLogLevel + "=debug\n" + EnvLogFormat + "=json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "environment wins over file")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPageCapacity, "many")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPageCapacity)
}

func TestValidate(t *testing.T) {
	cfg := Config{LogLevel: "verbose", LogFormat: "xml", PageCapacity: 0}
	err := cfg.Validate()
	require.Error(t, err)
	for _, name := range []string{EnvLogLevel, EnvLogFormat, EnvPageCapacity} {
		assert.Contains(t, err.Error(), name)
	}
	assert.NoError(t, Default().Validate())
}

func TestParseMapping(t *testing.T) {
	doc := `
translations:
  2:
    M: Male
    F: Female
select_lists:
  3: [A, B, C]
`
	m, err := ParseMapping(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, models.TranslationTable{2: {"M": "Male", "F": "Female"}}, m.Table())
	assert.Equal(t, map[int][]string{3: {"A", "B", "C"}}, m.SelectLists)
}

func TestParseMappingEmpty(t *testing.T) {
	m, err := ParseMapping(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, m.Table())
}

func TestParseMappingRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":     "columns: {}\n",
		"negative column": "translations:\n  -1:\n    M: Male\n",
		"non-int column":  "select_lists:\n  gender: [M]\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMapping(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMappingMissing(t *testing.T) {
	_, err := LoadMapping(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
