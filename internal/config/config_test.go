package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonist/internal/formatter"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "four", cfg.Indent)
	assert.Equal(t, ErrorFormatText, cfg.ErrorFormat)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, 0, cfg.Jobs)
	assert.False(t, cfg.Dev.Debug)
	assert.Equal(t, formatter.FourSpaces, cfg.FormatConfig().Delimiter)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
indent: two
error_format: json
color: never
jobs: 3
dev:
  debug: true
`
	path := writeConfig(t, t.TempDir(), ".jsonist.yml", yamlContent)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "two", cfg.Indent)
	assert.Equal(t, ErrorFormatJSON, cfg.ErrorFormat)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 3, cfg.Jobs)
	assert.True(t, cfg.Dev.Debug)
	assert.Equal(t, formatter.TwoSpaces, cfg.FormatConfig().Delimiter)
}

func TestConfig_LoadFromTOML(t *testing.T) {
	tomlContent := `
indent = "tab"
error_format = "text"
color = "always"

[dev]
debug = true
`
	path := writeConfig(t, t.TempDir(), ".jsonist.toml", tomlContent)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tab", cfg.Indent)
	assert.Equal(t, ErrorFormatText, cfg.ErrorFormat)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.True(t, cfg.Dev.Debug)
	assert.Equal(t, formatter.Tabs, cfg.FormatConfig().Delimiter)
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "jsonist.yaml", "indent: TwoSpaces\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "two", cfg.Indent, "indent names are normalised")
	assert.Equal(t, ErrorFormatText, cfg.ErrorFormat)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestConfig_LoadNonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/config.yml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such file or directory")
}

func TestConfig_LoadInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		message string
	}{
		{name: "broken yaml", file: "bad.yml", content: "indent: [unclosed array\n", message: "failed to parse config file"},
		{name: "broken toml", file: "bad.toml", content: "indent = \n", message: "failed to parse config file"},
		{name: "unknown indent", file: "indent.yml", content: "indent: three\n", message: `unknown indentation "three"`},
		{name: "unknown error format", file: "format.yml", content: "error_format: xml\n", message: `unknown error format "xml"`},
		{name: "unknown color", file: "color.toml", content: "color = \"rainbow\"\n", message: `unknown color mode "rainbow"`},
		{name: "negative jobs", file: "jobs.yml", content: "jobs: -1\n", message: "jobs must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.file, tt.content)

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestConfig_FindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	nestedDir := filepath.Join(tmpDir, "project", "subdir")
	require.NoError(t, os.MkdirAll(nestedDir, 0o755))

	configPath := writeConfig(t, filepath.Join(tmpDir, "project"), ".jsonist.yml", "indent: tab\n")

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	require.NoError(t, os.Chdir(nestedDir))

	foundPath := FindConfigFile()
	require.NotEmpty(t, foundPath, "Should find config file")

	foundContent, err := os.ReadFile(foundPath)
	require.NoError(t, err)
	assert.Equal(t, "indent: tab\n", string(foundContent))

	assert.Equal(t, filepath.Base(configPath), filepath.Base(foundPath))
}

func TestConfig_FindConfigFileFrom_PrefersNearest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	writeConfig(t, root, ".jsonist.yml", "indent: two\n")
	nearest := writeConfig(t, filepath.Join(root, "a"), ".jsonist.toml", "indent = \"tab\"\n")

	assert.Equal(t, nearest, FindConfigFileFrom(nested))
}

func TestConfig_FindConfigFileNotFound(t *testing.T) {
	tmpDir := t.TempDir()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	require.NoError(t, os.Chdir(tmpDir))

	// A config further up the real filesystem would be found too, so only
	// assert that nothing inside the temp dir matched.
	foundPath := FindConfigFile()
	if foundPath != "" {
		assert.NotContains(t, foundPath, tmpDir)
	}
}

func TestConfig_MergeWithCLI(t *testing.T) {
	baseConfig := &Config{
		Indent:      "two",
		ErrorFormat: ErrorFormatJSON,
		Color:       ColorNever,
		Jobs:        2,
	}

	cliOverrides := &Config{
		Indent: "tab",
		Jobs:   8,
		Dev:    DevConfig{Debug: true},
	}

	merged := MergeConfigs(baseConfig, cliOverrides)

	assert.Equal(t, "tab", merged.Indent)
	assert.Equal(t, ErrorFormatJSON, merged.ErrorFormat)
	assert.Equal(t, ColorNever, merged.Color)
	assert.Equal(t, 8, merged.Jobs)
	assert.True(t, merged.Dev.Debug)

	assert.Equal(t, "two", baseConfig.Indent, "base is not modified")
}

func TestLoadConfigWithPrecedence(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".jsonist.yml", "indent: two\ncolor: never\n")

	cfg, err := LoadConfigWithCLI(path, &Config{Indent: "tab", ErrorFormat: "json"})
	require.NoError(t, err)

	assert.Equal(t, "tab", cfg.Indent)               // From CLI
	assert.Equal(t, ErrorFormatJSON, cfg.ErrorFormat) // From CLI
	assert.Equal(t, ColorNever, cfg.Color)            // From config file
}

func TestLoadConfigWithPrecedence_NoOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".jsonist.yml", "indent: two\n")

	cfg, err := LoadConfigWithCLI(path, &Config{})
	require.NoError(t, err)

	assert.Equal(t, "two", cfg.Indent)
	assert.Equal(t, ColorAuto, cfg.Color) // Default value
}

func TestLoadConfigWithCLI_NoFile(t *testing.T) {
	cfg, err := LoadConfigWithCLI("", nil)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)

	_, err = LoadConfigWithCLI("", &Config{Color: "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color mode")
}
