package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLI_FileInputOutput tests the CLI with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir := t.TempDir()

	jsonContent := `{"name":"John Doe","age":30,"address":{"street":"123 Main St","zip":"12345"},
		"phones":[{"type":"home","number":"555-1234"}],"active":true}`
	jsonFile := filepath.Join(tempDir, "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(jsonContent), 0o644))

	outputFile := filepath.Join(tempDir, "output.json")

	cmd := exec.Command("go", "run", "../../main.go", "-i", jsonFile, "-o", outputFile, "--indent", "two")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	formatted, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	expected := `{
  "name": "John Doe",
  "age": 30,
  "address": {
    "street": "123 Main St",
    "zip": "12345"
  },
  "phones": [
    {
      "type": "home",
      "number": "555-1234"
    }
  ],
  "active": true
}
`
	assert.Equal(t, expected, string(formatted))
}

// TestCLI_StdinStdout tests the CLI with stdin input and stdout output
func TestCLI_StdinStdout(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader(`{"name": "Jane Smith", "age": 25, "active": true}`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	require.NoError(t, err, "CLI command failed: %s", stderr.String())

	assert.Equal(t, "{\n    \"name\": \"Jane Smith\",\n    \"age\": 25,\n    \"active\": true\n}\n", stdout.String())
}

// TestCLI_ArrayInput tests the CLI with a JSON array input
func TestCLI_ArrayInput(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--indent", "tab")
	cmd.Stdin = strings.NewReader(`[{"id": 1}, {"id": 2}]`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	require.NoError(t, err)

	assert.Equal(t, "[\n\t{\n\t\t\"id\": 1\n\t},\n\t{\n\t\t\"id\": 2\n\t}\n]\n", stdout.String())
}

// TestCLI_InvalidJSON tests the CLI with invalid JSON input
func TestCLI_InvalidJSON(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--color", "never")
	cmd.Stdin = strings.NewReader(`{"name": "Invalid JSON, "age": 30}`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err, "CLI should fail with invalid JSON")
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "<stdin>:1:")
	assert.Contains(t, stderr.String(), "^")
}

// TestCLI_DuplicateKeysJSONReport tests machine readable error reports
func TestCLI_DuplicateKeysJSONReport(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--error-format", "json")
	cmd.Stdin = strings.NewReader(`{"a": 1, "a": 2}`)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), `"code": "duplicate_key_entry"`)
	assert.Contains(t, stderr.String(), `"count": 1`)
}

// TestCLI_EmptyInput tests the CLI with empty input
func TestCLI_EmptyInput(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader("")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err, "CLI should fail with empty input")
	assert.Contains(t, stderr.String(), "empty input")
}

// TestCLI_InvalidIndent tests rejection of unknown flag values
func TestCLI_InvalidIndent(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--indent", "three")
	cmd.Stdin = strings.NewReader("[]")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "Configuration error")
}

// TestCLI_Version tests the version flag
func TestCLI_Version(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "-v")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "jsonist version")
}

// TestCLI_Help tests the help output
func TestCLI_Help(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--help")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)

	helpOutput := string(output)
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "-i, --input")
	assert.Contains(t, helpOutput, "-o, --output")
	assert.Contains(t, helpOutput, "--indent")
	assert.Contains(t, helpOutput, "-w, --write")
	assert.Contains(t, helpOutput, "-c, --check")
	assert.Contains(t, helpOutput, "--error-format")
	assert.Contains(t, helpOutput, "-j, --jobs")
	assert.Contains(t, helpOutput, "-d, --debug")
	assert.Contains(t, helpOutput, "-v, --version")
}
