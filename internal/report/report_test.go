package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonist/internal/errors"
)

func TestNewDiagnostic_FormatterError(t *testing.T) {
	input := "{\n  \"k\": 4x\n}"

	d := NewDiagnostic("data.json", input, errors.NewInvalidNumberCharacter(10, 'x'))

	assert.Equal(t, "data.json", d.File)
	assert.Equal(t, "invalid_number_character", d.Code)
	assert.Equal(t, 10, d.Offset)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 9, d.Column)
	assert.Equal(t, `  "k": 4x`, d.source)
}

func TestNewDiagnostic_OtherErrors(t *testing.T) {
	d := NewDiagnostic("", "", errors.NewInputError("file is empty", errors.ErrFileEmpty))
	assert.Equal(t, "<stdin>", d.File)
	assert.Equal(t, "input_error", d.Code)
	assert.Equal(t, "Input error: file is empty", d.Message)
	assert.Zero(t, d.Line)

	d = NewDiagnostic("x.json", "", errors.ErrNotFormatted)
	assert.Equal(t, "error", d.Code)
	assert.Equal(t, "file is not formatted", d.Message)
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText, false)

	require.NoError(t, r.Report("data.json", "{\n  \"k\": 4x\n}", errors.NewInvalidNumberCharacter(10, 'x')))

	expected := "data.json:2:9: error: character 'x' at position 10 is not valid in a number [invalid_number_character]\n" +
		" 2 |   \"k\": 4x\n" +
		"   |         ^\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, 1, r.Count())

	// Flush does nothing in text mode
	require.NoError(t, r.Flush())
	assert.Equal(t, expected, buf.String())
}

func TestReporter_TextWithoutPosition(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText, false)

	require.NoError(t, r.Report("a.json", "", errors.ErrNotFormatted))
	assert.Equal(t, "a.json: error: file is not formatted [error]\n", buf.String())
}

func TestReporter_CaretAlignment(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		caret  string
	}{
		{name: "ascii", input: `[1, 22#]`, offset: 6, caret: "      ^"},
		{name: "tab indented", input: "{\n\t\"k\": 4x\n}", offset: 8, caret: "\t     ^"},
		{name: "wide runes", input: `["日本", 3z]`, offset: 8, caret: "          ^"},
		{name: "end of input", input: `"abc`, offset: 4, caret: "    ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewReporter(&buf, FormatText, false)
			require.NoError(t, r.Report("f.json", tt.input, errors.NewExpectedMoreCharacters(tt.offset)))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, tt.caret, strings.TrimPrefix(lines[2], "   | "))
		})
	}
}

func TestReporter_Color(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText, true)

	require.NoError(t, r.Report("f.json", "12a", errors.NewInvalidNumberCharacter(2, 'a')))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatJSON, true)

	require.NoError(t, r.Report("a.json", `{"a": 1, "a": 2}`, errors.NewDuplicateKeyEntry(9, "a")))
	require.NoError(t, r.Report("b.json", "", errors.NewInputError("file is empty", errors.ErrFileEmpty)))
	assert.Empty(t, buf.String(), "JSON is only written on Flush")

	require.NoError(t, r.Flush())

	var out DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, 2, out.Count)
	require.Len(t, out.Diagnostics, 2)

	first := out.Diagnostics[0]
	assert.Equal(t, "a.json", first.File)
	assert.Equal(t, "duplicate_key_entry", first.Code)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 10, first.Column)
	assert.NotContains(t, buf.String(), "\x1b[", "JSON is never coloured")

	assert.Equal(t, "input_error", out.Diagnostics[1].Code)
}

func TestReporter_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatJSON, false)

	require.NoError(t, r.Flush())
	assert.JSONEq(t, `{"diagnostics": [], "count": 0}`, buf.String())
}
