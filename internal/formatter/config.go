package formatter

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Delimiter is the indentation unit repeated once per nesting level.
type Delimiter int

const (
	// FourSpaces is the default and the zero value.
	FourSpaces Delimiter = iota
	TwoSpaces
	Tabs
)

// Unit returns the indentation string for a single level.
func (d Delimiter) Unit() string {
	switch d {
	case TwoSpaces:
		return "  "
	case Tabs:
		return "\t"
	default:
		return "    "
	}
}

func (d Delimiter) String() string {
	switch d {
	case TwoSpaces:
		return "two"
	case Tabs:
		return "tab"
	default:
		return "four"
	}
}

// ParseDelimiter accepts the names used on the command line and in config
// files: "two", "four", "tab" and spellings such as "2", "TwoSpaces",
// "four-spaces" or "tabs".
func ParseDelimiter(name string) (Delimiter, error) {
	switch strcase.ToSnake(strings.TrimSpace(name)) {
	case "two", "2", "two_spaces", "spaces_2":
		return TwoSpaces, nil
	case "four", "4", "four_spaces", "spaces_4", "":
		return FourSpaces, nil
	case "tab", "tabs", "t":
		return Tabs, nil
	}
	return FourSpaces, fmt.Errorf("unknown indentation %q: expected two, four or tab", name)
}

// FormatConfig selects how output is indented. It is never modified once
// created and is shared by every level of the recursion.
type FormatConfig struct {
	Delimiter Delimiter
}

// DefaultFormatConfig indents with four spaces.
func DefaultFormatConfig() *FormatConfig {
	return &FormatConfig{Delimiter: FourSpaces}
}

// NewFormatConfig creates a config for the given delimiter.
func NewFormatConfig(delimiter Delimiter) *FormatConfig {
	return &FormatConfig{Delimiter: delimiter}
}

func (c *FormatConfig) indent(depth int) string {
	return strings.Repeat(c.Delimiter.Unit(), depth)
}
