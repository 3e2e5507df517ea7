package report

import "strings"

// Position is a location in a document. Offset is a rune offset; Line and
// Column are 1-based and count runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Locate converts a rune offset into a line and column. Offsets past the end
// of input resolve to the position just after the last character.
func Locate(input string, offset int) Position {
	if offset < 0 {
		offset = 0
	}

	pos := Position{Offset: offset, Line: 1, Column: 1}
	i := 0
	for _, r := range input {
		if i == offset {
			break
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i++
	}
	return pos
}

// LineText returns the text of the given 1-based line without its line
// terminator, or "" when the line does not exist.
func LineText(input string, line int) string {
	if line < 1 {
		return ""
	}
	for n := 1; ; n++ {
		end := strings.IndexByte(input, '\n')
		if n == line {
			if end >= 0 {
				input = input[:end]
			}
			return strings.TrimSuffix(input, "\r")
		}
		if end < 0 {
			return ""
		}
		input = input[end+1:]
	}
}
