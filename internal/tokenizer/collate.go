package tokenizer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/mcncl/jsonist/internal/cursor"
	"github.com/mcncl/jsonist/internal/errors"
)

// expectKeyword matches literal character by character starting at c.
func expectKeyword(c cursor.Cursor, kind Kind, literal string) (Token, error) {
	start := c.Index()

	for _, expected := range literal {
		character, ok := c.Current()
		if !ok {
			return Token{}, errors.NewExpectedMoreCharacters(c.Index())
		}
		if character != expected {
			return Token{}, errors.NewWrongCharacter(c.Index(), literal, expected, character)
		}
		c = c.Progress()
	}

	return Token{Kind: kind, Offset: start, Len: c.Index() - start, Text: literal}, nil
}

// scanString reads a string literal whose opening quote is under c. The
// returned token text is unescaped and excludes the quotes.
func scanString(c cursor.Cursor) (Token, error) {
	start := c.Index()
	c = c.Progress()

	var literal strings.Builder
	for {
		character, ok := c.Current()
		if !ok {
			return Token{}, errors.NewExpectedMoreCharacters(c.Index())
		}

		switch character {
		case '"':
			return Token{
				Kind:   StringLiteral,
				Offset: start,
				Len:    c.Index() - start + 1,
				Text:   literal.String(),
			}, nil
		case '\\':
			c = c.Progress()
			escaped, ok := c.Current()
			if !ok {
				return Token{}, errors.NewExpectedMoreCharacters(c.Index())
			}
			c = c.Jump(unescape(c, escaped, &literal))
		default:
			literal.WriteRune(character)
		}

		c = c.Progress()
	}
}

// unescape writes the meaning of the escape sequence whose escaped character
// is under c. It returns how many characters past c the sequence extends.
func unescape(c cursor.Cursor, escaped rune, literal *strings.Builder) int {
	switch escaped {
	case 'b':
		literal.WriteByte('\b')
	case 'f':
		literal.WriteByte('\f')
	case 'n':
		literal.WriteByte('\n')
	case 'r':
		literal.WriteByte('\r')
	case 't':
		literal.WriteByte('\t')
	case 'u':
		r, consumed := decodeUnicodeEscape(c)
		if consumed == 0 {
			literal.WriteRune(escaped)
			return 0
		}
		literal.WriteRune(r)
		return consumed
	default:
		// \" \\ \/ and anything unrecognised keep the escaped character.
		literal.WriteRune(escaped)
	}
	return 0
}

// decodeUnicodeEscape decodes the \uXXXX sequence whose 'u' is under c,
// joining a following low surrogate escape when present. It returns the
// number of characters consumed after the 'u', or 0 if the digits are not
// valid hex.
func decodeUnicodeEscape(c cursor.Cursor) (rune, int) {
	r, ok := readHex4(c.Progress())
	if !ok {
		return 0, 0
	}
	if !utf16.IsSurrogate(r) {
		return r, 4
	}

	// A high surrogate needs a second \uXXXX to form a code point.
	next := c.Jump(5)
	backslash, ok1 := next.Current()
	u, ok2 := next.Progress().Current()
	if ok1 && ok2 && backslash == '\\' && u == 'u' {
		if low, ok := readHex4(next.Jump(2)); ok {
			if decoded := utf16.DecodeRune(r, low); decoded != unicode.ReplacementChar {
				return decoded, 10
			}
		}
	}
	return unicode.ReplacementChar, 4
}

func readHex4(c cursor.Cursor) (rune, bool) {
	digits := make([]rune, 0, 4)
	for i := 0; i < 4; i++ {
		ch, ok := c.Jump(i).Current()
		if !ok {
			return 0, false
		}
		digits = append(digits, ch)
	}
	v, err := strconv.ParseUint(string(digits), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
