package tokenizer

import (
	"strings"

	"github.com/mcncl/jsonist/internal/cursor"
	"github.com/mcncl/jsonist/internal/errors"
)

// scanNumber reads the maximal run of number characters starting at c. The
// run ends at a structural character, whitespace, or end of input. The text
// is validated but left unconverted.
func scanNumber(c cursor.Cursor) (Token, error) {
	start := c.Index()

	var literal strings.Builder
	var last rune
	seenDot := false
	seenExponent := false

	for {
		character, ok := c.Current()
		if !ok || isNumberTerminator(character) {
			return finishNumber(start, c.Index(), literal.String(), last)
		}

		position := c.Index()
		switch {
		case isDigit(character):
		case character == '.':
			if seenDot {
				return Token{}, errors.NewExtraDotInNumber(position)
			}
			seenDot = true
		case character == 'e' || character == 'E':
			if seenExponent {
				return Token{}, errors.NewExtraEInNumber(position)
			}
			seenExponent = true
		case character == '-' || character == '+':
			// A sign is allowed at the head of the run (minus only) and
			// directly after the exponent marker.
			switch {
			case isExponentMarker(last):
			case character == '-' && position == start:
			case character == '-':
				return Token{}, errors.NewNumberCanNotHaveANegativeSignNotAtHead(position)
			default:
				return Token{}, errors.NewInvalidNumberCharacter(position, character)
			}
		default:
			return Token{}, errors.NewInvalidNumberCharacter(position, character)
		}

		literal.WriteRune(character)
		last = character
		c = c.Progress()
	}
}

func finishNumber(start, end int, literal string, last rune) (Token, error) {
	if isExponentMarker(last) || (isSign(last) && exponentSignAtEnd(literal)) {
		return Token{}, errors.NewNumberLiteralEndingInE(end - 1)
	}
	return Token{Kind: Number, Offset: start, Len: end - start, Text: literal}, nil
}

// exponentSignAtEnd reports whether literal ends in "e+" or "e-".
func exponentSignAtEnd(literal string) bool {
	n := len(literal)
	return n >= 2 && isExponentMarker(rune(literal[n-2]))
}

func isNumberTerminator(ch rune) bool {
	return ch == ',' || ch == ']' || ch == '}' || isWhiteSpace(ch)
}

func isExponentMarker(ch rune) bool {
	return ch == 'e' || ch == 'E'
}

func isSign(ch rune) bool {
	return ch == '-' || ch == '+'
}
