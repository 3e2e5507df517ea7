// Package tokenizer turns JSON text into a flat sequence of position stamped
// tokens. Whitespace is kept, one token per character, so that callers can
// decide what to do with it.
package tokenizer

import (
	"github.com/mcncl/jsonist/internal/cursor"
	"github.com/mcncl/jsonist/internal/errors"
)

// Tokenize splits text into tokens. It stops at the first lexical error,
// which is always a *errors.FormatterError.
func Tokenize(text string) ([]Token, error) {
	c := cursor.FromString(text)
	tokens := make([]Token, 0, c.Len()/2)

	for !c.Done() {
		token, err := nextToken(c)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		c = c.Jump(token.Len)
	}

	return tokens, nil
}

// nextToken reads the single token starting under c. c must not be done.
func nextToken(c cursor.Cursor) (Token, error) {
	position := c.Index()
	character, _ := c.Current()

	switch character {
	case '{':
		return singleton(OpenBrace, position, character), nil
	case '}':
		return singleton(CloseBrace, position, character), nil
	case '[':
		return singleton(OpenSquareBracket, position, character), nil
	case ']':
		return singleton(CloseSquareBracket, position, character), nil
	case ':':
		return singleton(Colon, position, character), nil
	case ',':
		return singleton(Comma, position, character), nil
	case '"':
		return scanString(c)
	case 'f':
		return expectKeyword(c, False, "false")
	case 't':
		return expectKeyword(c, True, "true")
	case 'n':
		return expectKeyword(c, Null, "null")
	}

	if isWhiteSpace(character) {
		return singleton(WhiteSpace, position, character), nil
	}
	if isDigit(character) || character == '-' {
		return scanNumber(c)
	}

	return Token{}, errors.NewInvalidTokenStartCharacter(position, character)
}

func isWhiteSpace(ch rune) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
