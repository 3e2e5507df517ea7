// Package parser builds a syntax tree from whitespace-free tokens.
//
// Parsing is recursive descent over an index into the token slice. Every
// sub-parser receives the full slice and a start position and returns how
// many tokens it consumed, so callers advance by value rather than through a
// shared stream.
package parser

import (
	"strconv"

	"github.com/mcncl/jsonist/internal/errors"
	"github.com/mcncl/jsonist/internal/models"
	"github.com/mcncl/jsonist/internal/tokenizer"
)

// Parse converts tokens into a single JSON document. The tokens must not
// contain whitespace; see RemoveWhitespace. Errors are *errors.FormatterError
// addressed by character offset.
func Parse(tokens []tokenizer.Token) (models.Node, error) {
	consumed, root, err := parseNode(tokens, 0)
	if err != nil {
		return nil, err
	}

	// Only one value is allowed at the root.
	if consumed < len(tokens) {
		return nil, errors.NewTrailingTokens(tokens[consumed].Offset)
	}

	return root, nil
}

// parseNode parses the value starting at position.
func parseNode(tokens []tokenizer.Token, position int) (int, models.Node, error) {
	if position >= len(tokens) {
		return 0, nil, expectedMoreTokens(tokens)
	}

	token := tokens[position]
	switch token.Kind {
	case tokenizer.OpenBrace:
		consumed, object, err := parseObject(tokens, position+1)
		if err != nil {
			return 0, nil, err
		}
		return consumed + 1, object, nil
	case tokenizer.OpenSquareBracket:
		consumed, array, err := parseArray(tokens, position+1)
		if err != nil {
			return 0, nil, err
		}
		return consumed + 1, array, nil
	case tokenizer.True:
		return 1, models.True{}, nil
	case tokenizer.False:
		return 1, models.False{}, nil
	case tokenizer.Null:
		return 1, models.Null{}, nil
	case tokenizer.StringLiteral:
		return 1, &models.Literal{Text: token.Text}, nil
	case tokenizer.Number:
		value, err := strconv.ParseFloat(token.Text, 64)
		if err != nil {
			return 0, nil, errors.NewInvalidNumberLiteral(token.Offset, token.Text)
		}
		return 1, &models.Number{Value: value}, nil
	default:
		return 0, nil, errors.NewUnexpectedToken(token.Offset, token.Text)
	}
}

// parseLiteral parses the string literal at position, as used for object keys.
func parseLiteral(tokens []tokenizer.Token, position int) (int, *models.Literal, error) {
	if position >= len(tokens) {
		return 0, nil, expectedMoreTokens(tokens)
	}

	token := tokens[position]
	if token.Kind != tokenizer.StringLiteral {
		return 0, nil, errors.NewExpectedStringLiteral(token.Offset)
	}
	return 1, &models.Literal{Text: token.Text}, nil
}

// expectedMoreTokens points just past the last token.
func expectedMoreTokens(tokens []tokenizer.Token) error {
	if len(tokens) == 0 {
		return errors.NewExpectedMoreTokens(0)
	}
	return errors.NewExpectedMoreTokens(tokens[len(tokens)-1].End())
}
