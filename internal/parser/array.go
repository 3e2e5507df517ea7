package parser

import (
	"github.com/mcncl/jsonist/internal/errors"
	"github.com/mcncl/jsonist/internal/models"
	"github.com/mcncl/jsonist/internal/tokenizer"
)

// parseArray parses array items starting just after the opening bracket.
// The returned count includes the closing bracket.
func parseArray(tokens []tokenizer.Token, position int) (int, models.Node, error) {
	items := []models.Node{}
	jump := position
	afterComma := false

	for {
		if jump >= len(tokens) {
			return 0, nil, expectedMoreTokens(tokens)
		}

		token := tokens[jump]
		switch {
		case token.Kind == tokenizer.CloseSquareBracket && !afterComma:
			return jump - position + 1, &models.Array{Items: items}, nil
		case token.Kind == tokenizer.Comma && len(items) > 0 && !afterComma:
			afterComma = true
			jump++
		default:
			// Items must be separated by commas.
			if len(items) > 0 && !afterComma {
				return 0, nil, errors.NewUnexpectedToken(token.Offset, token.Text)
			}

			consumed, item, err := parseNode(tokens, jump)
			if err != nil {
				return 0, nil, err
			}
			items = append(items, item)
			jump += consumed
			afterComma = false
		}
	}
}
