package parser

import (
	"github.com/mcncl/jsonist/internal/errors"
	"github.com/mcncl/jsonist/internal/models"
	"github.com/mcncl/jsonist/internal/tokenizer"
)

// parseObject parses key/value pairs starting just after the opening brace.
// The returned count includes the closing brace. Keys must be unique within
// this object; nested objects keep their own key sets.
func parseObject(tokens []tokenizer.Token, position int) (int, models.Node, error) {
	keys := make(map[string]struct{})
	pairs := []*models.Pair{}
	jump := position
	afterComma := false

	for {
		if jump >= len(tokens) {
			return 0, nil, expectedMoreTokens(tokens)
		}

		token := tokens[jump]
		switch {
		case token.Kind == tokenizer.CloseBrace && !afterComma:
			return jump - position + 1, &models.Object{Pairs: pairs}, nil
		case token.Kind == tokenizer.Comma && len(pairs) > 0 && !afterComma:
			afterComma = true
			jump++
		default:
			if len(pairs) > 0 && !afterComma {
				return 0, nil, errors.NewUnexpectedToken(token.Offset, token.Text)
			}

			consumed, pair, err := parsePair(tokens, jump)
			if err != nil {
				return 0, nil, err
			}

			if _, seen := keys[pair.Key.Text]; seen {
				return 0, nil, errors.NewDuplicateKeyEntry(token.Offset, pair.Key.Text)
			}
			keys[pair.Key.Text] = struct{}{}

			pairs = append(pairs, pair)
			jump += consumed
			afterComma = false
		}
	}
}

// parsePair parses `"key": value` starting at position.
func parsePair(tokens []tokenizer.Token, position int) (int, *models.Pair, error) {
	jump := position

	movement, key, err := parseLiteral(tokens, jump)
	if err != nil {
		return 0, nil, err
	}
	jump += movement

	if jump >= len(tokens) {
		return 0, nil, expectedMoreTokens(tokens)
	}
	if colon := tokens[jump]; colon.Kind != tokenizer.Colon {
		return 0, nil, errors.NewExpectedColonInKeyValuePair(colon.Offset)
	}
	jump++

	movement, value, err := parseNode(tokens, jump)
	if err != nil {
		return 0, nil, err
	}
	jump += movement

	return jump - position, &models.Pair{Key: key, Value: value}, nil
}
