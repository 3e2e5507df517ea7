package parser

import "github.com/mcncl/jsonist/internal/tokenizer"

// RemoveWhitespace returns the tokens that are not whitespace, in order.
func RemoveWhitespace(tokens []tokenizer.Token) []tokenizer.Token {
	remaining := make([]tokenizer.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == tokenizer.WhiteSpace {
			continue
		}
		remaining = append(remaining, token)
	}
	return remaining
}
