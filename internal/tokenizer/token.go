package tokenizer

import "fmt"

// Kind represents the category of a JSON token.
type Kind uint8

const (
	// Invalid is the zero Kind and is never produced by Tokenize.
	Invalid Kind = iota

	// Singleton tokens, always one character wide.
	OpenBrace
	CloseBrace
	OpenSquareBracket
	CloseSquareBracket
	Colon
	Comma
	WhiteSpace

	// Keywords.
	Null
	True
	False

	// Variable width literals.
	Number
	StringLiteral
)

var kindNames = [...]string{
	Invalid:            "Invalid",
	OpenBrace:          "OpenBrace",
	CloseBrace:         "CloseBrace",
	OpenSquareBracket:  "OpenSquareBracket",
	CloseSquareBracket: "CloseSquareBracket",
	Colon:              "Colon",
	Comma:              "Comma",
	WhiteSpace:         "WhiteSpace",
	Null:               "Null",
	True:               "True",
	False:              "False",
	Number:             "Number",
	StringLiteral:      "StringLiteral",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a lexical unit of JSON input.
//
// Offset is the character offset of the first character of the token and
// Len the number of input characters it spans (quotes and escape sequences
// included). Text holds the whitespace character, the keyword, the raw
// number text, or the unescaped string contents without the quotes.
type Token struct {
	Kind   Kind
	Offset int
	Len    int
	Text   string
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Offset + t.Len
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%d, %q)", t.Kind, t.Offset, t.Text)
}

func singleton(kind Kind, offset int, ch rune) Token {
	return Token{Kind: kind, Offset: offset, Len: 1, Text: string(ch)}
}
