package errors

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// Kind identifies one case of the formatter error taxonomy.
type Kind int

const (
	KindUnknown Kind = iota

	// Tokenizer
	KindExpectedMoreCharacters
	KindInvalidTokenStartCharacter
	KindWrongCharacter

	// Numbers
	KindInvalidNumberCharacter
	KindExtraDotInNumber
	KindExtraEInNumber
	KindNumberLiteralEndingInE
	KindNumberCanNotHaveANegativeSignNotAtHead

	// Parser
	KindExpectedMoreTokens
	KindExpectedColonInKeyValuePair
	KindExpectedStringLiteral
	KindDuplicateKeyEntry
	KindUnexpectedToken
	KindInvalidNumberLiteral
	KindTrailingTokens
)

var kindNames = map[Kind]string{
	KindUnknown:                                "Unknown",
	KindExpectedMoreCharacters:                 "ExpectedMoreCharacters",
	KindInvalidTokenStartCharacter:             "InvalidTokenStartCharacter",
	KindWrongCharacter:                         "WrongCharacter",
	KindInvalidNumberCharacter:                 "InvalidNumberCharacter",
	KindExtraDotInNumber:                       "ExtraDotInNumber",
	KindExtraEInNumber:                         "ExtraEInNumber",
	KindNumberLiteralEndingInE:                 "NumberLiteralEndingInE",
	KindNumberCanNotHaveANegativeSignNotAtHead: "NumberCanNotHaveANegativeSignNotAtHead",
	KindExpectedMoreTokens:                     "ExpectedMoreTokens",
	KindExpectedColonInKeyValuePair:            "ExpectedColonInKeyValuePair",
	KindExpectedStringLiteral:                  "ExpectedStringLiteral",
	KindDuplicateKeyEntry:                      "DuplicateKeyEntry",
	KindUnexpectedToken:                        "UnexpectedToken",
	KindInvalidNumberLiteral:                   "InvalidNumberLiteral",
	KindTrailingTokens:                         "TrailingTokens",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrExpectedMoreCharacters                 = &FormatterError{Kind: KindExpectedMoreCharacters}
	ErrInvalidTokenStartCharacter             = &FormatterError{Kind: KindInvalidTokenStartCharacter}
	ErrWrongCharacter                         = &FormatterError{Kind: KindWrongCharacter}
	ErrInvalidNumberCharacter                 = &FormatterError{Kind: KindInvalidNumberCharacter}
	ErrExtraDotInNumber                       = &FormatterError{Kind: KindExtraDotInNumber}
	ErrExtraEInNumber                         = &FormatterError{Kind: KindExtraEInNumber}
	ErrNumberLiteralEndingInE                 = &FormatterError{Kind: KindNumberLiteralEndingInE}
	ErrNumberCanNotHaveANegativeSignNotAtHead = &FormatterError{Kind: KindNumberCanNotHaveANegativeSignNotAtHead}
	ErrExpectedMoreTokens                     = &FormatterError{Kind: KindExpectedMoreTokens}
	ErrExpectedColonInKeyValuePair            = &FormatterError{Kind: KindExpectedColonInKeyValuePair}
	ErrExpectedStringLiteral                  = &FormatterError{Kind: KindExpectedStringLiteral}
	ErrDuplicateKeyEntry                      = &FormatterError{Kind: KindDuplicateKeyEntry}
	ErrUnexpectedToken                        = &FormatterError{Kind: KindUnexpectedToken}
	ErrInvalidNumberLiteral                   = &FormatterError{Kind: KindInvalidNumberLiteral}
	ErrTrailingTokens                         = &FormatterError{Kind: KindTrailingTokens}
)

// FormatterError is the single error value produced by the tokenize, parse
// and format pipeline. Offset is a character (rune) offset into the input.
// Which of the remaining fields are meaningful depends on Kind.
type FormatterError struct {
	Kind   Kind
	Offset int

	// Char is the offending character for InvalidTokenStartCharacter and
	// InvalidNumberCharacter.
	Char rune

	// Literal, Expected and Found describe a WrongCharacter mismatch.
	Literal  string
	Expected rune
	Found    rune

	// Text is the duplicated key, or the raw token text for UnexpectedToken
	// and InvalidNumberLiteral.
	Text string
}

// Error implements error interface
func (e *FormatterError) Error() string {
	switch e.Kind {
	case KindExpectedMoreCharacters:
		return fmt.Sprintf("expected more characters at position %d", e.Offset)
	case KindInvalidTokenStartCharacter:
		return fmt.Sprintf("character %q at position %d is not valid", e.Char, e.Offset)
	case KindWrongCharacter:
		return fmt.Sprintf("wrong character: found %q when expecting %q while trying to build token %s",
			e.Found, e.Expected, e.Literal)
	case KindInvalidNumberCharacter:
		return fmt.Sprintf("character %q at position %d is not valid in a number", e.Char, e.Offset)
	case KindExtraDotInNumber:
		return fmt.Sprintf("found an extra dot at position %d which is not valid in a number", e.Offset)
	case KindExtraEInNumber:
		return fmt.Sprintf("found an extra e at position %d which is not valid in a number", e.Offset)
	case KindNumberLiteralEndingInE:
		return "a number literal can not end with an 'e' character"
	case KindNumberCanNotHaveANegativeSignNotAtHead:
		return "number can not have a - at a position other than the start"
	case KindExpectedMoreTokens:
		return "ran out of tokens while parsing"
	case KindExpectedColonInKeyValuePair:
		return "key value pairs must be delimited by colons (:)"
	case KindExpectedStringLiteral:
		return fmt.Sprintf("expected string literal at position %d", e.Offset)
	case KindDuplicateKeyEntry:
		return fmt.Sprintf("duplicate key (%q) entry", e.Text)
	case KindUnexpectedToken:
		return fmt.Sprintf("unexpected token %q at position %d", e.Text, e.Offset)
	case KindInvalidNumberLiteral:
		return fmt.Sprintf("number literal %q at position %d is not a valid 64-bit float", e.Text, e.Offset)
	case KindTrailingTokens:
		return fmt.Sprintf("unexpected data at position %d after the JSON value", e.Offset)
	default:
		return fmt.Sprintf("unknown formatter error at position %d", e.Offset)
	}
}

// Is reports whether target is a *FormatterError of the same Kind.
func (e *FormatterError) Is(target error) bool {
	t, ok := target.(*FormatterError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Code returns the snake_case name of the error kind, e.g. "duplicate_key_entry".
func (e *FormatterError) Code() string {
	return strcase.ToSnake(e.Kind.String())
}

func NewExpectedMoreCharacters(offset int) *FormatterError {
	return &FormatterError{Kind: KindExpectedMoreCharacters, Offset: offset}
}

func NewInvalidTokenStartCharacter(offset int, ch rune) *FormatterError {
	return &FormatterError{Kind: KindInvalidTokenStartCharacter, Offset: offset, Char: ch}
}

func NewWrongCharacter(offset int, literal string, expected, found rune) *FormatterError {
	return &FormatterError{
		Kind:     KindWrongCharacter,
		Offset:   offset,
		Literal:  literal,
		Expected: expected,
		Found:    found,
	}
}

func NewInvalidNumberCharacter(offset int, ch rune) *FormatterError {
	return &FormatterError{Kind: KindInvalidNumberCharacter, Offset: offset, Char: ch}
}

func NewExtraDotInNumber(offset int) *FormatterError {
	return &FormatterError{Kind: KindExtraDotInNumber, Offset: offset}
}

func NewExtraEInNumber(offset int) *FormatterError {
	return &FormatterError{Kind: KindExtraEInNumber, Offset: offset}
}

func NewNumberLiteralEndingInE(offset int) *FormatterError {
	return &FormatterError{Kind: KindNumberLiteralEndingInE, Offset: offset}
}

func NewNumberCanNotHaveANegativeSignNotAtHead(offset int) *FormatterError {
	return &FormatterError{Kind: KindNumberCanNotHaveANegativeSignNotAtHead, Offset: offset}
}

func NewExpectedMoreTokens(offset int) *FormatterError {
	return &FormatterError{Kind: KindExpectedMoreTokens, Offset: offset}
}

func NewExpectedColonInKeyValuePair(offset int) *FormatterError {
	return &FormatterError{Kind: KindExpectedColonInKeyValuePair, Offset: offset}
}

func NewExpectedStringLiteral(offset int) *FormatterError {
	return &FormatterError{Kind: KindExpectedStringLiteral, Offset: offset}
}

func NewDuplicateKeyEntry(offset int, key string) *FormatterError {
	return &FormatterError{Kind: KindDuplicateKeyEntry, Offset: offset, Text: key}
}

func NewUnexpectedToken(offset int, text string) *FormatterError {
	return &FormatterError{Kind: KindUnexpectedToken, Offset: offset, Text: text}
}

func NewInvalidNumberLiteral(offset int, text string) *FormatterError {
	return &FormatterError{Kind: KindInvalidNumberLiteral, Offset: offset, Text: text}
}

func NewTrailingTokens(offset int) *FormatterError {
	return &FormatterError{Kind: KindTrailingTokens, Offset: offset}
}
