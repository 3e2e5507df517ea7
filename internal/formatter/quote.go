package formatter

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/mcncl/jsonist/internal/errors"
)

// appendQuoted appends s as a JSON string literal using the minimal escaping
// of RFC 8785. Invalid UTF-8 is written as U+FFFD and reported as an error.
func appendQuoted(dst []byte, s string) ([]byte, error) {
	dst, err := jsontext.AppendQuote(dst, s)
	if err != nil {
		return dst, errors.NewFormatError(fmt.Sprintf("string literal %q is not valid UTF-8", s), err)
	}
	return dst, nil
}

// formatNumber renders v the way ECMAScript does: shortest round-tripping
// digits, plain decimal notation between 1e-6 and 1e21, exponent notation
// outside that range.
func formatNumber(v float64) string {
	return jsontext.Float(v).String()
}
