// Package pipeline ties the tokenizer, parser and formatter together into a
// single text to text transformation.
package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/mcncl/jsonist/internal/formatter"
	"github.com/mcncl/jsonist/internal/models"
	"github.com/mcncl/jsonist/internal/parser"
	"github.com/mcncl/jsonist/internal/tokenizer"
)

// Pipeline runs Tokenize -> RemoveWhitespace -> Parse -> Stringify.
// It holds no state between calls and is safe for concurrent use.
type Pipeline struct {
	logger zerolog.Logger
}

// New creates a Pipeline that reports each stage to logger at debug level.
func New(logger zerolog.Logger) *Pipeline {
	return &Pipeline{logger: logger.With().Str("component", "pipeline").Logger()}
}

// Format validates input and re-emits it indented according to config
// (nil means four spaces). The first tokenizer or parser error is returned
// unchanged as a *errors.FormatterError.
func Format(input string, config *formatter.FormatConfig) (string, error) {
	return New(zerolog.Nop()).Format(input, config)
}

// Parse runs the pipeline up to and including the parser.
func (p *Pipeline) Parse(input string) (models.Node, error) {
	tokens, err := tokenizer.Tokenize(input)
	if err != nil {
		p.logger.Debug().Err(err).Msg("tokenize failed")
		return nil, err
	}
	p.logger.Debug().Int("tokens", len(tokens)).Msg("tokenized input")

	significant := parser.RemoveWhitespace(tokens)
	ast, err := parser.Parse(significant)
	if err != nil {
		p.logger.Debug().Err(err).Msg("parse failed")
		return nil, err
	}
	p.logger.Debug().Int("tokens", len(significant)).Msg("parsed document")

	return ast, nil
}

// Format runs the full pipeline.
func (p *Pipeline) Format(input string, config *formatter.FormatConfig) (string, error) {
	ast, err := p.Parse(input)
	if err != nil {
		return "", err
	}

	if config == nil {
		config = formatter.DefaultFormatConfig()
	}
	output, err := formatter.NewFormatter(config).Format(ast)
	if err != nil {
		p.logger.Debug().Err(err).Msg("format failed")
		return "", err
	}
	p.logger.Debug().
		Str("indent", config.Delimiter.String()).
		Int("bytes", len(output)).
		Msg("formatted document")

	return output, nil
}
