package formatter

import (
	"github.com/mcncl/jsonist/internal/models"
)

// Formatter prints syntax trees using a fixed configuration
type Formatter struct {
	config *FormatConfig
}

// NewFormatter creates a new Formatter. A nil config means the default.
func NewFormatter(config *FormatConfig) *Formatter {
	if config == nil {
		config = DefaultFormatConfig()
	}
	return &Formatter{config: config}
}

// Format renders node as indented JSON. Only a root object is followed by a
// newline. The error is set when a string literal holds invalid UTF-8, which
// the tokenizer never produces; the output is still complete in that case.
func (f *Formatter) Format(node models.Node) (string, error) {
	p := printer{config: f.config}
	p.node(node, 0)
	if _, ok := node.(*models.Object); ok {
		p.buf = append(p.buf, '\n')
	}
	return string(p.buf), p.err
}

// Stringify renders node with the default configuration (four spaces).
func Stringify(node models.Node) string {
	return StringifyWithConfig(node, DefaultFormatConfig())
}

// StringifyWithConfig renders node indented with config's delimiter. Invalid
// UTF-8 in a hand-built literal is printed as U+FFFD; use Formatter.Format to
// have it reported.
func StringifyWithConfig(node models.Node, config *FormatConfig) string {
	out, _ := NewFormatter(config).Format(node)
	return out
}

// printer accumulates output and keeps the first error
type printer struct {
	config *FormatConfig
	buf    []byte
	err    error
}

// node prints n, whose nesting level is depth. Only objects and arrays
// introduce a new level for their children.
func (p *printer) node(node models.Node, depth int) {
	switch n := node.(type) {
	case *models.Object:
		children := make([]models.Node, len(n.Pairs))
		for i, pair := range n.Pairs {
			children[i] = pair
		}
		p.container('{', '}', children, depth)
	case *models.Array:
		p.container('[', ']', n.Items, depth)
	case *models.Pair:
		p.node(n.Key, depth)
		p.buf = append(p.buf, ": "...)
		p.node(n.Value, depth)
	case *models.Literal:
		var err error
		p.buf, err = appendQuoted(p.buf, n.Text)
		if err != nil && p.err == nil {
			p.err = err
		}
	case *models.Number:
		p.buf = append(p.buf, formatNumber(n.Value)...)
	case models.True:
		p.buf = append(p.buf, "true"...)
	case models.False:
		p.buf = append(p.buf, "false"...)
	case models.Null:
		p.buf = append(p.buf, "null"...)
	}
}

func (p *printer) container(open, close byte, children []models.Node, depth int) {
	p.buf = append(p.buf, open)
	if len(children) == 0 {
		p.buf = append(p.buf, close)
		return
	}

	indent := p.config.indent(depth + 1)
	p.buf = append(p.buf, '\n')
	for i, child := range children {
		if i > 0 {
			p.buf = append(p.buf, ",\n"...)
		}
		p.buf = append(p.buf, indent...)
		p.node(child, depth+1)
	}
	p.buf = append(p.buf, '\n')
	p.buf = append(p.buf, p.config.indent(depth)...)
	p.buf = append(p.buf, close)
}
