// Package report renders validation failures for people and for tools.
package report

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"github.com/mcncl/jsonist/internal/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// stdinName labels diagnostics for input that did not come from a file.
const stdinName = "<stdin>"

// Diagnostic is a single failure tied to a file and, for JSON errors, a
// position in it.
type Diagnostic struct {
	File    string `json:"file"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Offset  int    `json:"offset"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`

	source string
}

// DiagnosticsOutput is the document written in JSON mode
type DiagnosticsOutput struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Count       int          `json:"count"`
}

// NewDiagnostic describes err, which occurred while processing input read
// from file. Only *errors.FormatterError carries a position.
func NewDiagnostic(file, input string, err error) Diagnostic {
	if file == "" {
		file = stdinName
	}

	d := Diagnostic{File: file, Code: "error", Message: err.Error()}

	var fe *errors.FormatterError
	if stderrors.As(err, &fe) {
		pos := Locate(input, fe.Offset)
		d.Code = fe.Code()
		d.Message = fe.Error()
		d.Offset = pos.Offset
		d.Line = pos.Line
		d.Column = pos.Column
		d.source = LineText(input, pos.Line)
		return d
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		d.Code = string(appErr.Type) + "_error"
		d.Message = errors.UserFriendlyError(err)
	}
	return d
}

// Reporter writes diagnostics in text or JSON form. Text is written as each
// diagnostic arrives; JSON is collected and written by Flush. Safe for
// concurrent use.
type Reporter struct {
	mu          sync.Mutex
	w           io.Writer
	format      string
	diagnostics []Diagnostic

	errorColor  *color.Color
	gutterColor *color.Color
	caretColor  *color.Color
}

// NewReporter creates a Reporter writing to w. useColor only affects text.
func NewReporter(w io.Writer, format string, useColor bool) *Reporter {
	r := &Reporter{
		w:           w,
		format:      format,
		errorColor:  color.New(color.FgRed, color.Bold),
		gutterColor: color.New(color.FgBlue),
		caretColor:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{r.errorColor, r.gutterColor, r.caretColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Report records a failure for file.
func (r *Reporter) Report(file, input string, err error) error {
	return r.Add(NewDiagnostic(file, input, err))
}

// Add records d, writing it immediately in text mode.
func (r *Reporter) Add(d Diagnostic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.diagnostics = append(r.diagnostics, d)
	if r.format == FormatJSON {
		return nil
	}
	_, err := io.WriteString(r.w, r.renderText(d))
	return err
}

// Count returns how many diagnostics have been recorded.
func (r *Reporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diagnostics)
}

// Flush writes the JSON document in JSON mode. It is a no-op for text.
func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format != FormatJSON {
		return nil
	}

	out := DiagnosticsOutput{Diagnostics: r.diagnostics, Count: len(r.diagnostics)}
	if out.Diagnostics == nil {
		out.Diagnostics = []Diagnostic{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode diagnostics: %w", err)
	}
	data = append(data, '\n')
	_, err = r.w.Write(data)
	return err
}

// renderText prints
//
//	file:line:col: error: message [code]
//	   2 |   "k": 4x
//	     |         ^
func (r *Reporter) renderText(d Diagnostic) string {
	var b strings.Builder

	if d.Line == 0 {
		fmt.Fprintf(&b, "%s: %s %s [%s]\n", d.File, r.errorColor.Sprint("error:"), d.Message, d.Code)
		return b.String()
	}

	fmt.Fprintf(&b, "%s:%d:%d: %s %s [%s]\n", d.File, d.Line, d.Column, r.errorColor.Sprint("error:"), d.Message, d.Code)

	number := fmt.Sprintf("%d", d.Line)
	blank := strings.Repeat(" ", len(number))
	fmt.Fprintf(&b, " %s %s\n", r.gutterColor.Sprint(number+" |"), d.source)
	fmt.Fprintf(&b, " %s %s%s\n", r.gutterColor.Sprint(blank+" |"), caretPadding(d.source, d.Column), r.caretColor.Sprint("^"))
	return b.String()
}

// caretPadding returns the whitespace that lines a caret up under the
// 1-based column of line, taking tabs and wide runes into account.
func caretPadding(line string, column int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= column {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	// columns past the end of the line, e.g. for truncated input
	for ; i < column; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
