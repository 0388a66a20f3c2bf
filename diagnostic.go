package lecs

import (
	"errors"
	"fmt"

	"github.com/xiam/lecs/ast"
	"github.com/xiam/lecs/lexer"
	"github.com/xiam/lecs/parser"
)

// Diagnostic codes
const (
	CodeMalformedString        = "malformed-string"
	CodeMismatchedClosingBrace = "mismatched-closing-brace"
	CodeUnmatchedClosingBrace  = "unmatched-closing-brace"
	CodeUnmatchedOpeningBraces = "unmatched-opening-braces"
)

// Label points at a range of the source and explains its role in a
// diagnostic.
type Label struct {
	Location lexer.Location
	Message  string
}

// Diagnostic describes a reader error in terms of source locations.
type Diagnostic struct {
	Code    string
	Message string
	Labels  []Label
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("error[%s]: %s", d.Code, d.Message)
}

// Diagnose converts a lexical or parse error into a Diagnostic. It returns
// false for any other error.
func Diagnose(err error) (*Diagnostic, bool) {
	var (
		malformed  *lexer.MalformedStringError
		mismatched *parser.MismatchedClosingBraceError
		unmatched  *parser.UnmatchedClosingBraceError
		unclosed   *parser.UnmatchedOpeningBracesError
	)

	switch {
	case errors.As(err, &malformed):
		return &Diagnostic{
			Code:    CodeMalformedString,
			Message: "unterminated string literal",
			Labels: []Label{
				{malformed.Token.Location(), "string is not closed before the end of the line"},
			},
		}, true

	case errors.As(err, &mismatched):
		expected := closingFor(mismatched.Opening)
		return &Diagnostic{
			Code:    CodeMismatchedClosingBrace,
			Message: "mismatched closing brace",
			Labels: []Label{
				{mismatched.Opening.Location(), "opened here"},
				{mismatched.Closing.Location(), fmt.Sprintf("expected %q, found %q", expected, mismatched.Closing.Text())},
			},
		}, true

	case errors.As(err, &unmatched):
		return &Diagnostic{
			Code:    CodeUnmatchedClosingBrace,
			Message: "unmatched closing brace",
			Labels: []Label{
				{unmatched.Closing.Location(), "no open sequence to close"},
			},
		}, true

	case errors.As(err, &unclosed):
		labels := make([]Label, 0, len(unclosed.Opening))
		for _, tok := range unclosed.Opening {
			expected := closingFor(tok)
			labels = append(labels, Label{tok.Location(), fmt.Sprintf("never closed, expected %q", expected)})
		}
		message := "unmatched opening brace"
		if len(labels) > 1 {
			message = fmt.Sprintf("%d unmatched opening braces", len(labels))
		}
		return &Diagnostic{
			Code:    CodeUnmatchedOpeningBraces,
			Message: message,
			Labels:  labels,
		}, true
	}

	return nil, false
}

func closingFor(tok lexer.Token) string {
	kind, _ := ast.KindOf(tok)
	_, closing := kind.Delimiters()
	return closing
}

// SourceError wraps a reader error with its rendered diagnostic.
type SourceError struct {
	Err        error
	Diagnostic *Diagnostic

	rendered string
}

func (e *SourceError) Error() string {
	return e.rendered
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// WrapErrorWithSource returns an error whose message is a plain text snippet
// of src pointing at the cause of err. Errors that are not produced by the
// reader are returned unchanged.
func WrapErrorWithSource(err error, src *Source) error {
	diag, ok := Diagnose(err)
	if !ok {
		return err
	}
	return &SourceError{
		Err:        err,
		Diagnostic: diag,
		rendered:   diag.Sprint(src, RenderOptions{ContextLines: 1}),
	}
}
