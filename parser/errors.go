package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xiam/lecs/lexer"
)

var (
	ErrMismatchedClosingBrace = errors.New("mismatched closing brace")
	ErrUnmatchedClosingBrace  = errors.New("unmatched closing brace")
	ErrUnmatchedOpeningBraces = errors.New("unmatched opening braces")
)

// Error is implemented by *MismatchedClosingBraceError,
// *UnmatchedClosingBraceError and *UnmatchedOpeningBracesError.
type Error interface {
	error

	// Tokens returns the offending tokens, in source order
	Tokens() []lexer.Token

	parseError()
}

// MismatchedClosingBraceError reports a closing brace of a different kind than
// the brace that opened the innermost open sequence.
type MismatchedClosingBraceError struct {
	Opening lexer.Token
	Closing lexer.Token
}

func (e *MismatchedClosingBraceError) Error() string {
	return fmt.Sprintf("%v: %q at %v does not close %q at %v",
		ErrMismatchedClosingBrace,
		e.Closing.Text(), e.Closing.Location(),
		e.Opening.Text(), e.Opening.Location(),
	)
}

func (e *MismatchedClosingBraceError) Is(target error) bool {
	return target == ErrMismatchedClosingBrace
}

func (e *MismatchedClosingBraceError) Tokens() []lexer.Token {
	return []lexer.Token{e.Opening, e.Closing}
}

func (*MismatchedClosingBraceError) parseError() {}

// UnmatchedClosingBraceError reports a closing brace found while no sequence
// was open.
type UnmatchedClosingBraceError struct {
	Closing lexer.Token
}

func (e *UnmatchedClosingBraceError) Error() string {
	return fmt.Sprintf("%v: %q at %v", ErrUnmatchedClosingBrace, e.Closing.Text(), e.Closing.Location())
}

func (e *UnmatchedClosingBraceError) Is(target error) bool {
	return target == ErrUnmatchedClosingBrace
}

func (e *UnmatchedClosingBraceError) Tokens() []lexer.Token {
	return []lexer.Token{e.Closing}
}

func (*UnmatchedClosingBraceError) parseError() {}

// UnmatchedOpeningBracesError reports the braces still open at the end of the
// input, outermost first.
type UnmatchedOpeningBracesError struct {
	Opening []lexer.Token
}

func (e *UnmatchedOpeningBracesError) Error() string {
	braces := make([]string, 0, len(e.Opening))
	for _, tok := range e.Opening {
		braces = append(braces, fmt.Sprintf("%q at %v", tok.Text(), tok.Location()))
	}
	return fmt.Sprintf("%v: %s", ErrUnmatchedOpeningBraces, strings.Join(braces, ", "))
}

func (e *UnmatchedOpeningBracesError) Is(target error) bool {
	return target == ErrUnmatchedOpeningBraces
}

func (e *UnmatchedOpeningBracesError) Tokens() []lexer.Token {
	return e.Opening
}

func (*UnmatchedOpeningBracesError) parseError() {}

var (
	_ = Error(&MismatchedClosingBraceError{})
	_ = Error(&UnmatchedClosingBraceError{})
	_ = Error(&UnmatchedOpeningBracesError{})
)
