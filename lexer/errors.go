package lexer

import (
	"errors"
	"fmt"
)

// ErrMalformedString matches any *MalformedStringError via errors.Is.
var ErrMalformedString = errors.New("malformed string")

// MalformedStringError reports a string literal whose opening quote is not
// closed before the end of the line or the end of the input.
type MalformedStringError struct {
	Token Token
}

func (e *MalformedStringError) Error() string {
	return fmt.Sprintf("%v: %q at %v", ErrMalformedString, e.Token.Text(), e.Token.Location())
}

// Is reports whether target is ErrMalformedString.
func (e *MalformedStringError) Is(target error) bool {
	return target == ErrMalformedString
}
