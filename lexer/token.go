package lexer

import (
	"fmt"
)

// Location is a half-open range [Start, End) of byte offsets into the input
type Location struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the location
func (l Location) Len() int {
	return l.End - l.Start
}

// Last returns the offset of the last byte covered by the location
func (l Location) Last() int {
	return l.End - 1
}

// Contains returns true if offset falls inside the location
func (l Location) Contains(offset int) bool {
	return offset >= l.Start && offset < l.End
}

func (l Location) String() string {
	return fmt.Sprintf("[%d %d)", l.Start, l.End)
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	text string
	loc  Location
}

// NewToken creates a lexical unit spanning [start, end)
func NewToken(text string, start int, end int) Token {
	return Token{
		text: text,
		loc:  Location{Start: start, End: end},
	}
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.text
}

// Location returns the range of the input the lexical unit was matched from
func (t Token) Location() Location {
	return t.loc
}

// Type returns the type of the lexical unit, derived from its text
func (t Token) Type() TokenType {
	return typeOf(t.text)
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.Type() == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q %v)", t.Type(), t.text, t.loc)
}
