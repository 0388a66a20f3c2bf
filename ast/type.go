package ast

import (
	"github.com/xiam/lecs/lexer"
)

// Kind represents the bracket kind of a sequence node
type Kind uint8

// Sequence kinds
const (
	KindInvalid Kind = iota
	KindRound        // "(" ... ")", a list
	KindCurly        // "{" ... "}", a set
	KindSquare       // "[" ... "]", a vector
)

func (k Kind) String() string {
	s, ok := kindName[k]
	if ok {
		return s
	}
	return kindName[KindInvalid]
}

var kindName = map[Kind]string{
	KindInvalid: "invalid",
	KindRound:   "list",
	KindCurly:   "set",
	KindSquare:  "vector",
}

var kindDelimiters = map[Kind][2]string{
	KindRound:  {"(", ")"},
	KindCurly:  {"{", "}"},
	KindSquare: {"[", "]"},
}

// Delimiters returns the opening and closing brackets of the kind
func (k Kind) Delimiters() (string, string) {
	d := kindDelimiters[k]
	return d[0], d[1]
}

// KindOf returns the kind of an opening or closing bracket token. The second
// return value is false if the token is not a bracket.
func KindOf(tok lexer.Token) (Kind, bool) {
	switch tok.Type() {
	case lexer.TokenOpenRound, lexer.TokenCloseRound:
		return KindRound, true
	case lexer.TokenOpenCurly, lexer.TokenCloseCurly:
		return KindCurly, true
	case lexer.TokenOpenSquare, lexer.TokenCloseSquare:
		return KindSquare, true
	}
	return KindInvalid, false
}
