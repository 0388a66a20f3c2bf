package lexer

import (
	"io"
	"strings"
	"unicode/utf8"
)

const eof = -1

type lexState func(*Lexer) lexState

// New initializes a Lexer over the given input
func New(in string) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in string

	tokens  []Token
	lastErr error

	start  int
	offset int
}

// Tokens returns the tokens collected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan runs the lexer until the input is exhausted or the first malformed
// string is found.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

// emit appends the text between start and offset as a new token. Trailing
// whitespace is trimmed from the text but remains part of the location.
func (lx *Lexer) emit() Token {
	tok := lx.current()
	lx.tokens = append(lx.tokens, tok)
	lx.start = lx.offset
	return tok
}

func (lx *Lexer) current() Token {
	text := strings.TrimRightFunc(lx.in[lx.start:lx.offset], isWhitespace)
	return NewToken(text, lx.start, lx.offset)
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.in[lx.offset:])
	return r
}

func (lx *Lexer) next() (rune, error) {
	if lx.offset >= len(lx.in) {
		return eof, io.EOF
	}
	r, w := utf8.DecodeRuneInString(lx.in[lx.offset:])
	lx.offset += w
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		lx.ignore()
		return lexDefaultState
	case isQuote(r):
		return lexString(r)
	case r == semicolon:
		return lexComment
	case isBracket(r):
		return lexEmit
	default:
		return lexSymbol
	}
}

// lexString consumes a string opened by quote. The string ends at the first
// unescaped quote of the same kind, at the end of the line or at the end of
// the input; only the first case produces a well formed token.
func lexString(quote rune) lexState {
	return func(lx *Lexer) lexState {
		for {
			r, err := lx.next()
			if err != nil {
				return lexMalformedString
			}
			switch r {
			case quote:
				return lexEmit
			case newLine:
				return lexMalformedString
			case backslash:
				if p := lx.peek(); p != eof && p != newLine {
					_, _ = lx.next()
				}
			}
		}
	}
}

func lexComment(lx *Lexer) lexState {
	for p := lx.peek(); p != eof && p != newLine; p = lx.peek() {
		_, _ = lx.next()
	}
	return lexEmit
}

func lexSymbol(lx *Lexer) lexState {
	for p := lx.peek(); p != eof && !isSymbolBreak(p); p = lx.peek() {
		_, _ = lx.next()
	}
	return lexEmit
}

func lexEmit(lx *Lexer) lexState {
	lx.emit()
	return lexDefaultState
}

func lexMalformedString(lx *Lexer) lexState {
	lx.lastErr = &MalformedStringError{Token: lx.current()}
	return nil
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes a string and returns all the tokens within it, or an error
// if a string literal is not terminated.
func Tokenize(in string) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) ([]Token, error) {
	return Tokenize(string(in))
}
