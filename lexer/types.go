package lexer

import (
	"strings"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid     TokenType = iota
	TokenOpenRound             // Open parenthesis: "("
	TokenCloseRound            // Close parenthesis: ")"
	TokenOpenCurly             // Open curly bracket: "{"
	TokenCloseCurly            // Close curly bracket: "}"
	TokenOpenSquare            // Open square bracket: "["
	TokenCloseSquare           // Close square bracket: "]"
	TokenString                // Quoted string: "..." or '...'
	TokenComment               // Line comment: ";..."
	TokenSymbol                // Anything else
)

const (
	singleQuote = '\''
	doubleQuote = '"'
	semicolon   = ';'
	backslash   = '\\'
	newLine     = '\n'
)

var tokenValues = map[TokenType][]rune{
	TokenOpenRound:   {'('},
	TokenCloseRound:  {')'},
	TokenOpenCurly:   {'{'},
	TokenCloseCurly:  {'}'},
	TokenOpenSquare:  {'['},
	TokenCloseSquare: {']'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:     "invalid",
	TokenOpenRound:   "open_round",
	TokenCloseRound:  "close_round",
	TokenOpenCurly:   "open_curly",
	TokenCloseCurly:  "close_curly",
	TokenOpenSquare:  "open_square",
	TokenCloseSquare: "close_square",
	TokenString:      "string",
	TokenComment:     "comment",
	TokenSymbol:      "symbol",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsOpening returns true for "(", "{" and "["
func (tt TokenType) IsOpening() bool {
	return tt == TokenOpenRound || tt == TokenOpenCurly || tt == TokenOpenSquare
}

// IsClosing returns true for ")", "}" and "]"
func (tt TokenType) IsClosing() bool {
	return tt == TokenCloseRound || tt == TokenCloseCurly || tt == TokenCloseSquare
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenRound   = isTokenType(TokenOpenRound)
	isCloseRound  = isTokenType(TokenCloseRound)
	isOpenCurly   = isTokenType(TokenOpenCurly)
	isCloseCurly  = isTokenType(TokenCloseCurly)
	isOpenSquare  = isTokenType(TokenOpenSquare)
	isCloseSquare = isTokenType(TokenCloseSquare)
)

func isBracket(r rune) bool {
	return isOpenRound(r) || isCloseRound(r) ||
		isOpenCurly(r) || isCloseCurly(r) ||
		isOpenSquare(r) || isCloseSquare(r)
}

func isQuote(r rune) bool {
	return r == singleQuote || r == doubleQuote
}

// isWhitespace matches the ASCII whitespace set: space, \t, \n, \v, \f, \r.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isSymbolBreak(r rune) bool {
	return isWhitespace(r) || isQuote(r) || isBracket(r) || r == semicolon
}

func typeOf(text string) TokenType {
	if text == "" {
		return TokenInvalid
	}
	if len(text) == 1 {
		r := rune(text[0])
		for tt := range tokenValues {
			if isTokenType(tt)(r) {
				return tt
			}
		}
	}
	switch {
	case strings.HasPrefix(text, string(semicolon)):
		return TokenComment
	case isQuote(rune(text[0])):
		return TokenString
	}
	return TokenSymbol
}
