// Package lecs reads a Lisp-family surface syntax into a parse tree of
// bracketed sequences and symbols.
//
// Reading happens in two steps: lexer.Tokenize turns the source into tokens
// and parser.Parse matches brackets into ast nodes. The functions in this
// package compose both and turn their errors into diagnostics that can be
// rendered against the source.
package lecs

import (
	"fmt"
	"io"

	"github.com/xiam/lecs/ast"
	"github.com/xiam/lecs/lexer"
	"github.com/xiam/lecs/parser"
)

// Reader reads a whole source from an io.Reader
type Reader struct {
	r io.Reader
}

// NewReader creates a Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read consumes the underlying reader and parses its content.
func (r *Reader) Read() ([]ast.Node, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return Read(in)
}

// Read tokenizes and parses the given source.
func Read(in []byte) ([]ast.Node, error) {
	return ReadString(string(in))
}

// ReadString tokenizes and parses the given source, returning the first
// lexical or syntactic error found.
func ReadString(in string) ([]ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}
