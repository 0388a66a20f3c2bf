package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/lecs/lexer"
)

var (
	errNotOpening   = errors.New("start token is not an opening bracket")
	errNotClosing   = errors.New("end token is not a closing bracket")
	errKindMismatch = errors.New("brackets are not of the same kind")
)

// Node represents a leaf or a branch of the parse tree. It is implemented by
// *SequenceNode and *SymbolNode only.
type Node interface {
	// Span returns the source range covered by the node
	Span() lexer.Location

	fmt.Stringer

	node()
}

// SequenceNode represents a bracketed literal: a list, a set or a vector
type SequenceNode struct {
	Kind     Kind
	Start    lexer.Token
	Children []Node
	End      lexer.Token
}

// SymbolNode represents any token that is neither a bracket nor a comment,
// string literals included.
type SymbolNode struct {
	Token lexer.Token
}

// NewSequence creates a sequence node from a matching pair of brackets
func NewSequence(start lexer.Token, children []Node, end lexer.Token) (*SequenceNode, error) {
	if !start.Type().IsOpening() {
		return nil, errNotOpening
	}
	if !end.Type().IsClosing() {
		return nil, errNotClosing
	}

	startKind, _ := KindOf(start)
	endKind, _ := KindOf(end)
	if startKind != endKind {
		return nil, errKindMismatch
	}

	if children == nil {
		children = []Node{}
	}

	return &SequenceNode{
		Kind:     startKind,
		Start:    start,
		Children: children,
		End:      end,
	}, nil
}

// NewSymbol creates a symbol node
func NewSymbol(tok lexer.Token) *SymbolNode {
	return &SymbolNode{Token: tok}
}

// Span returns the range from the opening bracket to the closing bracket
func (n *SequenceNode) Span() lexer.Location {
	return lexer.Location{
		Start: n.Start.Location().Start,
		End:   n.End.Location().End,
	}
}

func (n *SequenceNode) String() string {
	return fmt.Sprintf("(%v)[%d]", n.Kind, len(n.Children))
}

func (*SequenceNode) node() {}

// Span returns the location of the symbol token
func (n *SymbolNode) Span() lexer.Location {
	return n.Token.Location()
}

// Text returns the text of the symbol token
func (n *SymbolNode) Text() string {
	return n.Token.Text()
}

// IsString returns true if the symbol is a quoted string literal
func (n *SymbolNode) IsString() bool {
	return n.Token.Is(lexer.TokenString)
}

func (n *SymbolNode) String() string {
	return fmt.Sprintf("(symbol): %v", n.Token.Text())
}

func (*SymbolNode) node() {}

// Walk traverses the tree rooted at n depth-first, calling fn for each node
// before its children. Children of a node are skipped when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	if seq, ok := n.(*SequenceNode); ok {
		for _, child := range seq.Children {
			Walk(child, fn)
		}
	}
}

var (
	_ = Node(&SequenceNode{})
	_ = Node(&SymbolNode{})
)
