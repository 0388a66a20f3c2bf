package parser

import (
	"github.com/xiam/lecs/ast"
	"github.com/xiam/lecs/lexer"
)

// frame holds the children collected for one bracket level. A nil opener
// marks the top level.
type frame struct {
	children []ast.Node
	opener   *lexer.Token
}

// Parser builds a parse tree from a list of tokens
type Parser struct {
	tokens []lexer.Token
	stack  []frame
}

// New creates a parser for the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

func (p *Parser) push(opener *lexer.Token) {
	p.stack = append(p.stack, frame{children: []ast.Node{}, opener: opener})
}

func (p *Parser) pop() frame {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return top
}

func (p *Parser) add(node ast.Node) {
	top := &p.stack[len(p.stack)-1]
	top.children = append(top.children, node)
}

// Parse consumes all the tokens and returns the top level nodes, or the first
// parse error found.
func (p *Parser) Parse() ([]ast.Node, error) {
	p.stack = make([]frame, 0, 8)
	p.push(nil)
	defer func() {
		p.stack = nil
	}()

	for i := range p.tokens {
		if err := p.step(p.tokens[i]); err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 1 {
		return nil, p.unmatchedOpeningBraces()
	}

	return p.stack[0].children, nil
}

func (p *Parser) step(tok lexer.Token) error {
	tt := tok.Type()

	switch {
	case tt == lexer.TokenComment:
		return nil

	case tt.IsClosing():
		top := p.pop()
		if top.opener == nil {
			return &UnmatchedClosingBraceError{Closing: tok}
		}

		if !sameKind(*top.opener, tok) {
			return &MismatchedClosingBraceError{Opening: *top.opener, Closing: tok}
		}

		node, err := ast.NewSequence(*top.opener, top.children, tok)
		if err != nil {
			return err
		}
		p.add(node)

	case tt.IsOpening():
		opener := tok
		p.push(&opener)

	default:
		p.add(ast.NewSymbol(tok))
	}

	return nil
}

func sameKind(opening lexer.Token, closing lexer.Token) bool {
	openingKind, _ := ast.KindOf(opening)
	closingKind, _ := ast.KindOf(closing)
	return openingKind == closingKind
}

func (p *Parser) unmatchedOpeningBraces() error {
	opening := make([]lexer.Token, 0, len(p.stack)-1)
	for _, f := range p.stack[1:] {
		opening = append(opening, *f.opener)
	}
	return &UnmatchedOpeningBracesError{Opening: opening}
}

// Parse builds the parse tree for the given tokens.
func Parse(tokens []lexer.Token) ([]ast.Node, error) {
	return New(tokens).Parse()
}
