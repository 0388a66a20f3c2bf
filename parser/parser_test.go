package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lecs/ast"
	"github.com/xiam/lecs/lexer"
)

func tk(text string, start int) lexer.Token {
	return lexer.NewToken(text, start, start+len(text))
}

func sym(text string, start int) ast.Node {
	return ast.NewSymbol(tk(text, start))
}

func seq(t *testing.T, start lexer.Token, end lexer.Token, children ...ast.Node) ast.Node {
	node, err := ast.NewSequence(start, children, end)
	require.NoError(t, err)
	return node
}

func TestParse(t *testing.T) {
	testCases := []struct {
		In  []lexer.Token
		Out []ast.Node
	}{
		{
			[]lexer.Token{
				tk("(", 0), tk("defn", 1), tk("bla", 6), tk("[", 10), tk("]", 11),
				tk("{", 13), tk("do", 14), tk("something", 17), tk("}", 26), tk(")", 27),
			},
			[]ast.Node{
				seq(t, tk("(", 0), tk(")", 27),
					sym("defn", 1),
					sym("bla", 6),
					seq(t, tk("[", 10), tk("]", 11)),
					seq(t, tk("{", 13), tk("}", 26),
						sym("do", 14),
						sym("something", 17),
					),
				),
			},
		},
		{
			[]lexer.Token{
				tk("(", 0), tk("defn", 1), tk("bla", 6), tk("[", 10), tk("]", 11),
				tk("{", 13), tk("do", 14), tk("something", 17), tk("}", 26),
				tk(`"a string"`, 28), tk(")", 38), tk(";asdf", 39),
				tk("(", 45), tk("define", 46), tk("do-more-things", 53), tk("[", 68), tk("]", 69),
				tk("(", 71), tk("more", 72), tk("things", 77), tk(")", 83), tk(")", 84),
				tk("(", 86), tk("a", 87), tk("third", 89), tk("thing", 95), tk(")", 100),
			},
			[]ast.Node{
				seq(t, tk("(", 0), tk(")", 38),
					sym("defn", 1),
					sym("bla", 6),
					seq(t, tk("[", 10), tk("]", 11)),
					seq(t, tk("{", 13), tk("}", 26),
						sym("do", 14),
						sym("something", 17),
					),
					sym(`"a string"`, 28),
				),
				seq(t, tk("(", 45), tk(")", 84),
					sym("define", 46),
					sym("do-more-things", 53),
					seq(t, tk("[", 68), tk("]", 69)),
					seq(t, tk("(", 71), tk(")", 83),
						sym("more", 72),
						sym("things", 77),
					),
				),
				seq(t, tk("(", 86), tk(")", 100),
					sym("a", 87),
					sym("third", 89),
					sym("thing", 95),
				),
			},
		},
		{
			[]lexer.Token{},
			[]ast.Node{},
		},
		{
			[]lexer.Token{tk("; only a comment", 0)},
			[]ast.Node{},
		},
		{
			[]lexer.Token{tk("a", 0), tk("b", 2)},
			[]ast.Node{sym("a", 0), sym("b", 2)},
		},
	}

	for i := range testCases {
		nodes, err := Parse(testCases[i].In)

		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, nodes)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In  []lexer.Token
		Err error
	}{
		{
			[]lexer.Token{
				tk("(", 0), tk("defn", 1), tk("do-something", 6), tk("[", 19), tk("]", 20),
				tk("{", 22), tk("unmatched", 23), tk("brace", 33), tk("]", 38), tk(")", 39),
			},
			&MismatchedClosingBraceError{Opening: tk("{", 22), Closing: tk("]", 38)},
		},
		{
			[]lexer.Token{
				tk("(", 0), tk("defn", 1), tk("do-something", 6), tk("[", 19), tk("]", 20),
				tk("{", 22), tk("unmatched", 23), tk("brace", 33), tk("}", 38), tk("}", 39),
			},
			&MismatchedClosingBraceError{Opening: tk("(", 0), Closing: tk("}", 39)},
		},
		{
			[]lexer.Token{
				tk("(", 0), tk("defn", 1), tk("do-something", 6), tk("[", 19), tk("]", 20),
				tk("{", 22), tk("unmatched", 23), tk("brace", 33), tk("}", 38), tk(")", 39),
				tk("]", 40),
			},
			&UnmatchedClosingBraceError{Closing: tk("]", 40)},
		},
		{
			[]lexer.Token{
				tk("(", 0), tk("[", 1), tk("{", 2), tk("(", 3), tk("defn", 4),
				tk("do-something", 9), tk("[", 22), tk("]", 23), tk("{", 25),
				tk("unmatched", 26), tk("brace", 36), tk("}", 41), tk(")", 42),
			},
			&UnmatchedOpeningBracesError{Opening: []lexer.Token{tk("(", 0), tk("[", 1), tk("{", 2)}},
		},
		{
			// The first error wins, even if braces remain open.
			[]lexer.Token{tk("(", 0), tk("[", 1), tk(")", 2), tk("]", 3), tk("]", 4)},
			&MismatchedClosingBraceError{Opening: tk("[", 1), Closing: tk(")", 2)},
		},
		{
			[]lexer.Token{tk(")", 0), tk("(", 1)},
			&UnmatchedClosingBraceError{Closing: tk(")", 0)},
		},
	}

	for i := range testCases {
		nodes, err := Parse(testCases[i].In)

		assert.Nil(t, nodes)
		assert.Equal(t, testCases[i].Err, err)
	}
}

func TestParseErrorsIs(t *testing.T) {
	_, err := Parse([]lexer.Token{tk("(", 0), tk("]", 1)})
	assert.True(t, errors.Is(err, ErrMismatchedClosingBrace))
	assert.False(t, errors.Is(err, ErrUnmatchedClosingBrace))

	_, err = Parse([]lexer.Token{tk("}", 0)})
	assert.True(t, errors.Is(err, ErrUnmatchedClosingBrace))

	_, err = Parse([]lexer.Token{tk("[", 0)})
	assert.True(t, errors.Is(err, ErrUnmatchedOpeningBraces))

	var parseErr Error
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, []lexer.Token{tk("[", 0)}, parseErr.Tokens())
	assert.Equal(t, `unmatched opening braces: "[" at [0 1)`, err.Error())
}

func TestParseSource(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `[]`,
			Out: `[]`,
		},
		{
			In:  `1 3 3.4 5.6789`,
			Out: `1 3 3.4 5.6789`,
		},
		{
			In:  "[1\n\t 2\n\n3\n]",
			Out: "[1 2 3]",
		},
		{
			In:  `[1 [ 1 2 3 ] 3] 4 [5 6] 7 8`,
			Out: `[1 [1 2 3] 3] 4 [5 6] 7 8`,
		},
		{
			In:  `(1 2 [] [3[4[5]]] 6 (7))`,
			Out: `(1 2 [] [3 [4 [5]]] 6 (7))`,
		},
		{
			In:  `([(1[2])]3)`,
			Out: `([(1 [2])] 3)`,
		},
		{
			In:  "(a :b :cdef :GHI [jkl\t\t:hijk])",
			Out: "(a :b :cdef :GHI [jkl :hijk])",
		},
		{
			In:  "\"ABC\t\tDEF\t[] GHI\" :aBC def ; extra\nghij",
			Out: "\"ABC\t\tDEF\t[] GHI\" :aBC def ghij",
		},
		{
			In:  "set {:foo 1\n:bar 2} {:baz {{{[(1)]}}}}",
			Out: `set {:foo 1 :bar 2} {:baz {{{[(1)]}}}}`,
		},
		{
			In:  "(fn [a b c]\n\n\t [\n(print a\n\n b c)])",
			Out: `(fn [a b c] [(print a b c)])`,
		},
		{
			In:  "  ; nothing here\n\n ; or here  \n",
			Out: ``,
		},
	}

	for i := range testCases {
		tokens, err := lexer.Tokenize(testCases[i].In)
		require.NoError(t, err)

		nodes, err := Parse(tokens)
		require.NoError(t, err)

		assert.Equal(t, testCases[i].Out, string(ast.Encode(nodes)))
	}
}

func TestParseTopLevelSpans(t *testing.T) {
	in := "(a (b)) ; c\n[d {e}] f \"g h\""

	tokens, err := lexer.Tokenize(in)
	require.NoError(t, err)

	nodes, err := Parse(tokens)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	spans := []string{}
	for _, n := range nodes {
		span := n.Span()
		spans = append(spans, in[span.Start:span.End])
	}
	assert.Equal(t, []string{"(a (b))", "[d {e}]", "f", `"g h"`}, spans)

	for _, n := range nodes[:2] {
		span := n.Span()
		again, err := lexer.Tokenize(in[span.Start:span.End])
		require.NoError(t, err)

		reparsed, err := Parse(again)
		require.NoError(t, err)
		assert.Len(t, reparsed, 1)
	}
}

func TestParseDeepNesting(t *testing.T) {
	depth := 1000
	in := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)

	tokens, err := lexer.Tokenize(in)
	require.NoError(t, err)

	nodes, err := Parse(tokens)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	levels := 0
	ast.Walk(nodes[0], func(n ast.Node) bool {
		if _, ok := n.(*ast.SequenceNode); ok {
			levels++
		}
		return true
	})
	assert.Equal(t, depth, levels)
}
