package lecs

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lecs/lexer"
	"github.com/xiam/lecs/parser"
)

func diagnose(t *testing.T, in string) *Diagnostic {
	_, err := ReadString(in)
	require.Error(t, err)

	diag, ok := Diagnose(err)
	require.True(t, ok, "not a reader error: %v", err)
	return diag
}

func TestDiagnose(t *testing.T) {
	testCases := []struct {
		In     string
		Code   string
		Labels []lexer.Location
	}{
		{
			`"asdf`,
			CodeMalformedString,
			[]lexer.Location{{Start: 0, End: 5}},
		},
		{
			`(defn do-something [] {unmatched brace])`,
			CodeMismatchedClosingBrace,
			[]lexer.Location{{Start: 22, End: 23}, {Start: 38, End: 39}},
		},
		{
			`(a))`,
			CodeUnmatchedClosingBrace,
			[]lexer.Location{{Start: 3, End: 4}},
		},
		{
			`([{(defn do-something [] {unmatched brace})`,
			CodeUnmatchedOpeningBraces,
			[]lexer.Location{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}},
		},
	}

	for _, tc := range testCases {
		diag := diagnose(t, tc.In)
		assert.Equal(t, tc.Code, diag.Code)

		locations := []lexer.Location{}
		for _, label := range diag.Labels {
			locations = append(locations, label.Location)
		}
		assert.Equal(t, tc.Labels, locations)
	}

	_, ok := Diagnose(errors.New("something else"))
	assert.False(t, ok)
}

func TestRenderMismatchedClosingBrace(t *testing.T) {
	in := `(defn do-something [] {unmatched brace])`
	diag := diagnose(t, in)

	var buf bytes.Buffer
	err := diag.Render(&buf, NewSource("demo.lecs", in), RenderOptions{ContextLines: 2})
	require.NoError(t, err)

	expected := "error[mismatched-closing-brace]: mismatched closing brace\n" +
		" --> demo.lecs:1:23\n" +
		"1 | " + in + "\n" +
		"  | " + strings.Repeat(" ", 22) + "^ opened here\n" +
		" --> demo.lecs:1:39\n" +
		"1 | " + in + "\n" +
		"  | " + strings.Repeat(" ", 38) + "^ expected \"}\", found \"]\"\n"

	assert.Equal(t, expected, buf.String())
}

func TestRenderMalformedString(t *testing.T) {
	in := "(defn fun []\n  \" a string\n  continued here\")"
	diag := diagnose(t, in)

	expected := "error[malformed-string]: unterminated string literal\n" +
		" --> <input>:2:3\n" +
		"1 | (defn fun []\n" +
		"2 |   \" a string\n" +
		"  |   ^^^^^^^^^^ string is not closed before the end of the line\n"

	assert.Equal(t, expected, diag.Sprint(NewSource("", in), RenderOptions{ContextLines: 1}))
}

func TestRenderTabsAndWideGutter(t *testing.T) {
	in := strings.Repeat("\n", 9) + "\t(a [b]"
	diag := diagnose(t, in)
	require.Equal(t, CodeUnmatchedOpeningBraces, diag.Code)
	require.Len(t, diag.Labels, 1)

	expected := "error[unmatched-opening-braces]: unmatched opening brace\n" +
		"  --> <input>:10:2\n" +
		"10 | \t(a [b]\n" +
		"   | \t^ never closed, expected \")\"\n"

	assert.Equal(t, expected, diag.Sprint(NewSource("", in), RenderOptions{}))
}

func TestRenderColor(t *testing.T) {
	in := `(a))`
	diag := diagnose(t, in)

	var buf bytes.Buffer
	err := diag.Render(&buf, NewSource("x.lecs", in), RenderOptions{Color: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "unmatched closing brace")
	assert.Contains(t, out, "x.lecs:1:4")
	assert.Contains(t, out, "no open sequence to close")
}

func TestWrapErrorWithSource(t *testing.T) {
	in := `(a]`
	_, err := ReadString(in)
	require.Error(t, err)

	wrapped := WrapErrorWithSource(err, NewSource("w.lecs", in))
	assert.True(t, errors.Is(wrapped, parser.ErrMismatchedClosingBrace))
	assert.True(t, strings.HasPrefix(wrapped.Error(), "error[mismatched-closing-brace]: mismatched closing brace\n --> w.lecs:1:1\n"))

	var srcErr *SourceError
	require.True(t, errors.As(wrapped, &srcErr))
	assert.Equal(t, CodeMismatchedClosingBrace, srcErr.Diagnostic.Code)

	other := errors.New("unrelated")
	assert.Equal(t, other, WrapErrorWithSource(other, NewSource("", in)))
}
