package lecs

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xiam/lecs/lexer"
)

// Position is a human friendly location in a source. Line and Column are
// 1-based, Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Source holds the text being read along with a name used in diagnostics,
// usually a file name.
type Source struct {
	Name string
	Text string

	lines []int
}

// NewSource creates a Source and indexes its lines
func NewSource(name string, text string) *Source {
	lines := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Source{
		Name:  name,
		Text:  text,
		lines: lines,
	}
}

// LineCount returns the number of lines in the source
func (s *Source) LineCount() int {
	return len(s.lines)
}

// Position converts a byte offset into a Position. Offsets out of range are
// clamped to the source.
func (s *Source) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.Text) {
		offset = len(s.Text)
	}

	line := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i] > offset
	})

	start := s.lines[line-1]
	return Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(s.Text[start:offset]) + 1,
	}
}

// Line returns the text of the given 1-based line, without its line ending.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	start := s.lines[n-1]
	end := len(s.Text)
	if n < len(s.lines) {
		end = s.lines[n] - 1
	}
	return strings.TrimSuffix(s.Text[start:end], "\r")
}

// Slice returns the text spanned by loc
func (s *Source) Slice(loc lexer.Location) string {
	start, end := loc.Start, loc.End
	if start < 0 {
		start = 0
	}
	if end > len(s.Text) {
		end = len(s.Text)
	}
	if start >= end {
		return ""
	}
	return s.Text[start:end]
}
