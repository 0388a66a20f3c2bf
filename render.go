package lecs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderOptions control how a diagnostic is rendered
type RenderOptions struct {
	// ContextLines is the number of lines printed before each labelled line
	ContextLines int
	// Color enables ANSI styling, subject to what the output supports
	Color bool
}

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorText  = lipgloss.Color("#F8FAFC")
)

type paint func(string) string

type renderStyles struct {
	header  paint
	message paint
	gutter  paint
	caret   paint
}

func plain(s string) string {
	return s
}

func newRenderStyles(w io.Writer, color bool) renderStyles {
	if !color || w == nil {
		return renderStyles{plain, plain, plain, plain}
	}

	r := lipgloss.NewRenderer(w)
	style := func(s lipgloss.Style) paint {
		s = s.TabWidth(lipgloss.NoTabConversion)
		return func(text string) string {
			return s.Render(text)
		}
	}

	return renderStyles{
		header:  style(r.NewStyle().Foreground(colorError).Bold(true)),
		message: style(r.NewStyle().Foreground(colorText).Bold(true)),
		gutter:  style(r.NewStyle().Foreground(colorMuted)),
		caret:   style(r.NewStyle().Foreground(colorError)),
	}
}

// Render writes the diagnostic to w as a header followed by a snippet of src
// for each label, with carets under the labelled range.
func (d *Diagnostic) Render(w io.Writer, src *Source, opts RenderOptions) error {
	_, err := io.WriteString(w, d.render(newRenderStyles(w, opts.Color), src, opts))
	return err
}

// Sprint is like Render but returns the plain text snippet, colors are never
// used.
func (d *Diagnostic) Sprint(src *Source, opts RenderOptions) string {
	return d.render(newRenderStyles(nil, false), src, opts)
}

func (d *Diagnostic) render(st renderStyles, src *Source, opts RenderOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", st.header("error["+d.Code+"]"), st.message(d.Message))

	lastLine := 1
	for _, label := range d.Labels {
		if line := src.Position(label.Location.Start).Line; line > lastLine {
			lastLine = line
		}
	}
	width := len(strconv.Itoa(lastLine))
	blank := strings.Repeat(" ", width)

	name := src.Name
	if name == "" {
		name = "<input>"
	}

	for _, label := range d.Labels {
		pos := src.Position(label.Location.Start)

		fmt.Fprintf(&b, "%s %s:%v\n", st.gutter(blank+"-->"), name, pos)

		first := pos.Line - opts.ContextLines
		if first < 1 {
			first = 1
		}
		for n := first; n <= pos.Line; n++ {
			fmt.Fprintf(&b, "%s %s\n", st.gutter(fmt.Sprintf("%*d |", width, n)), src.Line(n))
		}

		pad, carets := underline(src, pos, label.Location.End)
		fmt.Fprintf(&b, "%s %s%s\n", st.gutter(blank+" |"), pad, st.caret(carets+" "+label.Message))
	}

	return b.String()
}

// underline returns the padding up to pos and the carets covering the range
// from pos to end, limited to the line of pos.
func underline(src *Source, pos Position, end int) (string, string) {
	text := src.Line(pos.Line)
	lineStart := src.lines[pos.Line-1]
	lineEnd := lineStart + len(text)

	if end > lineEnd {
		end = lineEnd
	}

	var pad strings.Builder
	for _, r := range src.Text[lineStart:pos.Offset] {
		if r == '\t' {
			pad.WriteRune('\t')
			continue
		}
		pad.WriteRune(' ')
	}

	n := 0
	if end > pos.Offset {
		n = len([]rune(src.Text[pos.Offset:end]))
	}
	if n < 1 {
		n = 1
	}

	return pad.String(), strings.Repeat("^", n)
}
