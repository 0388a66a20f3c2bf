package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/xiam/lecs/ast"
	"github.com/xiam/lecs/internal/config"
	"github.com/xiam/lecs/lexer"
)

var (
	colorKind   = lipgloss.Color("#8B5CF6")
	colorString = lipgloss.Color("#10B981")
	colorMuted  = lipgloss.Color("#6B7280")
)

// Token is the exported form of a lexer.Token
type Token struct {
	Type  string `json:"type" yaml:"type"`
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Printer writes tokens and trees in the configured format
type Printer struct {
	w      io.Writer
	format string
	indent int

	kind   lipgloss.Style
	str    lipgloss.Style
	muted  lipgloss.Style
	styled bool
}

// New creates a Printer
func New(w io.Writer, cfg config.OutputConfig) *Printer {
	p := &Printer{
		w:      w,
		format: cfg.Format,
		indent: cfg.Indent,
		styled: cfg.Color,
	}

	if p.styled {
		r := lipgloss.NewRenderer(w)
		p.kind = r.NewStyle().Foreground(colorKind).Bold(true)
		p.str = r.NewStyle().Foreground(colorString)
		p.muted = r.NewStyle().Foreground(colorMuted)
	}

	return p
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Tokens prints a list of tokens
func (p *Printer) Tokens(tokens []lexer.Token) error {
	exported := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		exported = append(exported, Token{
			Type:  tok.Type().String(),
			Text:  tok.Text(),
			Start: tok.Location().Start,
			End:   tok.Location().End,
		})
	}

	switch p.format {
	case config.FormatJSON:
		return p.json(exported)
	case config.FormatYAML:
		return p.yaml(exported)
	}

	for _, tok := range exported {
		loc := fmt.Sprintf("[%d %d)", tok.Start, tok.End)
		if _, err := fmt.Fprintf(p.w, "%s %s %s\n",
			p.paint(p.muted, fmt.Sprintf("%-10s", loc)),
			p.paint(p.kind, fmt.Sprintf("%-12s", tok.Type)),
			p.text(tok.Type, fmt.Sprintf("%q", tok.Text)),
		); err != nil {
			return err
		}
	}
	return nil
}

// Tree prints a parse tree
func (p *Printer) Tree(nodes []ast.Node) error {
	exported := ast.Export(nodes)

	switch p.format {
	case config.FormatJSON:
		return p.json(exported)
	case config.FormatYAML:
		return p.yaml(exported)
	}

	var b strings.Builder
	for i := range exported {
		p.treeLevel(&b, exported[i], 0)
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) treeLevel(b *strings.Builder, n ast.Exported, level int) {
	indent := strings.Repeat(" ", p.indent*level)
	loc := p.paint(p.muted, fmt.Sprintf("[%d %d)", n.Start, n.End))

	if n.Text == "" {
		fmt.Fprintf(b, "%s%s %s\n", indent, p.paint(p.kind, n.Type), loc)
		for i := range n.Children {
			p.treeLevel(b, n.Children[i], level+1)
		}
		return
	}

	fmt.Fprintf(b, "%s%s %s %s\n", indent, p.paint(p.kind, n.Type), p.text(n.Type, n.Text), loc)
}

func (p *Printer) text(tt string, text string) string {
	if tt == "string" {
		return p.paint(p.str, text)
	}
	return text
}

// Canonical prints the canonical encoding of a parse tree
func (p *Printer) Canonical(nodes []ast.Node) error {
	_, err := fmt.Fprintf(p.w, "%s\n", ast.Encode(nodes))
	return err
}

func (p *Printer) json(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", strings.Repeat(" ", p.indent))
	return enc.Encode(v)
}

func (p *Printer) yaml(v interface{}) error {
	indent := p.indent
	if indent < 2 {
		indent = 2
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
