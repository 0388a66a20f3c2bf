package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/lecs"
	"github.com/xiam/lecs/internal/output"
	"github.com/xiam/lecs/parser"
)

const (
	promptMain  = "lecs> "
	promptCont  = "..... "
	historyFile = ".lecs_history"
)

// LineReader reads one line of input after showing a prompt
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Incomplete returns true if err only reports braces left open, meaning
// more input could complete the source.
func Incomplete(err error) bool {
	return errors.Is(err, parser.ErrUnmatchedOpeningBraces)
}

// ReadForm reads lines until they can be read without running out of
// closing braces. It returns false once the input is exhausted.
func ReadForm(lr LineReader) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := lr.Prompt(prompt)
		if err != nil {
			if b.Len() > 0 && !errors.Is(err, io.EOF) {
				return "", true
			}
			return b.String(), b.Len() > 0
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if _, err := lecs.ReadString(b.String()); Incomplete(err) {
			continue
		}
		return b.String(), true
	}
}

// REPL reads forms and prints their parse tree or diagnostic
type REPL struct {
	In      LineReader
	Out     io.Writer
	Err     io.Writer
	Printer *output.Printer
	Render  lecs.RenderOptions

	// History receives every complete form, may be nil
	History func(string)
}

// Run loops until the input is exhausted or ":quit" is read
func (r *REPL) Run() error {
	for {
		src, ok := ReadForm(r.In)
		if !ok {
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return nil
			case ":help":
				fmt.Fprintln(r.Out, "type a form to see its parse tree, :quit to exit")
			default:
				fmt.Fprintf(r.Out, "unknown command %q, type :help\n", trimmed)
			}
			continue
		}

		if r.History != nil {
			r.History(strings.ReplaceAll(src, "\n", " "))
		}

		nodes, err := lecs.ReadString(src)
		if err != nil {
			if diag, ok := lecs.Diagnose(err); ok {
				if err := diag.Render(r.Err, lecs.NewSource("<repl>", src), r.Render); err != nil {
					return err
				}
				continue
			}
			return err
		}

		if err := r.Printer.Tree(nodes); err != nil {
			return err
		}
	}
}

// Run starts an interactive session on the terminal, keeping history in the
// user's home directory.
func Run(printer *output.Printer, render lecs.RenderOptions) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r := &REPL{
		In:      ln,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Printer: printer,
		Render:  render,
		History: ln.AppendHistory,
	}
	return r.Run()
}
