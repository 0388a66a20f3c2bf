package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/lecs"
	"github.com/xiam/lecs/internal/config"
	"github.com/xiam/lecs/internal/logging"
	"github.com/xiam/lecs/internal/output"
)

// Exit codes
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitError   = 2
)

// exitError carries the exit code of a failed command
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

var errInvalidSource = errors.New("source could not be read")

type app struct {
	cfgFile  string
	logLevel string
	noColor  bool
	format   string

	cfg    *config.Config
	logger *slog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out io.Writer, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "lecs",
		Short: "Reads lecs source into tokens and parse trees",
		Long: `lecs tokenizes and parses a Lisp-family surface syntax made of
lists (), sets {}, vectors [], symbols, strings and ; comments.

Commands:
  tokens  - print the token stream of a source
  parse   - print the parse tree of a source
  fmt     - print the canonical form of a source
  check   - report reader errors in files
  watch   - check files again whenever they change
  repl    - read forms interactively`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newFmtCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the lecs command and returns the process exit code
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	rootCmd := newRootCmd(in, out, errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.code != ExitInvalid {
			printError(errOut, exitErr.err)
		}
		return exitErr.code
	}

	printError(errOut, err)
	return ExitError
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "lecs: %v\n", err)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return &exitError{ExitError, err}
	}
	cfg.ApplyEnv()

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if a.noColor {
		cfg.Output.Color = false
		cfg.Diagnostics.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return &exitError{ExitError, err}
	}

	logger, err := logging.New(a.errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return &exitError{ExitError, err}
	}

	a.cfg = cfg
	a.logger = logger

	if a.cfgFile != "" {
		a.logger.Debug("config loaded", "file", a.cfgFile)
	}
	return nil
}

func (a *app) printer() *output.Printer {
	return output.New(a.out, a.cfg.Output)
}

func (a *app) renderOptions() lecs.RenderOptions {
	return lecs.RenderOptions{
		ContextLines: a.cfg.Diagnostics.ContextLines,
		Color:        a.cfg.Diagnostics.Color,
	}
}

// readSource reads the file named by args, or stdin when args is empty or
// "-".
func (a *app) readSource(args []string) (*lecs.Source, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(a.in)
		if err != nil {
			return nil, &exitError{ExitError, fmt.Errorf("failed to read stdin: %w", err)}
		}
		return lecs.NewSource("<stdin>", string(content)), nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return nil, &exitError{ExitError, fmt.Errorf("failed to read source: %w", err)}
	}
	return lecs.NewSource(args[0], string(content)), nil
}

// report renders reader errors as diagnostics and returns the error to exit
// with.
func (a *app) report(err error, src *lecs.Source) error {
	diag, ok := lecs.Diagnose(err)
	if !ok {
		return &exitError{ExitError, err}
	}
	if renderErr := diag.Render(a.errOut, src, a.renderOptions()); renderErr != nil {
		return &exitError{ExitError, renderErr}
	}
	return &exitError{ExitInvalid, fmt.Errorf("%s: %w", src.Name, errInvalidSource)}
}

func addFormatFlag(cmd *cobra.Command, a *app) {
	cmd.Flags().StringVarP(&a.format, "format", "f", "", "output format: text, json or yaml")
}
