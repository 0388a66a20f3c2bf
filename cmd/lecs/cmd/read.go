package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xiam/lecs"
	"github.com/xiam/lecs/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Prints the tokens of a source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(src.Text)
			if err != nil {
				return a.report(err, src)
			}

			return a.printer().Tokens(tokens)
		},
	}
	addFormatFlag(cmd, a)
	return cmd
}

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Prints the parse tree of a source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args)
			if err != nil {
				return err
			}

			nodes, err := lecs.ReadString(src.Text)
			if err != nil {
				return a.report(err, src)
			}

			return a.printer().Tree(nodes)
		},
	}
	addFormatFlag(cmd, a)
	return cmd
}

func newFmtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Prints the canonical form of a source, without comments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args)
			if err != nil {
				return err
			}

			nodes, err := lecs.ReadString(src.Text)
			if err != nil {
				return a.report(err, src)
			}

			return a.printer().Canonical(nodes)
		},
	}
}
