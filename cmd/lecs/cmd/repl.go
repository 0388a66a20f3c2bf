package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xiam/lecs/internal/repl"
)

func newReplCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Reads forms interactively and prints their parse tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Run(a.printer(), a.renderOptions())
		},
	}
	addFormatFlag(cmd, a)
	return cmd
}
