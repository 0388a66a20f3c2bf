package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/lecs"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <files...>",
		Short: "Reports reader errors in files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				ok, err := a.checkFile(path)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}

			a.logger.Info("checked files", "files", len(args), "failed", failed)

			if failed > 0 {
				return &exitError{ExitInvalid, fmt.Errorf("%d of %d files failed: %w", failed, len(args), errInvalidSource)}
			}
			return nil
		},
	}
}

// checkFile reads path and renders its diagnostic, if any. It returns false
// if the file could not be read as lecs source.
func (a *app) checkFile(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, &exitError{ExitError, fmt.Errorf("failed to read source: %w", err)}
	}

	src := lecs.NewSource(path, string(content))

	nodes, err := lecs.ReadString(src.Text)
	if err != nil {
		diag, ok := lecs.Diagnose(err)
		if !ok {
			return false, &exitError{ExitError, err}
		}
		if err := diag.Render(a.errOut, src, a.renderOptions()); err != nil {
			return false, err
		}
		return false, nil
	}

	a.logger.Debug("file ok", "file", path, "forms", len(nodes))
	return true, nil
}
