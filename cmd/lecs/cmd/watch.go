package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiam/lecs/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dirs|files...>",
		Short: "Checks files again whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, args)
		},
	}
}

func (a *app) watch(ctx context.Context, paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return &exitError{ExitError, err}
		}
		if info.IsDir() {
			continue
		}
		if _, err := a.checkFile(path); err != nil {
			return err
		}
	}

	w := watch.New(watch.Options{
		Extensions: a.cfg.Watch.Extensions,
		Debounce:   a.cfg.Watch.Debounce.Duration,
		Logger:     a.logger,
		OnChange: func(path string) {
			a.logger.Info("file changed", "file", path)

			ok, err := a.checkFile(path)
			if err != nil {
				a.logger.Error("check failed", "file", path, "error", err)
				return
			}
			if ok {
				fmt.Fprintf(a.out, "ok %s\n", path)
			}
		},
	})

	if err := w.Start(ctx, paths...); err != nil {
		return &exitError{ExitError, err}
	}

	<-w.Done()
	return nil
}
