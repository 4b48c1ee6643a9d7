// Command ganr-demo runs a guarded main loop under an ANR tracker
// and injects periodic hangs, to show the tracker's behavior end to end.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := NewRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Info("Failure", "err", err)
		os.Stderr.Sync()
		return err
	}

	return nil
}

func NewRootCmd(log *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "ganr-demo SUBCOMMAND",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},

		Long: `ganr-demo exercises the ganr application-not-responding tracker.

The run subcommand starts a main loop, guards it with a tracker,
and periodically blocks the loop so that hangs are detected and resolved.
`,

		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRunCmd(log),
	)

	return rootCmd
}
