package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permsolve/internal/cli"
	"github.com/matzehuels/permsolve/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every depth searched")

	// The level must be set before the root's own pre-run attaches the logger.
	attachLogger := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return attachLogger(cmd, args)
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// exitCode maps err to a process exit status: 130 for an interrupt, 2 for
// invalid input, 1 otherwise.
func exitCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPuzzle, errors.ErrCodeInvalidMove,
		errors.ErrCodeInvalidMetric, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidDepth,
		errors.ErrCodeInvalidPath, errors.ErrCodeUnknownMove, errors.ErrCodeUnknownPuzzle,
		errors.ErrCodeFileNotFound:
		return 2
	}
	if stderrors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}
	return 1
}
