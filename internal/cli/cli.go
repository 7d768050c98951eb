// Package cli implements the permsolve command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permsolve/pkg/buildinfo"
	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/solver"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "permsolve"

	// maxTreeNodes caps the size of search trees the tree command renders.
	maxTreeNodes = 5000
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Permsolve finds shortest move sequences for permutation puzzles",
		Long: `Permsolve solves permutation puzzles such as the 2x2x2 cube by exhaustive
iterative-deepening search over a move set.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.movesCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a solver runner for CLI use.
func (c *CLI) newRunner() *solver.Runner {
	return solver.NewRunner(c.Logger)
}

// =============================================================================
// Shared Flags
// =============================================================================

// puzzleFlags are the flags selecting a puzzle and move set.
type puzzleFlags struct {
	puzzle string
	file   string
	metric string
}

func (f *puzzleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.puzzle, "puzzle", "p", "", "built-in puzzle (default "+solver.DefaultPuzzle+")")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "puzzle definition file (.toml, .yaml, .json)")
	cmd.Flags().StringVarP(&f.metric, "metric", "m", solver.DefaultMetric, "move metric: base, qtm, htm")
	registerPuzzleCompletions(cmd, moveset.BuiltinNames(), []string{moveset.MetricBase, moveset.MetricQTM, moveset.MetricHTM})
}

// options returns solver options for the selected puzzle.
func (f *puzzleFlags) options() solver.Options {
	return solver.Options{
		Puzzle:     f.puzzle,
		PuzzleFile: f.file,
		Metric:     f.metric,
	}
}
