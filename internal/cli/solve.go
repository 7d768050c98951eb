package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/observability"
	"github.com/matzehuels/permsolve/pkg/solver"
)

// Output formats for the solve command.
const (
	outputText = "text"
	outputJSON = "json"
)

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	puzzleFlags
	scramble    string
	maxDepth    int
	depth       int
	format      string
	metricsFile string
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [moves...]",
		Short: "Find a shortest move sequence that solves a scramble",
		Long: `Solve applies a scramble to the solved puzzle and searches for the
shortest move sequence that restores it.

Iterative deepening searches depths 0 through max-depth-1; max-depth itself
is never searched. With --depth, a single search finds only solutions of
exactly that many moves.`,
		Example: `  # Solve a 2x2x2 scramble in the half-turn metric
  permsolve solve R U F

  # Quarter-turn metric, scramble as one argument
  permsolve solve --metric qtm --scramble "R U' F"

  # Custom puzzle, JSON output
  permsolve solve -f puzzle.toml --format json X Y

  # Only try sequences of exactly 7 moves
  permsolve solve --depth 7 R U F R U F R`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, opts, args)
		},
	}

	opts.puzzleFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.scramble, "scramble", "s", "", "scramble as space-separated moves (added before positional moves)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", solver.DefaultMaxDepth, "exclusive iterative-deepening ceiling")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "search exactly this many moves instead of deepening")
	cmd.Flags().StringVar(&opts.format, "format", outputText, "output format: text, json")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, opts solveOpts, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.format != outputText && opts.format != outputJSON {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", opts.format)
	}
	if opts.maxDepth < 1 {
		return errors.New(errors.ErrCodeInvalidDepth, "max-depth must be at least 1 (the ceiling is exclusive)")
	}

	sopts := opts.options()
	sopts.Scramble = parseScrambleArgs(opts.scramble, args)
	sopts.MaxDepth = opts.maxDepth
	sopts.Depth = opts.depth
	sopts.Logger = logger
	if err := sopts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var hooks []observability.SearchHooks
	var prom *observability.PromHooks
	if opts.metricsFile != "" {
		if err := errors.ValidatePath(opts.metricsFile); err != nil {
			return err
		}
		prom = observability.NewPromHooks()
		hooks = append(hooks, prom)
	}

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Searching up to %d moves...", sopts.MaxDepth-1))
	defer spinner.Stop()
	if opts.format == outputText && !sopts.Exact() && stderrIsTerminal() {
		hooks = append(hooks, spinnerHooks{spinner: spinner, maxDepth: sopts.MaxDepth})
		spinner.Start()
	}

	observability.SetSearchHooks(observability.Multi(hooks...))
	defer observability.Reset()

	res, err := c.newRunner().Solve(ctx, sopts)
	spinner.Stop()
	if err != nil {
		return err
	}

	if prom != nil {
		if err := prom.WriteTextfile(opts.metricsFile); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write metrics")
		}
		logger.Debug("wrote metrics", "path", opts.metricsFile)
	}

	if opts.format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	printResult(res, sopts)
	return nil
}

// parseScrambleArgs joins the --scramble flag and positional arguments into
// one move list. Each argument may hold several space-separated moves.
func parseScrambleArgs(flag string, args []string) []string {
	moves := moveset.ParseScramble(flag)
	for _, arg := range args {
		moves = append(moves, moveset.ParseScramble(arg)...)
	}
	return moves
}

func printResult(res *solver.Result, opts solver.Options) {
	if len(res.Scramble) > 0 {
		printInfo("Scramble %s", renderMoves(res.Scramble))
	}
	if !res.Found {
		printWarning("No solution found.")
		if opts.Exact() {
			printDetail("no sequence of exactly %d moves solves the scramble", opts.Depth)
			return
		}
		printDetail("searched depths 0-%d in %s", opts.MaxDepth-1, res.Elapsed.Round(time.Microsecond))
		if opts.MaxDepth < errors.MaxSearchDepth {
			printNextStep("Search deeper", fmt.Sprintf("%s solve --metric %s --max-depth %d %s", appName, res.Metric, opts.MaxDepth+1, strings.Join(res.Scramble, " ")))
		}
		return
	}

	switch len(res.Moves) {
	case 0:
		printSuccess("Already solved")
	case 1:
		printSuccess("Solved %s in 1 move", res.Puzzle)
	default:
		printSuccess("Solved %s in %d moves", res.Puzzle, len(res.Moves))
	}
	if len(res.Moves) > 0 {
		printKeyValue("Solution", renderMoves(res.Names))
		printKeyValue("Indices", fmt.Sprint(res.Moves))
	}
	printKeyValue("Metric", res.Metric)
	printKeyValue("Elapsed", res.Elapsed.String())
	printDetail("run %s", res.RunID)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
