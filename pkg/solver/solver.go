// Package solver runs puzzle solves from user-facing options.
//
// It sits between the CLI and the search packages: it resolves the puzzle
// definition, expands the move set for the requested metric, applies the
// scramble and runs the search, while logging progress and emitting
// observability hooks. The search packages themselves stay pure.
//
// # Usage
//
//	runner := solver.NewRunner(logger)
//	res, err := runner.Solve(ctx, solver.Options{
//	    Puzzle:   "2x2x2",
//	    Metric:   "qtm",
//	    Scramble: []string{"R", "U", "F"},
//	})
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Println(strings.Join(res.Names, " "))
//	}
//
// # Modes
//
// With Depth unset, Solve runs iterative deepening over depths
// [0, MaxDepth) and returns a shortest solution. With Depth > 0 it runs a
// single exact-depth search, which finds only solutions of exactly that
// many moves.
package solver

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/perm"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMaxDepth is the exclusive iterative-deepening ceiling. Depths
	// 0 through 7 are searched, which covers every scramble of up to seven
	// moves.
	DefaultMaxDepth = 8

	// DefaultMetric is the default move metric.
	DefaultMetric = moveset.MetricHTM

	// DefaultPuzzle is the built-in puzzle used when none is given.
	DefaultPuzzle = moveset.Cube2x2Name
)

// =============================================================================
// Options - Solve Configuration
// =============================================================================

// Options contains all configuration for a solve.
type Options struct {
	// Puzzle names a built-in puzzle. Mutually exclusive with PuzzleFile.
	Puzzle string `json:"puzzle,omitempty"`

	// PuzzleFile is the path of a TOML, YAML or JSON puzzle definition.
	PuzzleFile string `json:"puzzle_file,omitempty"`

	Metric   string   `json:"metric,omitempty"`
	Scramble []string `json:"scramble,omitempty"`

	// MaxDepth is the exclusive ceiling for iterative deepening.
	MaxDepth int `json:"max_depth,omitempty"`

	// Depth selects a single exact-depth search when positive.
	Depth int `json:"depth,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	switch {
	case o.Puzzle != "" && o.PuzzleFile != "":
		return errors.New(errors.ErrCodeInvalidInput, "puzzle and puzzle file are mutually exclusive")
	case o.PuzzleFile != "":
		if err := errors.ValidatePath(o.PuzzleFile); err != nil {
			return err
		}
	case o.Puzzle == "":
		o.Puzzle = DefaultPuzzle
	default:
		if err := errors.ValidatePuzzleName(o.Puzzle); err != nil {
			return err
		}
	}

	if o.Metric == "" {
		o.Metric = DefaultMetric
	}
	if err := ValidateMetric(o.Metric); err != nil {
		return err
	}

	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if err := errors.ValidateDepth(o.MaxDepth); err != nil {
		return err
	}
	if err := errors.ValidateDepth(o.Depth); err != nil {
		return err
	}

	for _, name := range o.Scramble {
		if err := errors.ValidateMoveName(name); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Exact reports whether the options select a single exact-depth search.
func (o *Options) Exact() bool {
	return o.Depth > 0
}

// ValidateMetric checks that a metric is valid.
func ValidateMetric(metric string) error {
	if !moveset.ValidMetrics[metric] {
		return errors.New(errors.ErrCodeInvalidMetric, "invalid metric: %q (must be one of: base, qtm, htm)", metric)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outcome of a solve.
type Result struct {
	// RunID identifies the solve in logs.
	RunID string `json:"run_id"`

	Puzzle   string   `json:"puzzle"`
	Metric   string   `json:"metric"`
	Scramble []string `json:"scramble"`

	// Start is the scrambled state the search began from.
	Start perm.State `json:"-"`

	// Moves are the solution's move indices into the expanded move set,
	// and Names the corresponding move names. Both are empty, not nil,
	// when the start is already solved, and nil when nothing was found.
	Moves []int    `json:"moves"`
	Names []string `json:"names"`
	Found bool     `json:"found"`

	// Depth is the solution length, or the deepest depth searched when
	// nothing was found (-1 if no depth was searched).
	Depth int `json:"depth"`

	// Attempts is the number of exact-depth searches run.
	Attempts int `json:"attempts"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// Solution returns the solution as space-separated move names.
func (r *Result) Solution() string {
	return strings.Join(r.Names, " ")
}
