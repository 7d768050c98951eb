package solver

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/observability"
	"github.com/matzehuels/permsolve/pkg/perm"
	"github.com/matzehuels/permsolve/pkg/search"
)

// Runner executes solves.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Setup holds a resolved puzzle, its expanded move set and the scrambled
// start state.
type Setup struct {
	Puzzle *moveset.Puzzle
	Set    moveset.Set
	Start  perm.State
}

// Prepare resolves the puzzle, expands the move set and applies the
// scramble without searching.
func (r *Runner) Prepare(opts Options) (*Setup, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	p, err := LoadPuzzle(opts)
	if err != nil {
		return nil, err
	}
	set, err := p.MoveSet(opts.Metric)
	if err != nil {
		return nil, err
	}
	start, err := p.Scramble(set, opts.Scramble...)
	if err != nil {
		return nil, err
	}
	return &Setup{Puzzle: p, Set: set, Start: start}, nil
}

// LoadPuzzle returns the puzzle selected by opts: the file when PuzzleFile
// is set, the named built-in otherwise.
func LoadPuzzle(opts Options) (*moveset.Puzzle, error) {
	if opts.PuzzleFile != "" {
		return moveset.Load(opts.PuzzleFile)
	}
	name := opts.Puzzle
	if name == "" {
		name = DefaultPuzzle
	}
	return moveset.Builtin(name)
}

// Solve runs a solve.
//
// A single depth cannot be interrupted. When ctx is cancelled Solve
// returns ctx's error immediately; the search stops once the depth in
// progress finishes, and reports nothing further.
func (r *Runner) Solve(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	setup, err := r.Prepare(opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8], "puzzle", setup.Puzzle.Name)
	hooks := observability.Search()

	res := &Result{
		RunID:    runID,
		Puzzle:   setup.Puzzle.Name,
		Metric:   opts.Metric,
		Scramble: opts.Scramble,
		Start:    setup.Start,
		Depth:    -1,
	}

	logger.Debug("starting solve",
		"metric", opts.Metric,
		"moves", len(setup.Set),
		"scramble", opts.Scramble,
		"start", setup.Start)
	hooks.OnSolveStart(ctx, res.Puzzle, res.Metric, opts.MaxDepth)

	type outcome struct {
		moves    []int
		found    bool
		depth    int
		attempts int
	}
	done := make(chan outcome, 1)
	begin := time.Now()

	go func() {
		if opts.Exact() {
			depthStart := time.Now()
			n, ok := search.Bounded(search.Root(setup.Start), setup.Set, opts.Depth)
			if !r.traceDepth(ctx, logger, res.Puzzle, opts.Depth, ok, len(setup.Set), time.Since(depthStart)) {
				return
			}
			done <- outcome{moves: n.Moves, found: ok, depth: opts.Depth, attempts: 1}
			return
		}

		var out outcome
		out.depth = -1
		depthStart := time.Now()
		out.moves, out.found = search.DeepenTrace(setup.Start, setup.Set, opts.MaxDepth, func(depth int, found bool) bool {
			if !r.traceDepth(ctx, logger, res.Puzzle, depth, found, len(setup.Set), time.Since(depthStart)) {
				return false
			}
			out.depth = depth
			out.attempts++
			depthStart = time.Now()
			return ctx.Err() == nil
		})
		if ctx.Err() != nil {
			return
		}
		done <- out
	}()

	select {
	case <-ctx.Done():
		logger.Warn("solve cancelled", "elapsed", time.Since(begin))
		return nil, ctx.Err()
	case out := <-done:
		res.Elapsed = time.Since(begin)
		res.Found = out.found
		res.Depth = out.depth
		res.Attempts = out.attempts
		if out.found {
			res.Moves = out.moves
			res.Names = setup.Set.Format(out.moves)
		}
	}

	length := -1
	if res.Found {
		length = len(res.Moves)
		logger.Info("solution found",
			"moves", res.Solution(),
			"length", length,
			"elapsed", res.Elapsed)
	} else {
		logger.Info("no solution found",
			"searched", res.Attempts,
			"elapsed", res.Elapsed)
	}
	hooks.OnSolveComplete(ctx, res.Puzzle, res.Found, length, res.Elapsed)

	return res, nil
}

// traceDepth reports a finished depth. It reports nothing and returns false
// once ctx is done.
func (r *Runner) traceDepth(ctx context.Context, logger *log.Logger, puzzle string, depth int, found bool, setSize int, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	logger.Debug("searched depth",
		"depth", depth,
		"sequences", search.Leaves(setSize, depth),
		"found", found,
		"duration", d)
	observability.Search().OnDepthComplete(ctx, puzzle, depth, found, d)
	return true
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
