// Package pkg provides the core libraries for permsolve.
//
// # Overview
//
// Permsolve finds shortest move sequences for permutation puzzles. A puzzle
// state records which piece sits at each position; a move is itself a state,
// and applying a move composes the two. The pkg directory is organized into:
//
//  1. [perm] - Sparse permutation states and their algebra
//  2. [moveset] - Named moves, metrics, puzzle definitions and puzzle files
//  3. [search] - Exact-depth search and iterative deepening
//  4. [solver] - Orchestration (puzzle → move set → scramble → search)
//  5. [observability] - Search hooks and Prometheus metrics
//
// # Architecture
//
// The typical data flow through permsolve:
//
//	Built-in puzzle / puzzle file
//	         ↓
//	    [moveset] package (base moves → metric move set)
//	         ↓
//	    scramble applied to the solved state
//	         ↓
//	    [search] package (Deepen / Bounded)
//	         ↓
//	    move indices → move names
//
// # Quick Start
//
//	p := moveset.Cube2x2()
//	set, _ := p.MoveSet(moveset.MetricQTM)
//	start, _ := p.Scramble(set, "R", "U", "F")
//	if moves, ok := search.Deepen(start, set, 8); ok {
//	    fmt.Println(set.Format(moves))
//	}
//
// [perm]: github.com/matzehuels/permsolve/pkg/perm
// [moveset]: github.com/matzehuels/permsolve/pkg/moveset
// [search]: github.com/matzehuels/permsolve/pkg/search
// [solver]: github.com/matzehuels/permsolve/pkg/solver
// [observability]: github.com/matzehuels/permsolve/pkg/observability
package pkg
