// Package perm provides the sparse permutation state used to model
// piece-permutation puzzles.
//
// # Overview
//
// A [State] maps positions to the pieces that occupy them. The mapping is
// sparse: positions that are not stored are treated as fixed by [State.At]
// and [State.Equal], but stored entries that map a position to itself are
// perfectly legal and are produced routinely by composition. Nothing in this
// package removes them.
//
//   - [Empty]: a state with no stored entries
//   - [Identity]: a dense state mapping 0..n-1 to themselves
//   - [FromMap], [FromPairs], [FromCycles]: literal move data
//
// # Composition
//
// [State.Compose] reads "apply s, then rhs". It only iterates the receiver's
// domain:
//
//	r := s.Compose(rhs)
//	// for every stored (i, j) in s: r(i) = rhs(j) if rhs stores j, else j
//	// positions not stored in s are not stored in r
//
// This is not full permutation composition unless the receiver's domain
// already covers every position the right-hand side moves. Puzzle states are
// normally built from [Identity] so their domain covers the whole puzzle.
//
// # Solved States
//
// [State.IsSolved] checks stored entries only. Because composition never
// prunes entries, a state is solved exactly when none of its stored entries
// moves a piece.
//
// # Malformed Input
//
// Every stored mapping is assumed to extend to a bijection. Nothing checks
// this. A malformed state composes and inverts without complaint and simply
// yields meaningless results; [State.Inverse] resolves clashes by letting the
// larger position win.
package perm
