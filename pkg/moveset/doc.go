// Package moveset defines named generators for the search: move sets, their
// quarter-turn and half-turn expansions, puzzle definitions and the files
// they are loaded from.
//
// # Move Sets
//
// A [Set] is an ordered list of [Move] values. Search results are indices
// into the set, so the same set must be used to interpret them:
//
//	p := moveset.Cube2x2()
//	set, _ := p.MoveSet(moveset.MetricHTM) // R R2 R' U U2 U' F F2 F'
//	start, _ := p.Scramble(set, moveset.ParseScramble("R U2 F'")...)
//
// # Puzzle Files
//
// [Load] reads TOML, YAML or JSON definitions. Each move is given either as
// disjoint cycles or as explicit [position, piece] pairs:
//
//	name = "pocket"
//	size = 24
//
//	[[moves]]
//	name = "U"
//	cycles = [[0, 1, 3, 2], [7, 5, 11, 9], [6, 4, 10, 8]]
//
// Loading only checks structure (names, ranges, duplicates). Whether a move
// is actually a permutation is reported by [Bijective] on request and is
// otherwise the author's responsibility.
package moveset
