// Package search finds move sequences that solve a permutation puzzle.
//
// # Bounded Search
//
// [Bounded] is an exact-depth depth-first search. It tries every sequence of
// exactly d moves, in ascending move-index order, and tests for a solved
// state only once d moves have been applied:
//
//	root := search.Root(start)
//	node, ok := search.Bounded(root, set, 5)
//	if ok {
//	    fmt.Println(set.Format(node.Moves))
//	}
//
// The first match wins, so the result is the lexicographically smallest
// solving sequence of that length. There is no pruning, memoization or
// cycle detection: a set of m moves costs up to m^d compositions.
//
// # Iterative Deepening
//
// [Deepen] calls Bounded at depths 0, 1, ..., maxDepth-1 and returns the
// first result, which is therefore a shortest solution. The ceiling is
// exclusive: maxDepth itself is never searched, so Deepen with maxDepth 0
// never finds anything, not even for an already solved start.
//
// # Outcomes
//
// Neither function returns an error. "No solution within the bound" is an
// ordinary false result.
//
// # Resources
//
// The search is recursive and single-threaded. Only the nodes on the current
// path are live; siblings are discarded as soon as they fail, so memory is
// proportional to depth, not to the size of the tree.
package search
