package search

import (
	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/perm"
)

// TraceFunc is called by DeepenTrace after each depth is searched.
// Returning false stops the search before the next depth.
type TraceFunc func(depth int, found bool) bool

// Bounded searches every move sequence of exactly depth moves below start
// and returns the first node whose state is solved.
//
// Sequences are tried depth-first in ascending move-index order, so the
// result is the lexicographically smallest solving sequence of that length.
// Solved states above the target depth are expanded like any other. The
// returned node's moves include the moves already taken by start.
//
// A negative depth never matches.
func Bounded(start Node, set moveset.Set, depth int) (Node, bool) {
	if depth < 0 {
		return Node{}, false
	}
	return dfs(start, set, 0, depth)
}

func dfs(n Node, set moveset.Set, level, target int) (Node, bool) {
	if level == target {
		if n.State.IsSolved() {
			return n, true
		}
		return Node{}, false
	}
	for i := range set {
		if found, ok := dfs(n.Extend(i, set), set, level+1, target); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Deepen runs Bounded at depths 0, 1, ..., maxDepth-1 and returns the move
// indices of the first solution found.
//
// maxDepth itself is never searched: Deepen(start, set, 0) reports no
// solution even for a solved start, and a solution of length n needs
// maxDepth > n.
func Deepen(start perm.State, set moveset.Set, maxDepth int) ([]int, bool) {
	return DeepenTrace(start, set, maxDepth, nil)
}

// DeepenTrace is Deepen with a callback invoked after every depth.
// A nil trace is ignored. When trace returns false on a depth without a
// solution, DeepenTrace reports no solution without searching further.
func DeepenTrace(start perm.State, set moveset.Set, maxDepth int, trace TraceFunc) ([]int, bool) {
	root := Root(start)
	for depth := range maxDepth {
		n, ok := Bounded(root, set, depth)
		keepGoing := trace == nil || trace(depth, ok)
		if ok {
			return n.Moves, true
		}
		if !keepGoing {
			break
		}
	}
	return nil, false
}

// Leaves returns the number of sequences Bounded examines at depth for a
// set of size m, saturating at the largest int.
func Leaves(m, depth int) int {
	const maxInt = int(^uint(0) >> 1)
	total := 1
	for range depth {
		if m != 0 && total > maxInt/m {
			return maxInt
		}
		total *= m
	}
	return total
}
