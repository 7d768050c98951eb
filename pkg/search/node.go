package search

import (
	"slices"

	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/perm"
)

// Node is a state together with the move indices applied, in order, to
// reach it from the search root.
type Node struct {
	State perm.State
	Moves []int
}

// Root returns a node for start with no moves taken.
func Root(start perm.State) Node {
	return Node{State: start, Moves: []int{}}
}

// Depth returns the number of moves taken.
func (n Node) Depth() int {
	return len(n.Moves)
}

// Extend returns the child reached by applying set[i]. The receiver is not
// modified; the child gets its own copy of the move list.
func (n Node) Extend(i int, set moveset.Set) Node {
	moves := slices.Grow(slices.Clone(n.Moves), 1)
	return Node{
		State: n.State.Compose(set[i].State),
		Moves: append(moves, i),
	}
}
