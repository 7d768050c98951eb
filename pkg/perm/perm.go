package perm

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// State is a sparse mapping from position to piece.
//
// The zero value is an empty state. States are immutable in intent: every
// method returns a new State and leaves its operands untouched.
type State struct {
	m map[int]int
}

// Empty returns a state with no stored entries.
//
// Composing an empty state with anything yields another empty state, so it
// is only useful as a starting point for construction, not as a general
// identity element.
func Empty() State {
	return State{m: map[int]int{}}
}

// Identity returns a dense state mapping every position in [0, n) to itself.
func Identity(n int) State {
	s := State{m: make(map[int]int, max(n, 0))}
	for _, i := range Seq(n) {
		s.m[i] = i
	}
	return s
}

// FromMap returns a state storing a copy of m.
func FromMap(m map[int]int) State {
	return State{m: maps.Clone(m)}
}

// FromPairs returns a state storing each [position, piece] pair in order.
// Later pairs overwrite earlier pairs for the same position.
func FromPairs(pairs [][2]int) State {
	s := State{m: make(map[int]int, len(pairs))}
	for _, p := range pairs {
		s.m[p[0]] = p[1]
	}
	return s
}

// FromCycles returns a state where each cycle [a, b, c] stores a→b, b→c,
// c→a. Cycles are expected to be pairwise disjoint.
func FromCycles(cycles ...[]int) State {
	s := State{m: map[int]int{}}
	for _, c := range cycles {
		for i, pos := range c {
			s.m[pos] = c[(i+1)%len(c)]
		}
	}
	return s
}

// Len returns the number of stored entries.
func (s State) Len() int {
	return len(s.m)
}

// Lookup returns the piece stored for pos and whether an entry exists.
func (s State) Lookup(pos int) (int, bool) {
	piece, ok := s.m[pos]
	return piece, ok
}

// At returns the piece at pos, treating unstored positions as fixed.
func (s State) At(pos int) int {
	if piece, ok := s.m[pos]; ok {
		return piece
	}
	return pos
}

// Positions returns the stored positions in ascending order.
func (s State) Positions() []int {
	return slices.Sorted(maps.Keys(s.m))
}

// Map returns a copy of the stored entries.
func (s State) Map() map[int]int {
	return maps.Clone(s.m)
}

// IsSolved reports whether every stored entry maps a position to itself.
func (s State) IsSolved() bool {
	for pos, piece := range s.m {
		if pos != piece {
			return false
		}
	}
	return true
}

// Inverse swaps every stored (position, piece) entry to (piece, position).
//
// Entries are visited in ascending position order, so for a state that is
// not a bijection the larger clashing position wins.
func (s State) Inverse() State {
	inv := State{m: make(map[int]int, len(s.m))}
	for _, pos := range s.Positions() {
		inv.m[s.m[pos]] = pos
	}
	return inv
}

// Compose returns the state reached by applying s and then rhs.
//
// Only positions stored in s are stored in the result, even when rhs stores
// positions that s does not.
func (s State) Compose(rhs State) State {
	out := State{m: make(map[int]int, len(s.m))}
	for pos, piece := range s.m {
		if next, ok := rhs.m[piece]; ok {
			out.m[pos] = next
		} else {
			out.m[pos] = piece
		}
	}
	return out
}

// Product composes states left to right: Product(a, b, c) is
// a.Compose(b).Compose(c). Product() is an empty state.
func Product(states ...State) State {
	if len(states) == 0 {
		return Empty()
	}
	out := states[0]
	for _, s := range states[1:] {
		out = out.Compose(s)
	}
	return out
}

// Equal reports whether s and other agree on every position stored in
// either of them, treating unstored positions as fixed.
func (s State) Equal(other State) bool {
	for pos := range s.m {
		if s.At(pos) != other.At(pos) {
			return false
		}
	}
	for pos := range other.m {
		if s.At(pos) != other.At(pos) {
			return false
		}
	}
	return true
}

// String formats the stored entries in ascending position order,
// e.g. "{0→1 1→3 2→0 3→2}".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, pos := range s.Positions() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d→%d", pos, s.m[pos])
	}
	b.WriteByte('}')
	return b.String()
}
