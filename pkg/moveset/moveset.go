package moveset

import (
	"strings"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/perm"
)

// Move is a named generator.
type Move struct {
	Name  string
	State perm.State
}

// Set is an ordered move set. Search results are indices into a Set, so the
// order is part of its meaning.
type Set []Move

// Names returns the move names in order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, m := range s {
		names[i] = m.Name
	}
	return names
}

// States returns the move states in order.
func (s Set) States() []perm.State {
	states := make([]perm.State, len(s))
	for i, m := range s {
		states[i] = m.State
	}
	return states
}

// Index returns the index of the first move called name.
func (s Set) Index(name string) (int, bool) {
	for i, m := range s {
		if m.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Format maps move indices to names. Indices outside the set render as "?".
func (s Set) Format(indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(s) {
			out[i] = "?"
			continue
		}
		out[i] = s[idx].Name
	}
	return out
}

// Apply composes start with the named moves from left to right.
func (s Set) Apply(start perm.State, names ...string) (perm.State, error) {
	out := start
	for _, name := range names {
		idx, ok := s.Index(name)
		if !ok {
			return perm.State{}, errors.New(errors.ErrCodeUnknownMove, "unknown move %q (have: %s)", name, strings.Join(s.Names(), " "))
		}
		out = out.Compose(s[idx].State)
	}
	return out, nil
}

// Quarter expands base moves into the quarter-turn metric: each move
// followed by its inverse, named with a trailing prime.
func Quarter(base ...Move) Set {
	set := make(Set, 0, 2*len(base))
	for _, m := range base {
		set = append(set,
			m,
			Move{Name: m.Name + "'", State: m.State.Inverse()},
		)
	}
	return set
}

// Half expands base moves into the half-turn metric: m, m·m and m·m·m.
// The third power is named with a prime; it is the inverse for the
// order-four face turns these sets are normally built from.
func Half(base ...Move) Set {
	set := make(Set, 0, 3*len(base))
	for _, m := range base {
		twice := m.State.Compose(m.State)
		set = append(set,
			m,
			Move{Name: m.Name + "2", State: twice},
			Move{Name: m.Name + "'", State: twice.Compose(m.State)},
		)
	}
	return set
}

// ParseScramble splits a scramble such as "R U R' U2" into move names.
func ParseScramble(s string) []string {
	return strings.Fields(s)
}

// Bijective reports whether a state permutes its own stored positions:
// every image is stored and no two positions share an image.
//
// The search never calls this. Malformed moves are accepted everywhere
// else and silently produce wrong answers.
func Bijective(s perm.State) bool {
	seen := make(map[int]bool, s.Len())
	for _, pos := range s.Positions() {
		piece, _ := s.Lookup(pos)
		if seen[piece] {
			return false
		}
		if _, ok := s.Lookup(piece); !ok {
			return false
		}
		seen[piece] = true
	}
	return true
}
