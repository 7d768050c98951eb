package moveset

import (
	"slices"
	"strings"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/perm"
)

// Move metrics.
const (
	MetricBase = "base" // base moves only
	MetricQTM  = "qtm"  // quarter turns: m, m'
	MetricHTM  = "htm"  // half turns: m, m2, m'
)

// ValidMetrics is the set of supported metrics.
var ValidMetrics = map[string]bool{
	MetricBase: true,
	MetricQTM:  true,
	MetricHTM:  true,
}

// Puzzle is a puzzle definition: a position count and its base moves.
type Puzzle struct {
	Name string
	Size int
	Base []Move
}

// Solved returns the solved state: the identity over every position.
func (p *Puzzle) Solved() perm.State {
	return perm.Identity(p.Size)
}

// MoveSet expands the base moves under metric. Expanded names must be
// unique, so a base move named like another's derived move is an error.
func (p *Puzzle) MoveSet(metric string) (Set, error) {
	var set Set
	switch metric {
	case MetricBase:
		set = slices.Clone(Set(p.Base))
	case MetricQTM:
		set = Quarter(p.Base...)
	case MetricHTM:
		set = Half(p.Base...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidMetric, "invalid metric: %q (must be one of: base, qtm, htm)", metric)
	}

	seen := make(map[string]bool, len(set))
	for _, m := range set {
		if seen[m.Name] {
			return nil, errors.New(errors.ErrCodeInvalidPuzzle, "puzzle %q: move %q is defined twice under %s", p.Name, m.Name, metric)
		}
		seen[m.Name] = true
	}
	return set, nil
}

// Scramble returns the solved state with the named moves of set applied.
func (p *Puzzle) Scramble(set Set, names ...string) (perm.State, error) {
	return set.Apply(p.Solved(), names...)
}

// Builtin puzzle names.
const (
	Cube2x2Name = "2x2x2"
)

var builtins = map[string]func() *Puzzle{
	Cube2x2Name: Cube2x2,
}

// Builtin returns the built-in puzzle called name.
func Builtin(name string) (*Puzzle, error) {
	fn, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownPuzzle, "unknown puzzle %q (built-in: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return fn(), nil
}

// BuiltinNames returns the built-in puzzle names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Cube2x2 returns the 2x2x2 cube over its 24 stickers with R, U and F
// quarter turns as base moves.
func Cube2x2() *Puzzle {
	return &Puzzle{
		Name: Cube2x2Name,
		Size: 24,
		Base: []Move{
			{Name: "R", State: perm.FromCycles(
				[]int{15, 3, 10, 23},
				[]int{7, 1, 18, 21},
				[]int{8, 9, 17, 16},
			)},
			{Name: "U", State: perm.FromCycles(
				[]int{0, 1, 3, 2},
				[]int{7, 5, 11, 9},
				[]int{6, 4, 10, 8},
			)},
			{Name: "F", State: perm.FromCycles(
				[]int{6, 7, 15, 14},
				[]int{2, 8, 21, 13},
				[]int{3, 16, 20, 5},
			)},
		},
	}
}
