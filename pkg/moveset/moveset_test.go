package moveset

import (
	"slices"
	"testing"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/perm"
)

func testBase() []Move {
	return []Move{
		{Name: "A", State: perm.FromCycles([]int{0, 1, 2, 3})},
		{Name: "B", State: perm.FromCycles([]int{4, 5, 6, 7})},
	}
}

func TestQuarter(t *testing.T) {
	set := Quarter(testBase()...)
	if got, want := set.Names(), []string{"A", "A'", "B", "B'"}; !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := 0; i < len(set); i += 2 {
		if !set[i].State.Compose(set[i+1].State).IsSolved() {
			t.Errorf("%s·%s should be solved", set[i].Name, set[i+1].Name)
		}
	}
}

func TestHalf(t *testing.T) {
	set := Half(testBase()...)
	if got, want := set.Names(), []string{"A", "A2", "A'", "B", "B2", "B'"}; !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	a := set[0].State
	if !set[1].State.Equal(a.Compose(a)) {
		t.Errorf("A2 = %v, want A·A", set[1].State)
	}
	// For a 4-cycle the third power is the inverse.
	if !set[2].State.Equal(a.Inverse()) {
		t.Errorf("A' = %v, want %v", set[2].State, a.Inverse())
	}
}

func TestIndexAndFormat(t *testing.T) {
	set := Quarter(testBase()...)

	if idx, ok := set.Index("B'"); !ok || idx != 3 {
		t.Errorf("Index(B') = %d, %v; want 3, true", idx, ok)
	}
	if _, ok := set.Index("C"); ok {
		t.Error("Index(C) should not be found")
	}

	got := set.Format([]int{0, 3, 7, -1})
	want := []string{"A", "B'", "?", "?"}
	if !slices.Equal(got, want) {
		t.Errorf("Format() = %v, want %v", got, want)
	}
}

func TestStates(t *testing.T) {
	set := Quarter(testBase()...)
	states := set.States()
	if len(states) != len(set) {
		t.Fatalf("States() len = %d, want %d", len(states), len(set))
	}
	for i := range set {
		if !states[i].Equal(set[i].State) {
			t.Errorf("States()[%d] differs from set[%d]", i, i)
		}
	}
}

func TestApply(t *testing.T) {
	set := Quarter(testBase()...)
	start := perm.Identity(8)

	s, err := set.Apply(start, "A", "B", "A'")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := perm.Product(start, set[0].State, set[2].State, set[1].State)
	if !s.Equal(want) {
		t.Errorf("Apply = %v, want %v", s, want)
	}

	s, err = set.Apply(start, "A", "A'")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !s.IsSolved() {
		t.Errorf("A A' should be solved, got %v", s)
	}

	_, err = set.Apply(start, "A", "Z")
	if !errors.Is(err, errors.ErrCodeUnknownMove) {
		t.Errorf("Apply unknown move error = %v, want %s", err, errors.ErrCodeUnknownMove)
	}
}

func TestParseScramble(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"R", []string{"R"}},
		{"R U R' U'", []string{"R", "U", "R'", "U'"}},
		{"  R2\tF'\n U ", []string{"R2", "F'", "U"}},
	}
	for _, tt := range tests {
		got := ParseScramble(tt.input)
		if len(got) != len(tt.want) || (len(got) > 0 && !slices.Equal(got, tt.want)) {
			t.Errorf("ParseScramble(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBijective(t *testing.T) {
	tests := []struct {
		name  string
		state perm.State
		want  bool
	}{
		{"empty", perm.Empty(), true},
		{"identity", perm.Identity(5), true},
		{"cycles", perm.FromCycles([]int{0, 1, 2}, []int{5, 6}), true},
		{"shared image", perm.FromMap(map[int]int{0: 1, 1: 1}), false},
		{"open chain", perm.FromMap(map[int]int{0: 1, 1: 2}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bijective(tt.state); got != tt.want {
				t.Errorf("Bijective(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestPuzzleMoveSet(t *testing.T) {
	p := Cube2x2()

	tests := []struct {
		metric string
		want   []string
	}{
		{MetricBase, []string{"R", "U", "F"}},
		{MetricQTM, []string{"R", "R'", "U", "U'", "F", "F'"}},
		{MetricHTM, []string{"R", "R2", "R'", "U", "U2", "U'", "F", "F2", "F'"}},
	}
	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			set, err := p.MoveSet(tt.metric)
			if err != nil {
				t.Fatalf("MoveSet(%s): %v", tt.metric, err)
			}
			if got := set.Names(); !slices.Equal(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := p.MoveSet("stm"); !errors.Is(err, errors.ErrCodeInvalidMetric) {
		t.Errorf("MoveSet(stm) error = %v, want %s", err, errors.ErrCodeInvalidMetric)
	}
}

func TestPuzzleMoveSetNameClash(t *testing.T) {
	p := &Puzzle{Name: "clash", Size: 4, Base: []Move{
		{Name: "R", State: perm.FromCycles([]int{0, 1})},
		{Name: "R2", State: perm.FromCycles([]int{2, 3})},
	}}

	// Base names are distinct, so the base metric is fine.
	if _, err := p.MoveSet(MetricBase); err != nil {
		t.Errorf("MoveSet(base): %v", err)
	}
	if _, err := p.MoveSet(MetricHTM); !errors.Is(err, errors.ErrCodeInvalidPuzzle) {
		t.Errorf("MoveSet(htm) error = %v, want %s", err, errors.ErrCodeInvalidPuzzle)
	}
}

func TestCube2x2MovesAreBijective(t *testing.T) {
	p := Cube2x2()
	if p.Size != 24 {
		t.Errorf("Size = %d, want 24", p.Size)
	}
	for _, m := range p.Base {
		if !Bijective(m.State) {
			t.Errorf("move %s is not bijective", m.Name)
		}
		if m.State.Len() != 12 {
			t.Errorf("move %s moves %d stickers, want 12", m.Name, m.State.Len())
		}
		// A face turn has order four.
		s := p.Solved()
		for range 4 {
			s = s.Compose(m.State)
		}
		if !s.IsSolved() {
			t.Errorf("%s^4 is not solved", m.Name)
		}
	}
}

func TestPuzzleScramble(t *testing.T) {
	p := Cube2x2()
	set, err := p.MoveSet(MetricHTM)
	if err != nil {
		t.Fatal(err)
	}

	s, err := p.Scramble(set, "R", "U2", "F'")
	if err != nil {
		t.Fatalf("Scramble: %v", err)
	}
	if s.IsSolved() {
		t.Error("scrambled state should not be solved")
	}
	if s.Len() != p.Size {
		t.Errorf("scrambled state stores %d positions, want %d", s.Len(), p.Size)
	}

	back, err := set.Apply(s, "F", "U2", "R'")
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsSolved() {
		t.Errorf("undoing the scramble should solve, got %v", back)
	}
}

func TestBuiltin(t *testing.T) {
	p, err := Builtin("2X2X2")
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if p.Name != Cube2x2Name {
		t.Errorf("Name = %q, want %q", p.Name, Cube2x2Name)
	}

	if _, err := Builtin("megaminx"); !errors.Is(err, errors.ErrCodeUnknownPuzzle) {
		t.Errorf("Builtin(megaminx) error = %v, want %s", err, errors.ErrCodeUnknownPuzzle)
	}

	if got := BuiltinNames(); !slices.Contains(got, Cube2x2Name) {
		t.Errorf("BuiltinNames() = %v, missing %q", got, Cube2x2Name)
	}
}
