package perm

import (
	"slices"
	"testing"
)

func TestSeq(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{-1, []int{}},
		{0, []int{}},
		{1, []int{0}},
		{4, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		if got := Seq(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("Seq(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestIdentityIsSolved(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 24, 100} {
		s := Identity(n)
		if s.Len() != n {
			t.Errorf("Identity(%d).Len() = %d", n, s.Len())
		}
		if !s.IsSolved() {
			t.Errorf("Identity(%d).IsSolved() = false", n)
		}
	}
}

func TestEmpty(t *testing.T) {
	e := Empty()
	if e.Len() != 0 {
		t.Errorf("Empty().Len() = %d, want 0", e.Len())
	}
	if !e.IsSolved() {
		t.Error("Empty() should be solved")
	}

	// The zero value behaves like Empty.
	var zero State
	if zero.Len() != 0 || !zero.IsSolved() {
		t.Error("zero State should be empty and solved")
	}

	// Composition only iterates the receiver's domain.
	r := e.Compose(FromCycles([]int{0, 1}))
	if r.Len() != 0 {
		t.Errorf("Empty().Compose(x).Len() = %d, want 0", r.Len())
	}
}

func TestIsSolvedKeepsFixedEntries(t *testing.T) {
	s := FromMap(map[int]int{0: 0, 1: 1, 5: 5})
	if !s.IsSolved() {
		t.Error("state with only fixed entries should be solved")
	}
	s = FromMap(map[int]int{0: 0, 1: 2, 2: 1})
	if s.IsSolved() {
		t.Error("state with a swap should not be solved")
	}
}

func TestFromCycles(t *testing.T) {
	s := FromCycles([]int{0, 1, 3, 2}, []int{4, 5})
	want := map[int]int{0: 1, 1: 3, 3: 2, 2: 0, 4: 5, 5: 4}
	for pos, piece := range want {
		if got, ok := s.Lookup(pos); !ok || got != piece {
			t.Errorf("Lookup(%d) = %d, %v; want %d", pos, got, ok, piece)
		}
	}
	if s.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(want))
	}
}

func TestFromPairsLaterWins(t *testing.T) {
	s := FromPairs([][2]int{{0, 1}, {0, 2}})
	if got := s.At(0); got != 2 {
		t.Errorf("At(0) = %d, want 2", got)
	}
}

func TestAt(t *testing.T) {
	s := FromCycles([]int{1, 2})
	if got := s.At(1); got != 2 {
		t.Errorf("At(1) = %d, want 2", got)
	}
	if got := s.At(9); got != 9 {
		t.Errorf("At(9) = %d, want 9 (unstored positions are fixed)", got)
	}
	if _, ok := s.Lookup(9); ok {
		t.Error("Lookup(9) should report no entry")
	}
}

func TestComposeIdentity(t *testing.T) {
	s := FromCycles([]int{0, 1, 3, 2}, []int{7, 5, 11, 9})
	id := Identity(12)

	right := s.Compose(id)
	if !right.Equal(s) {
		t.Errorf("s·id = %v, want %v", right, s)
	}
	if right.Len() != s.Len() {
		t.Errorf("s·id stored %d entries, want %d", right.Len(), s.Len())
	}

	left := id.Compose(s)
	for _, pos := range s.Positions() {
		if left.At(pos) != s.At(pos) {
			t.Errorf("(id·s)(%d) = %d, want %d", pos, left.At(pos), s.At(pos))
		}
	}
	if left.Len() != 12 {
		t.Errorf("id·s stored %d entries, want 12", left.Len())
	}
}

func TestComposeAsymmetricDomain(t *testing.T) {
	lhs := FromMap(map[int]int{0: 1, 1: 0})
	rhs := FromCycles([]int{1, 2, 3})

	got := lhs.Compose(rhs)
	want := map[int]int{0: 2, 1: 0}
	if got.Len() != len(want) {
		t.Fatalf("Compose stored %v, want only %v", got, want)
	}
	for pos, piece := range want {
		if p, ok := got.Lookup(pos); !ok || p != piece {
			t.Errorf("Compose(%d) = %d, %v; want %d", pos, p, ok, piece)
		}
	}
	if _, ok := got.Lookup(3); ok {
		t.Error("positions outside the receiver's domain must not be stored")
	}
}

func TestComposeDoesNotMutate(t *testing.T) {
	a := FromCycles([]int{0, 1, 2})
	b := FromCycles([]int{0, 2})
	before := a.String()
	_ = a.Compose(b)
	if a.String() != before {
		t.Errorf("Compose mutated receiver: %s -> %s", before, a.String())
	}
}

func TestComposeAssociative(t *testing.T) {
	id := Identity(24)
	r := FromCycles([]int{15, 3, 10, 23}, []int{7, 1, 18, 21}, []int{8, 9, 17, 16})
	u := FromCycles([]int{0, 1, 3, 2}, []int{7, 5, 11, 9}, []int{6, 4, 10, 8})
	f := FromCycles([]int{6, 7, 15, 14}, []int{2, 8, 21, 13}, []int{3, 16, 20, 5})

	ab := id.Compose(r).Compose(u).Compose(f)
	ba := id.Compose(r.Compose(u).Compose(f))
	if !ab.Equal(ba) {
		t.Errorf("((id·r)·u)·f = %v, id·((r·u)·f) = %v", ab, ba)
	}
	if p := Product(id, r, u, f); !p.Equal(ab) {
		t.Errorf("Product = %v, want %v", p, ab)
	}
}

func TestInverseCancels(t *testing.T) {
	tests := []struct {
		name   string
		cycles [][]int
	}{
		{"swap", [][]int{{0, 1}}},
		{"4-cycle", [][]int{{0, 1, 3, 2}}},
		{"disjoint", [][]int{{0, 1, 3, 2}, {7, 5, 11, 9}, {6, 4, 10, 8}}},
		{"mixed lengths", [][]int{{1, 2, 3}, {10, 20}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromCycles(tt.cycles...)
			left := s.Inverse().Compose(s)
			right := s.Compose(s.Inverse())
			for _, pos := range s.Positions() {
				if left.At(pos) != pos {
					t.Errorf("(s⁻¹·s)(%d) = %d", pos, left.At(pos))
				}
				if right.At(pos) != pos {
					t.Errorf("(s·s⁻¹)(%d) = %d", pos, right.At(pos))
				}
			}
			if !left.IsSolved() || !right.IsSolved() {
				t.Error("s composed with its inverse should be solved")
			}
		})
	}
}

func TestInverseMalformedLargerPositionWins(t *testing.T) {
	// Not a bijection: both 0 and 5 claim piece 1.
	s := FromMap(map[int]int{0: 1, 5: 1})
	inv := s.Inverse()
	if inv.Len() != 1 {
		t.Fatalf("Inverse() stored %v, want a single entry", inv)
	}
	if got := inv.At(1); got != 5 {
		t.Errorf("Inverse()(1) = %d, want 5", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b State
		want bool
	}{
		{"empty vs identity", Empty(), Identity(5), true},
		{"dense vs sparse", Identity(4).Compose(FromCycles([]int{0, 1})), FromCycles([]int{0, 1}), true},
		{"different", FromCycles([]int{0, 1}), FromCycles([]int{1, 2}), false},
		{"fixed entry vs cycle", FromMap(map[int]int{3: 3}), FromCycles([]int{3, 4}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := FromCycles([]int{2, 0, 1})
	if got, want := s.String(), "{0→1 1→2 2→0}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Empty().String(); got != "{}" {
		t.Errorf("Empty().String() = %q, want {}", got)
	}
}

func TestMapIsCopy(t *testing.T) {
	s := FromCycles([]int{0, 1})
	m := s.Map()
	m[0] = 42
	if s.At(0) != 1 {
		t.Error("mutating Map() result changed the state")
	}
}
