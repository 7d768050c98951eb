package moveset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/perm"
)

// Puzzle file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// puzzleFile is the on-disk shape of a puzzle definition:
//
//	name = "2x2x2"
//	size = 24
//
//	[[moves]]
//	name = "U"
//	cycles = [[0, 1, 3, 2], [7, 5, 11, 9], [6, 4, 10, 8]]
//
//	[[moves]]
//	name = "X"
//	pairs = [[0, 1], [1, 0]]
type puzzleFile struct {
	Name  string     `toml:"name" yaml:"name" json:"name"`
	Size  int        `toml:"size" yaml:"size" json:"size"`
	Moves []moveFile `toml:"moves" yaml:"moves" json:"moves"`
}

type moveFile struct {
	Name   string  `toml:"name" yaml:"name" json:"name"`
	Cycles [][]int `toml:"cycles,omitempty" yaml:"cycles,omitempty" json:"cycles,omitempty"`
	Pairs  [][]int `toml:"pairs,omitempty" yaml:"pairs,omitempty" json:"pairs,omitempty"`
}

// FormatFromPath returns the puzzle file format implied by the extension of
// path, or "" if it is not recognised.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return ""
}

// Load reads a puzzle definition file. The format is chosen by extension.
func Load(path string) (*Puzzle, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format := FormatFromPath(path)
	if format == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported puzzle file %q (want .toml, .yaml, .yml or .json)", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "puzzle file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Parse(data, format)
}

// Parse decodes a puzzle definition in the given format. Unknown keys are
// rejected in every format.
func Parse(data []byte, format string) (*Puzzle, error) {
	var pf puzzleFile
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &pf)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPuzzle, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidPuzzle, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&pf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPuzzle, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&pf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPuzzle, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: toml, yaml, json)", format)
	}
	return pf.puzzle()
}

// puzzle converts and structurally checks a decoded definition. It does not
// check that moves are bijections; see Bijective.
func (pf *puzzleFile) puzzle() (*Puzzle, error) {
	if err := errors.ValidatePuzzleName(pf.Name); err != nil {
		return nil, err
	}
	if pf.Size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidPuzzle, "puzzle %q: size must be positive, got %d", pf.Name, pf.Size)
	}
	if len(pf.Moves) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPuzzle, "puzzle %q defines no moves", pf.Name)
	}

	p := &Puzzle{Name: pf.Name, Size: pf.Size, Base: make([]Move, 0, len(pf.Moves))}
	seen := make(map[string]bool, len(pf.Moves))
	for _, mf := range pf.Moves {
		if err := errors.ValidateMoveName(mf.Name); err != nil {
			return nil, err
		}
		if strings.HasSuffix(mf.Name, "'") {
			return nil, errors.New(errors.ErrCodeInvalidMove, "base move %q cannot end in a prime", mf.Name)
		}
		if strings.HasSuffix(mf.Name, "2") {
			return nil, errors.New(errors.ErrCodeInvalidMove, "base move %q cannot end in 2 (reserved for half turns)", mf.Name)
		}
		if seen[mf.Name] {
			return nil, errors.New(errors.ErrCodeInvalidMove, "duplicate move %q", mf.Name)
		}
		seen[mf.Name] = true

		state, err := mf.state(pf.Size)
		if err != nil {
			return nil, err
		}
		p.Base = append(p.Base, Move{Name: mf.Name, State: state})
	}
	return p, nil
}

func (mf *moveFile) state(size int) (perm.State, error) {
	hasCycles, hasPairs := len(mf.Cycles) > 0, len(mf.Pairs) > 0
	switch {
	case hasCycles && hasPairs:
		return perm.State{}, errors.New(errors.ErrCodeInvalidMove, "move %q: give cycles or pairs, not both", mf.Name)
	case !hasCycles && !hasPairs:
		return perm.State{}, errors.New(errors.ErrCodeInvalidMove, "move %q: no cycles or pairs", mf.Name)
	}

	inRange := func(pos int) error {
		if pos < 0 || pos >= size {
			return errors.New(errors.ErrCodeInvalidMove, "move %q: position %d out of range [0, %d)", mf.Name, pos, size)
		}
		return nil
	}
	used := make(map[int]bool)

	if hasCycles {
		for _, c := range mf.Cycles {
			if len(c) < 2 {
				return perm.State{}, errors.New(errors.ErrCodeInvalidMove, "move %q: cycle %v needs at least two positions", mf.Name, c)
			}
			for _, pos := range c {
				if err := inRange(pos); err != nil {
					return perm.State{}, err
				}
				if used[pos] {
					return perm.State{}, errors.New(errors.ErrCodeInvalidMove, "move %q: position %d appears twice", mf.Name, pos)
				}
				used[pos] = true
			}
		}
		return perm.FromCycles(mf.Cycles...), nil
	}

	pairs := make([][2]int, 0, len(mf.Pairs))
	for _, p := range mf.Pairs {
		if len(p) != 2 {
			return perm.State{}, errors.New(errors.ErrCodeInvalidMove, "move %q: pair %v must be [position, piece]", mf.Name, p)
		}
		if err := inRange(p[0]); err != nil {
			return perm.State{}, err
		}
		if err := inRange(p[1]); err != nil {
			return perm.State{}, err
		}
		if used[p[0]] {
			return perm.State{}, errors.New(errors.ErrCodeInvalidMove, "move %q: position %d appears twice", mf.Name, p[0])
		}
		used[p[0]] = true
		pairs = append(pairs, [2]int{p[0], p[1]})
	}
	return perm.FromPairs(pairs), nil
}

// Encode writes p in the given format. Moves are written as pairs so that
// stored fixed entries survive a round trip.
func Encode(p *Puzzle, format string) ([]byte, error) {
	pf := puzzleFile{Name: p.Name, Size: p.Size, Moves: make([]moveFile, len(p.Base))}
	for i, m := range p.Base {
		mf := moveFile{Name: m.Name}
		for _, pos := range m.State.Positions() {
			mf.Pairs = append(mf.Pairs, []int{pos, m.State.At(pos)})
		}
		pf.Moves[i] = mf
	}

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(pf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(pf)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(pf, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		return append(data, '\n'), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: toml, yaml, json)", format)
}

// ValidFormats lists the supported puzzle file formats.
var ValidFormats = []string{FormatTOML, FormatYAML, FormatJSON}
