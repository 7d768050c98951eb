package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/solver"
)

// movesCommand creates the moves command for inspecting a puzzle's move set.
func (c *CLI) movesCommand() *cobra.Command {
	var flags puzzleFlags
	var export string

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List a puzzle's moves",
		Long: `List the moves of a puzzle under a metric, with the index the solver
reports for each one.

Moves that are not permutations of their positions are flagged; the search
still accepts them but its results are meaningless. With --export the
puzzle definition is written to a file instead, in the format given by its
extension.`,
		Example: `  # Quarter-turn moves of the built-in 2x2x2
  permsolve moves --metric qtm

  # Check a custom puzzle
  permsolve moves -f puzzle.yaml

  # Write the built-in puzzle as a starting point for your own
  permsolve moves --export cube.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options()
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			p, err := solver.LoadPuzzle(opts)
			if err != nil {
				return err
			}

			if export != "" {
				return exportPuzzle(p, export)
			}

			set, err := p.MoveSet(opts.Metric)
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render(fmt.Sprintf("%s (%d positions, %s)", p.Name, p.Size, opts.Metric)))
			fmt.Println(movesTable(set))

			if bad := nonBijective(set); len(bad) > 0 {
				printError("%d move(s) are not permutations: %s", len(bad), strings.Join(bad, " "))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&export, "export", "o", "", "write the puzzle definition to this file")

	return cmd
}

// movesTable renders set as a table of index, name, size and mapping.
func movesTable(set moveset.Set) string {
	rows := make([][]string, len(set))
	for i, m := range set {
		ok := "yes"
		if !moveset.Bijective(m.State) {
			ok = "no"
		}
		rows[i] = []string{strconv.Itoa(i), m.Name, strconv.Itoa(m.State.Len()), ok, m.State.String()}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("#", "Move", "Size", "Bijective", "Mapping").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 3 && rows[row][3] == "no" {
				return base.Foreground(colorRed)
			}
			if col == 0 || col == 4 {
				return base.Foreground(colorDim)
			}
			return base
		})
	return t.Render()
}

// nonBijective returns the names of moves that are not permutations.
func nonBijective(set moveset.Set) []string {
	var bad []string
	for _, m := range set {
		if !moveset.Bijective(m.State) {
			bad = append(bad, m.Name)
		}
	}
	return bad
}

func exportPuzzle(p *moveset.Puzzle, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format := moveset.FormatFromPath(path)
	if format == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q (use .toml, .yaml or .json)", path)
	}
	data, err := moveset.Encode(p, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printSuccess("Exported %s", p.Name)
	printFile(path)
	return nil
}
