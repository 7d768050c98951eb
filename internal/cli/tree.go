package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permsolve/pkg/errors"
	"github.com/matzehuels/permsolve/pkg/search"
)

// treeCommand creates the tree command for visualizing the search.
func (c *CLI) treeCommand() *cobra.Command {
	var flags puzzleFlags
	var (
		scramble string
		depth    int
		dot      bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "tree [moves...]",
		Short: "Render the search tree to a small depth (debug tool)",
		Long: `Render every move sequence up to a depth as a tree, the way the exact-depth
search walks it.

Solved nodes are filled green and the path the search returns at the
given depth is drawn bold. The tree grows as moves^depth, so keep the
depth small.`,
		Example: `  # Base moves of the 2x2x2, two levels, after scrambling with R
  permsolve tree --metric base --depth 2 -o tree.svg R

  # DOT source for further processing
  permsolve tree --metric qtm --depth 2 --dot R > tree.dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			opts := flags.options()
			opts.Scramble = parseScrambleArgs(scramble, args)
			setup, err := c.newRunner().Prepare(opts)
			if err != nil {
				return err
			}

			if err := errors.ValidateDepth(depth); err != nil {
				return err
			}
			if nodes := treeNodes(len(setup.Set), depth); nodes > maxTreeNodes {
				return errors.New(errors.ErrCodeInvalidDepth,
					"tree of depth %d over %d moves has %d nodes (max %d)", depth, len(setup.Set), nodes, maxTreeNodes)
			}

			prog := newProgress(logger)
			src := search.TreeDOT(setup.Start, setup.Set, depth)
			data := []byte(src)
			if !dot {
				data, err = search.RenderSVG(src)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render tree")
				}
			}
			prog.done("Rendered search tree")

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := writeOutput(data, output); err != nil {
				return err
			}
			printSuccess("Search tree generated")
			printKeyValue("Nodes", fmt.Sprintf("%d", treeNodes(len(setup.Set), depth)))
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&scramble, "scramble", "s", "", "scramble as space-separated moves")
	cmd.Flags().IntVarP(&depth, "depth", "d", 2, "tree depth")
	cmd.Flags().BoolVar(&dot, "dot", false, "write DOT source instead of SVG")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// treeNodes returns the node count of a full tree with m children per node,
// saturating like search.Leaves.
func treeNodes(m, depth int) int {
	total := 0
	for d := 0; d <= depth; d++ {
		leaves := search.Leaves(m, d)
		if total > int(^uint(0)>>1)-leaves {
			return int(^uint(0) >> 1)
		}
		total += leaves
	}
	return total
}

// writeOutput writes data to path.
func writeOutput(data []byte, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
