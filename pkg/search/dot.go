package search

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/permsolve/pkg/moveset"
	"github.com/matzehuels/permsolve/pkg/perm"
)

// TreeDOT returns a Graphviz DOT representation of the full search tree
// below start, down to depth.
//
// Each node is labeled with the move that produced it. Solved nodes are
// filled green at any level; the path Bounded would return at depth is
// drawn bold. The tree has Leaves(len(set), depth) leaves, so callers
// should keep depth small.
func TreeDOT(start perm.State, set moveset.Set, depth int) string {
	depth = max(depth, 0)
	var path []int
	if n, ok := Bounded(Root(start), set, depth); ok {
		path = n.Moves
	}

	var buf bytes.Buffer
	buf.WriteString("digraph SearchTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white, shape=circle];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	w := dotWriter{buf: &buf, set: set, depth: depth, path: path}
	w.node(Root(start), 0, "start")

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf   *bytes.Buffer
	set   moveset.Set
	depth int
	path  []int
	next  int
}

// node writes n and its subtree and returns n's id.
func (w *dotWriter) node(n Node, level int, label string) int {
	id := w.next
	w.next++

	attrs := fmt.Sprintf("label=%q", label)
	if n.State.IsSolved() {
		attrs += ", fillcolor=\"palegreen\""
	}
	if w.onPath(n) {
		attrs += ", penwidth=2.5"
	}
	fmt.Fprintf(w.buf, "  n%d [%s];\n", id, attrs)

	if level == w.depth {
		return id
	}
	for i := range w.set {
		child := n.Extend(i, w.set)
		childID := w.node(child, level+1, w.set[i].Name)
		style := ""
		if w.onPath(child) {
			style = " [penwidth=2.5]"
		}
		fmt.Fprintf(w.buf, "  n%d -> n%d%s;\n", id, childID, style)
	}
	return id
}

func (w *dotWriter) onPath(n Node) bool {
	return w.path != nil && slices.Equal(n.Moves, w.path[:len(n.Moves)])
}

// RenderSVG renders DOT source such as TreeDOT's output to SVG.
//
// All errors are wrapped with context using fmt.Errorf with %w.
func RenderSVG(dot string) ([]byte, error) {
	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
