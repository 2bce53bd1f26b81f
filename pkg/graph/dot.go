package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the state graph to Graphviz DOT format. Nodes are
// labeled with their id and uncovered-cell count; complete nodes are
// drawn filled. The resulting string can be rendered with [RenderSVG].
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tilings {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=10];\n")
	buf.WriteString("\n")

	for id := 0; id < g.NodeCount(); id++ {
		label := fmt.Sprintf("%d\\n%d open", id, g.Node(id).Uncovered())
		if g.IsComplete(id) {
			fmt.Fprintf(&buf, "  %d [label=\"%s\", style=\"rounded,filled\", fillcolor=lightgrey];\n", id, label)
		} else {
			fmt.Fprintf(&buf, "  %d [label=\"%s\"];\n", id, label)
		}
	}

	buf.WriteString("\n")
	for id := 0; id < g.NodeCount(); id++ {
		for _, t := range g.Edges(id) {
			fmt.Fprintf(&buf, "  %d -> %d;\n", id, t)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
