package viz

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/spantree/dcmst/graph"
)

// InstanceDOT converts a weighted graph to Graphviz DOT format. Every edge
// is drawn in the default style with its weight as the label. The resulting
// DOT string can be rendered using [RenderSVG].
func InstanceDOT(g *graph.Graph, bounds graph.DegreeBounds) string {
	return buildDOT(g, nil, bounds)
}

// TreeDOT converts a weighted graph to DOT format with a spanning tree
// highlighted. Edges in tree are drawn bold and colored, the remaining
// edges grey and dashed. Edges in tree that the graph does not contain are
// ignored.
func TreeDOT(g *graph.Graph, tree []graph.Edge, bounds graph.DegreeBounds) string {
	inTree := make(map[graph.Edge]bool, len(tree))
	for _, e := range tree {
		inTree[e] = true
	}

	return buildDOT(g, inTree, bounds)
}

func buildDOT(g *graph.Graph, inTree map[graph.Edge]bool, bounds graph.DegreeBounds) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", strconv.Itoa(v), vertexLabel(v, bounds))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		w, err := g.Weight(e.U, e.V)
		if err != nil {
			continue // unreachable: e comes from the graph itself
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n",
			strconv.Itoa(e.U), strconv.Itoa(e.V), edgeAttrs(w, inTree, e))
	}

	buf.WriteString("}\n")

	return buf.String()
}

func vertexLabel(v int, bounds graph.DegreeBounds) string {
	b, ok := bounds[v]
	if !ok {
		return strconv.Itoa(v)
	}

	return fmt.Sprintf("%d\nmax %d", v, b)
}

func edgeAttrs(w float64, inTree map[graph.Edge]bool, e graph.Edge) string {
	label := fmt.Sprintf("label=%q", strconv.FormatFloat(w, 'g', -1, 64))
	if inTree == nil {
		return label
	}
	if inTree[e] {
		return label + ", color=firebrick, penwidth=2.0"
	}

	return label + ", color=grey70, fontcolor=grey70, style=dashed"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
