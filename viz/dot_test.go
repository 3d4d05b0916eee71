package viz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spantree/dcmst/graph"
	"github.com/spantree/dcmst/viz"
)

// buildTriangle returns a three-vertex instance with distinct weights.
func buildTriangle() (*graph.Graph, graph.DegreeBounds) {
	g := graph.New()
	g.AddVertices(0, 1, 2)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2.5)
	_ = g.AddEdge(0, 2, 4)

	return g, graph.UniformBounds(g.Vertices(), 2)
}

// buildQuad returns the four-vertex instance used across the solver tests.
func buildQuad() (*graph.Graph, graph.DegreeBounds) {
	g := graph.New()
	g.AddVertices(0, 1, 2, 3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(0, 3, 10)
	_ = g.AddEdge(0, 2, 5)

	return g, graph.UniformBounds(g.Vertices(), 2)
}

// TestInstanceDOT_Golden pins the output byte for byte: vertices ascending,
// edges in insertion order, degree bounds on the vertex labels.
func TestInstanceDOT_Golden(t *testing.T) {
	g, bounds := buildTriangle()

	want := `graph G {
  layout=neato;
  overlap=false;
  bgcolor="transparent";
  node [shape=circle, style=filled, fillcolor=white, fontsize=14];

  "0" [label="0\nmax 2"];
  "1" [label="1\nmax 2"];
  "2" [label="2\nmax 2"];

  "0" -- "1" [label="1"];
  "1" -- "2" [label="2.5"];
  "0" -- "2" [label="4"];
}
`

	assert.Equal(t, want, viz.InstanceDOT(g, bounds))
}

// TestInstanceDOT_MissingBound falls back to the bare vertex id when the
// bound map does not cover a vertex.
func TestInstanceDOT_MissingBound(t *testing.T) {
	g := graph.New()
	g.AddVertex(5)

	dot := viz.InstanceDOT(g, nil)

	assert.Contains(t, dot, `"5" [label="5"];`)
	assert.NotContains(t, dot, "max")
}

// TestTreeDOT_Styles highlights the optimum of the quad: three tree edges
// bold and colored, two chords grey and dashed.
func TestTreeDOT_Styles(t *testing.T) {
	g, bounds := buildQuad()
	tree := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}

	dot := viz.TreeDOT(g, tree, bounds)

	assert.Equal(t, 3, strings.Count(dot, "firebrick"))
	assert.Equal(t, 2, strings.Count(dot, "style=dashed"))
	assert.Contains(t, dot, `"0" -- "1" [label="1", color=firebrick, penwidth=2.0];`)
	assert.Contains(t, dot, `"0" -- "3" [label="10", color=grey70, fontcolor=grey70, style=dashed];`)
	assert.Contains(t, dot, `"0" -- "2" [label="5", color=grey70, fontcolor=grey70, style=dashed];`)
}

// TestTreeDOT_IgnoresForeignEdges drops tree entries the graph does not
// contain instead of inventing lines for them.
func TestTreeDOT_IgnoresForeignEdges(t *testing.T) {
	g, bounds := buildQuad()
	tree := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
	withForeign := append([]graph.Edge{{U: 7, V: 9}}, tree...)

	assert.Equal(t, viz.TreeDOT(g, tree, bounds), viz.TreeDOT(g, withForeign, bounds))
}

// TestRenderSVG_Smoke pushes a small instance through Graphviz and checks
// an SVG document comes back.
func TestRenderSVG_Smoke(t *testing.T) {
	g, bounds := buildTriangle()

	svg, err := viz.RenderSVG(viz.InstanceDOT(g, bounds))
	require.NoError(t, err)

	assert.Contains(t, string(svg), "<svg")
}

// TestRenderSVG_BadInput rejects text that is not DOT.
func TestRenderSVG_BadInput(t *testing.T) {
	_, err := viz.RenderSVG("this is not dot")

	require.Error(t, err)
	assert.ErrorContains(t, err, "parse DOT")
}
