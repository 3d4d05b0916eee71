package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spantree/dcmst/graph"
	"github.com/spantree/dcmst/solver"
)

// TestValidation_NilGraph verifies the nil pointer is caught across entry
// points rather than dereferenced.
func TestValidation_NilGraph(t *testing.T) {
	bounds := graph.DegreeBounds{0: 1}

	_, err := solver.Greedy(nil, bounds)
	assert.ErrorIs(t, err, solver.ErrNilGraph)

	_, err = solver.Exact(nil, bounds)
	assert.ErrorIs(t, err, solver.ErrNilGraph)

	_, err = solver.LocalSearch(nil, bounds, nil)
	assert.ErrorIs(t, err, solver.ErrNilGraph)

	_, err = solver.Solve(nil, bounds, solver.AlgoGreedy)
	assert.ErrorIs(t, err, solver.ErrNilGraph)
}

// TestValidation_NoVertices rejects the empty graph.
func TestValidation_NoVertices(t *testing.T) {
	g := graph.New()

	_, err := solver.Greedy(g, graph.DegreeBounds{})
	assert.ErrorIs(t, err, solver.ErrNoVertices)

	_, err = solver.Exact(g, graph.DegreeBounds{})
	assert.ErrorIs(t, err, solver.ErrNoVertices)
}

// TestValidation_MissingBound requires the bound map to cover every vertex.
func TestValidation_MissingBound(t *testing.T) {
	g, _ := buildQuad()
	partial := graph.DegreeBounds{0: 2, 1: 2, 2: 2} // vertex 3 uncovered

	_, err := solver.Greedy(g, partial)
	assert.ErrorIs(t, err, solver.ErrMissingBound)
	assert.ErrorContains(t, err, "3")
}

// TestValidation_BadBound rejects zero and negative bounds: a vertex that
// may touch no edge can never be spanned.
func TestValidation_BadBound(t *testing.T) {
	g, bounds := buildQuad()

	for _, b := range []int{0, -1} {
		bounds[2] = b
		_, err := solver.Exact(g, bounds)
		assert.ErrorIs(t, err, solver.ErrBadBound)
	}
}

// TestValidation_SeedMustSpan rejects seeds that are not spanning trees of
// the graph: nil, too short, and cyclic with the right length.
func TestValidation_SeedMustSpan(t *testing.T) {
	g, bounds := buildQuad()

	_, err := solver.LocalSearch(g, bounds, nil)
	assert.ErrorIs(t, err, solver.ErrNoInitialTree)

	short := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	_, err = solver.LocalSearch(g, bounds, short)
	assert.ErrorIs(t, err, solver.ErrNoInitialTree)

	// Three edges, but they close a cycle and skip vertex 3.
	cyc := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}
	_, err = solver.TabuSearch(g, bounds, cyc)
	assert.ErrorIs(t, err, solver.ErrNoInitialTree)
}

// TestValidation_SeedForeignEdge propagates the graph's own lookup error
// when the seed references an edge the graph does not carry.
func TestValidation_SeedForeignEdge(t *testing.T) {
	g, bounds := buildQuad()

	foreign := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 1, V: 3}}
	_, err := solver.Anneal(g, bounds, foreign)
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)
}
