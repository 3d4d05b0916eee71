// Package solver - shared input validation for all five solvers.
package solver

import (
	"fmt"

	"github.com/spantree/dcmst/graph"
)

// validateInstance checks the graph/bounds pair every solver receives and
// returns the ascending vertex list on success.
//
// Error conditions:
//   - ErrNilGraph      if g is nil.
//   - ErrNoVertices    if the vertex set is empty.
//   - ErrMissingBound  if any vertex lacks a bound (wrapped with the vertex).
//   - ErrBadBound      if any bound is zero or negative (wrapped likewise).
//
// Complexity: O(V log V) dominated by the sorted vertex snapshot.
func validateInstance(g *graph.Graph, bounds graph.DegreeBounds) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	for _, v := range vertices {
		b, ok := bounds[v]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMissingBound, v)
		}
		if b <= 0 {
			return nil, fmt.Errorf("%w: vertex %d has bound %d", ErrBadBound, v, b)
		}
	}

	return vertices, nil
}

// validateSeed checks that initial is a spanning tree drawn from g's own
// edges and returns a private copy together with its stabilized cost. The
// caller's slice is never retained or mutated.
//
// A foreign edge surfaces the graph's ErrEdgeNotFound; a wrong edge count or
// a cycle surfaces ErrNoInitialTree.
//
// Complexity: O(V + E·α(V)).
func validateSeed(g *graph.Graph, vertices []int, initial []graph.Edge) ([]graph.Edge, float64, error) {
	cost, err := g.TotalCost(initial)
	if err != nil {
		return nil, 0, err
	}
	if !graph.IsSpanningTree(vertices, initial) {
		return nil, 0, fmt.Errorf("%w: got %d edges for %d vertices",
			ErrNoInitialTree, len(initial), len(vertices))
	}

	tree := make([]graph.Edge, len(initial))
	copy(tree, initial)

	return tree, round1e9(cost), nil
}
