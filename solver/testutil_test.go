// Package solver_test provides the instance builders and helpers shared
// across *_test.go files in this package. Builders return ready instances
// and ignore AddEdge errors; the inputs are fixed literals that cannot fail.
package solver_test

import (
	"github.com/spantree/dcmst/graph"
)

// buildQuad constructs the canonical four-vertex instance:
//
//	0-1 (1), 1-2 (1), 2-3 (1), 0-3 (10), 0-2 (5), every bound 2.
//
// Its unique optimum is the path {0-1, 1-2, 2-3} with cost 3.
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

// quadOptimum is the unique cheapest feasible tree of buildQuad.
func quadOptimum() []graph.Edge {
	return []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
}

// buildStar constructs a three-leaf star whose center is capped at degree 1:
//
//	0-1 (1), 0-2 (1), 0-3 (1), bound(0) = 1, leaves 3.
//
// The star is the only spanning tree and it needs center degree 3, so no
// feasible tree exists.
func buildStar() (*graph.Graph, graph.DegreeBounds) {
	g := graph.New()
	g.AddVertices(0, 1, 2, 3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(0, 3, 1)

	return g, graph.DegreeBounds{0: 1, 1: 3, 2: 3, 3: 3}
}

// buildPath constructs a bare three-edge path 0-1-2-3 with weights 1, 2, 3
// and uniform bound 2. The path itself is the only spanning tree, so the
// edge-swap neighborhood of that tree is empty.
func buildPath() (*graph.Graph, graph.DegreeBounds) {
	g := graph.New()
	g.AddVertices(0, 1, 2, 3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)

	return g, graph.UniformBounds(g.Vertices(), 2)
}

// pathTree is the lone spanning tree of buildPath, cost 6.
func pathTree() []graph.Edge {
	return []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
}

// buildMedium constructs a connected eight-vertex instance with room for the
// searches to move: a ring 0..7 plus five chords, uniform bound 3.
//
//	ring:   0-1 (4), 1-2 (7), 2-3 (2), 3-4 (9), 4-5 (3), 5-6 (8), 6-7 (5), 0-7 (6)
//	chords: 0-3 (1), 1-5 (10), 2-6 (12), 4-7 (2), 1-4 (11)
//
// The seven cheapest edges happen to form a feasible tree, so the optimum
// cost is exactly 23 and the optimal edge set is unique.
func buildMedium() (*graph.Graph, graph.DegreeBounds) {
	g := graph.New()
	g.AddVertices(0, 1, 2, 3, 4, 5, 6, 7)
	type wedge struct {
		u, v int
		w    float64
	}
	for _, e := range []wedge{
		{0, 1, 4}, {1, 2, 7}, {2, 3, 2}, {3, 4, 9},
		{4, 5, 3}, {5, 6, 8}, {6, 7, 5}, {0, 7, 6},
		{0, 3, 1}, {1, 5, 10}, {2, 6, 12}, {4, 7, 2}, {1, 4, 11},
	} {
		_ = g.AddEdge(e.u, e.v, e.w)
	}

	return g, graph.UniformBounds(g.Vertices(), 3)
}

// mediumOptimum is the unique cheapest feasible tree of buildMedium: the
// seven cheapest edges, cost 1+2+2+3+4+5+6 = 23.
func mediumOptimum() []graph.Edge {
	return []graph.Edge{
		{U: 0, V: 3}, {U: 2, V: 3}, {U: 4, V: 7}, {U: 4, V: 5},
		{U: 0, V: 1}, {U: 6, V: 7}, {U: 0, V: 7},
	}
}

// mediumRingSeed is a deliberately expensive spanning tree of buildMedium:
// the ring path 0-1-2-3-4-5-6-7 (the ring minus its closing edge), cost 38.
// Plenty of improving swaps exist, so searches seeded with it must improve.
func mediumRingSeed() []graph.Edge {
	return []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
		{U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 7},
	}
}

// buildSingle constructs the smallest accepted instance: one vertex, no
// edges, bound 1. Its only spanning tree is empty.
func buildSingle() (*graph.Graph, graph.DegreeBounds) {
	g := graph.New()
	g.AddVertex(0)

	return g, graph.DegreeBounds{0: 1}
}
