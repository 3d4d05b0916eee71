// Package graph - the Graph container: vertex set, edge list, weight lookup.
package graph

import (
	"math"
	"sort"
)

// Graph is a finite undirected weighted graph.
//
// Invariants maintained by the mutators:
//   - every edge's endpoints are members of the vertex set;
//   - at most one edge exists per unordered vertex pair;
//   - the weight lookup is symmetric (Weight(u,v) == Weight(v,u)) because
//     both resolve through the canonical Edge key;
//   - weights are finite and non-negative.
//
// Graph is not safe for concurrent mutation. Concurrent reads are safe once
// construction is complete, which is how the solvers use it: each receives a
// fully materialized instance and never mutates it.
type Graph struct {
	// verts is the vertex membership set.
	verts map[int]struct{}

	// edges holds every edge in insertion order. Insertion order is the
	// deterministic tie-break anchor for the greedy constructor and the
	// neighborhood scans, so it is preserved exactly.
	edges []Edge

	// weights maps the canonical Edge to its weight.
	weights map[Edge]float64
}

// New returns an empty Graph ready for vertex and edge insertion.
//
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		verts:   make(map[int]struct{}),
		weights: make(map[Edge]float64),
	}
}

// AddVertex inserts v into the vertex set. Re-adding an existing vertex is a
// no-op, never an error.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v int) {
	g.verts[v] = struct{}{}
}

// AddVertices inserts each vertex in vs, skipping duplicates.
//
// Complexity: O(len(vs)).
func (g *Graph) AddVertices(vs ...int) {
	for _, v := range vs {
		g.verts[v] = struct{}{}
	}
}

// HasVertex reports whether v is a member of the vertex set.
//
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.verts[v]

	return ok
}

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Error conditions:
//   - ErrLoopNotAllowed  if u == v.
//   - ErrVertexNotFound  if either endpoint was never added as a vertex.
//   - ErrBadWeight       if w is negative, NaN, or infinite.
//   - ErrDuplicateEdge   if the unordered pair already carries an edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}

	e := NewEdge(u, v)
	if _, dup := g.weights[e]; dup {
		return ErrDuplicateEdge
	}

	g.edges = append(g.edges, e)
	g.weights[e] = w

	return nil
}

// HasEdge reports whether the unordered pair {u, v} carries an edge.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.weights[NewEdge(u, v)]

	return ok
}

// Weight returns the weight of the edge {u, v}. The lookup is symmetric:
// Weight(u, v) and Weight(v, u) resolve to the same entry.
// Returns ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, error) {
	w, ok := g.weights[NewEdge(u, v)]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Vertices returns the vertex IDs in ascending order. The slice is freshly
// allocated; callers may modify it freely.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	vs := make([]int, 0, len(g.verts))
	for v := range g.verts {
		vs = append(vs, v)
	}
	sort.Ints(vs)

	return vs
}

// Edges returns a copy of the edge list in insertion order.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	es := make([]Edge, len(g.edges))
	copy(es, g.edges)

	return es
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.verts) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TotalCost sums the weights of the given edge subset through the graph's
// weight lookup. Returns ErrEdgeNotFound if any edge in tree does not exist
// in this graph; edges must originate from the graph's own edge list.
//
// Complexity: O(len(tree)).
func (g *Graph) TotalCost(tree []Edge) (float64, error) {
	var sum float64
	for _, e := range tree {
		w, ok := g.weights[NewEdge(e.U, e.V)]
		if !ok {
			return 0, ErrEdgeNotFound
		}
		sum += w
	}

	return sum, nil
}

// Clone returns a deep copy of g. Mutations on the clone never affect the
// original.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		verts:   make(map[int]struct{}, len(g.verts)),
		edges:   make([]Edge, len(g.edges)),
		weights: make(map[Edge]float64, len(g.weights)),
	}
	for v := range g.verts {
		c.verts[v] = struct{}{}
	}
	copy(c.edges, g.edges)
	for e, w := range g.weights {
		c.weights[e] = w
	}

	return c
}
