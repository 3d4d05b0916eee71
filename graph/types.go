// Package graph - shared types and sentinel errors for the DC-MST instance model.
package graph

import "errors"

// ErrVertexNotFound indicates that an edge endpoint is not a member of the
// graph's vertex set. Vertices must be added before edges referencing them.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// ErrLoopNotAllowed indicates an attempt to add an edge from a vertex to
// itself. Self-loops can never participate in a spanning tree.
var ErrLoopNotAllowed = errors.New("graph: self-loops not allowed")

// ErrDuplicateEdge indicates that the unordered vertex pair already carries
// an edge. The model admits at most one edge per pair.
var ErrDuplicateEdge = errors.New("graph: duplicate edge")

// ErrBadWeight indicates a weight that is negative, NaN, or infinite.
// Weights must be finite and non-negative.
var ErrBadWeight = errors.New("graph: weight must be finite and non-negative")

// ErrEdgeNotFound indicates a weight lookup for an unordered pair that has no
// registered edge. For edges drawn from the graph's own edge list this never
// happens; seeing it means the edge originated elsewhere.
var ErrEdgeNotFound = errors.New("graph: edge not found")

// Edge is an undirected edge identified by its two distinct endpoints.
// The canonical form keeps U < V so that an unordered pair has exactly one
// representation; construct edges with NewEdge to maintain the invariant.
// Weights live in the owning Graph's lookup table, not on the edge value,
// so edges stay comparable and usable as map keys.
type Edge struct {
	// U is the smaller endpoint in canonical form.
	U int
	// V is the larger endpoint in canonical form.
	V int
}

// NewEdge returns the canonical Edge for the unordered pair {u, v},
// swapping the endpoints if necessary so that U < V.
//
// Complexity: O(1).
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint of e, the second return value is false.
//
// Complexity: O(1).
func (e Edge) Other(v int) (int, bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// DegreeBounds maps each vertex to the maximum degree it may have in a
// candidate tree. A feasible tree keeps every vertex's degree at or below
// its bound. Solvers treat a missing entry as a bound of zero, which makes
// any incident edge infeasible; suppliers must cover every vertex.
type DegreeBounds map[int]int

// UniformBounds builds a DegreeBounds assigning the same bound to every
// vertex in vertices. This is the common instance shape produced by the
// random generator.
//
// Complexity: O(V).
func UniformBounds(vertices []int, bound int) DegreeBounds {
	b := make(DegreeBounds, len(vertices))
	for _, v := range vertices {
		b[v] = bound
	}

	return b
}
