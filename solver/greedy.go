// Package solver - degree-bounded greedy spanning tree construction.
package solver

import (
	"sort"

	"github.com/spantree/dcmst/dsu"
	"github.com/spantree/dcmst/graph"
)

// Greedy builds one feasible tree by Kruskal-style construction with a
// degree gate: edges are scanned in non-decreasing weight order and accepted
// only when they join two components AND both endpoints sit strictly below
// their degree bound.
//
// The result is feasible by construction but not necessarily optimal, and
// not necessarily complete: over-tight bounds can block completion, in which
// case Greedy returns the partial tree it managed to build, without error.
// Callers that need a spanning tree must compare len(Result.Tree) against
// |V|-1 (or run graph.IsSpanningTree) before relying on it.
//
// Steps:
//  1. Validate the graph and the bound map (every vertex covered, bounds > 0).
//  2. Sort edge indices by ascending weight with a stable sort, so equal
//     weights keep edge-list insertion order and repeated runs agree.
//  3. Scan: skip an edge when an endpoint is at its bound; skip when both
//     endpoints already share a component (the union would close a cycle);
//     otherwise accept, union, and accumulate degree and cost.
//  4. Stop as soon as |V|-1 edges are accepted.
//
// The degree gate runs before the union so a rejected edge never perturbs
// the component structure.
//
// Error conditions: ErrNilGraph, ErrNoVertices, ErrMissingBound, ErrBadBound.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Greedy(g *graph.Graph, bounds graph.DegreeBounds) (Result, error) {
	vertices, err := validateInstance(g, bounds)
	if err != nil {
		return Result{}, err
	}

	edges := g.Edges()
	wts, err := prefetchWeights(g, edges)
	if err != nil {
		return Result{}, err
	}

	// Stable sort keeps insertion order among equal weights.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return wts[edges[order[a]]] < wts[edges[order[b]]]
	})

	var (
		want = len(vertices) - 1
		tree = make([]graph.Edge, 0, want)
		deg  = make(map[int]int, len(vertices))
		ds   = dsu.New(vertices)
		cost float64
	)
	for _, i := range order {
		if len(tree) == want {
			break
		}
		e := edges[i]

		// Degree gate first: both endpoints must be strictly below bound.
		if deg[e.U] >= bounds[e.U] || deg[e.V] >= bounds[e.V] {
			continue
		}
		// Union returns false when the endpoints already share a component.
		if !ds.Union(e.U, e.V) {
			continue
		}

		tree = append(tree, e)
		deg[e.U]++
		deg[e.V]++
		cost += wts[e]
	}

	return Result{Tree: tree, Cost: round1e9(cost)}, nil
}
