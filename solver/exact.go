// Package solver - exhaustive enumeration of degree-feasible spanning trees.
package solver

import (
	"math"

	"github.com/spantree/dcmst/dsu"
	"github.com/spantree/dcmst/graph"
)

// Exact returns the globally minimum-cost feasible spanning tree by
// enumerating every combination of |V|-1 edges from the edge list.
//
// Enumeration walks combinations in lexicographic index order, which makes
// the run fully deterministic; among equal-cost optima the first encountered
// wins (the comparison is strictly less-than). Each candidate is screened
// incrementally against a fresh disjoint set: the first union that returns
// false proves a cycle and rejects the combination on the spot, and degree
// counts are checked edge by edge the same way, so most candidates die after
// a handful of edges. A candidate that survives all |V|-1 unions is acyclic
// with |V|-1 edges over the vertex set and therefore connected; no separate
// reachability pass is needed.
//
// This solver is exponential: the candidate count is C(|E|, |V|-1). It is
// intended for small instances (tens of edges) where a ground-truth optimum
// is worth the wait; the heuristics in this package cover everything larger.
//
// Error conditions:
//   - ErrNilGraph, ErrNoVertices, ErrMissingBound, ErrBadBound on bad input.
//   - ErrInfeasible when the full enumeration accepts no candidate, e.g. the
//     graph is disconnected or the bounds are too tight for any spanning tree.
//
// Result.Iterations reports the number of combinations examined.
//
// Complexity: O(C(E, V-1) · V · α(V)). Memory: O(V + E).
func Exact(g *graph.Graph, bounds graph.DegreeBounds) (Result, error) {
	vertices, err := validateInstance(g, bounds)
	if err != nil {
		return Result{}, err
	}

	// A single vertex is spanned by the empty tree; the zero-edge
	// combination is the lone candidate and it is trivially feasible.
	k := len(vertices) - 1
	if k == 0 {
		return Result{Tree: []graph.Edge{}, Cost: 0, Iterations: 1}, nil
	}

	edges := g.Edges()
	if k > len(edges) {
		// Fewer than |V|-1 edges can never span |V| vertices.
		return Result{}, ErrInfeasible
	}

	// Dense weight snapshot indexed by edge position; the inner loop never
	// touches the error-returning lookup.
	wts := make([]float64, len(edges))
	for i, e := range edges {
		w, werr := g.Weight(e.U, e.V)
		if werr != nil {
			return Result{}, werr
		}
		wts[i] = w
	}

	var (
		bestCost  = math.Inf(1)
		bestTree  []graph.Edge
		deg       = make(map[int]int, len(vertices))
		examined  int
		idx       = make([]int, k)
		lastValid = len(edges) - k
	)
	for i := range idx {
		idx[i] = i
	}

	for {
		examined++

		// Evaluate the current combination: cheap rejects first, cost as a
		// byproduct of the same pass.
		ds := dsu.New(vertices)
		clear(deg)
		ok := true
		var cost float64
		for _, ei := range idx {
			e := edges[ei]
			if !ds.Union(e.U, e.V) {
				ok = false // cycle

				break
			}
			deg[e.U]++
			if deg[e.U] > bounds[e.U] {
				ok = false

				break
			}
			deg[e.V]++
			if deg[e.V] > bounds[e.V] {
				ok = false

				break
			}
			cost += wts[ei]
		}
		if ok && cost < bestCost {
			bestCost = cost
			bestTree = make([]graph.Edge, 0, k)
			for _, ei := range idx {
				bestTree = append(bestTree, edges[ei])
			}
		}

		// Advance to the next combination in lexicographic order: bump the
		// rightmost index that has headroom, reset everything after it.
		p := k - 1
		for p >= 0 && idx[p] == lastValid+p {
			p--
		}
		if p < 0 {
			break
		}
		idx[p]++
		for q := p + 1; q < k; q++ {
			idx[q] = idx[q-1] + 1
		}
	}

	if bestTree == nil {
		return Result{}, ErrInfeasible
	}

	return Result{Tree: bestTree, Cost: round1e9(bestCost), Iterations: examined}, nil
}
