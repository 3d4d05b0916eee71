// Package solver - the single-edge-swap neighborhood shared by local search,
// simulated annealing, and tabu search.
//
// A swap removes one tree edge, which splits a spanning tree into exactly
// two components, and adds one non-tree graph edge with an endpoint in each
// component, which restores a spanning tree. The helpers here keep the three
// searches byte-for-byte consistent on candidate ordering, feasibility, and
// cost deltas.
package solver

import (
	"math"

	"github.com/spantree/dcmst/graph"
)

// roundScale controls cost stabilization precision (1e-9). Running costs are
// maintained by swap deltas; rounding after each commit stops FP drift from
// accumulating across thousands of iterations.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// prefetchWeights snapshots every edge weight of g into a plain map so the
// search inner loops never touch the error-returning lookup. An edge that is
// not part of g surfaces the lookup error unchanged.
//
// Complexity: O(E).
func prefetchWeights(g *graph.Graph, edges []graph.Edge) (map[graph.Edge]float64, error) {
	wts := make(map[graph.Edge]float64, len(edges))
	for _, e := range edges {
		w, err := g.Weight(e.U, e.V)
		if err != nil {
			return nil, err
		}
		wts[e] = w
	}

	return wts, nil
}

// edgeSet builds the membership set of a tree's edges.
//
// Complexity: O(len(tree)).
func edgeSet(tree []graph.Edge) map[graph.Edge]bool {
	in := make(map[graph.Edge]bool, len(tree))
	for _, e := range tree {
		in[e] = true
	}

	return in
}

// splitComponents computes the component split induced by removing the tree
// edge at index skip. It returns a vertex-to-component map (labels 0 and 1)
// and true when the removal yields exactly two components, which is always
// the case for a spanning tree; any other count reports false and the move
// is unusable.
//
// Complexity: O(V + len(tree)).
func splitComponents(vertices []int, tree []graph.Edge, skip int) (map[int]int, bool) {
	reduced := make([]graph.Edge, 0, len(tree)-1)
	reduced = append(reduced, tree[:skip]...)
	reduced = append(reduced, tree[skip+1:]...)

	comps := graph.ConnectedComponents(vertices, reduced)
	if len(comps) != 2 {
		return nil, false
	}

	compOf := make(map[int]int, len(vertices))
	for label, comp := range comps {
		for _, v := range comp {
			compOf[v] = label
		}
	}

	return compOf, true
}

// crossingCandidates lists, in edge-list order, every non-tree edge of the
// graph with one endpoint in each component of the split. The removed edge
// is still a member of inTree and is therefore never a candidate: re-adding
// it would reproduce the current tree as a zero-delta move.
//
// Complexity: O(E).
func crossingCandidates(all []graph.Edge, inTree map[graph.Edge]bool, compOf map[int]int) []graph.Edge {
	var cands []graph.Edge
	for _, e := range all {
		if inTree[e] {
			continue
		}
		if compOf[e.U] == compOf[e.V] {
			continue
		}
		cands = append(cands, e)
	}

	return cands
}

// swapKeepsBounds reports whether replacing removed with added keeps every
// vertex within its degree bound. Only the added edge's endpoints can gain
// degree, so the check is O(1): each gains one, minus one if it also sits on
// the removed edge.
func swapKeepsBounds(deg map[int]int, bounds graph.DegreeBounds, removed, added graph.Edge) bool {
	du := deg[added.U] + 1
	if added.U == removed.U || added.U == removed.V {
		du--
	}
	if du > bounds[added.U] {
		return false
	}

	dv := deg[added.V] + 1
	if added.V == removed.U || added.V == removed.V {
		dv--
	}

	return dv <= bounds[added.V]
}

// swapped returns a fresh tree with the edge at index skip removed and added
// appended. The input slice is never modified; candidates are always built
// copy-and-modify so trees can be handed across solvers without aliasing.
//
// Complexity: O(len(tree)).
func swapped(tree []graph.Edge, skip int, added graph.Edge) []graph.Edge {
	next := make([]graph.Edge, 0, len(tree))
	next = append(next, tree[:skip]...)
	next = append(next, tree[skip+1:]...)
	next = append(next, added)

	return next
}
