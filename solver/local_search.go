// Package solver - first-improvement edge-swap hill climbing.
package solver

import "github.com/spantree/dcmst/graph"

// LocalSearch improves a spanning seed tree by deterministic
// first-improvement hill climbing over the single-edge-swap neighborhood.
//
// Each pass scans tree edges in tree order; for each removal it scans the
// crossing non-tree edges in edge-list order and commits the first candidate
// that keeps every degree bound and is strictly cheaper, then restarts the
// outer scan from the beginning. The search stops when a full scan commits
// nothing: a local optimum under this neighborhood, not necessarily the
// global one.
//
// Properties callers may rely on:
//   - the returned cost never exceeds the seed cost (every committed move
//     strictly decreases it, so termination is guaranteed too);
//   - re-running on the returned tree returns it unchanged;
//   - the run is fully deterministic, no randomness is consumed.
//
// The seed must be a spanning tree built from g's own edges; feasibility of
// the seed is the supplier's responsibility (a bound-respecting seed stays
// bound-respecting, because every committed swap is gated on the bounds).
//
// Error conditions: ErrNilGraph, ErrNoVertices, ErrMissingBound, ErrBadBound,
// ErrNoInitialTree, and graph.ErrEdgeNotFound for a seed edge foreign to g.
//
// Result.Iterations reports the number of committed swaps.
//
// Complexity: O(M · V · E) where M is the number of committed moves; each
// full scan is O(V·E) split computations plus candidate checks.
func LocalSearch(g *graph.Graph, bounds graph.DegreeBounds, initial []graph.Edge) (Result, error) {
	vertices, err := validateInstance(g, bounds)
	if err != nil {
		return Result{}, err
	}
	tree, cost, err := validateSeed(g, vertices, initial)
	if err != nil {
		return Result{}, err
	}
	if len(tree) == 0 {
		// Single vertex: the empty tree is the only spanning tree.
		return Result{Tree: tree, Cost: 0}, nil
	}

	all := g.Edges()
	wts, err := prefetchWeights(g, all)
	if err != nil {
		return Result{}, err
	}

	var (
		inTree = edgeSet(tree)
		deg    = graph.Degrees(tree)
		moves  int
	)
	for {
		improved := false

		for ti := range tree {
			removed := tree[ti]
			compOf, ok := splitComponents(vertices, tree, ti)
			if !ok {
				// Unreachable while tree stays spanning.
				continue
			}

			for _, cand := range crossingCandidates(all, inTree, compOf) {
				if !swapKeepsBounds(deg, bounds, removed, cand) {
					continue
				}
				delta := wts[cand] - wts[removed]
				if delta >= 0 {
					continue // not strictly cheaper
				}

				// Commit the first improving candidate and restart the scan.
				tree = swapped(tree, ti, cand)
				cost = round1e9(cost + delta)
				delete(inTree, removed)
				inTree[cand] = true
				deg[removed.U]--
				deg[removed.V]--
				deg[cand.U]++
				deg[cand.V]++
				moves++
				improved = true

				break
			}
			if improved {
				break
			}
		}

		if !improved {
			// Local optimum under the single-edge-swap neighborhood.
			break
		}
	}

	return Result{Tree: tree, Cost: cost, Iterations: moves}, nil
}
