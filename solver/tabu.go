// Package solver - tabu search with a fixed-tenure recency queue.
package solver

import "github.com/spantree/dcmst/graph"

// TabuSearch runs best-improvement search from a spanning seed tree with
// short-term memory of forbidden moves.
//
// Per iteration the entire single-edge-swap neighborhood of the current
// tree is enumerated: every tree-edge removal (tree order) crossed with
// every valid replacement edge (edge-list order). Moves present in the tabu
// list are discarded, as are moves violating a degree bound. Among the
// survivors the lowest resulting cost wins, ties going to the first
// enumerated. The winning move is committed unconditionally, even when it
// worsens the current cost; accepting non-improving moves is how the search
// escapes local optima. The committed move then enters the tabu list, and
// the oldest entry is evicted once the list exceeds TabuTenure.
//
// A tabu move stays forbidden even if it would beat the best-ever solution;
// there is no aspiration criterion. With TabuTenure 0 nothing is ever tabu
// and the search degenerates to a strict best-improvement walker, still
// bounded by TabuMaxIterations.
//
// The search ends at TabuMaxIterations, or immediately when no candidate
// survives the filters; the latter sets Result.Stuck, a normal termination
// signal distinguishable from cap exhaustion, never an error. Best-ever
// tracking works as in Anneal: the returned tree is the cheapest one seen.
//
// The run is fully deterministic; no randomness is consumed.
//
// Error conditions: ErrNilGraph, ErrNoVertices, ErrMissingBound, ErrBadBound,
// ErrNoInitialTree, ErrOptionViolation, and graph.ErrEdgeNotFound for a seed
// edge foreign to g.
//
// Result.Iterations reports executed iterations.
//
// Complexity: O(I · V · E) for I iterations. Memory: O(V + E + tenure).
func TabuSearch(g *graph.Graph, bounds graph.DegreeBounds, initial []graph.Edge, opts ...Option) (Result, error) {
	o, err := apply(opts)
	if err != nil {
		return Result{}, err
	}
	vertices, err := validateInstance(g, bounds)
	if err != nil {
		return Result{}, err
	}
	cur, curCost, err := validateSeed(g, vertices, initial)
	if err != nil {
		return Result{}, err
	}
	if len(cur) == 0 {
		return Result{Tree: cur, Cost: 0}, nil
	}

	all := g.Edges()
	wts, err := prefetchWeights(g, all)
	if err != nil {
		return Result{}, err
	}

	var (
		best     = append([]graph.Edge(nil), cur...)
		bestCost = curCost

		tabu  = make([]Move, 0, o.TabuTenure)
		iters int
		stuck bool
	)
	for iter := 0; iter < o.TabuMaxIterations; iter++ {
		iters++

		inTree := edgeSet(cur)
		deg := graph.Degrees(cur)

		// Exhaustive neighborhood scan: keep the cheapest surviving move,
		// first-enumerated on ties (strict less-than below).
		var (
			found    bool
			pickIdx  int
			pickMove Move
			pickCost float64
		)
		for ti := range cur {
			removed := cur[ti]
			compOf, ok := splitComponents(vertices, cur, ti)
			if !ok {
				continue
			}
			for _, cand := range crossingCandidates(all, inTree, compOf) {
				move := Move{Removed: removed, Added: cand}
				if tabuContains(tabu, move) {
					continue
				}
				if !swapKeepsBounds(deg, bounds, removed, cand) {
					continue
				}
				candCost := round1e9(curCost + wts[cand] - wts[removed])
				if !found || candCost < pickCost {
					found = true
					pickIdx = ti
					pickMove = move
					pickCost = candCost
				}
			}
		}

		if !found {
			// Every move is tabu or infeasible: the search is stuck.
			stuck = true

			break
		}

		// Commit unconditionally, worsening moves included.
		cur = swapped(cur, pickIdx, pickMove.Added)
		curCost = pickCost

		tabu = append(tabu, pickMove)
		if len(tabu) > o.TabuTenure {
			tabu = tabu[1:]
		}

		if curCost < bestCost {
			best = append([]graph.Edge(nil), cur...)
			bestCost = curCost
		}
	}

	return Result{Tree: best, Cost: bestCost, Iterations: iters, Stuck: stuck}, nil
}

// tabuContains reports whether m is in the list. Tenures are small (tens),
// so a linear scan beats any indexed structure here.
func tabuContains(list []Move, m Move) bool {
	for _, t := range list {
		if t == m {
			return true
		}
	}

	return false
}
