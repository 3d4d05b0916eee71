// Package solver - simulated annealing over the edge-swap neighborhood.
package solver

import (
	"math"

	"github.com/spantree/dcmst/graph"
)

// Anneal runs simulated annealing from a spanning seed tree.
//
// Per iteration:
//  1. Pick a tree edge uniformly at random and remove it, splitting the
//     tree in two; pick uniformly at random one non-tree edge crossing the
//     split. When no crossing candidate exists the iteration is a no-op,
//     but the temperature still cools and the iteration still counts.
//  2. Discard the neighbor before cost evaluation if it violates a degree
//     bound (a wasted iteration, not a Metropolis rejection).
//  3. Accept a cheaper neighbor unconditionally; accept a worse one with
//     probability exp(-delta/T) against a uniform draw.
//  4. Multiply the temperature by CoolingRate regardless of the outcome.
//
// The walk ends when the temperature falls to MinTemperature or below, or
// when AnnealMaxIterations is reached, whichever happens first. The return
// value is the best-ever tree seen, not the final state of the walk, which
// may have wandered somewhere worse.
//
// All randomness comes from a generator seeded by Options.Seed, so a fixed
// seed replays the identical decision sequence (Seed 0 selects the fixed
// default stream). Repeated calls with equal inputs and options return
// identical results.
//
// Error conditions: ErrNilGraph, ErrNoVertices, ErrMissingBound, ErrBadBound,
// ErrNoInitialTree, ErrOptionViolation, and graph.ErrEdgeNotFound for a seed
// edge foreign to g.
//
// Result.Iterations reports executed iterations, wasted ones included.
//
// Complexity: O(I · (V + E)) for I iterations. Memory: O(V + E).
func Anneal(g *graph.Graph, bounds graph.DegreeBounds, initial []graph.Edge, opts ...Option) (Result, error) {
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
		rng    = rngFromSeed(o.Seed)
		inTree = edgeSet(cur)
		deg    = graph.Degrees(cur)

		best     = append([]graph.Edge(nil), cur...)
		bestCost = curCost

		temp  = o.InitialTemperature
		iters int
	)
	for iter := 0; iter < o.AnnealMaxIterations && temp > o.MinTemperature; iter++ {
		iters++

		ti := rng.Intn(len(cur))
		removed := cur[ti]

		compOf, ok := splitComponents(vertices, cur, ti)
		if ok {
			cands := crossingCandidates(all, inTree, compOf)
			if len(cands) > 0 {
				cand := cands[rng.Intn(len(cands))]
				if swapKeepsBounds(deg, bounds, removed, cand) {
					delta := wts[cand] - wts[removed]
					// Metropolis rule; the uniform draw happens only on the
					// worsening branch, keeping the stream replayable.
					if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
						cur = swapped(cur, ti, cand)
						curCost = round1e9(curCost + delta)
						delete(inTree, removed)
						inTree[cand] = true
						deg[removed.U]--
						deg[removed.V]--
						deg[cand.U]++
						deg[cand.V]++

						if curCost < bestCost {
							best = append([]graph.Edge(nil), cur...)
							bestCost = curCost
						}
					}
				}
			}
		}

		// Cooling is unconditional: no-op and discarded iterations cool too.
		temp *= o.CoolingRate
	}

	return Result{Tree: best, Cost: bestCost, Iterations: iters}, nil
}
