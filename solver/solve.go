// Package solver - unified dispatcher for the DC-MST solvers.
package solver

import "github.com/spantree/dcmst/graph"

// Solve validates options and routes to the solver selected by algo.
//
// The three improvement searches need a spanning seed tree. When
// Options.Initial is nil, Solve builds one with Greedy; if the bounds stop
// Greedy short of |V|-1 edges, the downstream seed validation fails with
// ErrNoInitialTree (a greedy failure does not prove the instance infeasible,
// so Solve does not claim ErrInfeasible). A caller-supplied Initial is used
// as-is; the slice is copied, never mutated.
//
// Errors: ErrUnknownAlgorithm for an algo outside the enum, plus whatever
// the routed solver returns; see types.go.
//
// Complexity: per routed algorithm; the optional greedy seed adds
// O(E log E).
func Solve(g *graph.Graph, bounds graph.DegreeBounds, algo Algorithm, opts ...Option) (Result, error) {
	o, err := apply(opts)
	if err != nil {
		return Result{}, err
	}

	switch algo {
	case AlgoGreedy:
		return Greedy(g, bounds)

	case AlgoExact:
		return Exact(g, bounds)

	case AlgoLocalSearch, AlgoAnneal, AlgoTabu:
		initial := o.Initial
		if initial == nil {
			seed, serr := Greedy(g, bounds)
			if serr != nil {
				return Result{}, serr
			}
			initial = seed.Tree
		}

		switch algo {
		case AlgoLocalSearch:
			return LocalSearch(g, bounds, initial)
		case AlgoAnneal:
			return Anneal(g, bounds, initial, opts...)
		default:
			return TabuSearch(g, bounds, initial, opts...)
		}

	default:
		return Result{}, ErrUnknownAlgorithm
	}
}
