// Package gen - Erdős–Rényi instance construction.
package gen

import "github.com/spantree/dcmst/graph"

// Instance generates one G(n, p) draw: a graph on vertices 0..n-1 together
// with the uniform degree-bound map. The draw may be disconnected or too
// sparse to span; use Feasible when the edge-count precondition matters.
//
// Complexity: O(n^2) pair trials.
func Instance(opts ...Option) (*graph.Graph, graph.DegreeBounds, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, nil, err
	}

	return build(o, o.Seed)
}

// Feasible generates a draw with at least n-1 edges, retrying up to
// MaxAttempts times. The first attempt uses the base seed verbatim; each
// retry runs on an independent stream derived from the base seed and the
// attempt number, so the whole loop is reproducible. Returns
// ErrRetriesExhausted when every attempt comes up short.
//
// At least n-1 edges is necessary for a spanning tree but not sufficient;
// solvers still decide connectivity and degree feasibility downstream.
//
// Complexity: O(MaxAttempts · n^2) worst case.
func Feasible(opts ...Option) (*graph.Graph, graph.DegreeBounds, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, nil, err
	}

	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		seed := o.Seed
		if attempt > 0 {
			seed = deriveSeed(o.Seed, uint64(attempt))
		}

		g, bounds, berr := build(o, seed)
		if berr != nil {
			return nil, nil, berr
		}
		if g.EdgeCount() >= o.Vertices-1 {
			return g, bounds, nil
		}
	}

	return nil, nil, ErrRetriesExhausted
}

// build materializes one draw from the given seed. Pairs are visited in
// ascending (i, j) order and the weight draw follows immediately after an
// accepted membership draw; this fixed consumption order is what makes a
// seed reproduce the instance exactly.
func build(o Options, seed int64) (*graph.Graph, graph.DegreeBounds, error) {
	rng := rngFromSeed(seed)

	g := graph.New()
	for v := 0; v < o.Vertices; v++ {
		g.AddVertex(v)
	}

	span := o.WeightMax - o.WeightMin + 1
	for i := 0; i < o.Vertices; i++ {
		for j := i + 1; j < o.Vertices; j++ {
			if rng.Float64() >= o.EdgeProbability {
				continue
			}
			w := float64(o.WeightMin + rng.Intn(span))
			if err := g.AddEdge(i, j, w); err != nil {
				// Unreachable for a well-formed draw.
				return nil, nil, err
			}
		}
	}

	return g, graph.UniformBounds(g.Vertices(), o.DegreeBound), nil
}
