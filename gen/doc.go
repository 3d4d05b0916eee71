// Package gen produces random DC-MST instances: an Erdős–Rényi graph with
// integer weights and a uniform per-vertex degree bound.
//
// What
//
//   - Instance: one G(n, p) draw. Vertices are 0..n-1; each unordered pair
//     (i, j), i < j, carries an edge with probability p; accepted edges get
//     a uniform integer weight in [WeightMin, WeightMax].
//   - Feasible: retries Instance until the draw has at least n-1 edges, the
//     necessary (not sufficient) precondition for a spanning tree to exist.
//     Gives up after MaxAttempts with ErrRetriesExhausted.
//
// Determinism
//
//	All randomness flows from Options.Seed (0 selects the fixed default
//	stream). Pairs are visited in ascending (i, j) order and the weight draw
//	happens immediately after an accepted membership draw, so a fixed seed
//	reproduces the instance bit for bit. Feasible keeps determinism across
//	retries by deriving an independent per-attempt seed from the base seed;
//	its first attempt uses the base seed verbatim, so a draw that succeeds
//	immediately equals Instance with the same options.
//
// Usage
//
//	g, bounds, err := gen.Feasible(
//	    gen.WithVertices(12),
//	    gen.WithEdgeProbability(0.4),
//	    gen.WithWeightRange(1, 20),
//	    gen.WithDegreeBound(3),
//	    gen.WithSeed(42),
//	)
//
// Errors
//
//   - ErrBadVertexCount     vertex count below 1.
//   - ErrBadProbability     edge probability outside [0, 1].
//   - ErrBadWeightRange     negative minimum or max below min.
//   - ErrBadDegreeBound     degree bound below 1.
//   - ErrBadAttempts        retry budget below 1.
//   - ErrRetriesExhausted   no attempt reached n-1 edges.
package gen
