// Package solver implements the five DC-MST solving strategies behind a
// single dispatcher: exact enumeration, greedy construction, local search,
// simulated annealing, and tabu search.
//
// What
//
//   - Exact(g, bounds): enumerate every (|V|-1)-edge combination, filter by
//     acyclicity and degree feasibility, return the global optimum or
//     ErrInfeasible. Exponential; small instances only.
//   - Greedy(g, bounds): Kruskal-style degree-bounded construction. Returns
//     one feasible tree, possibly partial when the bounds block completion;
//     callers check len(Result.Tree) against |V|-1.
//   - LocalSearch(g, bounds, initial): deterministic first-improvement
//     edge-swap hill climbing from a spanning seed tree.
//   - Anneal(g, bounds, initial, opts...): stochastic single-swap search
//     with Metropolis acceptance and geometric cooling.
//   - TabuSearch(g, bounds, initial, opts...): exhaustive best-improvement
//     swaps with a fixed-tenure recency queue of forbidden moves.
//   - Solve(g, bounds, algo, opts...): enum-dispatched entry point; seeds
//     the three improvement searches with Greedy when no initial tree is
//     supplied.
//
// Neighborhood
//
//	All three improvement searches share the single-edge-swap neighborhood:
//	removing one tree edge splits the tree into exactly two components, and
//	any non-tree graph edge with one endpoint in each component restores a
//	spanning tree. Candidate trees are built copy-and-modify; a solver never
//	mutates a tree it did not allocate, so concurrent solver invocations on
//	shared inputs are safe.
//
// Determinism
//
//	Greedy, Exact, LocalSearch, and TabuSearch are fully deterministic:
//	scan orders derive from the graph's edge insertion order and ascending
//	vertex order, and ties keep the first candidate encountered. Anneal
//	consumes randomness only from a rand.Rand built from Options.Seed, so a
//	fixed seed replays the identical decision sequence.
//
// Costs
//
//	Weights are non-negative float64. Running costs are maintained by swap
//	deltas and stabilized to 1e-9 after every commit, so repeated runs and
//	platforms agree on returned costs.
//
// Usage
//
//	res, err := solver.Solve(g, bounds, solver.AlgoTabu,
//	    solver.WithTabuTenure(20),
//	    solver.WithTabuIterations(5000),
//	)
//	if err != nil { ... }
//	// res.Tree, res.Cost, res.Iterations, res.Stuck
//
// Errors
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrNoVertices        if the graph has an empty vertex set.
//   - ErrMissingBound      if a vertex has no degree bound.
//   - ErrBadBound          if a degree bound is not positive.
//   - ErrInfeasible        if exhaustive enumeration finds no feasible tree
//     (Exact only; the other solvers return their best effort instead).
//   - ErrNoInitialTree     if an improvement search's seed is not a
//     spanning tree of the graph.
//   - ErrUnknownAlgorithm  if Solve receives an algorithm outside the enum.
//   - ErrOptionViolation   if an option carries an out-of-domain value.
//
// A tabu search that exhausts its neighborhood reports Result.Stuck == true;
// that is an ordinary early termination, not an error.
package solver
