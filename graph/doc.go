// Package graph provides the instance model shared by every DC-MST solver:
// vertices, undirected weighted edges, per-vertex degree bounds, and the
// traversal/feasibility utilities the search algorithms lean on.
//
// What
//
//   - Graph: a finite vertex set, an edge list in insertion order, and a
//     symmetric weight lookup keyed by unordered vertex pair.
//   - Edge: an unordered pair of distinct vertices, canonicalized so U < V.
//     At most one edge exists per pair; self-loops are rejected.
//   - DegreeBounds: vertex → maximum allowed degree in a candidate tree.
//   - Utilities: adjacency construction, BFS connectivity and component
//     queries, degree accounting, streaming degree-bound checks, spanning
//     tree validation, and total cost of an edge subset.
//
// Why
//
//	Every solver (exact enumeration, greedy construction, local search,
//	simulated annealing, tabu search) evaluates feasibility and cost of
//	candidate trees in its inner loop, up to millions of times per run.
//	Centralizing those primitives keeps the solvers small and keeps their
//	behavior identical where it must be (a tree that one solver accepts as
//	feasible is feasible for all of them).
//
// Determinism
//
//	Edges() returns edges in insertion order and Vertices() returns vertex
//	IDs in ascending order. Solvers that scan either sequence therefore
//	behave identically across runs on the same instance, which the test
//	suite and the experiment harness rely on.
//
// Usage
//
//	g := graph.New()
//	g.AddVertices(0, 1, 2, 3)
//	if err := g.AddEdge(0, 1, 1); err != nil { ... }
//	if err := g.AddEdge(1, 2, 1); err != nil { ... }
//
//	bounds := graph.UniformBounds(g.Vertices(), 2)
//	cost, err := g.TotalCost(g.Edges())
//
// Errors
//
//   - ErrVertexNotFound   if an edge endpoint was never added as a vertex.
//   - ErrLoopNotAllowed   if an edge would connect a vertex to itself.
//   - ErrDuplicateEdge    if the unordered pair already carries an edge.
//   - ErrBadWeight        if a weight is negative, NaN, or infinite.
//   - ErrEdgeNotFound     if a weight lookup misses (the edge does not
//     originate from this graph; a caller bug).
package graph
