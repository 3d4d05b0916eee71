// Package dcmst is a toolkit for the Degree-Constrained Minimum Spanning
// Tree problem (DC-MST): find a spanning tree of minimum total weight in
// which no vertex exceeds its prescribed maximum degree.
//
// DC-MST is NP-hard, so the module ships one exact solver and a ladder of
// heuristics, all operating on the same instance model:
//
//	graph/      instance primitives: vertices, edges, symmetric weight
//	            lookup, degree bounds, connectivity and feasibility checks
//	dsu/        disjoint-set (union-find) used for cycle detection
//	solver/     the five strategies behind one dispatcher: exact
//	            enumeration, greedy construction, local search,
//	            simulated annealing, tabu search
//	gen/        seeded Erdős–Rényi instance generation
//	experiment/ suite runner: timing, CSV records, aggregate statistics
//	viz/        DOT export and SVG rendering of instances and trees
//
// Every stochastic component takes an explicit seed; a fixed seed replays
// the exact same sequence of decisions, which keeps experiments and tests
// reproducible.
//
// Quick start:
//
//	g := graph.New()
//	g.AddVertices(0, 1, 2, 3)
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(2, 3, 1)
//	g.AddEdge(0, 3, 10)
//	bounds := graph.UniformBounds(g.Vertices(), 2)
//
//	res, err := solver.Solve(g, bounds, solver.AlgoExact)
//	// res.Tree holds the optimal tree, res.Cost its total weight.
//
// The command-line front end lives under cmd/dcmst.
package dcmst
