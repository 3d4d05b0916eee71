// Package experiment drives solver benchmarking suites: generate instances,
// run the requested algorithms, time them, and persist tabular results.
//
// A Suite is declared in TOML as a list of [[run]] blocks, each naming an
// instance recipe (vertex count, edge probability, weight range, degree
// bound, seed), the algorithms to race, and a repeat count. An optional
// [defaults] block fills fields a run leaves unset:
//
//	[defaults]
//	vertices         = 12
//	edge_probability = 0.5
//	weight_min       = 1
//	weight_max       = 20
//	degree_bound     = 3
//	repeats          = 3
//
//	[[run]]
//	name       = "sparse"
//	seed       = 42
//	algorithms = ["greedy", "local", "anneal", "tabu"]
//
//	[[run]]
//	name             = "dense-tight"
//	edge_probability = 0.8
//	degree_bound     = 2
//	seed             = 7
//
// The Runner generates one feasible instance per (run, repeat), builds a
// greedy seed tree once, and hands the same instance and seed tree to every
// algorithm, so their records are directly comparable. Wall-clock time is
// measured around each solver call only. Every record carries the suite
// execution's UUID, so rows from separate executions can share a file.
//
// Repeat r of a run executes with effective seed Seed+r, and that seed also
// drives the annealer, so a suite replays identically apart from timings.
//
// A solver error is recorded as an infeasible row, never a suite failure:
// an exact solver proving infeasibility is a result, not a crash.
//
// Results are written as CSV (WriteCSV/ReadCSV round-trip losslessly) and
// aggregated per (run, algorithm) by Summarize: mean and minimum cost over
// feasible rows, mean and standard deviation of elapsed time. Instances can
// be snapshotted to JSON (Snapshot/Build, SaveInstance/LoadInstance) for
// replay outside a suite.
package experiment
