// Package experiment - suite configuration, records, and sentinel errors.
package experiment

import (
	"errors"
	"time"
)

// Sentinel errors for suite loading and execution.
var (
	// ErrNoRuns is returned when a suite declares no run blocks.
	ErrNoRuns = errors.New("experiment: suite has no runs")

	// ErrUnnamedRun is returned when a run block lacks a name.
	ErrUnnamedRun = errors.New("experiment: run without a name")

	// ErrDuplicateRun is returned when two run blocks share a name.
	ErrDuplicateRun = errors.New("experiment: duplicate run name")
)

// RunConfig is one [[run]] block of a suite: an instance recipe plus the
// algorithms to race on it. Zero-valued fields inherit from the suite's
// [defaults] block.
type RunConfig struct {
	// Name identifies the run in records and summaries. Required, unique.
	Name string `toml:"name"`

	// Vertices, EdgeProbability, WeightMin, WeightMax, DegreeBound, and
	// Seed are the instance recipe, with gen package semantics.
	Vertices        int     `toml:"vertices"`
	EdgeProbability float64 `toml:"edge_probability"`
	WeightMin       int     `toml:"weight_min"`
	WeightMax       int     `toml:"weight_max"`
	DegreeBound     int     `toml:"degree_bound"`
	Seed            int64   `toml:"seed"`

	// Algorithms lists solver names (solver.ParseAlgorithm tokens).
	// Empty means every algorithm.
	Algorithms []string `toml:"algorithms"`

	// Repeats is how many instances to draw and solve; repeat r uses
	// effective seed Seed+r. Zero means one.
	Repeats int `toml:"repeats"`
}

// Suite is a TOML experiment declaration: optional defaults plus runs.
type Suite struct {
	Defaults RunConfig   `toml:"defaults"`
	Runs     []RunConfig `toml:"run"`
}

// Record is one solver execution within a suite.
type Record struct {
	// RunID is the UUID of the suite execution that produced the record.
	RunID string

	// Name is the run block's name; Algorithm the solver's canonical name;
	// Repeat the zero-based repeat index.
	Name      string
	Algorithm string
	Repeat    int

	// Vertices and Edges describe the generated instance; DegreeBound and
	// Seed are the effective recipe values of this repeat.
	Vertices    int
	Edges       int
	DegreeBound int
	Seed        int64

	// Cost and TreeEdges describe the returned tree. Feasible reports
	// whether the tree spans the instance within the degree bounds; a
	// solver error (an infeasible exact instance, a partial greedy seed)
	// yields Feasible == false with zero Cost and TreeEdges.
	Cost      float64
	TreeEdges int
	Feasible  bool

	// Elapsed is the wall-clock duration of the solver call alone.
	Elapsed time.Duration
}
