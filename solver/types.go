// Package solver - algorithm enum, options, results, and sentinel errors.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/spantree/dcmst/graph"
)

// Sentinel errors for solver execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrNoVertices is returned if the graph has an empty vertex set.
	ErrNoVertices = errors.New("solver: graph has no vertices")

	// ErrMissingBound is returned when the degree-bound map does not cover
	// every vertex of the graph.
	ErrMissingBound = errors.New("solver: degree bound missing for vertex")

	// ErrBadBound is returned when a degree bound is zero or negative.
	ErrBadBound = errors.New("solver: degree bound must be positive")

	// ErrInfeasible is returned by Exact when exhaustive enumeration yields
	// no spanning tree satisfying the degree bounds.
	ErrInfeasible = errors.New("solver: no feasible spanning tree exists")

	// ErrNoInitialTree is returned by the improvement searches when the
	// supplied seed is not a spanning tree of the graph.
	ErrNoInitialTree = errors.New("solver: initial tree missing or not spanning")

	// ErrUnknownAlgorithm is returned by Solve and ParseAlgorithm for an
	// algorithm outside the closed enum.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Algorithm selects one of the five solving strategies. The set is closed;
// Solve rejects values outside it with ErrUnknownAlgorithm.
type Algorithm int

const (
	// AlgoGreedy is the degree-bounded Kruskal-style constructor.
	AlgoGreedy Algorithm = iota
	// AlgoExact is the exhaustive combination enumerator.
	AlgoExact
	// AlgoLocalSearch is first-improvement edge-swap hill climbing.
	AlgoLocalSearch
	// AlgoAnneal is simulated annealing with Metropolis acceptance.
	AlgoAnneal
	// AlgoTabu is best-improvement search with a recency tabu list.
	AlgoTabu
)

// String returns the canonical lowercase name of the algorithm, the same
// token ParseAlgorithm accepts.
func (a Algorithm) String() string {
	switch a {
	case AlgoGreedy:
		return "greedy"
	case AlgoExact:
		return "exact"
	case AlgoLocalSearch:
		return "local"
	case AlgoAnneal:
		return "anneal"
	case AlgoTabu:
		return "tabu"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name to its Algorithm. Accepted tokens are the
// String() forms plus the common long spellings.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "greedy":
		return AlgoGreedy, nil
	case "exact":
		return AlgoExact, nil
	case "local", "local-search":
		return AlgoLocalSearch, nil
	case "anneal", "annealing":
		return AlgoAnneal, nil
	case "tabu", "tabu-search":
		return AlgoTabu, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Algorithms returns all members of the enum in dispatch order. Useful for
// harnesses that iterate every solver over one instance.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoGreedy, AlgoExact, AlgoLocalSearch, AlgoAnneal, AlgoTabu}
}

// Move is a single neighborhood transition: one tree edge out, one crossing
// non-tree edge in. Moves are tabu-list entries; they are not persisted
// beyond a search run.
type Move struct {
	Removed graph.Edge
	Added   graph.Edge
}

// Result is the outcome of a solver run.
type Result struct {
	// Tree is the edge set of the returned solution. Greedy may return
	// fewer than |V|-1 edges when the bounds block completion; every other
	// solver returns a spanning tree or an error.
	Tree []graph.Edge

	// Cost is the total weight of Tree, stabilized to 1e-9.
	Cost float64

	// Iterations reports search effort: committed moves for LocalSearch,
	// executed iterations for Anneal and TabuSearch, candidate combinations
	// examined for Exact. Zero for Greedy.
	Iterations int

	// Stuck is set by TabuSearch when the neighborhood was exhausted before
	// the iteration cap: no non-tabu degree-feasible move existed. A normal
	// early termination, distinguishable from cap exhaustion.
	Stuck bool
}

// Option configures solver behavior via functional arguments.
// An out-of-domain value (e.g. a cooling rate outside (0,1)) is recorded
// internally and surfaced as ErrOptionViolation when the solver runs.
type Option func(*Options)

// Options holds the tunable parameters of the stochastic and memory-based
// searches. Exact, Greedy, and LocalSearch take no parameters and ignore it.
type Options struct {
	// Seed feeds the annealer's random source. Seed == 0 selects a fixed
	// default stream, so the zero value is still fully reproducible.
	Seed int64

	// InitialTemperature is the annealing start temperature, > 0.
	InitialTemperature float64

	// CoolingRate multiplies the temperature every iteration, in (0, 1).
	CoolingRate float64

	// MinTemperature ends annealing once the temperature falls to or below
	// it, > 0.
	MinTemperature float64

	// AnnealMaxIterations caps annealing iterations. 0 returns the seed
	// tree untouched.
	AnnealMaxIterations int

	// TabuTenure is the tabu-list capacity: how many of the most recent
	// moves are forbidden from immediate repetition. 0 forbids nothing,
	// turning tabu search into a strict best-improvement walker.
	TabuTenure int

	// TabuMaxIterations caps tabu iterations. 0 returns the seed tree.
	TabuMaxIterations int

	// Initial is the seed tree Solve hands to the improvement searches.
	// Nil lets Solve construct one with Greedy. The slice is read, copied,
	// and never mutated.
	Initial []graph.Edge

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the parameter set the searches were tuned with:
//
//	Seed                = 0     (fixed default stream)
//	InitialTemperature  = 1000
//	CoolingRate         = 0.995
//	MinTemperature      = 1e-3
//	AnnealMaxIterations = 10000
//	TabuTenure          = 20
//	TabuMaxIterations   = 5000
func DefaultOptions() Options {
	return Options{
		Seed:                0,
		InitialTemperature:  1000,
		CoolingRate:         0.995,
		MinTemperature:      1e-3,
		AnnealMaxIterations: 10000,
		TabuTenure:          20,
		TabuMaxIterations:   5000,
		Initial:             nil,
		err:                 nil,
	}
}

// WithSeed fixes the random stream of the annealer. Seed 0 keeps the
// default stream; any other value selects an independent one.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithInitialTemperature sets the annealing start temperature (> 0).
func WithInitialTemperature(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || t <= 0 {
			o.err = fmt.Errorf("%w: InitialTemperature must be > 0 (%v)", ErrOptionViolation, t)

			return
		}
		o.InitialTemperature = t
	}
}

// WithCoolingRate sets the per-iteration temperature multiplier, which must
// lie strictly inside (0, 1).
func WithCoolingRate(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || r <= 0 || r >= 1 {
			o.err = fmt.Errorf("%w: CoolingRate must be in (0,1) (%v)", ErrOptionViolation, r)

			return
		}
		o.CoolingRate = r
	}
}

// WithMinTemperature sets the temperature floor (> 0) that ends annealing.
func WithMinTemperature(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || t <= 0 {
			o.err = fmt.Errorf("%w: MinTemperature must be > 0 (%v)", ErrOptionViolation, t)

			return
		}
		o.MinTemperature = t
	}
}

// WithAnnealIterations caps annealing iterations. 0 is an explicit
// "return the seed"; negative values are invalid.
func WithAnnealIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: AnnealMaxIterations cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.AnnealMaxIterations = n
	}
}

// WithTabuTenure sets the tabu-list capacity. 0 disables the memory
// entirely; negative values are invalid.
func WithTabuTenure(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TabuTenure cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.TabuTenure = n
	}
}

// WithTabuIterations caps tabu-search iterations. 0 is an explicit
// "return the seed"; negative values are invalid.
func WithTabuIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TabuMaxIterations cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.TabuMaxIterations = n
	}
}

// WithInitial supplies the seed tree Solve routes to the improvement
// searches, bypassing the greedy constructor. The tree must span the graph;
// the searches validate and reject it with ErrNoInitialTree otherwise.
func WithInitial(tree []graph.Edge) Option {
	return func(o *Options) {
		o.Initial = tree
	}
}

// apply folds opts over DefaultOptions and surfaces any recorded violation.
func apply(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
