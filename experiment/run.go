// Package experiment - suite execution and timing.
package experiment

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/spantree/dcmst/gen"
	"github.com/spantree/dcmst/graph"
	"github.com/spantree/dcmst/solver"
)

// Runner executes suites. Construct with NewRunner.
type Runner struct {
	logger *log.Logger
}

// NewRunner returns a Runner logging through l; nil falls back to the
// package-level default logger, so a zero-config Runner still reports
// progress.
func NewRunner(l *log.Logger) *Runner {
	if l == nil {
		l = log.Default()
	}

	return &Runner{logger: l}
}

// Run executes every (run, repeat, algorithm) cell of the suite and returns
// the records in execution order: runs in declaration order, repeats
// ascending, algorithms in the run's declared order. The whole execution
// shares one UUID, stamped on every record.
//
// Per (run, repeat): one feasible instance is generated from the effective
// seed (run seed + repeat index), one greedy seed tree is built, and every
// algorithm solves that same instance; the improvement searches start from
// that same greedy tree, and the annealer draws its randomness from the
// effective seed. Repeating a suite therefore reproduces every cost, only
// timings and the UUID change.
//
// Solver errors become infeasible records and a warning, never a suite
// failure. Generation failures abort the run: an instance that cannot reach
// n-1 edges within the retry budget leaves nothing to solve.
func (r *Runner) Run(suite Suite) ([]Record, error) {
	if len(suite.Runs) == 0 {
		return nil, ErrNoRuns
	}

	runID := uuid.NewString()
	r.logger.Info("starting suite", "id", runID, "runs", len(suite.Runs))
	start := time.Now()

	var records []Record
	for _, cfg := range suite.Runs {
		for rep := 0; rep < cfg.Repeats; rep++ {
			recs, err := r.runOnce(runID, cfg, rep)
			if err != nil {
				return nil, fmt.Errorf("experiment: run %q repeat %d: %w", cfg.Name, rep, err)
			}
			records = append(records, recs...)
		}
	}

	r.logger.Info("suite finished",
		"records", len(records),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return records, nil
}

// runOnce executes one (run, repeat) cell: generate, seed, race algorithms.
func (r *Runner) runOnce(runID string, cfg RunConfig, rep int) ([]Record, error) {
	seed := cfg.Seed + int64(rep)

	g, bounds, err := gen.Feasible(
		gen.WithVertices(cfg.Vertices),
		gen.WithEdgeProbability(cfg.EdgeProbability),
		gen.WithWeightRange(cfg.WeightMin, cfg.WeightMax),
		gen.WithDegreeBound(cfg.DegreeBound),
		gen.WithSeed(seed),
	)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("generated instance",
		"run", cfg.Name, "repeat", rep,
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", seed)

	// One greedy seed tree shared by every improvement search of this cell.
	greedySeed, err := solver.Greedy(g, bounds)
	if err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	records := make([]Record, 0, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		algo, perr := solver.ParseAlgorithm(name)
		if perr != nil {
			// Unreachable after suite normalization; keep the suite honest.
			return nil, perr
		}

		startSolve := time.Now()
		res, serr := solver.Solve(g, bounds, algo,
			solver.WithInitial(greedySeed.Tree),
			solver.WithSeed(seed),
		)
		elapsed := time.Since(startSolve)

		rec := Record{
			RunID:       runID,
			Name:        cfg.Name,
			Algorithm:   algo.String(),
			Repeat:      rep,
			Vertices:    g.VertexCount(),
			Edges:       g.EdgeCount(),
			DegreeBound: cfg.DegreeBound,
			Seed:        seed,
			Elapsed:     elapsed,
		}
		switch {
		case serr != nil:
			r.logger.Warn("solver returned no tree",
				"run", cfg.Name, "repeat", rep, "algo", algo.String(), "err", serr)
		default:
			rec.Cost = res.Cost
			rec.TreeEdges = len(res.Tree)
			rec.Feasible = graph.IsSpanningTree(vertices, res.Tree) &&
				graph.RespectsDegreeBounds(res.Tree, bounds)
		}
		records = append(records, rec)

		r.logger.Info("solved",
			"run", cfg.Name, "repeat", rep, "algo", algo.String(),
			"cost", rec.Cost, "feasible", rec.Feasible,
			"elapsed", elapsed.Round(time.Microsecond))
	}

	return records, nil
}
