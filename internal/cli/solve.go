package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spantree/dcmst/experiment"
	"github.com/spantree/dcmst/gen"
	"github.com/spantree/dcmst/solver"
	"github.com/spantree/dcmst/viz"
)

// instanceOpts holds the generation flags shared by solve and generate.
type instanceOpts struct {
	vertices  int     // number of vertices
	edgeProb  float64 // independent keep probability per candidate edge
	weightMin int     // inclusive lower weight bound
	weightMax int     // inclusive upper weight bound
	degree    int     // uniform degree bound applied to every vertex
	seed      int64   // base random seed (0 selects the fixed default)
	attempts  int     // generation retries before giving up
}

// addInstanceFlags registers the shared generation flags on cmd.
// The defaults mirror gen.DefaultOptions.
func addInstanceFlags(cmd *cobra.Command, o *instanceOpts) {
	cmd.Flags().IntVar(&o.vertices, "vertices", 10, "number of vertices")
	cmd.Flags().Float64Var(&o.edgeProb, "edge-prob", 0.5, "probability of keeping each candidate edge")
	cmd.Flags().IntVar(&o.weightMin, "weight-min", 1, "minimum edge weight (inclusive)")
	cmd.Flags().IntVar(&o.weightMax, "weight-max", 20, "maximum edge weight (inclusive)")
	cmd.Flags().IntVar(&o.degree, "degree", 3, "uniform degree bound")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "random seed (0 uses the fixed default)")
	cmd.Flags().IntVar(&o.attempts, "attempts", 100, "generation attempts before giving up")
}

// options converts the parsed flags into gen options.
func (o *instanceOpts) options() []gen.Option {
	return []gen.Option{
		gen.WithVertices(o.vertices),
		gen.WithEdgeProbability(o.edgeProb),
		gen.WithWeightRange(o.weightMin, o.weightMax),
		gen.WithDegreeBound(o.degree),
		gen.WithSeed(o.seed),
		gen.WithMaxAttempts(o.attempts),
	}
}

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	inst instanceOpts
	algo string // algorithm name, see solver.ParseAlgorithm
	save string // optional JSON path for the generated instance
	dot  string // optional DOT output path for the solved tree
	svg  string // optional SVG output path for the solved tree
}

// newSolveCmd creates the solve command. It generates a random instance,
// runs one algorithm on it, and reports cost, tree size, and elapsed time.
// The solved tree can optionally be written out as DOT or SVG.
func newSolveCmd() *cobra.Command {
	opts := solveOpts{algo: solver.AlgoGreedy.String()}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a random instance and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), &opts)
		},
	}

	addInstanceFlags(cmd, &opts.inst)
	cmd.Flags().StringVarP(&opts.algo, "algo", "a", opts.algo, "algorithm: greedy, exact, local, anneal, tabu")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the generated instance to this JSON file")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the solved tree as DOT to this file")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the solved tree as SVG to this file")

	return cmd
}

// runSolve generates an instance, solves it, and writes any requested
// artifacts. The result line on stdout is stable and machine-readable.
func runSolve(ctx context.Context, opts *solveOpts) error {
	logger := loggerFromContext(ctx)

	algo, err := solver.ParseAlgorithm(opts.algo)
	if err != nil {
		return err
	}

	g, bounds, err := gen.Feasible(opts.inst.options()...)
	if err != nil {
		return err
	}
	logger.Infof("Generated instance: %d vertices, %d edges, degree bound %d",
		g.VertexCount(), g.EdgeCount(), opts.inst.degree)

	p := newProgress(logger)
	res, err := solver.Solve(g, bounds, algo, solver.WithSeed(opts.inst.seed))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Solved with %s: %d iterations", algo, res.Iterations))

	if res.Stuck {
		logger.Warn("Search stopped early: neighborhood exhausted")
	}

	fmt.Printf("algorithm=%s cost=%s edges=%d iterations=%d\n",
		algo, strconv.FormatFloat(res.Cost, 'g', -1, 64), len(res.Tree), res.Iterations)

	if opts.save != "" {
		if err := experiment.SaveInstance(opts.save, experiment.Snapshot(g, bounds)); err != nil {
			return err
		}
		logger.Infof("Generated %s", opts.save)
	}

	return writeArtifacts(logger, viz.TreeDOT(g, res.Tree, bounds), opts.dot, opts.svg)
}
