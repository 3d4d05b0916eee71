package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spantree/dcmst/experiment"
	"github.com/spantree/dcmst/gen"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	inst instanceOpts
	out  string // output JSON path
}

// newGenerateCmd creates the generate command, which draws a random
// instance and saves it as JSON for later solving or rendering.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random instance and save it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), &opts)
		},
	}

	addInstanceFlags(cmd, &opts.inst)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "instance.json", "output file")

	return cmd
}

func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	g, bounds, err := gen.Feasible(opts.inst.options()...)
	if err != nil {
		return err
	}

	if err := experiment.SaveInstance(opts.out, experiment.Snapshot(g, bounds)); err != nil {
		return err
	}
	logger.Infof("Generated %s: %d vertices, %d edges", opts.out, g.VertexCount(), g.EdgeCount())

	return nil
}
