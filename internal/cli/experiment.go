package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/spantree/dcmst/experiment"
)

// experimentOpts holds the command-line flags for the experiment command.
type experimentOpts struct {
	config  string // TOML suite path
	out     string // CSV output path
	summary bool   // print per-algorithm aggregates to stdout
}

// newExperimentCmd creates the experiment command. It loads a TOML suite,
// runs every configured (run, algorithm, repeat) cell, and writes one CSV
// row per cell. With --summary it also prints aggregate statistics.
func newExperimentCmd() *cobra.Command {
	opts := experimentOpts{}

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run a benchmark suite from a TOML config and write CSV results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "suite.toml", "suite configuration file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "results.csv", "CSV output file")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print per-algorithm aggregates")

	return cmd
}

func runExperiment(ctx context.Context, opts *experimentOpts) error {
	logger := loggerFromContext(ctx)

	suite, err := experiment.LoadSuite(opts.config)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %d runs", opts.config, len(suite.Runs))

	p := newProgress(logger)
	records, err := experiment.NewRunner(logger).Run(suite)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Collected %d records", len(records)))

	out, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := experiment.WriteCSV(out, records); err != nil {
		return err
	}
	logger.Infof("Generated %s", opts.out)

	if opts.summary {
		return printSummary(os.Stdout, experiment.Summarize(records))
	}

	return nil
}

// printSummary writes the aggregate table in aligned columns. Cost columns
// show "-" for groups with no feasible results.
func printSummary(w io.Writer, summaries []experiment.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tALGORITHM\tRUNS\tFEASIBLE\tMEAN COST\tMIN COST\tMEAN TIME\tSTDDEV")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			s.Name, s.Algorithm, s.Count, s.Feasible,
			fmtCost(s.MeanCost), fmtCost(s.MinCost),
			s.MeanElapsed.Round(time.Microsecond), s.StdDevElapsed.Round(time.Microsecond))
	}

	return tw.Flush()
}

func fmtCost(c float64) string {
	if math.IsNaN(c) {
		return "-"
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}
