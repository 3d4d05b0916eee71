package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the dcmst CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (solve,
// generate, experiment, render), configures logging based on the --verbose
// flag, and executes the command tree against ctx. Cancelling ctx (for
// example on SIGINT) aborts the running command.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dcmst",
		Short:        "dcmst builds degree-constrained minimum spanning trees",
		Long:         `dcmst generates random weighted graphs, solves the degree-constrained minimum spanning tree problem with exact and heuristic algorithms, and renders the results as Graphviz diagrams.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dcmst %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newExperimentCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
