package grid

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plico-dev/plico/examples/grid"
	"github.com/plico-dev/plico/pkg/csp"
)

func NewGridCommand() *cobra.Command {
	var showStats bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "grid <file>",
		Short: "Solve an NxN Latin-square grid puzzle loaded from a plain-text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, args[0], showStats, verbose)
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "print search statistics after solving")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "trace propagation and search decisions")

	return cmd
}

func solve(cmd *cobra.Command, path string, showStats, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	puzzle, err := grid.Parse(f)
	if err != nil {
		return err
	}

	opts := csp.DefaultOptions()
	if verbose {
		opts.Logger = logrus.StandardLogger()
	}
	if showStats {
		opts.Monitor = csp.NewSolverMonitor()
	}

	solved, err := grid.Solve(puzzle, opts)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution found:", err)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), solved.String())
	if showStats {
		stats := opts.Monitor.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "\nnodes visited: %d, backtracks: %d\n", stats.NodesVisited, stats.Backtracks)
	}
	return nil
}
