package mapcoloring

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plico-dev/plico/examples/mapcoloring"
	"github.com/plico-dev/plico/pkg/csp"
)

func NewMapColoringCommand() *cobra.Command {
	var showStats bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mapcoloring",
		Short: "Colour the Australia mainland map with a 3-colour palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, showStats, verbose)
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "print search statistics after solving")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "trace propagation and search decisions")

	return cmd
}

func solve(cmd *cobra.Command, showStats, verbose bool) error {
	opts := csp.DefaultOptions()
	if verbose {
		opts.Logger = logrus.StandardLogger()
	}
	if showStats {
		opts.Monitor = csp.NewSolverMonitor()
	}

	coloring, err := mapcoloring.Solve(mapcoloring.DefaultPalette(), opts)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no colouring found:", err)
		return nil
	}

	for _, region := range mapcoloring.Regions {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", region, coloring[region])
	}
	if showStats {
		stats := opts.Monitor.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "\nnodes visited: %d, backtracks: %d\n", stats.NodesVisited, stats.Backtracks)
	}
	return nil
}
