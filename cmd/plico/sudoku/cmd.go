package sudoku

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plico-dev/plico/examples/sudoku"
	"github.com/plico-dev/plico/pkg/csp"
)

// demoPuzzle is a standard newspaper-difficulty puzzle with a unique
// solution. The command takes no puzzle file and always solves this one.
var demoPuzzle = sudoku.Puzzle{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func NewSudokuCommand() *cobra.Command {
	var showStats bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a 9x9 Sudoku puzzle",
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

	solved, err := sudoku.Solve(demoPuzzle, opts)
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
