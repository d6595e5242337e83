package root

import (
	"github.com/spf13/cobra"

	"github.com/plico-dev/plico/cmd/plico/grid"
	"github.com/plico-dev/plico/cmd/plico/mapcoloring"
	"github.com/plico-dev/plico/cmd/plico/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plico",
		Short: "Plico is a finite-domain constraint solver",
		Long: `An arc-consistency and backtracking constraint solver library, with
a persistent, structurally-shared problem state for efficient search.`,
	}

	rootCmd.AddCommand(sudoku.NewSudokuCommand())
	rootCmd.AddCommand(mapcoloring.NewMapColoringCommand())
	rootCmd.AddCommand(grid.NewGridCommand())

	return rootCmd
}
