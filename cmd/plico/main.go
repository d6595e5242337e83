package main

import (
	"fmt"
	"os"

	"github.com/plico-dev/plico/cmd/plico/root"
)

func main() {
	rootCmd := root.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
