// Package main provides the CLI entrypoint for puzzle-solvers.
//
// puzzle-solvers is a batch puzzle toolkit:
//   - One subcommand per solver, each reading one structured text document
//   - Answers on stdout, logs on stderr
//   - A YAML run manifest for executing several solvers in one go
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
