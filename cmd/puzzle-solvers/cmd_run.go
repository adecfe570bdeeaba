package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"puzzle-solvers/internal/manifest"
)

var runCmd = &cobra.Command{
	Use:   "run <manifest.yaml>",
	Short: "Execute every solver run listed in a YAML manifest",
	Long: `Loads a YAML run manifest and executes its solver runs in order,
printing one "<solver> <answer>" line per run.

Example manifest:

  version: "1"
  runs:
    - solver: almanac
      input: data/almanac.txt
      options:
        ranges: true
    - solver: calibrate
      input: data/calibration.txt
      options:
        words: true`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.LoadFile(args[0])
		if err != nil {
			return err
		}

		slog.Info("manifest loaded", "path", args[0], "runs", len(m.Runs))

		for _, run := range m.Runs {
			answer, err := run.Execute()
			if err != nil {
				return fmt.Errorf("run %s on %s: %w", run.Solver, run.Input, err)
			}

			fmt.Printf("%s %d\n", run.Solver, answer)
		}

		return nil
	},
}
