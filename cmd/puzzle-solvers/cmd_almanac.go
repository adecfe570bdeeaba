package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"puzzle-solvers/internal/almanac"
)

var almanacRanges bool // read the seeds line as (start, length) pairs

var almanacCmd = &cobra.Command{
	Use:   "almanac <file>",
	Short: "Propagate seeds through the almanac mapping pipeline",
	Long: `Reads an almanac document and prints the minimum value reachable
after the final mapping stage.

By default every number on the seeds line is an independent seed. With
--ranges the numbers are read in (start, length) pairs and whole ranges
are propagated, splitting at rule boundaries instead of enumerating
individual values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := almanac.SeedScalars
		if almanacRanges {
			mode = almanac.SeedRanges
		}

		answer, err := almanac.SolveFile(args[0], mode)
		if err != nil {
			return err
		}

		slog.Info("almanac solved", "file", args[0], "mode", mode)
		fmt.Println(answer)

		return nil
	},
}

func init() {
	almanacCmd.Flags().BoolVar(&almanacRanges, "ranges", false,
		"Read seed values as (start, length) pairs")
}
