package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"puzzle-solvers/internal/schematic"
)

var schematicGears bool // total gear ratios instead of part numbers

var schematicCmd = &cobra.Command{
	Use:   "schematic <file>",
	Short: "Total the part numbers or gear ratios of an engine schematic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			total int
			err   error
		)

		if schematicGears {
			total, err = schematic.SumGearRatiosFile(args[0])
		} else {
			total, err = schematic.SumPartNumbersFile(args[0])
		}

		if err != nil {
			return err
		}

		fmt.Println(total)

		return nil
	},
}

func init() {
	schematicCmd.Flags().BoolVar(&schematicGears, "gears", false,
		"Total the gear ratios instead of part numbers")
}
