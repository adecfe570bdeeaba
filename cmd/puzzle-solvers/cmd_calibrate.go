package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"puzzle-solvers/internal/calibrate"
)

var calibrateWords bool // count spelled-out digits too

var calibrateCmd = &cobra.Command{
	Use:   "calibrate <file>",
	Short: "Total the calibration values of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := calibrate.TotalFile(args[0], calibrateWords)
		if err != nil {
			return err
		}

		fmt.Println(total)

		return nil
	},
}

func init() {
	calibrateCmd.Flags().BoolVar(&calibrateWords, "words", false,
		"Count spelled-out digits (one..nine) as digits")
}
