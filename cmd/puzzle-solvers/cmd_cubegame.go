package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"puzzle-solvers/internal/cubegame"
)

var (
	cubegameRed    int
	cubegameGreen  int
	cubegameBlue   int
	cubegamePowers bool // total game powers instead of permitted IDs
)

var cubegameCmd = &cobra.Command{
	Use:   "cubegame <file>",
	Short: "Total permitted cube-game identifiers or game powers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cubegamePowers {
			total, err := cubegame.SumPowersFile(args[0])
			if err != nil {
				return err
			}

			fmt.Println(total)

			return nil
		}

		bag := cubegame.Bag{Red: cubegameRed, Green: cubegameGreen, Blue: cubegameBlue}

		total, err := cubegame.SumPermittedIDsFile(args[0], bag)
		if err != nil {
			return err
		}

		fmt.Println(total)

		return nil
	},
}

func init() {
	cubegameCmd.Flags().IntVar(&cubegameRed, "red", cubegame.ReferenceBag.Red,
		"Red cubes in the bag")
	cubegameCmd.Flags().IntVar(&cubegameGreen, "green", cubegame.ReferenceBag.Green,
		"Green cubes in the bag")
	cubegameCmd.Flags().IntVar(&cubegameBlue, "blue", cubegame.ReferenceBag.Blue,
		"Blue cubes in the bag")
	cubegameCmd.Flags().BoolVar(&cubegamePowers, "powers", false,
		"Total the game powers instead of permitted identifiers")
}
