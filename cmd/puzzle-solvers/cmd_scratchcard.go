package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"puzzle-solvers/internal/scratchcard"
)

var scratchcardCascade bool // play the card-copy cascade

var scratchcardCmd = &cobra.Command{
	Use:   "scratchcard <file>",
	Short: "Total scratchcard scores or the card-copy cascade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			total int
			err   error
		)

		if scratchcardCascade {
			total, err = scratchcard.TotalCardsFile(args[0])
		} else {
			total, err = scratchcard.TotalScoreFile(args[0])
		}

		if err != nil {
			return err
		}

		fmt.Println(total)

		return nil
	},
}

func init() {
	scratchcardCmd.Flags().BoolVar(&scratchcardCascade, "cascade", false,
		"Count total cards held after the copy cascade instead of doubling scores")
}
