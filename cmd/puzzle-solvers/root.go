package main

import (
	"github.com/spf13/cobra"

	"puzzle-solvers/internal/logging"
)

var (
	logLevel string // minimum level written to stderr
	logJSON  bool   // emit JSON log records
)

var rootCmd = &cobra.Command{
	Use:   "puzzle-solvers",
	Short: "Solve structured-text puzzles and print their numeric answers",
	Long: `puzzle-solvers reads small structured text documents and computes
numeric answers. Each subcommand is an independent solver; the run
subcommand executes several solvers from a YAML manifest.

Answers go to stdout, logs to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(logging.Config{Level: logLevel, JSON: logJSON})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false,
		"Write log records as JSON")

	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(cubegameCmd)
	rootCmd.AddCommand(schematicCmd)
	rootCmd.AddCommand(scratchcardCmd)
	rootCmd.AddCommand(almanacCmd)
	rootCmd.AddCommand(runCmd)
}
