// Package main is the colony command: play a game file, validate one, or
// convert between the YAML world format and the flat game-file format.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags bind to a fresh playFlags so
// tests can run the tree more than once.
func newRootCmd() *cobra.Command {
	flags := &playFlags{}
	root := &cobra.Command{
		Use:   "colony <game_data_file>",
		Short: "Play the anthill text adventure",
		Long: `colony loads a game data file (flat game file or YAML world) and runs
the turn loop on standard input and output until EXIT, end of input or
the death of every player.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args[0], flags)
		},
	}
	root.Flags().BoolVarP(&flags.deterministic, "deterministic", "d", false, "seed the random source for reproducible games")
	root.Flags().StringVarP(&flags.recentLog, "log", "l", "", "append each command to this recent-action log file")
	root.Flags().IntVar(&flags.maxTurns, "max-turns", 0, "stop after this many commands (0 = unlimited)")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a configuration file (defaults apply when empty)")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newConvertCmd())
	return root
}
