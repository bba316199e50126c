package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/dice"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/game/world"
	"github.com/cory-johannsen/colony/internal/storage"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <game_data_file>",
		Short: "Load a game file and report its registry counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadWorld(args[0])
			if err != nil {
				return fmt.Errorf("loading %q: %w", args[0], err)
			}
			g, err := state.FromDefinition(def, dice.NewLoggedRoller(dice.NewCryptoSource(), zap.NewNop()))
			if err != nil {
				return fmt.Errorf("building %q: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "spaces: %d\n", g.NumSpaces())
			fmt.Fprintf(out, "links: %d\n", g.NumLinks())
			fmt.Fprintf(out, "objects: %d\n", g.NumObjects())
			fmt.Fprintf(out, "characters: %d\n", g.NumCharacters())
			fmt.Fprintf(out, "players: %d\n", g.NumPlayers())
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between a YAML world and a flat game file",
		Long: `convert reads a YAML world or a flat game file and writes the other
format. An output ending in .yaml or .yml is written as YAML; anything
else is written as a flat game file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadWorld(args[0])
			if err != nil {
				return fmt.Errorf("loading %q: %w", args[0], err)
			}
			if err := def.Validate(); err != nil {
				return fmt.Errorf("invalid world %q: %w", args[0], err)
			}

			var data []byte
			switch strings.ToLower(filepath.Ext(args[1])) {
			case ".yaml", ".yml":
				data, err = world.MarshalYAML(def)
			default:
				data, err = storage.EncodeBytes(def)
			}
			if err != nil {
				return fmt.Errorf("encoding %q: %w", args[1], err)
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("writing %q: %w", args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
			return nil
		},
	}
}
