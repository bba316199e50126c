// Package main applies the save-slot schema migrations to PostgreSQL.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/colony/internal/config"
)

type migrateFlags struct {
	configPath string
	source     string
	steps      int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &migrateFlags{}
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the save_slots schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a configuration file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&flags.source, "source", "file://migrations", "migration source URL")
	root.PersistentFlags().IntVar(&flags.steps, "steps", 0, "number of steps (0 = all)")

	for _, dir := range []string{"up", "down"} {
		root.AddCommand(&cobra.Command{
			Use:   dir,
			Short: "Migrate " + dir,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, dir, flags)
			},
		})
	}
	return root
}

// stepsFor converts the direction and step flag into a migrate.Steps count;
// 0 means apply everything.
func stepsFor(direction string, steps int) int {
	if direction == "down" {
		return -steps
	}
	return steps
}

func run(cmd *cobra.Command, direction string, flags *migrateFlags) error {
	start := time.Now()
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m, err := migrate.New(flags.source, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	switch n := stepsFor(direction, flags.steps); {
	case n != 0:
		err = m.Steps(n)
	case direction == "down":
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, _ := m.Version()
	out := cmd.OutOrStdout()
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintf(out, "no changes (version=%d dirty=%v) [%s]\n", version, dirty, time.Since(start))
		return nil
	}
	fmt.Fprintf(out, "migrated %s to version=%d dirty=%v [%s]\n", direction, version, dirty, time.Since(start))
	return nil
}
