package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/flightdeck/internal/config"
	"github.com/example/flightdeck/internal/db"
)

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	var reset bool
	var seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialise the database",
		Long: `Create the flightdeck database schema. Idempotent: running init on an
existing database is safe.

Examples:
  flightdeck init --seed          # fresh install with fixture data
  flightdeck init --reset --seed  # drop everything and start over`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.DefaultDir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if err := config.Save(dir, cfg); err != nil {
				return err
			}

			path := cfg.Database.Path
			if reset {
				if err := db.Reset(path); err != nil {
					return err
				}
			}

			database, err := db.Open(path)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.Initialise(database); err != nil {
				return err
			}

			if seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
			}

			fmt.Printf("✓ Database initialised at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Remove the existing database file first")
	cmd.Flags().BoolVar(&seed, "seed", false, "Load fixture data after creating the schema")

	return cmd
}
