// Package cli contains the cobra commands for the flightdeck CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/flightdeck/internal/version"
)

// NewRootCmd builds the flightdeck root command with all subcommands
// registered. The shell command builds a fresh root per input line, so
// this must stay cheap and side-effect free.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "flightdeck",
		Short:   "Flightdeck - flight scheduling manager",
		Version: version.String(),
		Long: `Flightdeck manages flight scheduling data: airports, routes, pilots,
flights and crew assignments, backed by SQLite.

Every flight mutation shows a before/after preview and asks for
confirmation before anything is written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(FlightsCmd())
	rootCmd.AddCommand(FlightCmd())
	rootCmd.AddCommand(AddCmd())
	rootCmd.AddCommand(ReportCmd())
	rootCmd.AddCommand(PilotsCmd())
	rootCmd.AddCommand(AirportsCmd())
	rootCmd.AddCommand(RoutesCmd())
	rootCmd.AddCommand(ShellCmd())

	return rootCmd
}
