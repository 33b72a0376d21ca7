package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/flightdeck/internal/adapters/console"
	"github.com/example/flightdeck/internal/ports/primary"
	"github.com/example/flightdeck/internal/wire"
)

// FlightCmd returns the flight command: the preview/confirm mutations on
// a single flight addressed by its (number, date) natural key.
func FlightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flight",
		Short: "Modify a flight (route, times, status, crew)",
		Long: `Modify one flight, addressed by flight number and date. Each change
shows a before/after preview and asks for confirmation; declining
leaves the database untouched.`,
	}

	cmd.AddCommand(flightTimesCmd())
	cmd.AddCommand(flightStatusCmd())
	cmd.AddCommand(flightRouteCmd())
	cmd.AddCommand(flightCaptainCmd())
	cmd.AddCommand(flightFirstOfficerCmd())
	cmd.AddCommand(flightAssignCaptainCmd())

	return cmd
}

// flightService picks the interactive confirmer or, with --yes, the
// auto-approving one.
func flightService(skipConfirm bool) primary.FlightService {
	if skipConfirm {
		return wire.FlightServiceWithConfirmer(console.AutoApprove{})
	}
	return wire.FlightService()
}

func flightTimesCmd() *cobra.Command {
	var dep, arr string
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "times [number] [date]",
		Short: "Change the scheduled departure and arrival times",
		Long: `Change both scheduled timestamps of a flight. Departure must be
before arrival.

Examples:
  flightdeck flight times BA101 2025-06-05 --dep "2025-06-05 09:00" --arr "2025-06-05 16:00"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := flightService(skipConfirm).ChangeTimes(ctx, primary.ChangeTimesRequest{
				FlightNumber: args[0],
				FlightDate:   args[1],
				NewDepUTC:    dep,
				NewArrUTC:    arr,
			})
			if err != nil {
				return err
			}
			if resp.Cancelled {
				fmt.Println("Time change cancelled.")
				return nil
			}

			fmt.Println("✓ Times updated successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&dep, "dep", "", "New departure UTC (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&arr, "arr", "", "New arrival UTC (YYYY-MM-DD HH:MM)")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	cobra.CheckErr(cmd.MarkFlagRequired("dep"))
	cobra.CheckErr(cmd.MarkFlagRequired("arr"))

	return cmd
}

func flightStatusCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "status [number] [date] [new-status]",
		Short: "Change the flight status",
		Long: `Move a flight to another status (` + statusNames() + `).

Examples:
  flightdeck flight status BA101 2025-06-05 Delayed`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := flightService(skipConfirm).ChangeStatus(ctx, primary.ChangeStatusRequest{
				FlightNumber: args[0],
				FlightDate:   args[1],
				NewStatus:    args[2],
			})
			if err != nil {
				return err
			}
			if resp.Cancelled {
				fmt.Println("Status change cancelled.")
				return nil
			}

			fmt.Println("✓ Status updated successfully")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func flightRouteCmd() *cobra.Command {
	var origin, dest string
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "route [number] [date]",
		Short: "Change the route (origin and destination)",
		Long: `Reassign a flight to a different origin/destination pair. If no such
route exists yet, one is created with placeholder distance and
duration.

Examples:
  flightdeck flight route BA101 2025-06-05 --origin LGW --dest AMS`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := flightService(skipConfirm).ChangeRoute(ctx, primary.ChangeRouteRequest{
				FlightNumber: args[0],
				FlightDate:   args[1],
				NewOrigin:    origin,
				NewDest:      dest,
			})
			if err != nil {
				return err
			}
			if resp.Cancelled {
				fmt.Println("Route change cancelled.")
				return nil
			}

			if resp.RouteCreated {
				fmt.Printf("Created new route %s -> %s\n", origin, dest)
			}
			fmt.Println("✓ Route updated successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "New origin airport code")
	cmd.Flags().StringVar(&dest, "dest", "", "New destination airport code")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	cobra.CheckErr(cmd.MarkFlagRequired("origin"))
	cobra.CheckErr(cmd.MarkFlagRequired("dest"))

	return cmd
}

func flightCaptainCmd() *cobra.Command {
	var pilotID int64
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "captain [number] [date]",
		Short: "Reassign the captain",
		Long: `Reassign the captain seat of a flight. The pilot must exist and hold
the Captain rank.

Examples:
  flightdeck flight captain BA101 2025-06-05 --pilot 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := flightService(skipConfirm).ChangeCaptain(ctx, primary.ChangeCrewRequest{
				FlightNumber: args[0],
				FlightDate:   args[1],
				PilotID:      pilotID,
			})
			if err != nil {
				return err
			}
			if resp.Cancelled {
				fmt.Println("Captain change cancelled.")
				return nil
			}

			fmt.Println("✓ Captain reassigned successfully")
			return nil
		},
	}

	cmd.Flags().Int64Var(&pilotID, "pilot", 0, "New captain pilot ID")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	cobra.CheckErr(cmd.MarkFlagRequired("pilot"))

	return cmd
}

func flightFirstOfficerCmd() *cobra.Command {
	var pilotID int64
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "first-officer [number] [date]",
		Short: "Reassign the first officer",
		Long: `Reassign the first-officer seat of a flight. The pilot must exist and
hold the First Officer rank.

Examples:
  flightdeck flight first-officer BA101 2025-06-05 --pilot 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := flightService(skipConfirm).ChangeFirstOfficer(ctx, primary.ChangeCrewRequest{
				FlightNumber: args[0],
				FlightDate:   args[1],
				PilotID:      pilotID,
			})
			if err != nil {
				return err
			}
			if resp.Cancelled {
				fmt.Println("First Officer change cancelled.")
				return nil
			}

			fmt.Println("✓ First Officer changed successfully")
			return nil
		},
	}

	cmd.Flags().Int64Var(&pilotID, "pilot", 0, "New first officer pilot ID")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	cobra.CheckErr(cmd.MarkFlagRequired("pilot"))

	return cmd
}

func flightAssignCaptainCmd() *cobra.Command {
	var pilotID int64

	cmd := &cobra.Command{
		Use:   "assign-captain [number] [date]",
		Short: "Assign a captain without a preview",
		Long: `Assign a captain to a flight directly, replacing any existing captain.
Unlike the other flight commands this skips the preview/confirm step;
use it for the initial assignment rather than a change.

Examples:
  flightdeck flight assign-captain BA101 2025-06-05 --pilot 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.FlightService().AssignCaptain(ctx, primary.ChangeCrewRequest{
				FlightNumber: args[0],
				FlightDate:   args[1],
				PilotID:      pilotID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Captain %s assigned to flight %s on %s\n",
				resp.PilotName, resp.FlightNumber, resp.FlightDate)
			return nil
		},
	}

	cmd.Flags().Int64Var(&pilotID, "pilot", 0, "Captain pilot ID")
	cobra.CheckErr(cmd.MarkFlagRequired("pilot"))

	return cmd
}
