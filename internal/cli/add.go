package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/flightdeck/internal/ports/primary"
	"github.com/example/flightdeck/internal/wire"
)

// AddCmd returns the add command for creating reference data.
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add airports, routes, pilots and flights",
	}

	cmd.AddCommand(addAirportCmd())
	cmd.AddCommand(addRouteCmd())
	cmd.AddCommand(addPilotCmd())
	cmd.AddCommand(addFlightCmd())

	return cmd
}

func addAirportCmd() *cobra.Command {
	var name, city, country, tzName string
	var utcOffset float64

	cmd := &cobra.Command{
		Use:   "airport [code]",
		Short: "Add an airport",
		Long: `Add an airport. The code is a three-letter IATA code and is stored
uppercase.

Examples:
  flightdeck add airport OSL --name "Oslo Gardermoen" --city Oslo --country Norway --utc-offset 1 --tz Europe/Oslo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.CatalogService().AddAirport(ctx, primary.AddAirportRequest{
				Code:      args[0],
				Name:      name,
				City:      city,
				Country:   country,
				UTCOffset: utcOffset,
				TZName:    tzName,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Airport %s (%s) added\n", resp.Code, resp.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Airport name")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().StringVar(&country, "country", "", "Country")
	cmd.Flags().Float64Var(&utcOffset, "utc-offset", 0, "UTC offset in hours")
	cmd.Flags().StringVar(&tzName, "tz", "", "IANA timezone name")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	cobra.CheckErr(cmd.MarkFlagRequired("city"))
	cobra.CheckErr(cmd.MarkFlagRequired("country"))
	cobra.CheckErr(cmd.MarkFlagRequired("tz"))

	return cmd
}

func addRouteCmd() *cobra.Command {
	var distanceKM float64
	var durationMins int64

	cmd := &cobra.Command{
		Use:   "route [origin] [dest]",
		Short: "Add a route between two airports",
		Long: `Add a route. Both airports must already exist and a given
origin/destination pair can only appear once.

Examples:
  flightdeck add route LHR OSL --distance 1154 --duration 135`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.CatalogService().AddRoute(ctx, primary.AddRouteRequest{
				OriginCode:   args[0],
				DestCode:     args[1],
				DistanceKM:   distanceKM,
				DurationMins: durationMins,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Route %s -> %s added (ID %d)\n", resp.OriginCode, resp.DestCode, resp.RouteID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&distanceKM, "distance", 0, "Distance in kilometres")
	cmd.Flags().Int64Var(&durationMins, "duration", 0, "Scheduled duration in minutes")
	cobra.CheckErr(cmd.MarkFlagRequired("distance"))
	cobra.CheckErr(cmd.MarkFlagRequired("duration"))

	return cmd
}

func addPilotCmd() *cobra.Command {
	var firstName, lastName, rank, hireDate string

	cmd := &cobra.Command{
		Use:   "pilot [licence-no]",
		Short: "Add a pilot",
		Long: `Add a pilot. Licence numbers are stored uppercase and must be unique
regardless of case or surrounding whitespace.

Examples:
  flightdeck add pilot UK-CPT-2001 --first Emma --last Watson --rank Captain --hired 2015-03-09`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.CatalogService().AddPilot(ctx, primary.AddPilotRequest{
				LicenceNo: args[0],
				FirstName: firstName,
				LastName:  lastName,
				Rank:      rank,
				HireDate:  hireDate,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ %s %s %s added (ID %d)\n", resp.Rank, resp.FirstName, resp.LastName, resp.PilotID)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first", "", "First name")
	cmd.Flags().StringVar(&lastName, "last", "", "Last name")
	cmd.Flags().StringVar(&rank, "rank", "", "Rank (Captain or First Officer)")
	cmd.Flags().StringVar(&hireDate, "hired", "", "Hire date (YYYY-MM-DD)")
	cobra.CheckErr(cmd.MarkFlagRequired("first"))
	cobra.CheckErr(cmd.MarkFlagRequired("last"))
	cobra.CheckErr(cmd.MarkFlagRequired("rank"))
	cobra.CheckErr(cmd.MarkFlagRequired("hired"))

	return cmd
}

func addFlightCmd() *cobra.Command {
	var routeID int64
	var dep, arr, status string

	cmd := &cobra.Command{
		Use:   "flight [number] [date]",
		Short: "Add a flight",
		Long: `Add a flight on an existing route. The (number, date) pair must be
unique and departure must be before arrival. Status defaults to
Scheduled.

Examples:
  flightdeck add flight BA120 2025-07-01 --route 3 --dep "2025-07-01 08:00" --arr "2025-07-01 11:30"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.CatalogService().AddFlight(ctx, primary.AddFlightRequest{
				FlightNumber: args[0],
				FlightDate:   args[1],
				RouteID:      routeID,
				SchedDepUTC:  dep,
				SchedArrUTC:  arr,
				Status:       status,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Flight %s on %s added (%s -> %s)\n",
				resp.FlightNumber, resp.FlightDate, resp.OriginCode, resp.DestCode)
			return nil
		},
	}

	cmd.Flags().Int64Var(&routeID, "route", 0, "Route ID")
	cmd.Flags().StringVar(&dep, "dep", "", "Departure UTC (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&arr, "arr", "", "Arrival UTC (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default Scheduled)")
	cobra.CheckErr(cmd.MarkFlagRequired("route"))
	cobra.CheckErr(cmd.MarkFlagRequired("dep"))
	cobra.CheckErr(cmd.MarkFlagRequired("arr"))

	return cmd
}
