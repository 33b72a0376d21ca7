package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/flightdeck/internal/wire"
)

// ReportCmd returns the report command with the aggregate summaries.
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate summaries over the schedule",
	}

	cmd.AddCommand(reportDestinationsCmd())
	cmd.AddCommand(reportPilotsCmd())
	cmd.AddCommand(reportStatusCmd())
	cmd.AddCommand(reportBusiestCmd())

	return cmd
}

func reportDestinationsCmd() *cobra.Command {
	var dateFrom, dateTo string

	cmd := &cobra.Command{
		Use:   "destinations",
		Short: "Flights per destination airport",
		Long: `Count flights per destination airport, busiest first. Pass --from and
--to together to restrict to a date range.

Examples:
  flightdeck report destinations
  flightdeck report destinations --from 2025-06-01 --to 2025-06-30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rows, err := wire.ReportService().FlightsPerDestination(ctx, dateFrom, dateTo)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("No flights found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "DESTINATION\tFLIGHTS")
			fmt.Fprintln(w, "-----------\t-------")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\n", r.DestCode, r.Flights)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFrom, "from", "", "Earliest flight date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "Latest flight date (YYYY-MM-DD)")

	return cmd
}

func reportPilotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pilots",
		Short: "Flights per pilot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rows, err := wire.ReportService().FlightsPerPilot(ctx)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("No crew assignments found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tPILOT\tRANK\tFLIGHTS")
			fmt.Fprintln(w, "--\t-----\t----\t-------")
			for _, r := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", r.PilotID, r.Name, r.Rank, r.Flights)
			}
			w.Flush()
			return nil
		},
	}
}

func reportStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Flights grouped by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rows, err := wire.ReportService().FlightsByStatus(ctx)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("No flights found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "STATUS\tFLIGHTS")
			fmt.Fprintln(w, "------\t-------")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\n", r.StatusName, r.Flights)
			}
			w.Flush()
			return nil
		},
	}
}

func reportBusiestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "busiest",
		Short: "Busiest routes by flight count",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rows, err := wire.ReportService().BusiestRoutes(ctx, limit)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("No flights found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ROUTE\tFLIGHTS")
			fmt.Fprintln(w, "-----\t-------")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\n", r.Route, r.Flights)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of routes")

	return cmd
}
