package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/flightdeck/internal/ports/secondary"
	"github.com/example/flightdeck/internal/wire"
)

// PilotsCmd returns the pilots listing command.
func PilotsCmd() *cobra.Command {
	var rank string

	cmd := &cobra.Command{
		Use:   "pilots",
		Short: "List pilots",
		Long: `List pilots, captains first. Use --rank to show only one rank.

Examples:
  flightdeck pilots
  flightdeck pilots --rank Captain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var pilots []*secondary.PilotRecord
			var err error
			if rank != "" {
				pilots, err = wire.CatalogService().ListPilotsByRank(ctx, rank)
			} else {
				pilots, err = wire.CatalogService().ListPilots(ctx)
			}
			if err != nil {
				return err
			}

			if len(pilots) == 0 {
				fmt.Println("No pilots found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tLICENCE\tNAME\tRANK\tHIRED")
			fmt.Fprintln(w, "--\t-------\t----\t----\t-----")
			for _, p := range pilots {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					p.ID, p.LicenceNo, p.FullName(), p.Rank, p.HireDate)
			}
			w.Flush()
			fmt.Printf("\nTotal pilots: %d\n", len(pilots))
			return nil
		},
	}

	cmd.Flags().StringVar(&rank, "rank", "", "Filter by rank (Captain or First Officer)")

	return cmd
}

// AirportsCmd returns the airports listing command.
func AirportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "airports",
		Short: "List airports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			airports, err := wire.CatalogService().ListAirports(ctx)
			if err != nil {
				return err
			}

			if len(airports) == 0 {
				fmt.Println("No airports found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tCITY\tCOUNTRY\tUTC OFFSET\tTIMEZONE")
			fmt.Fprintln(w, "----\t----\t----\t-------\t----------\t--------")
			for _, a := range airports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%+.1f\t%s\n",
					a.Code, a.Name, a.City, a.Country, a.UTCOffset, a.TZName)
			}
			w.Flush()
			fmt.Printf("\nTotal airports: %d\n", len(airports))
			return nil
		},
	}
}

// RoutesCmd returns the routes listing command.
func RoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			routes, err := wire.CatalogService().ListRoutes(ctx)
			if err != nil {
				return err
			}

			if len(routes) == 0 {
				fmt.Println("No routes found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tFROM\tTO\tDISTANCE (KM)\tDURATION (MIN)")
			fmt.Fprintln(w, "--\t----\t--\t-------------\t--------------")
			for _, r := range routes {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%d\n",
					r.ID, r.OriginCode, r.DestCode, r.DistanceKM, r.DurationMins)
			}
			w.Flush()
			fmt.Printf("\nTotal routes: %d\n", len(routes))
			return nil
		},
	}
}
