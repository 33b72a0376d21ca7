package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/primary"
	"github.com/example/flightdeck/internal/wire"
)

// FlightsCmd returns the flights command.
func FlightsCmd() *cobra.Command {
	var origin, dest, status, dateFrom, dateTo string
	var captainID int64

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "List flights, optionally filtered",
		Long: `List flights with their route, status and crew. All filters are
optional and combine.

Examples:
  flightdeck flights
  flightdeck flights --origin LHR --status Scheduled
  flightdeck flights --from 2025-06-01 --to 2025-06-30 --captain 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			flights, err := wire.FlightService().ListFlights(ctx, primary.FlightSearchRequest{
				OriginCode: origin,
				DestCode:   dest,
				StatusName: status,
				DateFrom:   dateFrom,
				DateTo:     dateTo,
				CaptainID:  captainID,
			})
			if err != nil {
				return err
			}

			if len(flights) == 0 {
				fmt.Println("No flights found matching the criteria.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tDATE\tFROM\tTO\tSTATUS\tDEPARTURE\tARRIVAL\tCAPTAIN\tFIRST OFFICER")
			fmt.Fprintln(w, "------\t----\t----\t--\t------\t---------\t-------\t-------\t-------------")

			for _, f := range flights {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					f.FlightNumber,
					f.FlightDate,
					f.OriginCode,
					f.DestCode,
					f.StatusName,
					f.SchedDepUTC,
					f.SchedArrUTC,
					crewSeat(f.CaptainName),
					crewSeat(f.FirstOfficerName),
				)
			}

			w.Flush()
			fmt.Printf("\nTotal flights: %d\n", len(flights))
			return nil
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "Origin airport code")
	cmd.Flags().StringVar(&dest, "dest", "", "Destination airport code")
	cmd.Flags().StringVar(&status, "status", "", "Flight status ("+statusNames()+")")
	cmd.Flags().StringVar(&dateFrom, "from", "", "Earliest flight date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "Latest flight date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&captainID, "captain", 0, "Captain pilot ID")

	return cmd
}

// crewSeat renders an unassigned seat as a dash.
func crewSeat(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

func statusNames() string {
	out := ""
	for i, s := range models.AllStatuses() {
		if i > 0 {
			out += "/"
		}
		out += string(s)
	}
	return out
}
