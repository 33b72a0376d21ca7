package primary

import (
	"context"

	"github.com/example/flightdeck/internal/ports/secondary"
)

// ReportService is the primary port for aggregate summaries.
type ReportService interface {
	// FlightsPerDestination counts flights per destination, optionally
	// restricted to a date range (both bounds given or both empty).
	FlightsPerDestination(ctx context.Context, dateFrom, dateTo string) ([]*secondary.DestinationCount, error)

	FlightsPerPilot(ctx context.Context) ([]*secondary.PilotFlightCount, error)
	FlightsByStatus(ctx context.Context) ([]*secondary.StatusCount, error)

	// BusiestRoutes returns the top routes by flight count. limit <= 0
	// defaults to 10.
	BusiestRoutes(ctx context.Context, limit int) ([]*secondary.RouteCount, error)
}
