package app

import (
	"context"

	"github.com/example/flightdeck/internal/core/validate"
	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/secondary"
)

const defaultBusiestRoutesLimit = 10

// ReportServiceImpl implements primary.ReportService.
type ReportServiceImpl struct {
	reports secondary.ReportRepository
}

// NewReportService creates a new ReportService with injected
// dependencies.
func NewReportService(reports secondary.ReportRepository) *ReportServiceImpl {
	return &ReportServiceImpl{reports: reports}
}

// FlightsPerDestination counts flights per destination. When both date
// bounds are given the count is restricted to that inclusive range;
// giving only one bound is a validation failure.
func (s *ReportServiceImpl) FlightsPerDestination(ctx context.Context, dateFrom, dateTo string) ([]*secondary.DestinationCount, error) {
	if dateFrom == "" && dateTo == "" {
		return s.reports.FlightsPerDestination(ctx)
	}
	if dateFrom == "" || dateTo == "" {
		return nil, models.NewValidationError("both --from and --to are required for a date range")
	}

	from, err := validate.Date(dateFrom)
	if err != nil {
		return nil, err
	}
	to, err := validate.Date(dateTo)
	if err != nil {
		return nil, err
	}

	return s.reports.FlightsPerDestinationRange(ctx, from, to)
}

// FlightsPerPilot counts assignments per pilot.
func (s *ReportServiceImpl) FlightsPerPilot(ctx context.Context) ([]*secondary.PilotFlightCount, error) {
	return s.reports.FlightsPerPilot(ctx)
}

// FlightsByStatus counts flights per status.
func (s *ReportServiceImpl) FlightsByStatus(ctx context.Context) ([]*secondary.StatusCount, error) {
	return s.reports.FlightsByStatus(ctx)
}

// BusiestRoutes returns the top routes by flight count.
func (s *ReportServiceImpl) BusiestRoutes(ctx context.Context, limit int) ([]*secondary.RouteCount, error) {
	if limit <= 0 {
		limit = defaultBusiestRoutesLimit
	}
	return s.reports.BusiestRoutes(ctx, limit)
}
