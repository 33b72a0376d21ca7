package app

import (
	"context"

	"github.com/example/flightdeck/internal/core/validate"
	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/primary"
	"github.com/example/flightdeck/internal/ports/secondary"
)

// CatalogServiceImpl implements primary.CatalogService: single-statement
// adds and reference-data lists.
type CatalogServiceImpl struct {
	catalog secondary.CatalogRepository
}

// NewCatalogService creates a new CatalogService with injected
// dependencies.
func NewCatalogService(catalog secondary.CatalogRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{catalog: catalog}
}

// AddAirport validates and persists a new airport.
func (s *CatalogServiceImpl) AddAirport(ctx context.Context, req primary.AddAirportRequest) (*primary.AddAirportResponse, error) {
	code, err := validate.AirportCode(req.Code)
	if err != nil {
		return nil, err
	}

	err = s.catalog.InsertAirport(ctx, &secondary.AirportRecord{
		Code:      code,
		Name:      req.Name,
		City:      req.City,
		Country:   req.Country,
		UTCOffset: req.UTCOffset,
		TZName:    req.TZName,
	})
	if err != nil {
		return nil, err
	}

	return &primary.AddAirportResponse{Code: code, Name: req.Name}, nil
}

// AddRoute validates and persists a new route between two existing
// airports.
func (s *CatalogServiceImpl) AddRoute(ctx context.Context, req primary.AddRouteRequest) (*primary.AddRouteResponse, error) {
	origin, err := validate.AirportCode(req.OriginCode)
	if err != nil {
		return nil, err
	}
	dest, err := validate.AirportCode(req.DestCode)
	if err != nil {
		return nil, err
	}
	if err := validate.PositiveNumber(req.DistanceKM, "Distance"); err != nil {
		return nil, err
	}
	if err := validate.PositiveNumber(float64(req.DurationMins), "Flight duration"); err != nil {
		return nil, err
	}
	if origin == dest {
		return nil, models.NewValidationError("origin and destination must be different")
	}

	for _, code := range []string{origin, dest} {
		exists, err := s.catalog.AirportExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, models.NewValidationError("airport %s not found", code)
		}
	}

	routeID, err := s.catalog.InsertRoute(ctx, &secondary.RouteRecord{
		OriginCode:   origin,
		DestCode:     dest,
		DistanceKM:   req.DistanceKM,
		DurationMins: req.DurationMins,
	})
	if err != nil {
		return nil, err
	}

	return &primary.AddRouteResponse{RouteID: routeID, OriginCode: origin, DestCode: dest}, nil
}

// AddPilot validates and persists a new pilot.
func (s *CatalogServiceImpl) AddPilot(ctx context.Context, req primary.AddPilotRequest) (*primary.AddPilotResponse, error) {
	rank, err := models.ParseRank(req.Rank)
	if err != nil {
		return nil, err
	}
	hireDate, err := validate.Date(req.HireDate)
	if err != nil {
		return nil, err
	}
	licence, err := validate.LicenceNumber(req.LicenceNo)
	if err != nil {
		return nil, err
	}

	pilotID, err := s.catalog.InsertPilot(ctx, &secondary.PilotRecord{
		LicenceNo: licence,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Rank:      rank,
		HireDate:  hireDate,
	})
	if err != nil {
		return nil, err
	}

	return &primary.AddPilotResponse{
		PilotID:   pilotID,
		Rank:      string(rank),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, nil
}

// AddFlight validates and persists a new flight on an existing route.
// Status defaults to Scheduled when empty.
func (s *CatalogServiceImpl) AddFlight(ctx context.Context, req primary.AddFlightRequest) (*primary.AddFlightResponse, error) {
	flightDate, err := validate.Date(req.FlightDate)
	if err != nil {
		return nil, err
	}
	depUTC, err := validate.Timestamp(req.SchedDepUTC)
	if err != nil {
		return nil, err
	}
	arrUTC, err := validate.Timestamp(req.SchedArrUTC)
	if err != nil {
		return nil, err
	}
	statusName := req.Status
	if statusName == "" {
		statusName = string(models.StatusScheduled)
	}
	status, err := models.ParseStatus(statusName)
	if err != nil {
		return nil, err
	}
	number, err := validate.FlightNumber(req.FlightNumber)
	if err != nil {
		return nil, err
	}

	if depUTC >= arrUTC {
		return nil, models.NewValidationError("departure time must be before arrival time")
	}

	route, err := s.catalog.GetRoute(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, models.NewValidationError("route ID %d not found", req.RouteID)
	}

	statusID, found, err := s.catalog.StatusID(ctx, status)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewValidationError("invalid status: %s", status)
	}

	_, err = s.catalog.InsertFlight(ctx, &secondary.FlightRecord{
		FlightNumber: number,
		FlightDate:   flightDate,
		RouteID:      req.RouteID,
		SchedDepUTC:  depUTC,
		SchedArrUTC:  arrUTC,
		StatusID:     statusID,
	})
	if err != nil {
		return nil, err
	}

	return &primary.AddFlightResponse{
		FlightNumber: number,
		FlightDate:   flightDate,
		OriginCode:   route.OriginCode,
		DestCode:     route.DestCode,
	}, nil
}

// ListAirports retrieves all airports.
func (s *CatalogServiceImpl) ListAirports(ctx context.Context) ([]*secondary.AirportRecord, error) {
	return s.catalog.ListAirports(ctx)
}

// ListRoutes retrieves all routes.
func (s *CatalogServiceImpl) ListRoutes(ctx context.Context) ([]*secondary.RouteRecord, error) {
	return s.catalog.ListRoutes(ctx)
}

// ListPilots retrieves all pilots.
func (s *CatalogServiceImpl) ListPilots(ctx context.Context) ([]*secondary.PilotRecord, error) {
	return s.catalog.ListPilots(ctx)
}

// ListPilotsByRank retrieves pilots of one rank, with lenient rank
// normalisation.
func (s *CatalogServiceImpl) ListPilotsByRank(ctx context.Context, rank string) ([]*secondary.PilotRecord, error) {
	parsed, err := models.ParseRank(rank)
	if err != nil {
		return nil, err
	}
	return s.catalog.ListPilotsByRank(ctx, parsed)
}
