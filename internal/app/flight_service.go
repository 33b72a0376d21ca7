// Package app implements the primary ports: the application services
// composing validation, lookup, preview/confirm and storage writes.
package app

import (
	"context"

	"github.com/example/flightdeck/internal/core/crew"
	"github.com/example/flightdeck/internal/core/validate"
	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/primary"
	"github.com/example/flightdeck/internal/ports/secondary"
)

// FlightServiceImpl implements primary.FlightService. Every mutation
// follows the same protocol inside one transaction:
// validate -> begin -> load -> propose -> confirm -> commit or rollback.
// The transaction stays open across the blocking confirmation prompt,
// which is acceptable only because the system is single-user.
type FlightServiceImpl struct {
	flights secondary.FlightRepository
	confirm secondary.ChangeConfirmer
}

// NewFlightService creates a new FlightService with injected dependencies.
func NewFlightService(flights secondary.FlightRepository, confirm secondary.ChangeConfirmer) *FlightServiceImpl {
	return &FlightServiceImpl{flights: flights, confirm: confirm}
}

// ListFlights validates the optional filters and retrieves matching
// flights.
func (s *FlightServiceImpl) ListFlights(ctx context.Context, req primary.FlightSearchRequest) ([]*models.FlightDetails, error) {
	filters := secondary.FlightFilters{CaptainID: req.CaptainID}

	var err error
	if req.OriginCode != "" {
		if filters.OriginCode, err = validate.AirportCode(req.OriginCode); err != nil {
			return nil, err
		}
	}
	if req.DestCode != "" {
		if filters.DestCode, err = validate.AirportCode(req.DestCode); err != nil {
			return nil, err
		}
	}
	if req.StatusName != "" {
		status, err := models.ParseStatus(req.StatusName)
		if err != nil {
			return nil, err
		}
		filters.StatusName = string(status)
	}
	if req.DateFrom != "" {
		if filters.DateFrom, err = validate.Date(req.DateFrom); err != nil {
			return nil, err
		}
	}
	if req.DateTo != "" {
		if filters.DateTo, err = validate.Date(req.DateTo); err != nil {
			return nil, err
		}
	}

	return s.flights.ListFlights(ctx, filters)
}

// ChangeRoute reassigns a flight's route. After confirmation the
// (origin, destination) pair is resolved to an existing route or a new
// route row with zero placeholder distance/duration.
func (s *FlightServiceImpl) ChangeRoute(ctx context.Context, req primary.ChangeRouteRequest) (*primary.MutationResponse, error) {
	newOrigin, err := validate.AirportCode(req.NewOrigin)
	if err != nil {
		return nil, err
	}
	newDest, err := validate.AirportCode(req.NewDest)
	if err != nil {
		return nil, err
	}
	flightDate, err := validate.Date(req.FlightDate)
	if err != nil {
		return nil, err
	}

	tx, err := s.flights.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	flight, err := s.loadFlight(ctx, tx, req.FlightNumber, flightDate)
	if err != nil {
		return nil, err
	}

	proposed := *flight
	proposed.OriginCode = newOrigin
	proposed.DestCode = newDest

	approved, err := s.confirm.ConfirmChange(flight, &proposed)
	if err != nil {
		return nil, err
	}
	if !approved {
		return &primary.MutationResponse{Cancelled: true}, tx.Rollback()
	}

	routeID, found, err := tx.FindRoute(ctx, newOrigin, newDest)
	if err != nil {
		return nil, err
	}
	created := false
	if !found {
		// Placeholder distance/duration; refined later by the caller.
		routeID, err = tx.InsertRoute(ctx, newOrigin, newDest, 0, 0)
		if err != nil {
			return nil, err
		}
		created = true
	}

	if err := tx.SetFlightRoute(ctx, flight.FlightID, routeID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &primary.MutationResponse{RouteCreated: created}, nil
}

// ChangeTimes replaces both scheduled timestamps. The departure-before-
// arrival cross-check fails before any transaction is opened.
func (s *FlightServiceImpl) ChangeTimes(ctx context.Context, req primary.ChangeTimesRequest) (*primary.MutationResponse, error) {
	newDep, err := validate.Timestamp(req.NewDepUTC)
	if err != nil {
		return nil, err
	}
	newArr, err := validate.Timestamp(req.NewArrUTC)
	if err != nil {
		return nil, err
	}
	flightDate, err := validate.Date(req.FlightDate)
	if err != nil {
		return nil, err
	}

	// Validated timestamps are fixed-width, so lexical order is
	// chronological order.
	if newDep >= newArr {
		return nil, models.NewValidationError("departure time must be before arrival time")
	}

	tx, err := s.flights.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	flight, err := s.loadFlight(ctx, tx, req.FlightNumber, flightDate)
	if err != nil {
		return nil, err
	}

	proposed := *flight
	proposed.SchedDepUTC = newDep
	proposed.SchedArrUTC = newArr

	approved, err := s.confirm.ConfirmChange(flight, &proposed)
	if err != nil {
		return nil, err
	}
	if !approved {
		return &primary.MutationResponse{Cancelled: true}, tx.Rollback()
	}

	if err := tx.SetFlightTimes(ctx, flight.FlightID, newDep, newArr); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &primary.MutationResponse{}, nil
}

// ChangeStatus moves a flight to another status. The status identifier
// is resolved before the transaction opens; a missing identifier is a
// validation failure.
func (s *FlightServiceImpl) ChangeStatus(ctx context.Context, req primary.ChangeStatusRequest) (*primary.MutationResponse, error) {
	status, err := models.ParseStatus(req.NewStatus)
	if err != nil {
		return nil, err
	}
	flightDate, err := validate.Date(req.FlightDate)
	if err != nil {
		return nil, err
	}

	statusID, found, err := s.flights.StatusID(ctx, status)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewValidationError("invalid status: %s", status)
	}

	tx, err := s.flights.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	flight, err := s.loadFlight(ctx, tx, req.FlightNumber, flightDate)
	if err != nil {
		return nil, err
	}

	proposed := *flight
	proposed.StatusName = string(status)

	approved, err := s.confirm.ConfirmChange(flight, &proposed)
	if err != nil {
		return nil, err
	}
	if !approved {
		return &primary.MutationResponse{Cancelled: true}, tx.Rollback()
	}

	if err := tx.SetFlightStatus(ctx, flight.FlightID, statusID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &primary.MutationResponse{}, nil
}

// ChangeCaptain reassigns the captain seat with preview/confirm.
func (s *FlightServiceImpl) ChangeCaptain(ctx context.Context, req primary.ChangeCrewRequest) (*primary.MutationResponse, error) {
	return s.changeCrew(ctx, req, models.RankCaptain)
}

// ChangeFirstOfficer reassigns the first-officer seat with
// preview/confirm.
func (s *FlightServiceImpl) ChangeFirstOfficer(ctx context.Context, req primary.ChangeCrewRequest) (*primary.MutationResponse, error) {
	return s.changeCrew(ctx, req, models.RankFirstOfficer)
}

func (s *FlightServiceImpl) changeCrew(ctx context.Context, req primary.ChangeCrewRequest, role models.Rank) (*primary.MutationResponse, error) {
	flightDate, err := validate.Date(req.FlightDate)
	if err != nil {
		return nil, err
	}

	pilot, err := s.eligiblePilot(ctx, req.PilotID, role)
	if err != nil {
		return nil, err
	}

	tx, err := s.flights.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	flight, err := s.loadFlight(ctx, tx, req.FlightNumber, flightDate)
	if err != nil {
		return nil, err
	}

	proposed := *flight
	if role == models.RankCaptain {
		proposed.CaptainName = pilot.FullName()
		proposed.CaptainID = pilot.ID
	} else {
		proposed.FirstOfficerName = pilot.FullName()
		proposed.FirstOfficerID = pilot.ID
	}

	approved, err := s.confirm.ConfirmChange(flight, &proposed)
	if err != nil {
		return nil, err
	}
	if !approved {
		return &primary.MutationResponse{Cancelled: true}, tx.Rollback()
	}

	if err := tx.ReplaceCrew(ctx, flight.FlightID, pilot.ID, role); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &primary.MutationResponse{}, nil
}

// AssignCaptain sets the captain without the preview step, replacing any
// existing captain unconditionally. Used for initial assignment rather
// than a change to an existing value.
func (s *FlightServiceImpl) AssignCaptain(ctx context.Context, req primary.ChangeCrewRequest) (*primary.AssignCaptainResponse, error) {
	flightDate, err := validate.Date(req.FlightDate)
	if err != nil {
		return nil, err
	}

	pilot, err := s.eligiblePilot(ctx, req.PilotID, models.RankCaptain)
	if err != nil {
		return nil, err
	}

	tx, err := s.flights.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	flight, err := s.loadFlight(ctx, tx, req.FlightNumber, flightDate)
	if err != nil {
		return nil, err
	}

	if err := tx.ReplaceCrew(ctx, flight.FlightID, pilot.ID, models.RankCaptain); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &primary.AssignCaptainResponse{
		FlightNumber: flight.FlightNumber,
		FlightDate:   flight.FlightDate,
		PilotName:    pilot.FullName(),
	}, nil
}

// loadFlight normalises the flight number and resolves the flight by its
// natural key within the open transaction.
func (s *FlightServiceImpl) loadFlight(ctx context.Context, tx secondary.FlightTx, flightNumber, flightDate string) (*models.FlightDetails, error) {
	number, err := validate.FlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}
	return tx.LoadFlight(ctx, number, flightDate)
}

// eligiblePilot resolves the pilot and checks rank eligibility for the
// role.
func (s *FlightServiceImpl) eligiblePilot(ctx context.Context, pilotID int64, role models.Rank) (*secondary.PilotRecord, error) {
	pilot, err := s.flights.GetPilot(ctx, pilotID)
	if err != nil {
		return nil, err
	}

	guardCtx := crew.AssignContext{PilotID: pilotID, Role: role}
	if pilot != nil {
		guardCtx.PilotFound = true
		guardCtx.PilotName = pilot.FullName()
		guardCtx.PilotRank = pilot.Rank
	}
	if err := crew.CanAssign(guardCtx).Error(); err != nil {
		return nil, err
	}

	return pilot, nil
}
