// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI calls into.
package primary

import (
	"context"

	"github.com/example/flightdeck/internal/models"
)

// FlightService is the primary port for flight search and the
// preview/confirm mutation operations.
type FlightService interface {
	// ListFlights retrieves flights matching the optional filters.
	ListFlights(ctx context.Context, req FlightSearchRequest) ([]*models.FlightDetails, error)

	// ChangeRoute reassigns a flight to the (origin, destination) route,
	// creating the route with placeholder distance/duration if it does
	// not exist yet.
	ChangeRoute(ctx context.Context, req ChangeRouteRequest) (*MutationResponse, error)

	// ChangeTimes replaces both scheduled timestamps.
	ChangeTimes(ctx context.Context, req ChangeTimesRequest) (*MutationResponse, error)

	// ChangeStatus moves a flight to another status.
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) (*MutationResponse, error)

	// ChangeCaptain reassigns the captain seat.
	ChangeCaptain(ctx context.Context, req ChangeCrewRequest) (*MutationResponse, error)

	// ChangeFirstOfficer reassigns the first-officer seat.
	ChangeFirstOfficer(ctx context.Context, req ChangeCrewRequest) (*MutationResponse, error)

	// AssignCaptain sets the captain without the preview/confirm step,
	// replacing any existing captain. Used for initial assignment.
	AssignCaptain(ctx context.Context, req ChangeCrewRequest) (*AssignCaptainResponse, error)
}

// FlightSearchRequest carries the optional flight-search filters.
// Zero values mean "no filter".
type FlightSearchRequest struct {
	OriginCode string
	DestCode   string
	StatusName string
	DateFrom   string
	DateTo     string
	CaptainID  int64
}

// ChangeRouteRequest identifies a flight by natural key and names the new
// origin/destination pair.
type ChangeRouteRequest struct {
	FlightNumber string
	FlightDate   string
	NewOrigin    string
	NewDest      string
}

// ChangeTimesRequest identifies a flight by natural key and carries the
// new scheduled timestamps.
type ChangeTimesRequest struct {
	FlightNumber string
	FlightDate   string
	NewDepUTC    string
	NewArrUTC    string
}

// ChangeStatusRequest identifies a flight by natural key and names the
// new status.
type ChangeStatusRequest struct {
	FlightNumber string
	FlightDate   string
	NewStatus    string
}

// ChangeCrewRequest identifies a flight by natural key and the pilot to
// seat.
type ChangeCrewRequest struct {
	FlightNumber string
	FlightDate   string
	PilotID      int64
}

// MutationResponse reports the outcome of a confirmed mutation.
// Cancelled is true when the operator declined the preview; storage is
// then untouched.
type MutationResponse struct {
	Cancelled    bool
	RouteCreated bool // ChangeRoute only: a new route row was inserted
}

// AssignCaptainResponse reports a direct captain assignment.
type AssignCaptainResponse struct {
	FlightNumber string
	FlightDate   string
	PilotName    string
}
