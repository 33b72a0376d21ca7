package primary

import (
	"context"

	"github.com/example/flightdeck/internal/ports/secondary"
)

// CatalogService is the primary port for adding and listing reference
// data: airports, routes, pilots and new flights.
type CatalogService interface {
	AddAirport(ctx context.Context, req AddAirportRequest) (*AddAirportResponse, error)
	AddRoute(ctx context.Context, req AddRouteRequest) (*AddRouteResponse, error)
	AddPilot(ctx context.Context, req AddPilotRequest) (*AddPilotResponse, error)
	AddFlight(ctx context.Context, req AddFlightRequest) (*AddFlightResponse, error)

	ListAirports(ctx context.Context) ([]*secondary.AirportRecord, error)
	ListRoutes(ctx context.Context) ([]*secondary.RouteRecord, error)
	ListPilots(ctx context.Context) ([]*secondary.PilotRecord, error)

	// ListPilotsByRank filters pilots by a rank name ("Captain",
	// "first officer", ...), normalised leniently.
	ListPilotsByRank(ctx context.Context, rank string) ([]*secondary.PilotRecord, error)
}

// AddAirportRequest carries a new airport's fields.
type AddAirportRequest struct {
	Code      string
	Name      string
	City      string
	Country   string
	UTCOffset float64
	TZName    string
}

// AddAirportResponse reports the normalised code of the created airport.
type AddAirportResponse struct {
	Code string
	Name string
}

// AddRouteRequest carries a new route's fields.
type AddRouteRequest struct {
	OriginCode   string
	DestCode     string
	DistanceKM   float64
	DurationMins int64
}

// AddRouteResponse reports the created route.
type AddRouteResponse struct {
	RouteID    int64
	OriginCode string
	DestCode   string
}

// AddPilotRequest carries a new pilot's fields.
type AddPilotRequest struct {
	LicenceNo string
	FirstName string
	LastName  string
	Rank      string
	HireDate  string
}

// AddPilotResponse reports the created pilot with normalised rank.
type AddPilotResponse struct {
	PilotID   int64
	Rank      string
	FirstName string
	LastName  string
}

// AddFlightRequest carries a new flight's fields. Status defaults to
// Scheduled when empty.
type AddFlightRequest struct {
	FlightNumber string
	FlightDate   string
	RouteID      int64
	SchedDepUTC  string
	SchedArrUTC  string
	Status       string
}

// AddFlightResponse reports the created flight and its route endpoints.
type AddFlightResponse struct {
	FlightNumber string
	FlightDate   string
	OriginCode   string
	DestCode     string
}
