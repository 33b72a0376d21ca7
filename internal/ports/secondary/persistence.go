// Package secondary defines the secondary ports (driven adapters) for the
// application: the interfaces through which it drives storage and the
// operator console.
package secondary

import (
	"context"

	"github.com/example/flightdeck/internal/models"
)

// FlightRepository defines the secondary port for flight persistence.
// Reads that feed a mutation happen inside a FlightTx so they are
// consistent with the writes that follow.
type FlightRepository interface {
	// Begin opens a transaction. The caller must Commit or Rollback.
	Begin(ctx context.Context) (FlightTx, error)

	// StatusID resolves a status name to its identifier. found is false
	// when the status is not present.
	StatusID(ctx context.Context, status models.Status) (id int64, found bool, err error)

	// GetPilot retrieves a pilot by id, or nil when absent.
	GetPilot(ctx context.Context, pilotID int64) (*PilotRecord, error)

	// ListFlights retrieves denormalised flight records matching the
	// filters, ordered by date then departure.
	ListFlights(ctx context.Context, filters FlightFilters) ([]*models.FlightDetails, error)
}

// FlightTx is the transactional scope of one mutation operation: exactly
// one per operation, no nesting, held open across the confirmation step.
type FlightTx interface {
	// LoadFlight resolves a flight by its (number, date) natural key into
	// the denormalised snapshot. A missing flight is a ValidationError,
	// not a database failure.
	LoadFlight(ctx context.Context, flightNumber, flightDate string) (*models.FlightDetails, error)

	// FindRoute looks up the route for an (origin, destination) pair.
	FindRoute(ctx context.Context, originCode, destCode string) (routeID int64, found bool, err error)

	// InsertRoute creates a route and returns its id.
	InsertRoute(ctx context.Context, originCode, destCode string, distanceKM float64, durationMins int64) (int64, error)

	// SetFlightRoute points a flight at a different route.
	SetFlightRoute(ctx context.Context, flightID, routeID int64) error

	// SetFlightTimes replaces both scheduled timestamps.
	SetFlightTimes(ctx context.Context, flightID int64, depUTC, arrUTC string) error

	// SetFlightStatus points a flight at a different status.
	SetFlightStatus(ctx context.Context, flightID, statusID int64) error

	// ReplaceCrew removes any existing assignment for (flight, role) and
	// inserts the new one.
	ReplaceCrew(ctx context.Context, flightID, pilotID int64, role models.Rank) error

	Commit() error
	Rollback() error
}

// CatalogRepository defines the secondary port for reference-data
// persistence: airports, routes, pilots and flight creation.
type CatalogRepository interface {
	InsertAirport(ctx context.Context, airport *AirportRecord) error
	AirportExists(ctx context.Context, code string) (bool, error)
	ListAirports(ctx context.Context) ([]*AirportRecord, error)

	InsertRoute(ctx context.Context, route *RouteRecord) (int64, error)
	GetRoute(ctx context.Context, routeID int64) (*RouteRecord, error)
	ListRoutes(ctx context.Context) ([]*RouteRecord, error)

	InsertPilot(ctx context.Context, pilot *PilotRecord) (int64, error)
	ListPilots(ctx context.Context) ([]*PilotRecord, error)
	ListPilotsByRank(ctx context.Context, rank models.Rank) ([]*PilotRecord, error)

	InsertFlight(ctx context.Context, flight *FlightRecord) (int64, error)
	StatusID(ctx context.Context, status models.Status) (id int64, found bool, err error)
}

// ReportRepository defines the secondary port for aggregate summaries.
type ReportRepository interface {
	FlightsPerDestination(ctx context.Context) ([]*DestinationCount, error)
	FlightsPerDestinationRange(ctx context.Context, dateFrom, dateTo string) ([]*DestinationCount, error)
	FlightsPerPilot(ctx context.Context) ([]*PilotFlightCount, error)
	FlightsByStatus(ctx context.Context) ([]*StatusCount, error)
	BusiestRoutes(ctx context.Context, limit int) ([]*RouteCount, error)
}

// AirportRecord represents an airport as stored in persistence.
type AirportRecord struct {
	Code      string
	Name      string
	City      string
	Country   string
	UTCOffset float64
	TZName    string
}

// RouteRecord represents a route as stored in persistence.
type RouteRecord struct {
	ID           int64
	OriginCode   string
	DestCode     string
	DistanceKM   float64
	DurationMins int64
}

// PilotRecord represents a pilot as stored in persistence.
type PilotRecord struct {
	ID        int64
	LicenceNo string
	FirstName string
	LastName  string
	Rank      models.Rank
	HireDate  string
}

// FullName returns "First Last".
func (p *PilotRecord) FullName() string {
	return p.FirstName + " " + p.LastName
}

// FlightRecord represents a flight row for creation.
type FlightRecord struct {
	ID           int64
	FlightNumber string
	FlightDate   string
	RouteID      int64
	SchedDepUTC  string
	SchedArrUTC  string
	StatusID     int64
}

// FlightFilters contains the optional filters for flight search. Zero
// values mean "no filter".
type FlightFilters struct {
	OriginCode string
	DestCode   string
	StatusName string
	DateFrom   string
	DateTo     string
	CaptainID  int64
}

// DestinationCount is one row of the flights-per-destination summary.
type DestinationCount struct {
	DestCode string
	Flights  int64
}

// PilotFlightCount is one row of the flights-per-pilot summary.
type PilotFlightCount struct {
	PilotID int64
	Name    string
	Rank    models.Rank
	Flights int64
}

// StatusCount is one row of the flights-by-status summary.
type StatusCount struct {
	StatusName string
	Flights    int64
}

// RouteCount is one row of the busiest-routes summary.
type RouteCount struct {
	Route   string // "LHR -> JFK"
	Flights int64
}
