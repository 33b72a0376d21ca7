package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/secondary"
)

// CatalogRepository implements secondary.CatalogRepository with SQLite.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new SQLite catalog repository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const pilotSelectCols = "pilot_id, licence_no, first_name, last_name, rank, hire_date"

// scanPilot scans a pilot row into a PilotRecord.
func scanPilot(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PilotRecord, error) {
	var rank string
	p := &secondary.PilotRecord{}
	err := scanner.Scan(&p.ID, &p.LicenceNo, &p.FirstName, &p.LastName, &rank, &p.HireDate)
	if err != nil {
		return nil, err
	}
	p.Rank = models.Rank(rank)
	return p, nil
}

// InsertAirport persists a new airport.
func (r *CatalogRepository) InsertAirport(ctx context.Context, airport *secondary.AirportRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO airports (airport_code, name, city, country, utc_offset, tz_name) VALUES (?, ?, ?, ?, ?, ?)",
		airport.Code, airport.Name, airport.City, airport.Country, airport.UTCOffset, airport.TZName,
	)
	if isConstraintErr(err) {
		return models.NewConflictError("airport %s already exists", airport.Code)
	}
	if err != nil {
		return wrapDBError("insert airport", err)
	}
	return nil
}

// AirportExists reports whether an airport with the given code exists.
func (r *CatalogRepository) AirportExists(ctx context.Context, code string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM airports WHERE airport_code = ?", code,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrapDBError("check airport", err)
	}
	return true, nil
}

// ListAirports retrieves all airports ordered by country then city.
func (r *CatalogRepository) ListAirports(ctx context.Context) ([]*secondary.AirportRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT airport_code, name, city, country, utc_offset, tz_name FROM airports ORDER BY country, city",
	)
	if err != nil {
		return nil, wrapDBError("list airports", err)
	}
	defer rows.Close()

	var airports []*secondary.AirportRecord
	for rows.Next() {
		a := &secondary.AirportRecord{}
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.UTCOffset, &a.TZName); err != nil {
			return nil, wrapDBError("scan airport", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list airports", err)
	}
	return airports, nil
}

// InsertRoute persists a new route and returns its id.
func (r *CatalogRepository) InsertRoute(ctx context.Context, route *secondary.RouteRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO routes (origin_code, dest_code, distance_km, duration_mins) VALUES (?, ?, ?, ?)",
		route.OriginCode, route.DestCode, route.DistanceKM, route.DurationMins,
	)
	if isConstraintErr(err) {
		return 0, models.NewConflictError("route %s -> %s already exists", route.OriginCode, route.DestCode)
	}
	if err != nil {
		return 0, wrapDBError("insert route", err)
	}

	routeID, err := res.LastInsertId()
	if err != nil {
		return 0, wrapDBError("insert route", err)
	}
	return routeID, nil
}

// GetRoute retrieves a route by id, or nil when absent.
func (r *CatalogRepository) GetRoute(ctx context.Context, routeID int64) (*secondary.RouteRecord, error) {
	route := &secondary.RouteRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT route_id, origin_code, dest_code, distance_km, duration_mins FROM routes WHERE route_id = ?",
		routeID,
	).Scan(&route.ID, &route.OriginCode, &route.DestCode, &route.DistanceKM, &route.DurationMins)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBError("get route", err)
	}
	return route, nil
}

// ListRoutes retrieves all routes ordered by origin then destination.
func (r *CatalogRepository) ListRoutes(ctx context.Context) ([]*secondary.RouteRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT route_id, origin_code, dest_code, distance_km, duration_mins FROM routes ORDER BY origin_code, dest_code",
	)
	if err != nil {
		return nil, wrapDBError("list routes", err)
	}
	defer rows.Close()

	var routes []*secondary.RouteRecord
	for rows.Next() {
		route := &secondary.RouteRecord{}
		if err := rows.Scan(&route.ID, &route.OriginCode, &route.DestCode, &route.DistanceKM, &route.DurationMins); err != nil {
			return nil, wrapDBError("scan route", err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list routes", err)
	}
	return routes, nil
}

// InsertPilot persists a new pilot and returns their id. Licence
// uniqueness is case/whitespace-insensitive (enforced by index).
func (r *CatalogRepository) InsertPilot(ctx context.Context, pilot *secondary.PilotRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO pilots (licence_no, first_name, last_name, rank, hire_date) VALUES (?, ?, ?, ?, ?)",
		pilot.LicenceNo, pilot.FirstName, pilot.LastName, string(pilot.Rank), pilot.HireDate,
	)
	if isConstraintErr(err) {
		return 0, models.NewConflictError("licence %s already exists", pilot.LicenceNo)
	}
	if err != nil {
		return 0, wrapDBError("insert pilot", err)
	}

	pilotID, err := res.LastInsertId()
	if err != nil {
		return 0, wrapDBError("insert pilot", err)
	}
	return pilotID, nil
}

// ListPilots retrieves all pilots ordered by rank then name.
func (r *CatalogRepository) ListPilots(ctx context.Context) ([]*secondary.PilotRecord, error) {
	return r.queryPilots(ctx,
		"SELECT "+pilotSelectCols+" FROM pilots ORDER BY rank, last_name, first_name",
	)
}

// ListPilotsByRank retrieves pilots of one rank ordered by name.
func (r *CatalogRepository) ListPilotsByRank(ctx context.Context, rank models.Rank) ([]*secondary.PilotRecord, error) {
	return r.queryPilots(ctx,
		"SELECT "+pilotSelectCols+" FROM pilots WHERE rank = ? ORDER BY last_name, first_name",
		string(rank),
	)
}

func (r *CatalogRepository) queryPilots(ctx context.Context, query string, args ...any) ([]*secondary.PilotRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("list pilots", err)
	}
	defer rows.Close()

	var pilots []*secondary.PilotRecord
	for rows.Next() {
		p, err := scanPilot(rows)
		if err != nil {
			return nil, wrapDBError("scan pilot", err)
		}
		pilots = append(pilots, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list pilots", err)
	}
	return pilots, nil
}

// InsertFlight persists a new flight and returns its id. The (number,
// date) natural key is unique.
func (r *CatalogRepository) InsertFlight(ctx context.Context, flight *secondary.FlightRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO flights (flight_number, flight_date, route_id, sched_dep_utc, sched_arr_utc, status_id) VALUES (?, ?, ?, ?, ?, ?)",
		flight.FlightNumber, flight.FlightDate, flight.RouteID, flight.SchedDepUTC, flight.SchedArrUTC, flight.StatusID,
	)
	if isConstraintErr(err) {
		return 0, models.NewConflictError("flight %s on %s already exists", flight.FlightNumber, flight.FlightDate)
	}
	if err != nil {
		return 0, wrapDBError("insert flight", err)
	}

	flightID, err := res.LastInsertId()
	if err != nil {
		return 0, wrapDBError("insert flight", err)
	}
	return flightID, nil
}

// StatusID resolves a status name to its identifier.
func (r *CatalogRepository) StatusID(ctx context.Context, status models.Status) (int64, bool, error) {
	return statusID(ctx, r.db, status)
}
