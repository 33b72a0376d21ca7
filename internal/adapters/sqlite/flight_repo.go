// Package sqlite contains SQLite implementations of the repository ports.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/secondary"
)

// FlightRepository implements secondary.FlightRepository with SQLite.
type FlightRepository struct {
	db *sql.DB
}

// NewFlightRepository creates a new SQLite flight repository.
func NewFlightRepository(db *sql.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

const flightDetailCols = "flight_id, flight_number, flight_date, origin_code, dest_code, status_name, sched_dep_utc, sched_arr_utc, captain_name, captain_id, fo_name, fo_id"

// scanFlightDetails scans a flight_details row. Crew columns are NULL
// when the seat is unassigned.
func scanFlightDetails(scanner interface {
	Scan(dest ...any) error
}) (*models.FlightDetails, error) {
	var (
		captainName sql.NullString
		captainID   sql.NullInt64
		foName      sql.NullString
		foID        sql.NullInt64
	)

	d := &models.FlightDetails{}
	err := scanner.Scan(
		&d.FlightID, &d.FlightNumber, &d.FlightDate,
		&d.OriginCode, &d.DestCode, &d.StatusName,
		&d.SchedDepUTC, &d.SchedArrUTC,
		&captainName, &captainID, &foName, &foID,
	)
	if err != nil {
		return nil, err
	}

	d.CaptainName = captainName.String
	d.CaptainID = captainID.Int64
	d.FirstOfficerName = foName.String
	d.FirstOfficerID = foID.Int64

	return d, nil
}

// Begin opens a transaction for one mutation operation.
func (r *FlightRepository) Begin(ctx context.Context) (secondary.FlightTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapDBError("begin transaction", err)
	}
	return &flightTx{tx: tx}, nil
}

// StatusID resolves a status name to its identifier.
func (r *FlightRepository) StatusID(ctx context.Context, status models.Status) (int64, bool, error) {
	return statusID(ctx, r.db, status)
}

// GetPilot retrieves a pilot by id, or nil when absent.
func (r *FlightRepository) GetPilot(ctx context.Context, pilotID int64) (*secondary.PilotRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+pilotSelectCols+" FROM pilots WHERE pilot_id = ?",
		pilotID,
	)

	pilot, err := scanPilot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBError("get pilot", err)
	}
	return pilot, nil
}

// ListFlights retrieves flight_details rows matching the filters using
// NULL-safe optional predicates, ordered by date then departure.
func (r *FlightRepository) ListFlights(ctx context.Context, filters secondary.FlightFilters) ([]*models.FlightDetails, error) {
	query := `
		SELECT ` + flightDetailCols + `
		FROM flight_details
		WHERE (:origin IS NULL OR origin_code = :origin)
		  AND (:dest   IS NULL OR dest_code   = :dest)
		  AND (:stat   IS NULL OR status_name = :stat)
		  AND (:dfrom  IS NULL OR flight_date >= :dfrom)
		  AND (:dto    IS NULL OR flight_date <= :dto)
		  AND (:cap    IS NULL OR captain_id  = :cap)
		ORDER BY flight_date, sched_dep_utc`

	rows, err := r.db.QueryContext(ctx, query,
		sql.Named("origin", nullableString(filters.OriginCode)),
		sql.Named("dest", nullableString(filters.DestCode)),
		sql.Named("stat", nullableString(filters.StatusName)),
		sql.Named("dfrom", nullableString(filters.DateFrom)),
		sql.Named("dto", nullableString(filters.DateTo)),
		sql.Named("cap", nullableInt(filters.CaptainID)),
	)
	if err != nil {
		return nil, wrapDBError("list flights", err)
	}
	defer rows.Close()

	var flights []*models.FlightDetails
	for rows.Next() {
		d, err := scanFlightDetails(rows)
		if err != nil {
			return nil, wrapDBError("scan flight", err)
		}
		flights = append(flights, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list flights", err)
	}

	return flights, nil
}

// flightTx implements secondary.FlightTx over *sql.Tx.
type flightTx struct {
	tx *sql.Tx
}

func (t *flightTx) LoadFlight(ctx context.Context, flightNumber, flightDate string) (*models.FlightDetails, error) {
	row := t.tx.QueryRowContext(ctx,
		"SELECT "+flightDetailCols+" FROM flight_details WHERE flight_number = ? AND flight_date = ?",
		flightNumber, flightDate,
	)

	d, err := scanFlightDetails(row)
	if errors.Is(err, sql.ErrNoRows) {
		// A missing flight is an operator-input problem, not a fault.
		return nil, models.NewValidationError("no flight found for %s on %s", flightNumber, flightDate)
	}
	if err != nil {
		return nil, wrapDBError("load flight", err)
	}
	return d, nil
}

func (t *flightTx) FindRoute(ctx context.Context, originCode, destCode string) (int64, bool, error) {
	var routeID int64
	err := t.tx.QueryRowContext(ctx,
		"SELECT route_id FROM routes WHERE origin_code = ? AND dest_code = ?",
		originCode, destCode,
	).Scan(&routeID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrapDBError("find route", err)
	}
	return routeID, true, nil
}

func (t *flightTx) InsertRoute(ctx context.Context, originCode, destCode string, distanceKM float64, durationMins int64) (int64, error) {
	res, err := t.tx.ExecContext(ctx,
		"INSERT INTO routes (origin_code, dest_code, distance_km, duration_mins) VALUES (?, ?, ?, ?)",
		originCode, destCode, distanceKM, durationMins,
	)
	if isConstraintErr(err) {
		return 0, models.NewConflictError("route %s -> %s already exists", originCode, destCode)
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

func (t *flightTx) SetFlightRoute(ctx context.Context, flightID, routeID int64) error {
	_, err := t.tx.ExecContext(ctx,
		"UPDATE flights SET route_id = ? WHERE flight_id = ?",
		routeID, flightID,
	)
	if err != nil {
		return wrapDBError("update flight route", err)
	}
	return nil
}

func (t *flightTx) SetFlightTimes(ctx context.Context, flightID int64, depUTC, arrUTC string) error {
	_, err := t.tx.ExecContext(ctx,
		"UPDATE flights SET sched_dep_utc = ?, sched_arr_utc = ? WHERE flight_id = ?",
		depUTC, arrUTC, flightID,
	)
	if err != nil {
		return wrapDBError("update flight times", err)
	}
	return nil
}

func (t *flightTx) SetFlightStatus(ctx context.Context, flightID, statusID int64) error {
	_, err := t.tx.ExecContext(ctx,
		"UPDATE flights SET status_id = ? WHERE flight_id = ?",
		statusID, flightID,
	)
	if err != nil {
		return wrapDBError("update flight status", err)
	}
	return nil
}

func (t *flightTx) ReplaceCrew(ctx context.Context, flightID, pilotID int64, role models.Rank) error {
	_, err := t.tx.ExecContext(ctx,
		"DELETE FROM crew_assignments WHERE flight_id = ? AND role = ?",
		flightID, string(role),
	)
	if err != nil {
		return wrapDBError("remove crew assignment", err)
	}

	_, err = t.tx.ExecContext(ctx,
		"INSERT INTO crew_assignments (flight_id, pilot_id, role) VALUES (?, ?, ?)",
		flightID, pilotID, string(role),
	)
	if isConstraintErr(err) {
		// (flight_id, pilot_id) primary key: the pilot already holds the
		// other seat on this flight.
		return models.NewConflictError("assignment failed - pilot %d is already assigned to this flight", pilotID)
	}
	if err != nil {
		return wrapDBError("insert crew assignment", err)
	}
	return nil
}

func (t *flightTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return wrapDBError("commit transaction", err)
	}
	return nil
}

func (t *flightTx) Rollback() error {
	err := t.tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return wrapDBError("rollback transaction", err)
	}
	return nil
}

// statusID is shared by the flight and catalog repositories.
func statusID(ctx context.Context, db *sql.DB, status models.Status) (int64, bool, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		"SELECT status_id FROM flight_statuses WHERE status_name = ?",
		string(status),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrapDBError("resolve status", err)
	}
	return id, true, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(i int64) any {
	if i == 0 {
		return nil
	}
	return i
}
