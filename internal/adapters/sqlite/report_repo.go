package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/secondary"
)

// ReportRepository implements secondary.ReportRepository with SQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// FlightsPerDestination counts flights per destination, busiest first.
func (r *ReportRepository) FlightsPerDestination(ctx context.Context) ([]*secondary.DestinationCount, error) {
	return r.destinationCounts(ctx, `
		SELECT dest_code, COUNT(*)
		FROM flight_details
		GROUP BY dest_code
		ORDER BY COUNT(*) DESC`)
}

// FlightsPerDestinationRange counts flights per destination within an
// inclusive date range.
func (r *ReportRepository) FlightsPerDestinationRange(ctx context.Context, dateFrom, dateTo string) ([]*secondary.DestinationCount, error) {
	return r.destinationCounts(ctx, `
		SELECT dest_code, COUNT(*)
		FROM flight_details
		WHERE flight_date BETWEEN ? AND ?
		GROUP BY dest_code
		ORDER BY COUNT(*) DESC`, dateFrom, dateTo)
}

func (r *ReportRepository) destinationCounts(ctx context.Context, query string, args ...any) ([]*secondary.DestinationCount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("flights per destination", err)
	}
	defer rows.Close()

	var counts []*secondary.DestinationCount
	for rows.Next() {
		c := &secondary.DestinationCount{}
		if err := rows.Scan(&c.DestCode, &c.Flights); err != nil {
			return nil, wrapDBError("scan destination count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("flights per destination", err)
	}
	return counts, nil
}

// FlightsPerPilot counts assignments per pilot, busiest first.
func (r *ReportRepository) FlightsPerPilot(ctx context.Context) ([]*secondary.PilotFlightCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.pilot_id, p.first_name || ' ' || p.last_name, p.rank, COUNT(*)
		FROM crew_assignments ca
		JOIN pilots p ON ca.pilot_id = p.pilot_id
		GROUP BY p.pilot_id, p.first_name, p.last_name, p.rank
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, wrapDBError("flights per pilot", err)
	}
	defer rows.Close()

	var counts []*secondary.PilotFlightCount
	for rows.Next() {
		c := &secondary.PilotFlightCount{}
		var rank string
		if err := rows.Scan(&c.PilotID, &c.Name, &rank, &c.Flights); err != nil {
			return nil, wrapDBError("scan pilot count", err)
		}
		c.Rank = models.Rank(rank)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("flights per pilot", err)
	}
	return counts, nil
}

// FlightsByStatus counts flights per status, largest first.
func (r *ReportRepository) FlightsByStatus(ctx context.Context) ([]*secondary.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status_name, COUNT(*)
		FROM flight_details
		GROUP BY status_name
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, wrapDBError("flights by status", err)
	}
	defer rows.Close()

	var counts []*secondary.StatusCount
	for rows.Next() {
		c := &secondary.StatusCount{}
		if err := rows.Scan(&c.StatusName, &c.Flights); err != nil {
			return nil, wrapDBError("scan status count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("flights by status", err)
	}
	return counts, nil
}

// BusiestRoutes returns the top routes by flight count.
func (r *ReportRepository) BusiestRoutes(ctx context.Context, limit int) ([]*secondary.RouteCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT origin_code || ' -> ' || dest_code, COUNT(*)
		FROM flight_details
		GROUP BY origin_code, dest_code
		ORDER BY COUNT(*) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapDBError("busiest routes", err)
	}
	defer rows.Close()

	var counts []*secondary.RouteCount
	for rows.Next() {
		c := &secondary.RouteCount{}
		if err := rows.Scan(&c.Route, &c.Flights); err != nil {
			return nil, wrapDBError("scan route count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("busiest routes", err)
	}
	return counts, nil
}
