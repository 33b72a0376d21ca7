// Package sqlite_test contains integration tests for the SQLite
// repositories, run against an in-memory database built from the
// authoritative schema in internal/db. Test fixtures go through the
// seed* helpers below rather than hardcoded CREATE TABLE statements.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/flightdeck/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative
// schema and foreign keys enabled.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Every pooled connection to :memory: is a separate database, so pin
	// the pool to one connection.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// setupSeededDB creates an in-memory database loaded with the full
// fixture set: 15 airports, 15 routes, 15 pilots, 15 flights and their
// crew assignments.
func setupSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB := setupTestDB(t)
	if err := db.SeedFixtures(testDB); err != nil {
		t.Fatalf("failed to seed fixtures: %v", err)
	}
	return testDB
}

// seedStatuses inserts the five flight statuses.
func seedStatuses(t *testing.T, db *sql.DB) {
	t.Helper()
	statuses := []string{"Scheduled", "Boarding", "Departed", "Cancelled", "Delayed"}
	for i, name := range statuses {
		if _, err := db.Exec(
			"INSERT INTO flight_statuses (status_id, status_name) VALUES (?, ?)",
			i+1, name,
		); err != nil {
			t.Fatalf("failed to seed statuses: %v", err)
		}
	}
}

// seedAirport inserts a test airport.
func seedAirport(t *testing.T, db *sql.DB, code string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO airports (airport_code, name, city, country, utc_offset, tz_name) VALUES (?, ?, ?, ?, 0, 'UTC')",
		code, code+" Test Airport", "Testville", "Testland",
	)
	if err != nil {
		t.Fatalf("failed to seed airport %s: %v", code, err)
	}
}

// seedRoute inserts a test route and returns its id.
func seedRoute(t *testing.T, db *sql.DB, origin, dest string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO routes (origin_code, dest_code, distance_km, duration_mins) VALUES (?, ?, 1000, 120)",
		origin, dest,
	)
	if err != nil {
		t.Fatalf("failed to seed route %s -> %s: %v", origin, dest, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get route id: %v", err)
	}
	return id
}

// seedPilot inserts a test pilot and returns their id.
func seedPilot(t *testing.T, db *sql.DB, licence, first, last, rank string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO pilots (licence_no, first_name, last_name, rank, hire_date) VALUES (?, ?, ?, ?, '2015-01-01')",
		licence, first, last, rank,
	)
	if err != nil {
		t.Fatalf("failed to seed pilot %s: %v", licence, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get pilot id: %v", err)
	}
	return id
}

// seedFlight inserts a test flight and returns its id.
func seedFlight(t *testing.T, db *sql.DB, number, date string, routeID int64, dep, arr string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO flights (flight_number, flight_date, route_id, sched_dep_utc, sched_arr_utc, status_id) VALUES (?, ?, ?, ?, ?, 1)",
		number, date, routeID, dep, arr,
	)
	if err != nil {
		t.Fatalf("failed to seed flight %s: %v", number, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get flight id: %v", err)
	}
	return id
}

// seedCrew inserts a crew assignment.
func seedCrew(t *testing.T, db *sql.DB, flightID, pilotID int64, role string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO crew_assignments (flight_id, pilot_id, role) VALUES (?, ?, ?)",
		flightID, pilotID, role,
	)
	if err != nil {
		t.Fatalf("failed to seed crew assignment: %v", err)
	}
}
