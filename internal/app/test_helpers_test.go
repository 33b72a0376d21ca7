package app

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/flightdeck/internal/adapters/sqlite"
	"github.com/example/flightdeck/internal/db"
	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/secondary"
)

// Ensure the stub implements the interface
var _ secondary.ChangeConfirmer = (*stubConfirmer)(nil)

// stubConfirmer records the previews it receives and answers with a
// scripted decision.
type stubConfirmer struct {
	approve  bool
	calls    int
	current  *models.FlightDetails
	proposed *models.FlightDetails
}

func (s *stubConfirmer) ConfirmChange(current, proposed *models.FlightDetails) (bool, error) {
	s.calls++
	s.current = current
	s.proposed = proposed
	return s.approve, nil
}

// setupSeededDB creates an in-memory database with the authoritative
// schema and the full fixture set loaded.
func setupSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection to :memory: is a separate database.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := db.SeedFixtures(testDB); err != nil {
		t.Fatalf("failed to seed fixtures: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// newTestFlightService builds a FlightService over a seeded in-memory
// database with a scripted confirmer.
func newTestFlightService(t *testing.T, approve bool) (*FlightServiceImpl, *sql.DB, *stubConfirmer) {
	t.Helper()
	database := setupSeededDB(t)
	confirm := &stubConfirmer{approve: approve}
	return NewFlightService(sqlite.NewFlightRepository(database), confirm), database, confirm
}

// flightSnapshot reads the full flight_details row for assertions about
// what a mutation did (or did not) change.
func flightSnapshot(t *testing.T, database *sql.DB, number, date string) map[string]string {
	t.Helper()

	row := database.QueryRow(`
		SELECT origin_code, dest_code, status_name, sched_dep_utc, sched_arr_utc,
		       COALESCE(captain_name, ''), COALESCE(captain_id, 0),
		       COALESCE(fo_name, ''), COALESCE(fo_id, 0)
		FROM flight_details WHERE flight_number = ? AND flight_date = ?`,
		number, date,
	)

	var origin, dest, status, dep, arr, capName, foName string
	var capID, foID int64
	if err := row.Scan(&origin, &dest, &status, &dep, &arr, &capName, &capID, &foName, &foID); err != nil {
		t.Fatalf("failed to load flight %s on %s: %v", number, date, err)
	}

	return map[string]string{
		"origin":  origin,
		"dest":    dest,
		"status":  status,
		"dep":     dep,
		"arr":     arr,
		"captain": capName,
		"fo":      foName,
	}
}
