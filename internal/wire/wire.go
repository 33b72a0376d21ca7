// Package wire provides dependency injection for the flightdeck
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/flightdeck/internal/adapters/console"
	"github.com/example/flightdeck/internal/adapters/sqlite"
	"github.com/example/flightdeck/internal/app"
	"github.com/example/flightdeck/internal/config"
	"github.com/example/flightdeck/internal/db"
	"github.com/example/flightdeck/internal/ports/primary"
	"github.com/example/flightdeck/internal/ports/secondary"
)

var (
	flightRepo     secondary.FlightRepository
	catalogService primary.CatalogService
	reportService  primary.ReportService
	once           sync.Once
)

// FlightService returns a FlightService confirming changes on the
// operator's terminal.
func FlightService() primary.FlightService {
	return FlightServiceWithConfirmer(console.New(os.Stdout, os.Stdin))
}

// FlightServiceWithConfirmer returns a FlightService with the given
// confirmer. Used by --yes (auto-approve) and by tests.
func FlightServiceWithConfirmer(confirm secondary.ChangeConfirmer) primary.FlightService {
	once.Do(initServices)
	return app.NewFlightService(flightRepo, confirm)
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// DatabasePath resolves the configured database path.
func DatabasePath() (string, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return "", err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return "", err
	}
	return cfg.Database.Path, nil
}

// initServices opens the database and builds the repository adapters.
// Called once via sync.Once.
func initServices() {
	path, err := DatabasePath()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Fatalf("database not initialised. Run: flightdeck init --seed")
	}

	database, err := db.Open(path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	flightRepo = sqlite.NewFlightRepository(database)
	catalogService = app.NewCatalogService(sqlite.NewCatalogRepository(database))
	reportService = app.NewReportService(sqlite.NewReportRepository(database))
}
