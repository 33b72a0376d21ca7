package app

import (
	"context"
	"reflect"
	"testing"

	"github.com/example/flightdeck/internal/models"
	"github.com/example/flightdeck/internal/ports/primary"
)

func TestChangeStatusApproved(t *testing.T) {
	service, database, confirm := newTestFlightService(t, true)
	ctx := context.Background()

	resp, err := service.ChangeStatus(ctx, primary.ChangeStatusRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewStatus:    "delayed",
	})
	if err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}
	if resp.Cancelled {
		t.Error("ChangeStatus() Cancelled = true after approval")
	}

	if confirm.calls != 1 {
		t.Errorf("confirmer called %d times, want 1", confirm.calls)
	}
	if confirm.current.StatusName != "Scheduled" || confirm.proposed.StatusName != "Delayed" {
		t.Errorf("preview status = %q -> %q, want Scheduled -> Delayed",
			confirm.current.StatusName, confirm.proposed.StatusName)
	}
	// The preview must carry the natural-key date and timestamps exactly
	// as stored, not a driver-side rendering.
	if confirm.current.FlightDate != "2025-06-05" {
		t.Errorf("preview FlightDate = %q, want 2025-06-05", confirm.current.FlightDate)
	}
	if confirm.current.SchedDepUTC != "2025-06-05 08:00" {
		t.Errorf("preview SchedDepUTC = %q, want 2025-06-05 08:00", confirm.current.SchedDepUTC)
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["status"] != "Delayed" {
		t.Errorf("status after commit = %q, want Delayed", got["status"])
	}
}

func TestChangeStatusDeclinedLeavesStateUntouched(t *testing.T) {
	service, database, _ := newTestFlightService(t, false)
	ctx := context.Background()

	before := flightSnapshot(t, database, "BA101", "2025-06-05")

	resp, err := service.ChangeStatus(ctx, primary.ChangeStatusRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewStatus:    "Cancelled",
	})
	if err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}
	if !resp.Cancelled {
		t.Error("ChangeStatus() Cancelled = false after decline")
	}

	after := flightSnapshot(t, database, "BA101", "2025-06-05")
	if !reflect.DeepEqual(before, after) {
		t.Errorf("flight changed after decline:\nbefore %v\nafter  %v", before, after)
	}
}

func TestChangeStatusInvalidStatus(t *testing.T) {
	service, _, confirm := newTestFlightService(t, true)

	_, err := service.ChangeStatus(context.Background(), primary.ChangeStatusRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewStatus:    "Landed",
	})
	if !models.IsValidation(err) {
		t.Errorf("ChangeStatus() error = %v, want ValidationError", err)
	}
	if confirm.calls != 0 {
		t.Error("confirmer called for an invalid status")
	}
}

func TestChangeStatusFlightNotFound(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)

	_, err := service.ChangeStatus(context.Background(), primary.ChangeStatusRequest{
		FlightNumber: "BA999",
		FlightDate:   "2099-01-01",
		NewStatus:    "Delayed",
	})
	if !models.IsValidation(err) {
		t.Fatalf("ChangeStatus() error = %v, want ValidationError", err)
	}
	if got, want := err.Error(), "no flight found for BA999 on 2099-01-01"; got != want {
		t.Errorf("ChangeStatus() error = %q, want %q", got, want)
	}
}

func TestChangeTimesApproved(t *testing.T) {
	service, database, _ := newTestFlightService(t, true)

	resp, err := service.ChangeTimes(context.Background(), primary.ChangeTimesRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewDepUTC:    "2025-06-05 09:30",
		NewArrUTC:    "2025-06-05 16:30",
	})
	if err != nil {
		t.Fatalf("ChangeTimes() error = %v", err)
	}
	if resp.Cancelled {
		t.Error("ChangeTimes() Cancelled = true after approval")
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["dep"] != "2025-06-05 09:30" || got["arr"] != "2025-06-05 16:30" {
		t.Errorf("times after commit = %q / %q, want 09:30 / 16:30", got["dep"], got["arr"])
	}
}

func TestChangeTimesRejectsDepartureAfterArrival(t *testing.T) {
	service, _, confirm := newTestFlightService(t, true)

	tests := []struct {
		name     string
		dep, arr string
	}{
		{
			name: "departure after arrival",
			dep:  "2025-06-05 17:00",
			arr:  "2025-06-05 16:00",
		},
		{
			name: "departure equals arrival",
			dep:  "2025-06-05 16:00",
			arr:  "2025-06-05 16:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ChangeTimes(context.Background(), primary.ChangeTimesRequest{
				FlightNumber: "BA101",
				FlightDate:   "2025-06-05",
				NewDepUTC:    tt.dep,
				NewArrUTC:    tt.arr,
			})
			if !models.IsValidation(err) {
				t.Errorf("ChangeTimes() error = %v, want ValidationError", err)
			}
		})
	}

	if confirm.calls != 0 {
		t.Error("confirmer called before the time cross-check failed")
	}
}

func TestChangeTimesRejectsMalformedTimestamp(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)

	_, err := service.ChangeTimes(context.Background(), primary.ChangeTimesRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewDepUTC:    "2025-06-05 9:30",
		NewArrUTC:    "2025-06-05 16:30",
	})
	if !models.IsValidation(err) {
		t.Errorf("ChangeTimes() error = %v, want ValidationError for unpadded hour", err)
	}
}

func TestChangeRouteReusesExistingRoute(t *testing.T) {
	service, database, _ := newTestFlightService(t, true)

	// LGW -> AMS is fixture route 3.
	resp, err := service.ChangeRoute(context.Background(), primary.ChangeRouteRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewOrigin:    "lgw",
		NewDest:      "ams",
	})
	if err != nil {
		t.Fatalf("ChangeRoute() error = %v", err)
	}
	if resp.RouteCreated {
		t.Error("ChangeRoute() RouteCreated = true for an existing route")
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["origin"] != "LGW" || got["dest"] != "AMS" {
		t.Errorf("route after commit = %s -> %s, want LGW -> AMS", got["origin"], got["dest"])
	}

	var routeCount int
	if err := database.QueryRow("SELECT COUNT(*) FROM routes").Scan(&routeCount); err != nil {
		t.Fatalf("count routes: %v", err)
	}
	if routeCount != 15 {
		t.Errorf("route count = %d, want 15 (no new route)", routeCount)
	}
}

func TestChangeRouteCreatesMissingRoute(t *testing.T) {
	service, database, _ := newTestFlightService(t, true)

	resp, err := service.ChangeRoute(context.Background(), primary.ChangeRouteRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewOrigin:    "JFK",
		NewDest:      "LHR",
	})
	if err != nil {
		t.Fatalf("ChangeRoute() error = %v", err)
	}
	if !resp.RouteCreated {
		t.Error("ChangeRoute() RouteCreated = false for a new pair")
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["origin"] != "JFK" || got["dest"] != "LHR" {
		t.Errorf("route after commit = %s -> %s, want JFK -> LHR", got["origin"], got["dest"])
	}

	var distance float64
	var duration int64
	err = database.QueryRow(
		"SELECT distance_km, duration_mins FROM routes WHERE origin_code = 'JFK' AND dest_code = 'LHR'",
	).Scan(&distance, &duration)
	if err != nil {
		t.Fatalf("load created route: %v", err)
	}
	if distance != 0 || duration != 0 {
		t.Errorf("created route distance/duration = %v/%v, want placeholder zeros", distance, duration)
	}
}

func TestChangeRouteDeclinedCreatesNothing(t *testing.T) {
	service, database, _ := newTestFlightService(t, false)

	resp, err := service.ChangeRoute(context.Background(), primary.ChangeRouteRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewOrigin:    "JFK",
		NewDest:      "LHR",
	})
	if err != nil {
		t.Fatalf("ChangeRoute() error = %v", err)
	}
	if !resp.Cancelled {
		t.Error("ChangeRoute() Cancelled = false after decline")
	}

	// Route creation happens only after approval.
	var routeCount int
	if err := database.QueryRow("SELECT COUNT(*) FROM routes").Scan(&routeCount); err != nil {
		t.Fatalf("count routes: %v", err)
	}
	if routeCount != 15 {
		t.Errorf("route count = %d after decline, want 15", routeCount)
	}
}

func TestChangeRouteRejectsBadAirportCode(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)

	_, err := service.ChangeRoute(context.Background(), primary.ChangeRouteRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		NewOrigin:    "LH1",
		NewDest:      "AMS",
	})
	if !models.IsValidation(err) {
		t.Errorf("ChangeRoute() error = %v, want ValidationError", err)
	}
}

func TestChangeCaptainApproved(t *testing.T) {
	service, database, confirm := newTestFlightService(t, true)

	resp, err := service.ChangeCaptain(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		PilotID:      2,
	})
	if err != nil {
		t.Fatalf("ChangeCaptain() error = %v", err)
	}
	if resp.Cancelled {
		t.Error("ChangeCaptain() Cancelled = true after approval")
	}

	if confirm.proposed.CaptainName != "Bob Barker" || confirm.proposed.CaptainID != 2 {
		t.Errorf("preview captain = %q (id %d), want Bob Barker (id 2)",
			confirm.proposed.CaptainName, confirm.proposed.CaptainID)
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["captain"] != "Bob Barker" {
		t.Errorf("captain after commit = %q, want Bob Barker", got["captain"])
	}
	if got["fo"] != "Cara Chen" {
		t.Errorf("first officer disturbed by captain change: %q", got["fo"])
	}
}

func TestChangeCaptainTwiceLeavesSingleRow(t *testing.T) {
	service, database, _ := newTestFlightService(t, true)
	ctx := context.Background()

	for _, pilotID := range []int64{2, 5} {
		if _, err := service.ChangeCaptain(ctx, primary.ChangeCrewRequest{
			FlightNumber: "BA101",
			FlightDate:   "2025-06-05",
			PilotID:      pilotID,
		}); err != nil {
			t.Fatalf("ChangeCaptain(pilot %d) error = %v", pilotID, err)
		}
	}

	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM crew_assignments WHERE flight_id = 1 AND role = 'Captain'",
	).Scan(&count)
	if err != nil {
		t.Fatalf("count captains: %v", err)
	}
	if count != 1 {
		t.Errorf("captain rows after two reassignments = %d, want 1", count)
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["captain"] != "Eva Edwards" {
		t.Errorf("captain = %q, want Eva Edwards (pilot 5)", got["captain"])
	}
}

func TestChangeCaptainRejectsFirstOfficer(t *testing.T) {
	service, _, confirm := newTestFlightService(t, true)

	// Pilot 3 (Cara Chen) holds the First Officer rank.
	_, err := service.ChangeCaptain(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		PilotID:      3,
	})
	if !models.IsValidation(err) {
		t.Fatalf("ChangeCaptain() error = %v, want ValidationError", err)
	}
	if got, want := err.Error(), "Cara Chen is not a Captain"; got != want {
		t.Errorf("ChangeCaptain() error = %q, want %q", got, want)
	}
	if confirm.calls != 0 {
		t.Error("confirmer called despite rank mismatch")
	}
}

func TestChangeCaptainRejectsUnknownPilot(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)

	_, err := service.ChangeCaptain(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		PilotID:      999,
	})
	if !models.IsValidation(err) {
		t.Fatalf("ChangeCaptain() error = %v, want ValidationError", err)
	}
	if got, want := err.Error(), "pilot with ID 999 not found"; got != want {
		t.Errorf("ChangeCaptain() error = %q, want %q", got, want)
	}
}

func TestChangeFirstOfficerApproved(t *testing.T) {
	service, database, _ := newTestFlightService(t, true)

	resp, err := service.ChangeFirstOfficer(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		PilotID:      4,
	})
	if err != nil {
		t.Fatalf("ChangeFirstOfficer() error = %v", err)
	}
	if resp.Cancelled {
		t.Error("ChangeFirstOfficer() Cancelled = true after approval")
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["fo"] != "Dan Diaz" {
		t.Errorf("first officer after commit = %q, want Dan Diaz", got["fo"])
	}
	if got["captain"] != "Alice Adams" {
		t.Errorf("captain disturbed by first-officer change: %q", got["captain"])
	}
}

func TestChangeFirstOfficerRejectsCaptain(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)

	_, err := service.ChangeFirstOfficer(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		PilotID:      1,
	})
	if !models.IsValidation(err) {
		t.Fatalf("ChangeFirstOfficer() error = %v, want ValidationError", err)
	}
	if got, want := err.Error(), "Alice Adams is not a First Officer"; got != want {
		t.Errorf("ChangeFirstOfficer() error = %q, want %q", got, want)
	}
}

func TestChangeCrewDeclined(t *testing.T) {
	service, database, _ := newTestFlightService(t, false)

	resp, err := service.ChangeCaptain(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		PilotID:      2,
	})
	if err != nil {
		t.Fatalf("ChangeCaptain() error = %v", err)
	}
	if !resp.Cancelled {
		t.Error("ChangeCaptain() Cancelled = false after decline")
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["captain"] != "Alice Adams" {
		t.Errorf("captain changed after decline: %q", got["captain"])
	}
}

func TestAssignCaptainSkipsConfirmation(t *testing.T) {
	service, database, confirm := newTestFlightService(t, false)

	resp, err := service.AssignCaptain(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "ba101",
		FlightDate:   "2025-06-05",
		PilotID:      7,
	})
	if err != nil {
		t.Fatalf("AssignCaptain() error = %v", err)
	}

	// Assignment bypasses the preview even with a declining confirmer.
	if confirm.calls != 0 {
		t.Errorf("confirmer called %d times, want 0", confirm.calls)
	}
	if resp.PilotName != "Grace Gibson" {
		t.Errorf("AssignCaptain() PilotName = %q, want Grace Gibson", resp.PilotName)
	}
	if resp.FlightNumber != "BA101" || resp.FlightDate != "2025-06-05" {
		t.Errorf("AssignCaptain() flight = %s on %s, want BA101 on 2025-06-05", resp.FlightNumber, resp.FlightDate)
	}

	got := flightSnapshot(t, database, "BA101", "2025-06-05")
	if got["captain"] != "Grace Gibson" {
		t.Errorf("captain after assignment = %q, want Grace Gibson", got["captain"])
	}
}

func TestAssignCaptainRejectsFirstOfficer(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)

	_, err := service.AssignCaptain(context.Background(), primary.ChangeCrewRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-06-05",
		PilotID:      4,
	})
	if !models.IsValidation(err) {
		t.Errorf("AssignCaptain() error = %v, want ValidationError", err)
	}
}

func TestListFlightsNormalisesFilters(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)
	ctx := context.Background()

	flights, err := service.ListFlights(ctx, primary.FlightSearchRequest{OriginCode: "lhr"})
	if err != nil {
		t.Fatalf("ListFlights() error = %v", err)
	}
	if len(flights) != 2 {
		t.Errorf("ListFlights(origin lhr) returned %d flights, want 2", len(flights))
	}

	flights, err = service.ListFlights(ctx, primary.FlightSearchRequest{StatusName: "boarding"})
	if err != nil {
		t.Fatalf("ListFlights() error = %v", err)
	}
	if len(flights) != 2 {
		t.Errorf("ListFlights(status boarding) returned %d flights, want 2", len(flights))
	}
}

func TestListFlightsRejectsBadFilters(t *testing.T) {
	service, _, _ := newTestFlightService(t, true)
	ctx := context.Background()

	tests := []struct {
		name string
		req  primary.FlightSearchRequest
	}{
		{
			name: "bad origin code",
			req:  primary.FlightSearchRequest{OriginCode: "LHRX"},
		},
		{
			name: "bad status",
			req:  primary.FlightSearchRequest{StatusName: "Landed"},
		},
		{
			name: "bad date",
			req:  primary.FlightSearchRequest{DateFrom: "05-06-2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ListFlights(ctx, tt.req)
			if !models.IsValidation(err) {
				t.Errorf("ListFlights() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestMutationRejectsMalformedDate(t *testing.T) {
	service, _, confirm := newTestFlightService(t, true)

	_, err := service.ChangeStatus(context.Background(), primary.ChangeStatusRequest{
		FlightNumber: "BA101",
		FlightDate:   "2025-6-5",
		NewStatus:    "Delayed",
	})
	if !models.IsValidation(err) {
		t.Errorf("ChangeStatus() error = %v, want ValidationError for unpadded date", err)
	}
	if confirm.calls != 0 {
		t.Error("confirmer called for a malformed date")
	}
}
