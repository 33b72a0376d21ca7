package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with the development fixture set:
// 15 airports, 15 routes, the 5 statuses, 15 pilots, 15 flights and their
// crew assignments. Expects a fresh schema; re-seeding an already seeded
// database fails on the first duplicate.
func SeedFixtures(database *sql.DB) error {
	airports := []struct {
		code, name, city, country string
		utcOffset                 float64
		tzName                    string
	}{
		{"LHR", "Heathrow", "London", "United Kingdom", 0.0, "Europe/London"},
		{"LGW", "Gatwick", "London", "United Kingdom", 0.0, "Europe/London"},
		{"MAN", "Manchester", "Manchester", "United Kingdom", 0.0, "Europe/London"},
		{"JFK", "John F. Kennedy Intl", "New York", "United States", -5.0, "America/New_York"},
		{"LAX", "Los Angeles Intl", "Los Angeles", "United States", -8.0, "America/Los_Angeles"},
		{"CDG", "Charles de Gaulle", "Paris", "France", 1.0, "Europe/Paris"},
		{"AMS", "Schiphol", "Amsterdam", "Netherlands", 1.0, "Europe/Amsterdam"},
		{"FRA", "Frankfurt Main", "Frankfurt", "Germany", 1.0, "Europe/Berlin"},
		{"DXB", "Dubai Intl", "Dubai", "UAE", 4.0, "Asia/Dubai"},
		{"SIN", "Changi", "Singapore", "Singapore", 8.0, "Asia/Singapore"},
		{"SYD", "Kingsford-Smith", "Sydney", "Australia", 10.0, "Australia/Sydney"},
		{"HND", "Haneda", "Tokyo", "Japan", 9.0, "Asia/Tokyo"},
		{"YYZ", "Pearson", "Toronto", "Canada", -5.0, "America/Toronto"},
		{"DEL", "Indira Gandhi Intl", "Delhi", "India", 5.5, "Asia/Kolkata"},
		{"ATL", "Hartsfield-Jackson", "Atlanta", "United States", -5.0, "America/New_York"},
	}
	for _, a := range airports {
		if _, err := database.Exec(
			"INSERT INTO airports (airport_code, name, city, country, utc_offset, tz_name) VALUES (?, ?, ?, ?, ?, ?)",
			a.code, a.name, a.city, a.country, a.utcOffset, a.tzName,
		); err != nil {
			return fmt.Errorf("seed airports: %w", err)
		}
	}

	routes := []struct {
		origin, dest string
		distanceKM   float64
		durationMins int64
	}{
		{"LHR", "JFK", 5556, 420},
		{"LHR", "DXB", 5500, 415},
		{"LGW", "AMS", 358, 60},
		{"MAN", "CDG", 592, 85},
		{"JFK", "LAX", 3974, 330},
		{"CDG", "SIN", 10733, 800},
		{"AMS", "FRA", 367, 60},
		{"FRA", "HND", 9363, 720},
		{"DXB", "SYD", 12035, 860},
		{"SIN", "SYD", 6300, 480},
		{"HND", "LAX", 8821, 650},
		{"YYZ", "DEL", 702, 90},
		{"DEL", "ATL", 975, 110},
		{"ATL", "LHR", 6763, 460},
		{"MAN", "YYZ", 5410, 400},
	}
	for _, r := range routes {
		if _, err := database.Exec(
			"INSERT INTO routes (origin_code, dest_code, distance_km, duration_mins) VALUES (?, ?, ?, ?)",
			r.origin, r.dest, r.distanceKM, r.durationMins,
		); err != nil {
			return fmt.Errorf("seed routes: %w", err)
		}
	}

	statuses := []struct {
		id   int64
		name string
	}{
		{1, "Scheduled"},
		{2, "Boarding"},
		{3, "Departed"},
		{4, "Cancelled"},
		{5, "Delayed"},
	}
	for _, s := range statuses {
		if _, err := database.Exec(
			"INSERT INTO flight_statuses (status_id, status_name) VALUES (?, ?)",
			s.id, s.name,
		); err != nil {
			return fmt.Errorf("seed statuses: %w", err)
		}
	}

	pilots := []struct {
		licence, first, last, rank, hired string
	}{
		{"LIC1001", "Alice", "Adams", "Captain", "2015-04-12"},
		{"LIC1002", "Bob", "Barker", "Captain", "2012-09-30"},
		{"LIC1003", "Cara", "Chen", "First Officer", "2019-06-18"},
		{"LIC1004", "Dan", "Diaz", "First Officer", "2020-11-05"},
		{"LIC1005", "Eva", "Edwards", "Captain", "2011-02-22"},
		{"LIC1006", "Felix", "Foley", "First Officer", "2018-08-14"},
		{"LIC1007", "Grace", "Gibson", "Captain", "2010-01-07"},
		{"LIC1008", "Hank", "Hansen", "First Officer", "2021-03-28"},
		{"LIC1009", "Ivy", "Ibrahim", "Captain", "2014-07-19"},
		{"LIC1010", "Jack", "Jones", "First Officer", "2022-10-10"},
		{"LIC1011", "Kara", "Klein", "Captain", "2013-05-03"},
		{"LIC1012", "Leo", "Lopez", "First Officer", "2017-12-12"},
		{"LIC1013", "Mia", "Moore", "Captain", "2009-09-09"},
		{"LIC1014", "Ned", "Nguyen", "First Officer", "2023-01-15"},
		{"LIC1015", "Ola", "Olsen", "Captain", "2016-06-06"},
	}
	for _, p := range pilots {
		if _, err := database.Exec(
			"INSERT INTO pilots (licence_no, first_name, last_name, rank, hire_date) VALUES (?, ?, ?, ?, ?)",
			p.licence, p.first, p.last, p.rank, p.hired,
		); err != nil {
			return fmt.Errorf("seed pilots: %w", err)
		}
	}

	flights := []struct {
		number, date string
		routeID      int64
		dep, arr     string
		statusID     int64
	}{
		{"BA101", "2025-06-05", 1, "2025-06-05 08:00", "2025-06-05 15:00", 1},
		{"BA102", "2025-06-06", 2, "2025-06-06 07:30", "2025-06-06 14:25", 1},
		{"BA103", "2025-06-07", 3, "2025-06-07 09:00", "2025-06-07 10:00", 1},
		{"BA104", "2025-06-08", 4, "2025-06-08 10:00", "2025-06-08 11:25", 2},
		{"BA105", "2025-06-09", 5, "2025-06-09 12:00", "2025-06-09 17:30", 1},
		{"BA106", "2025-06-10", 6, "2025-06-10 06:00", "2025-06-10 19:20", 1},
		{"BA107", "2025-06-11", 7, "2025-06-11 08:00", "2025-06-11 09:00", 1},
		{"BA108", "2025-06-12", 8, "2025-06-12 03:00", "2025-06-12 15:00", 1},
		{"BA109", "2025-06-13", 9, "2025-06-13 00:00", "2025-06-13 14:20", 1},
		{"BA110", "2025-06-14", 10, "2025-06-14 02:00", "2025-06-14 10:00", 2},
		{"BA111", "2025-06-15", 11, "2025-06-15 18:00", "2025-06-16 05:50", 1},
		{"BA112", "2025-06-16", 12, "2025-06-16 13:00", "2025-06-16 14:30", 1},
		{"BA113", "2025-06-17", 13, "2025-06-17 15:00", "2025-06-17 16:50", 1},
		{"BA114", "2025-06-18", 14, "2025-06-18 09:00", "2025-06-18 16:40", 5},
		{"BA115", "2025-06-19", 15, "2025-06-19 07:00", "2025-06-19 13:40", 3},
	}
	for _, f := range flights {
		if _, err := database.Exec(
			"INSERT INTO flights (flight_number, flight_date, route_id, sched_dep_utc, sched_arr_utc, status_id) VALUES (?, ?, ?, ?, ?, ?)",
			f.number, f.date, f.routeID, f.dep, f.arr, f.statusID,
		); err != nil {
			return fmt.Errorf("seed flights: %w", err)
		}
	}

	crew := []struct {
		flightID, pilotID int64
		role              string
	}{
		{1, 1, "Captain"}, {2, 2, "Captain"}, {3, 5, "Captain"},
		{4, 7, "Captain"}, {5, 9, "Captain"}, {6, 11, "Captain"},
		{7, 13, "Captain"}, {8, 15, "Captain"}, {9, 1, "Captain"},
		{10, 2, "Captain"}, {11, 5, "Captain"}, {12, 7, "Captain"},
		{13, 9, "Captain"}, {14, 11, "Captain"}, {15, 13, "Captain"},
		{1, 3, "First Officer"}, {2, 4, "First Officer"},
		{3, 6, "First Officer"}, {4, 8, "First Officer"},
		{5, 10, "First Officer"},
	}
	for _, c := range crew {
		if _, err := database.Exec(
			"INSERT INTO crew_assignments (flight_id, pilot_id, role) VALUES (?, ?, ?)",
			c.flightID, c.pilotID, c.role,
		); err != nil {
			return fmt.Errorf("seed crew assignments: %w", err)
		}
	}

	return nil
}
