package db

// SchemaSQL is the complete schema for fresh flightdeck databases and the
// single source of truth for tests, which load it via GetSchemaSQL().
// Repository code that references a column missing here fails immediately
// with "no such column" at test time.
const SchemaSQL = `
-- Airports (reference data, immutable once routed)
CREATE TABLE IF NOT EXISTS airports (
	airport_code TEXT PRIMARY KEY CHECK(length(airport_code) = 3),
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	country TEXT NOT NULL,
	utc_offset REAL NOT NULL,
	tz_name TEXT NOT NULL
);

-- Routes (unique per origin/destination pair)
CREATE TABLE IF NOT EXISTS routes (
	route_id INTEGER PRIMARY KEY AUTOINCREMENT,
	origin_code TEXT NOT NULL,
	dest_code TEXT NOT NULL,
	distance_km REAL NOT NULL,
	duration_mins INTEGER NOT NULL,
	FOREIGN KEY (origin_code) REFERENCES airports(airport_code) ON DELETE RESTRICT,
	FOREIGN KEY (dest_code) REFERENCES airports(airport_code) ON DELETE RESTRICT,
	UNIQUE (origin_code, dest_code)
);

-- Pilots (licence uniqueness is case/whitespace-insensitive)
CREATE TABLE IF NOT EXISTS pilots (
	pilot_id INTEGER PRIMARY KEY AUTOINCREMENT,
	licence_no TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	rank TEXT NOT NULL CHECK (rank IN ('Captain', 'First Officer')),
	hire_date TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_pilots_licence_clean
ON pilots (UPPER(TRIM(licence_no)));

-- Flight statuses (fixed 5-value enumeration)
CREATE TABLE IF NOT EXISTS flight_statuses (
	status_id INTEGER PRIMARY KEY,
	status_name TEXT NOT NULL UNIQUE
	CHECK (status_name IN ('Scheduled','Boarding','Departed','Cancelled','Delayed'))
);

-- Flights (addressed externally by the (flight_number, flight_date) pair).
-- Dates and timestamps are declared TEXT: DATE/DATETIME columns make the
-- driver return time.Time, and the stored YYYY-MM-DD / YYYY-MM-DD HH:MM
-- shapes must come back exactly as written.
CREATE TABLE IF NOT EXISTS flights (
	flight_id INTEGER PRIMARY KEY AUTOINCREMENT,
	flight_number TEXT NOT NULL,
	flight_date TEXT NOT NULL,
	route_id INTEGER NOT NULL,
	sched_dep_utc TEXT NOT NULL,
	sched_arr_utc TEXT NOT NULL CHECK (datetime(sched_arr_utc) > datetime(sched_dep_utc)),
	status_id INTEGER NOT NULL,
	FOREIGN KEY (route_id) REFERENCES routes(route_id) ON DELETE RESTRICT,
	FOREIGN KEY (status_id) REFERENCES flight_statuses(status_id) ON DELETE RESTRICT,
	UNIQUE (flight_number, flight_date)
);

CREATE INDEX IF NOT EXISTS idx_flights_route_date
ON flights (route_id, flight_date);

-- Crew assignments (at most one pilot per (flight, role))
CREATE TABLE IF NOT EXISTS crew_assignments (
	flight_id INTEGER NOT NULL,
	pilot_id INTEGER NOT NULL,
	role TEXT CHECK(role IN ('Captain','First Officer')),
	PRIMARY KEY (flight_id, pilot_id),
	FOREIGN KEY (flight_id) REFERENCES flights(flight_id) ON DELETE CASCADE,
	FOREIGN KEY (pilot_id) REFERENCES pilots(pilot_id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_crew_flight_role_unique
ON crew_assignments (flight_id, role);

-- Denormalised flight snapshot used by every read and mutation
CREATE VIEW IF NOT EXISTS flight_details AS
SELECT
	f.flight_id,
	f.flight_number,
	f.flight_date,
	r.origin_code,
	r.dest_code,
	fs.status_name,
	f.sched_dep_utc,
	f.sched_arr_utc,
	cap.first_name || ' ' || cap.last_name AS captain_name,
	cap.pilot_id AS captain_id,
	fo.first_name || ' ' || fo.last_name AS fo_name,
	fo.pilot_id AS fo_id
FROM flights f
JOIN routes r ON f.route_id = r.route_id
JOIN flight_statuses fs ON f.status_id = fs.status_id
LEFT JOIN crew_assignments ca_cap
	ON ca_cap.flight_id = f.flight_id AND ca_cap.role = 'Captain'
LEFT JOIN pilots cap ON cap.pilot_id = ca_cap.pilot_id
LEFT JOIN crew_assignments ca_fo
	ON ca_fo.flight_id = f.flight_id AND ca_fo.role = 'First Officer'
LEFT JOIN pilots fo ON fo.pilot_id = ca_fo.pilot_id;
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Do not hardcode CREATE TABLE statements in test files.
func GetSchemaSQL() string {
	return SchemaSQL
}
