package models

// FlightDetails is the denormalised flight snapshot from the
// flight_details view: the flight joined with its route, status and crew
// names. It is the "current state" every mutation diffs against.
//
// FlightID is the internal identifier and is never shown to the operator;
// flights are addressed by the (FlightNumber, FlightDate) natural key.
// CaptainID/FirstOfficerID are zero when the seat is unassigned.
type FlightDetails struct {
	FlightID         int64
	FlightNumber     string
	FlightDate       string
	OriginCode       string
	DestCode         string
	StatusName       string
	SchedDepUTC      string
	SchedArrUTC      string
	CaptainName      string
	CaptainID        int64
	FirstOfficerName string
	FirstOfficerID   int64
}
