// Package preview computes the field-level diff between the current and
// proposed state of a flight. Pure functions only: rendering and the
// confirmation prompt live in the console adapter.
package preview

import (
	"strconv"

	"github.com/example/flightdeck/internal/models"
)

// Field is one operator-visible field of a flight snapshot, paired across
// the current and proposed states. The internal flight id is excluded.
type Field struct {
	Label   string
	Old     string
	New     string
	Changed bool
}

// Diff pairs every visible field of current and proposed and marks the
// ones whose value differs.
func Diff(current, proposed *models.FlightDetails) []Field {
	cur := snapshot(current)
	prop := snapshot(proposed)

	fields := make([]Field, len(cur))
	for i := range cur {
		fields[i] = Field{
			Label:   cur[i].label,
			Old:     cur[i].value,
			New:     prop[i].value,
			Changed: cur[i].value != prop[i].value,
		}
	}
	return fields
}

// ChangedLabels returns the labels of the changed fields, in display order.
func ChangedLabels(fields []Field) []string {
	var labels []string
	for _, f := range fields {
		if f.Changed {
			labels = append(labels, f.Label)
		}
	}
	return labels
}

type entry struct {
	label string
	value string
}

// snapshot flattens a FlightDetails into labelled display values.
// Unassigned crew seats render as "-".
func snapshot(d *models.FlightDetails) []entry {
	return []entry{
		{"flight_number", d.FlightNumber},
		{"flight_date", d.FlightDate},
		{"origin_code", d.OriginCode},
		{"dest_code", d.DestCode},
		{"status_name", d.StatusName},
		{"sched_dep_utc", d.SchedDepUTC},
		{"sched_arr_utc", d.SchedArrUTC},
		{"captain_name", nameOrDash(d.CaptainName)},
		{"captain_id", idOrDash(d.CaptainID)},
		{"fo_name", nameOrDash(d.FirstOfficerName)},
		{"fo_id", idOrDash(d.FirstOfficerID)},
	}
}

func nameOrDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

func idOrDash(id int64) string {
	if id == 0 {
		return "-"
	}
	return strconv.FormatInt(id, 10)
}
