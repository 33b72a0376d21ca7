// Package validate contains the pure input validators shared by every
// read, add and mutate operation. Each function takes one raw field value
// and returns a normalised value or a ValidationError describing the
// expected format. No function touches shared state.
package validate

import (
	"strings"
	"time"
	"unicode"

	"github.com/example/flightdeck/internal/models"
)

const (
	// DateLayout is the only accepted flight-date shape.
	DateLayout = "2006-01-02"
	// TimestampLayout is the only accepted schedule-timestamp shape.
	// Fixed-width and zero-padded, so lexical order matches chronological
	// order for validated values.
	TimestampLayout = "2006-01-02 15:04"

	airportCodeLength = 3
)

// Date validates a date string against YYYY-MM-DD. Any other shape fails,
// including valid dates in other formats.
func Date(value string) (string, error) {
	parsed, err := time.Parse(DateLayout, value)
	// time.Parse tolerates unpadded components; require an exact
	// round-trip to pin the shape.
	if err != nil || parsed.Format(DateLayout) != value {
		return "", models.NewValidationError("invalid date format: %s. Use YYYY-MM-DD", value)
	}
	return value, nil
}

// Timestamp validates a datetime string against YYYY-MM-DD HH:MM.
func Timestamp(value string) (string, error) {
	parsed, err := time.Parse(TimestampLayout, value)
	if err != nil || parsed.Format(TimestampLayout) != value {
		return "", models.NewValidationError("invalid datetime format: %s. Use YYYY-MM-DD HH:MM", value)
	}
	return value, nil
}

// AirportCode trims and upper-cases a code and requires exactly three
// alphabetic characters.
func AirportCode(value string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(value))
	if len(code) != airportCodeLength || !isAlpha(code) {
		return "", models.NewValidationError("airport code must be exactly %d letters", airportCodeLength)
	}
	return code, nil
}

// FlightNumber trims and upper-cases a flight number and requires it to be
// non-empty.
func FlightNumber(value string) (string, error) {
	number := strings.ToUpper(strings.TrimSpace(value))
	if number == "" {
		return "", models.NewValidationError("flight number cannot be empty")
	}
	return number, nil
}

// LicenceNumber trims and upper-cases a licence number and requires it to
// be non-empty.
func LicenceNumber(value string) (string, error) {
	licence := strings.ToUpper(strings.TrimSpace(value))
	if licence == "" {
		return "", models.NewValidationError("licence number cannot be empty")
	}
	return licence, nil
}

// PositiveNumber fails when value is zero or negative. fieldName labels
// the error ("Distance", "Flight duration").
func PositiveNumber(value float64, fieldName string) error {
	if value <= 0 {
		return models.NewValidationError("%s must be positive", fieldName)
	}
	return nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
