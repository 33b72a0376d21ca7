package models

import (
	"strings"
	"unicode/utf8"
)

// Status is a flight status. The set is closed; construct values through
// ParseStatus so invalid states are unrepresentable downstream.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusBoarding  Status = "Boarding"
	StatusDeparted  Status = "Departed"
	StatusCancelled Status = "Cancelled"
	StatusDelayed   Status = "Delayed"
)

// AllStatuses lists the valid statuses in display order.
func AllStatuses() []Status {
	return []Status{StatusScheduled, StatusBoarding, StatusDeparted, StatusCancelled, StatusDelayed}
}

// ParseStatus normalises and validates a status name. Input is lenient:
// "scheduled" and "SCHEDULED" both resolve to Scheduled.
func ParseStatus(value string) (Status, error) {
	normalized := capitalize(strings.TrimSpace(value))
	for _, s := range AllStatuses() {
		if normalized == string(s) {
			return s, nil
		}
	}
	return "", NewValidationError("invalid status. Must be one of: %s", joinStatuses())
}

func joinStatuses() string {
	names := make([]string, 0, 5)
	for _, s := range AllStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// Rank is a pilot rank and doubles as the crew-assignment role.
type Rank string

const (
	RankCaptain      Rank = "Captain"
	RankFirstOfficer Rank = "First Officer"
)

// ParseRank normalises and validates a rank. Input is lenient:
// "first officer" resolves to "First Officer".
func ParseRank(value string) (Rank, error) {
	normalized := titleCase(strings.TrimSpace(value))
	switch Rank(normalized) {
	case RankCaptain:
		return RankCaptain, nil
	case RankFirstOfficer:
		return RankFirstOfficer, nil
	}
	return "", NewValidationError("rank must be one of: %s, %s", RankCaptain, RankFirstOfficer)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + strings.ToLower(s[size:])
}

// titleCase capitalises each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
