// Package crew contains the pure business rules for crew assignment.
// Guards evaluate preconditions without side effects.
package crew

import (
	"fmt"

	"github.com/example/flightdeck/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to a ValidationError if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return models.NewValidationError("%s", r.Reason)
}

// AssignContext provides context for crew-assignment guards.
type AssignContext struct {
	PilotID    int64
	PilotFound bool
	PilotName  string      // full name, only set when PilotFound
	PilotRank  models.Rank // only set when PilotFound
	Role       models.Rank // seat being filled
}

// CanAssign evaluates whether a pilot may be assigned to a crew role.
// Rules:
// - Pilot must exist
// - Pilot's rank must match the role being assigned
func CanAssign(ctx AssignContext) GuardResult {
	if !ctx.PilotFound {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("pilot with ID %d not found", ctx.PilotID),
		}
	}

	if ctx.PilotRank != ctx.Role {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s is not a %s", ctx.PilotName, ctx.Role),
		}
	}

	return GuardResult{Allowed: true}
}
