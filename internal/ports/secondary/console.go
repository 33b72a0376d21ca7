package secondary

import "github.com/example/flightdeck/internal/models"

// ChangeConfirmer is the secondary port for the preview/confirm protocol.
// Implementations render the field-level diff between current and
// proposed and ask the operator for approval. No storage side effects:
// the calling operation commits on approval and rolls back on decline.
type ChangeConfirmer interface {
	ConfirmChange(current, proposed *models.FlightDetails) (bool, error)
}
