package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/example/flightdeck/internal/models"
)

// isConstraintErr reports whether err is a SQLite constraint violation
// (uniqueness, foreign key, CHECK). Write sites map these to
// ConflictError with an operation-specific message; everything else
// becomes a DatabaseError.
func isConstraintErr(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

func wrapDBError(op string, err error) error {
	return models.NewDatabaseError(op, err)
}
