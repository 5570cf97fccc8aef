package repository

import (
	"database/sql"
	"errors"

	"modernc.org/sqlite"
)

// SQLite extended result codes for unique constraint violations.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr and sqlite unique constraint
// violations to duplicateErr. Other errors are returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqliteConstraintPrimaryKey, sqliteConstraintUnique:
			return duplicateErr
		}
	}

	return err
}
