package database

import "errors"

// ErrNotReady indicates the database has not finished migrating.
var ErrNotReady = errors.New("database not ready")
