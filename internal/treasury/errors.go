package treasury

import (
	"errors"
	"net/http"
)

// Domain errors for treasury operations.
var (
	ErrNotFound           = errors.New("transaction not found")
	ErrDuplicate          = errors.New("transaction already exists")
	ErrInvalidTransaction = errors.New("invalid transaction data")
	ErrInvalidType        = errors.New("invalid transaction type")
)

// MapHTTPStatus maps treasury domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidTransaction) || errors.Is(err, ErrInvalidType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
