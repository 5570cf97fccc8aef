package families

import (
	"errors"
	"net/http"
)

// Domain errors for family card operations.
var (
	ErrNotFound    = errors.New("family card not found")
	ErrDuplicate   = errors.New("family card with this number already exists")
	ErrInvalidCard = errors.New("invalid family card data")
)

// MapHTTPStatus maps family card domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCard) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
