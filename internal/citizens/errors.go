package citizens

import (
	"errors"
	"net/http"
)

// Domain errors for citizen operations.
var (
	ErrNotFound             = errors.New("citizen not found")
	ErrDuplicate            = errors.New("citizen with this NIK already exists")
	ErrInvalidCitizen       = errors.New("invalid citizen data")
	ErrIncompleteExtraction = errors.New("extraction missing mandatory fields")
)

// MapHTTPStatus maps citizen domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCitizen) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrIncompleteExtraction) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
