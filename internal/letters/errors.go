package letters

import (
	"errors"
	"net/http"
)

// Domain errors for letter operations.
var (
	ErrNotFound          = errors.New("letter not found")
	ErrDuplicate         = errors.New("letter already exists")
	ErrInvalidLetter     = errors.New("invalid letter data")
	ErrInvalidLetterType = errors.New("invalid letter type")
	ErrCitizenNotFound   = errors.New("letter citizen not found")
)

// MapHTTPStatus maps letter domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidLetter) || errors.Is(err, ErrInvalidLetterType) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrCitizenNotFound) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
