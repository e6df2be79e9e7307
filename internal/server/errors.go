// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStoreDisabled indicates a persistence endpoint was called on a server
// running without a database.
type ErrStoreDisabled struct{}

func (e *ErrStoreDisabled) Error() string {
	return "persistence is not configured on this server"
}

// ErrInvalidCandidateID indicates a malformed candidate UUID in the path.
type ErrInvalidCandidateID struct {
	ID string
}

func (e *ErrInvalidCandidateID) Error() string {
	return fmt.Sprintf("invalid candidate id: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrInvalidCandidateID:
		return http.StatusBadRequest
	case *ErrStoreDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
