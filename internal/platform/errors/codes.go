// Package errors provides coded domain errors shared by the clicker services.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeUnknownTool     Code = "UNKNOWN_TOOL"

	// Storage errors
	CodeStorageFailure Code = "STORAGE_FAILURE"

	// Economy configuration errors
	CodeInvalidBalance Code = "INVALID_BALANCE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument, CodeInvalidBalance:
		return http.StatusBadRequest
	case CodeUnknownTool:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
