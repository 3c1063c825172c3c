package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidArgument = New(
		CodeInvalidArgument,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidOperation = New(
		CodeInvalidOperation,
		"The requested operation is not allowed in the current state",
		http.StatusBadRequest,
	)

	ErrTimeout = New(
		CodeTimeout,
		"The operation exceeded its time bound",
		http.StatusRequestTimeout,
	)

	ErrNotImplemented = New(
		CodeNotImplemented,
		"This feature is not implemented",
		http.StatusNotImplemented,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)

// RequiredField builds the 400 returned when binding reports a missing field
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidArgument,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the 400 returned for any other binding violation
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidArgument,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
