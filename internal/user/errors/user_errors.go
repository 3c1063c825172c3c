package usererrors

import (
	"net/http"

	"go-userreg/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrDuplicateEmail = apperror.New(
		apperror.CodeDuplicateEmail,
		"A user with this email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidArgument,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
