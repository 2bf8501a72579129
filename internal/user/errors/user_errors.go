package usererrors

import (
	"go-crm/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role is not part of the catalog",
		http.StatusBadRequest,
	)

	ErrOwnerRoleNotAssignable = apperror.New(
		apperror.CodeForbidden,
		"The OWNER role cannot be assigned",
		http.StatusForbidden,
	)

	ErrCannotModifyOwner = apperror.New(
		apperror.CodeForbidden,
		"Organization owners cannot be modified or removed",
		http.StatusForbidden,
	)

	ErrCannotChangeOwnRole = apperror.New(
		apperror.CodeForbidden,
		"You cannot change your own role",
		http.StatusForbidden,
	)

	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot delete your own account",
		http.StatusBadRequest,
	)
)
