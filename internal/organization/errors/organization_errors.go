package organizationerrors

import (
	"go-crm/internal/shared/apperror"
	"net/http"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrOrganizationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Organization with this name already exists",
		http.StatusConflict,
	)

	ErrNotOrganizationMember = apperror.New(
		apperror.CodeForbidden,
		"You are not a member of this organization",
		http.StatusForbidden,
	)

	ErrNotOrganizationOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the organization owner can perform this action",
		http.StatusForbidden,
	)

	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)

	ErrOwnerRoleMissing = apperror.New(
		apperror.CodeInternalError,
		"Role catalog is not seeded",
		http.StatusInternalServerError,
	)
)
