package autherrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Missing authorization token",
		http.StatusUnauthorized,
	)
	ErrInvalidSession = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or malformed token",
		http.StatusUnauthorized,
	)
	ErrSessionExpired = apperror.New(
		"SESSION_EXPIRED",
		"Session has expired, please log in again",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)

	ErrDuplicateEmail = apperror.New(
		"DUPLICATE_EMAIL",
		"A user with this email already exists",
		http.StatusConflict,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrNotVerified = apperror.New(
		"NOT_VERIFIED",
		"Email address has not been verified",
		http.StatusForbidden,
	)
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusBadRequest,
	)
	ErrAlreadyVerified = apperror.New(
		"ALREADY_VERIFIED",
		"Email address is already verified",
		http.StatusBadRequest,
	)
	ErrInvalidUserType = apperror.New(
		"INVALID_USER_TYPE",
		"User type must be ADMIN or USER",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		"INVALID_ROLE",
		"Role is not assignable",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		"DEPARTMENT_NOT_FOUND",
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentOrgMismatch = apperror.New(
		"DEPARTMENT_ORG_MISMATCH",
		"Department does not belong to this organization",
		http.StatusForbidden,
	)
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
	ErrNotOrganizationMember = apperror.New(
		apperror.CodeForbidden,
		"You are not a member of this organization",
		http.StatusForbidden,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
