package contacterrors

import (
	"go-crm/internal/shared/apperror"
	"net/http"
)

var (
	ErrContactNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contact not found",
		http.StatusNotFound,
	)

	ErrContactEmailExists = apperror.New(
		apperror.CodeConflict,
		"Contact with the same email already exists",
		http.StatusConflict,
	)

	ErrContactPhoneExists = apperror.New(
		apperror.CodeConflict,
		"Contact with the same phone already exists",
		http.StatusConflict,
	)

	ErrInvalidContactID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid contact ID",
		http.StatusBadRequest,
	)

	ErrInvalidContactStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Contact status must be LEAD, PROSPECT or CUSTOMER",
		http.StatusBadRequest,
	)
)
