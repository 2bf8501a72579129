package leaderrors

import (
	"go-crm/internal/shared/apperror"
	"net/http"
)

var (
	ErrLeadNotFound = apperror.New(
		apperror.CodeNotFound,
		"Lead not found",
		http.StatusNotFound,
	)

	ErrLeadEmailExists = apperror.New(
		apperror.CodeConflict,
		"Lead with the same email already exists",
		http.StatusConflict,
	)

	ErrLeadPhoneExists = apperror.New(
		apperror.CodeConflict,
		"Lead with the same phone already exists",
		http.StatusConflict,
	)

	ErrInvalidLeadID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid lead ID",
		http.StatusBadRequest,
	)

	ErrInvalidLeadStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Lead status must be LEAD, PROSPECT or CUSTOMER",
		http.StatusBadRequest,
	)

	ErrLeadClosed = apperror.New(
		apperror.CodeConflict,
		"Lead is closed and cannot be reopened",
		http.StatusConflict,
	)

	ErrLeadHasSales = apperror.New(
		apperror.CodeConflict,
		"Lead has recorded sales and cannot be deleted",
		http.StatusConflict,
	)
)
