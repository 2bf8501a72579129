package security

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Token is invalid",
		http.StatusBadRequest,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusBadRequest,
	)
	ErrWeakPassword = apperror.New(
		"WEAK_PASSWORD",
		"Password is too weak",
		http.StatusBadRequest,
	)
)
