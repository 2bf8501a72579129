package saleerrors

import (
	"go-crm/internal/shared/apperror"
	"net/http"
)

var (
	ErrSaleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Sale not found",
		http.StatusNotFound,
	)

	ErrLeadNotFound = apperror.New(
		apperror.CodeNotFound,
		"Lead not found",
		http.StatusNotFound,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidSaleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid sale ID",
		http.StatusBadRequest,
	)

	ErrInvalidLeadID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid lead ID",
		http.StatusBadRequest,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrSaleNumberConflict = apperror.New(
		apperror.CodeConflict,
		"Sale number already allocated, retry the request",
		http.StatusConflict,
	)
)
