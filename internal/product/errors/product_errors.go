package producterrors

import (
	"go-crm/internal/shared/apperror"
	"net/http"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrProductAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Product with the same name already exists in this organization",
		http.StatusConflict,
	)

	ErrProductInUse = apperror.New(
		apperror.CodeConflict,
		"Product has recorded sales and cannot be deleted",
		http.StatusConflict,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)
)
