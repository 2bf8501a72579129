package apperror

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type leadInput struct {
	FullName string   `json:"full_name" validate:"required"`
	Status   string   `json:"lead_status" validate:"omitempty,lead_status"`
	Roles    []string `json:"roles" validate:"omitempty,dive,self_service_role"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidations(v)
	return v
}

func TestMapValidationError(t *testing.T) {
	v := newValidator()

	t.Run("required uses the json name", func(t *testing.T) {
		err := MapValidationError(v.Struct(leadInput{}))

		var appErr *AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Full Name is required", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("closed is not an assignable status", func(t *testing.T) {
		err := MapValidationError(v.Struct(leadInput{FullName: "Ann", Status: "CLOSED"}))

		var appErr *AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Lead Status is invalid", appErr.Message)
	})

	t.Run("owner cannot be requested at signup", func(t *testing.T) {
		err := MapValidationError(v.Struct(leadInput{FullName: "Ann", Roles: []string{"SALES", "OWNER"}}))
		assert.Error(t, err)
	})

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, v.Struct(leadInput{FullName: "Ann", Status: "PROSPECT", Roles: []string{"MARKETING"}}))
	})
}
