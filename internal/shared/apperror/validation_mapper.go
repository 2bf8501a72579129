package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns recipient_phone into "Recipient Phone".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "email":
			return InvalidField(field).WithDetails("must be a valid email address")
		case "oneof":
			return InvalidField(field).WithDetails(fmt.Sprintf("must be one of: %s", e.Param()))
		case TagLeadStatus:
			return InvalidField(field).WithDetails("must be one of: LEAD PROSPECT CUSTOMER")
		case TagSelfServiceRole:
			return InvalidField(field).WithDetails("must be one of: SALES CUSTOMER_SUPPORT MARKETING")
		case "min", "gt", "gte":
			return InvalidField(field).WithDetails(fmt.Sprintf("must be at least %s", e.Param()))
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
