package apperror

import (
	"reflect"
	"strings"

	"go-crm/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation tags backed by the domain enums.
const (
	TagLeadStatus      = "lead_status"
	TagSelfServiceRole = "self_service_role"
)

// Init configures gin's validator: json field names in errors and the
// domain enum tags. Call it once before serving.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// A client may never set CLOSED directly.
	_ = v.RegisterValidation(TagLeadStatus, func(fl validator.FieldLevel) bool {
		return domain.LeadStatus(fl.Field().String()).Assignable()
	})
	_ = v.RegisterValidation(TagSelfServiceRole, func(fl validator.FieldLevel) bool {
		return domain.RoleName(fl.Field().String()).SelfServiceRole()
	})
}
