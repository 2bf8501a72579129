package domain

import "strings"

// RoleName is a member of the fixed role catalog.
type RoleName string

const (
	RoleOwner           RoleName = "OWNER"
	RoleAdmin           RoleName = "ADMIN"
	RoleSales           RoleName = "SALES"
	RoleCustomerSupport RoleName = "CUSTOMER_SUPPORT"
	RoleMarketing       RoleName = "MARKETING"
)

var RoleCatalog = []RoleName{
	RoleOwner,
	RoleAdmin,
	RoleSales,
	RoleCustomerSupport,
	RoleMarketing,
}

func (r RoleName) Valid() bool {
	for _, c := range RoleCatalog {
		if c == r {
			return true
		}
	}
	return false
}

// SelfServiceRole reports whether a USER may pick r at signup.
func (r RoleName) SelfServiceRole() bool {
	switch r {
	case RoleSales, RoleCustomerSupport, RoleMarketing:
		return true
	}
	return false
}

func ParseRoleName(s string) (RoleName, bool) {
	r := RoleName(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

// DefaultRoleFor picks the membership role granted to an invited user type.
func DefaultRoleFor(t UserType) RoleName {
	switch t {
	case UserTypeOwner:
		return RoleOwner
	case UserTypeAdmin:
		return RoleAdmin
	default:
		return RoleSales
	}
}

// Membership is a user's role inside one organization.
type Membership struct {
	OrganizationID string   `json:"organization_id"`
	Role           RoleName `json:"role"`
}
